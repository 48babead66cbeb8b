package widget

import "strconv"

// Carousel is a modal viewer over N items with wraparound navigation.
type Carousel struct {
	N     int
	Index int
	Open  bool
}

// ParseCarousel restores a carousel from the "t" query value. An absent or
// out-of-range index leaves the modal closed.
func ParseCarousel(n int, raw string) Carousel {
	c := Carousel{N: n}
	if i, err := strconv.Atoi(raw); err == nil && i >= 0 && i < n {
		c = c.Select(i)
	}
	return c
}

// Select opens the modal on item i.
func (c Carousel) Select(i int) Carousel {
	if i < 0 || i >= c.N {
		return c
	}
	c.Index = i
	c.Open = true
	return c
}

// Close hides the modal.
func (c Carousel) Close() Carousel {
	c.Open = false
	c.Index = 0
	return c
}

// Next moves to the following item, wrapping to the first.
func (c Carousel) Next() Carousel {
	return c.step(1)
}

// Prev moves to the previous item, wrapping to the last.
func (c Carousel) Prev() Carousel {
	return c.step(-1)
}

func (c Carousel) step(d int) Carousel {
	if c.N == 0 {
		return c
	}
	c.Index = ((c.Index+d)%c.N + c.N) % c.N
	return c
}

// Reveal is the set of card indices that have scrolled into view. Entries
// are only ever added.
type Reveal struct {
	seen map[int]struct{}
}

// NewReveal returns a Reveal with indices [0, n) already marked.
func NewReveal(n int) *Reveal {
	r := &Reveal{seen: make(map[int]struct{})}
	for i := 0; i < n; i++ {
		r.Mark(i)
	}
	return r
}

// Mark records index i as revealed.
func (r *Reveal) Mark(i int) {
	if r.seen == nil {
		r.seen = make(map[int]struct{})
	}
	r.seen[i] = struct{}{}
}

// Seen reports whether i has been revealed.
func (r *Reveal) Seen(i int) bool {
	_, ok := r.seen[i]
	return ok
}

// Count is the number of revealed indices.
func (r *Reveal) Count() int {
	return len(r.seen)
}

// ShownBatch returns how many of total cards are visible for the "shown"
// query value. The count never drops below initial, grows in steps of
// batch, and is capped at total.
func ShownBatch(raw string, initial, batch, total int) int {
	n := initial
	if v, err := strconv.Atoi(raw); err == nil && v > n {
		// Clamp before rounding up so huge values cannot overflow.
		n = min(v, total)
	}
	if batch > 0 && n > initial {
		n = initial + ((n-initial+batch-1)/batch)*batch
	}
	return min(n, total)
}
