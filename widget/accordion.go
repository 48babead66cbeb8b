// Package widget holds the small UI state machines behind the interactive
// parts of the site. Each state round-trips through the query string so
// pages work as plain links, and HTMX only swaps the rendered fragment.
package widget

import "strconv"

// Closed is the Accordion index meaning no item is open.
const Closed = -1

// Accordion tracks which of N items is expanded. At most one is open.
type Accordion struct {
	N    int
	Open int
}

// NewAccordion returns an accordion of n items with none open.
func NewAccordion(n int) Accordion {
	return Accordion{N: n, Open: Closed}
}

// ParseAccordion restores an accordion from the "open" query value.
// Missing or out-of-range values leave every item closed.
func ParseAccordion(n int, raw string) Accordion {
	a := NewAccordion(n)
	if i, err := strconv.Atoi(raw); err == nil && a.valid(i) {
		a.Open = i
	}
	return a
}

func (a Accordion) valid(i int) bool {
	return i >= 0 && i < a.N
}

// Toggle closes item i if it is open and otherwise opens it, closing any
// other item.
func (a Accordion) Toggle(i int) Accordion {
	if !a.valid(i) {
		return a
	}
	if a.Open == i {
		a.Open = Closed
	} else {
		a.Open = i
	}
	return a
}

// IsOpen reports whether item i is expanded.
func (a Accordion) IsOpen(i int) bool {
	return a.Open == i && a.valid(i)
}

// ToggleQuery is the "open" value of the link on item i: the state after
// toggling i, or "" when that state has nothing open.
func (a Accordion) ToggleQuery(i int) string {
	next := a.Toggle(i)
	if next.Open == Closed {
		return ""
	}
	return strconv.Itoa(next.Open)
}
