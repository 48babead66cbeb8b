package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccordionToggle(t *testing.T) {
	a := NewAccordion(4)
	assert.Equal(t, Closed, a.Open)

	a = a.Toggle(2)
	assert.True(t, a.IsOpen(2))

	a = a.Toggle(0)
	assert.True(t, a.IsOpen(0))
	assert.False(t, a.IsOpen(2), "opening another item closes the first")

	a = a.Toggle(0)
	assert.Equal(t, Closed, a.Open)
}

func TestAccordionAtMostOneOpen(t *testing.T) {
	a := NewAccordion(5)
	for _, i := range []int{0, 3, 3, 1, 4, 9, -2, 1, 2} {
		a = a.Toggle(i)
		open := 0
		for j := 0; j < a.N; j++ {
			if a.IsOpen(j) {
				open++
			}
		}
		assert.LessOrEqual(t, open, 1)
	}
}

func TestAccordionDoubleToggleRestores(t *testing.T) {
	for start := Closed; start < 3; start++ {
		a := Accordion{N: 3, Open: start}
		for i := 0; i < 3; i++ {
			if a.Open == Closed || a.Open == i {
				assert.Equal(t, a, a.Toggle(i).Toggle(i), "start=%d i=%d", start, i)
			}
		}
	}
}

func TestAccordionIgnoresOutOfRange(t *testing.T) {
	a := NewAccordion(2).Toggle(1)
	assert.Equal(t, a, a.Toggle(2))
	assert.Equal(t, a, a.Toggle(-1))
}

func TestParseAccordion(t *testing.T) {
	assert.Equal(t, 3, ParseAccordion(5, "3").Open)
	assert.Equal(t, Closed, ParseAccordion(5, "").Open)
	assert.Equal(t, Closed, ParseAccordion(5, "7").Open)
	assert.Equal(t, Closed, ParseAccordion(5, "x").Open)
}

func TestAccordionToggleQuery(t *testing.T) {
	a := ParseAccordion(3, "1")
	assert.Equal(t, "", a.ToggleQuery(1))
	assert.Equal(t, "2", a.ToggleQuery(2))
}
