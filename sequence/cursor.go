package sequence

import "math"

// Cursor walks the sequence one term at a time in either direction.
// Stepping back is a subtraction on the running pair.
type Cursor struct {
	term Term
	next uint64
}

// NewCursor returns a cursor positioned at index i.
func NewCursor(i uint32) *Cursor {
	a, b := pairAt(i)
	return &Cursor{term: Term{Index: i, Value: a}, next: b}
}

// Term returns the term under the cursor.
func (c *Cursor) Term() Term {
	return c.term
}

// HasNext is false only at the last index a count can address.
func (c *Cursor) HasNext() bool {
	return c.term.Index < math.MaxUint32
}

func (c *Cursor) HasPrev() bool {
	return c.term.Index > 0
}

// Next moves forward one term. It does nothing if HasNext is false.
func (c *Cursor) Next() Term {
	if !c.HasNext() {
		return c.term
	}
	value := c.next
	c.next = c.term.Value + c.next
	c.term = Term{Index: c.term.Index + 1, Value: value}
	return c.term
}

// Prev moves back one term. It does nothing at index 0.
// Wrapped values step back correctly because subtraction wraps the same way addition does.
func (c *Cursor) Prev() Term {
	if !c.HasPrev() {
		return c.term
	}
	value := c.next - c.term.Value
	c.next = c.term.Value
	c.term = Term{Index: c.term.Index - 1, Value: value}
	return c.term
}
