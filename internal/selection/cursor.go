// Package selection tracks the highlighted item of a carousel-style
// picker.
package selection

type Direction int

const (
	Prev Direction = -1
	Next Direction = 1
)

// Cursor is an index that wraps modulo the length of the list it points
// into. The zero value points at the first item.
type Cursor struct {
	index int
}

func (c *Cursor) Index() int {
	return c.index
}

// Advance moves one step in direction d. It is a no-op for an empty list
// or a zero direction.
func (c *Cursor) Advance(d Direction, length int) bool {
	if length <= 0 || d == 0 {
		return false
	}
	step := 1
	if d < 0 {
		step = -1
	}
	c.index = ((c.index+step)%length + length) % length
	return true
}

// Clamp keeps the index valid after the list shrank.
func (c *Cursor) Clamp(length int) {
	switch {
	case length <= 0:
		c.index = 0
	case c.index >= length:
		c.index = length - 1
	case c.index < 0:
		c.index = 0
	}
}

// Picker binds a cursor to a list that may change between calls. Every
// access clamps against the list as it is now.
type Picker[T any] struct {
	items  func() []T
	cursor Cursor
}

func NewPicker[T any](items func() []T) *Picker[T] {
	return &Picker[T]{items: items}
}

func (p *Picker[T]) Advance(d Direction) bool {
	n := len(p.items())
	p.cursor.Clamp(n)
	return p.cursor.Advance(d, n)
}

// Current returns the highlighted item, or false when the list is empty.
func (p *Picker[T]) Current() (T, bool) {
	items := p.items()
	p.cursor.Clamp(len(items))
	if len(items) == 0 {
		var zero T
		return zero, false
	}
	return items[p.cursor.Index()], true
}

func (p *Picker[T]) Index() int {
	p.cursor.Clamp(len(p.items()))
	return p.cursor.Index()
}

func (p *Picker[T]) Len() int {
	return len(p.items())
}
