package domain

import (
	"slices"

	catalog "github.com/dwikikusuma/luckybox/internal/catalog/domain"
)

type Line struct {
	Product catalog.Product
	Qty     int
}

func (l Line) Total() catalog.Money {
	return l.Product.Price.Mul(l.Qty)
}

// StoredEntry is the persisted form of a line.
type StoredEntry struct {
	Code string `json:"code"`
	Qty  int    `json:"qty"`
}

type OrderRecord struct {
	Code   string
	Name   string
	Series string
	Price  catalog.Money
	Qty    int
}

// Cart maps product codes to lines and remembers insertion order.
// A line never holds a quantity below one.
type Cart struct {
	order []string
	lines map[string]Line
}

func NewCart() *Cart {
	return &Cart{lines: make(map[string]Line)}
}

func (c *Cart) Get(code string) (Line, bool) {
	l, ok := c.lines[code]
	return l, ok
}

// Put inserts or replaces the line for its product code. An existing line
// keeps its position. A quantity below one deletes the line instead.
func (c *Cart) Put(l Line) {
	code := l.Product.Code
	if l.Qty <= 0 {
		c.Delete(code)
		return
	}
	if _, ok := c.lines[code]; !ok {
		c.order = append(c.order, code)
	}
	c.lines[code] = l
}

func (c *Cart) Delete(code string) bool {
	if _, ok := c.lines[code]; !ok {
		return false
	}
	delete(c.lines, code)
	c.order = slices.DeleteFunc(c.order, func(k string) bool { return k == code })
	return true
}

func (c *Cart) Reset() {
	c.order = nil
	c.lines = make(map[string]Line)
}

func (c *Cart) Len() int {
	return len(c.order)
}

func (c *Cart) Codes() []string {
	return slices.Clone(c.order)
}

func (c *Cart) Lines() []Line {
	out := make([]Line, 0, len(c.order))
	for _, code := range c.order {
		out = append(out, c.lines[code])
	}
	return out
}

func (c *Cart) Total() catalog.Money {
	var total catalog.Money
	for _, code := range c.order {
		total = total.Add(c.lines[code].Total())
	}
	if total.Currency == "" {
		total.Currency = catalog.DefaultCurrency
	}
	return total
}

func (c *Cart) Entries() []StoredEntry {
	out := make([]StoredEntry, 0, len(c.order))
	for _, code := range c.order {
		out = append(out, StoredEntry{Code: code, Qty: c.lines[code].Qty})
	}
	return out
}

func (c *Cart) OrderRecords() []OrderRecord {
	out := make([]OrderRecord, 0, len(c.order))
	for _, code := range c.order {
		l := c.lines[code]
		out = append(out, OrderRecord{
			Code:   l.Product.Code,
			Name:   l.Product.Name,
			Series: l.Product.Series,
			Price:  l.Product.Price,
			Qty:    l.Qty,
		})
	}
	return out
}
