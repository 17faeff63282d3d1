package domain

import (
	"slices"

	"github.com/shopspring/decimal"
)

const DefaultCurrency = "USD"

// Money is an exact amount in major units. A catalog carries a single
// currency, so Add keeps the receiver's currency and does not convert.
// Rounding to cents happens only in String.
type Money struct {
	Currency string
	Amount   decimal.Decimal
}

func USD(cents int64) Money {
	return Money{Currency: DefaultCurrency, Amount: decimal.New(cents, -2)}
}

func NewMoney(currency string, v decimal.Decimal) Money {
	return Money{Currency: currency, Amount: v}
}

func (m Money) Add(o Money) Money {
	return Money{Currency: m.currency(o), Amount: m.Amount.Add(o.Amount)}
}

func (m Money) Mul(qty int) Money {
	return Money{Currency: m.Currency, Amount: m.Amount.Mul(decimal.NewFromInt(int64(qty)))}
}

func (m Money) Equal(o Money) bool {
	return m.Currency == o.Currency && m.Amount.Equal(o.Amount)
}

func (m Money) currency(o Money) string {
	if m.Currency != "" {
		return m.Currency
	}
	return o.Currency
}

// String renders the amount rounded half away from zero to two
// decimals, e.g. "$12.50".
func (m Money) String() string {
	fixed := m.Amount.StringFixed(2)
	switch m.Currency {
	case "", DefaultCurrency:
		return "$" + fixed
	default:
		return fixed + " " + m.Currency
	}
}

type Product struct {
	Code   string
	Name   string
	Series string
	Price  Money
	Image  string
}

// Placeholder is shown by views when no catalog could be loaded.
func Placeholder() Product {
	return Product{
		Code:  "demo",
		Name:  "Catalog unavailable",
		Price: USD(0),
	}
}

// Catalog is an ordered, immutable product list indexed by code.
type Catalog struct {
	products []Product
	byCode   map[string]int
}

// NewCatalog keeps the first product for any repeated code.
func NewCatalog(products []Product) Catalog {
	c := Catalog{
		products: make([]Product, 0, len(products)),
		byCode:   make(map[string]int, len(products)),
	}
	for _, p := range products {
		if _, dup := c.byCode[p.Code]; dup {
			continue
		}
		c.byCode[p.Code] = len(c.products)
		c.products = append(c.products, p)
	}
	return c
}

func (c Catalog) Lookup(code string) (Product, bool) {
	i, ok := c.byCode[code]
	if !ok {
		return Product{}, false
	}
	return c.products[i], true
}

func (c Catalog) Products() []Product {
	return slices.Clone(c.products)
}

func (c Catalog) At(i int) (Product, bool) {
	if i < 0 || i >= len(c.products) {
		return Product{}, false
	}
	return c.products[i], true
}

func (c Catalog) Len() int {
	return len(c.products)
}

func (c Catalog) IsEmpty() bool {
	return len(c.products) == 0
}
