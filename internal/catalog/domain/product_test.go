package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney(t *testing.T) {
	t.Run("formats USD with two decimals", func(t *testing.T) {
		assert.Equal(t, "$0.00", USD(0).String())
		assert.Equal(t, "$12.50", USD(1250).String())
		assert.Equal(t, "$1234.05", USD(123405).String())
	})

	t.Run("formats other currencies with a suffix", func(t *testing.T) {
		assert.Equal(t, "9.99 EUR", Money{Currency: "EUR", Amount: decimal.RequireFromString("9.99")}.String())
	})

	t.Run("keeps sub-cent amounts until rendered", func(t *testing.T) {
		assert.True(t, USD(1250).Equal(NewMoney("USD", decimal.RequireFromString("12.5"))))
		third := NewMoney("USD", decimal.RequireFromString("0.333"))
		assert.Equal(t, "$0.33", third.String())
		assert.Equal(t, "$1.00", third.Mul(3).String())
		assert.Equal(t, "$1.01", NewMoney("USD", decimal.RequireFromString("1.005")).String())
	})

	t.Run("equality compares currency and value", func(t *testing.T) {
		assert.True(t, USD(500).Equal(NewMoney("USD", decimal.RequireFromString("5"))))
		assert.False(t, USD(500).Equal(NewMoney("EUR", decimal.RequireFromString("5"))))
	})

	t.Run("repeated additions do not drift", func(t *testing.T) {
		total := USD(0)
		for i := 0; i < 1000; i++ {
			total = total.Add(USD(10))
		}
		assert.Equal(t, "$100.00", total.String())
	})
}

func TestCatalog(t *testing.T) {
	c := NewCatalog([]Product{
		{Code: "A1", Name: "first", Price: USD(500)},
		{Code: "B2", Name: "second", Price: USD(1250)},
		{Code: "A1", Name: "duplicate", Price: USD(1)},
	})

	require.Equal(t, 2, c.Len())

	p, ok := c.Lookup("A1")
	require.True(t, ok)
	assert.Equal(t, "first", p.Name)

	_, ok = c.Lookup("ZZ")
	assert.False(t, ok)

	_, ok = c.At(2)
	assert.False(t, ok)

	products := c.Products()
	products[0].Name = "mutated"
	p, _ = c.At(0)
	assert.Equal(t, "first", p.Name)

	assert.True(t, NewCatalog(nil).IsEmpty())
}
