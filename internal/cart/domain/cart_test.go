package domain

import (
	"testing"

	catalog "github.com/dwikikusuma/luckybox/internal/catalog/domain"
	"github.com/stretchr/testify/assert"
)

var (
	a1 = catalog.Product{Code: "A1", Name: "Lucky Cat", Price: catalog.USD(500)}
	b2 = catalog.Product{Code: "B2", Name: "Moon Rabbit", Series: "Night", Price: catalog.USD(1250)}
)

func TestCart(t *testing.T) {
	t.Run("put keeps insertion order", func(t *testing.T) {
		c := NewCart()
		c.Put(Line{Product: b2, Qty: 1})
		c.Put(Line{Product: a1, Qty: 2})
		c.Put(Line{Product: b2, Qty: 4})

		assert.Equal(t, []string{"B2", "A1"}, c.Codes())
		assert.Equal(t, []StoredEntry{{Code: "B2", Qty: 4}, {Code: "A1", Qty: 2}}, c.Entries())
	})

	t.Run("non-positive qty deletes", func(t *testing.T) {
		c := NewCart()
		c.Put(Line{Product: a1, Qty: 1})
		c.Put(Line{Product: a1, Qty: 0})

		_, ok := c.Get("A1")
		assert.False(t, ok)
		assert.Zero(t, c.Len())

		c.Put(Line{Product: b2, Qty: -3})
		assert.Zero(t, c.Len())
	})

	t.Run("total sums line totals", func(t *testing.T) {
		c := NewCart()
		assert.Equal(t, "$0.00", c.Total().String())

		c.Put(Line{Product: a1, Qty: 3})
		c.Put(Line{Product: b2, Qty: 1})
		assert.True(t, catalog.USD(2750).Equal(c.Total()), c.Total().String())
		assert.Equal(t, "$27.50", c.Total().String())
	})

	t.Run("order records follow insertion order", func(t *testing.T) {
		c := NewCart()
		c.Put(Line{Product: b2, Qty: 2})
		c.Put(Line{Product: a1, Qty: 1})

		assert.Equal(t, []OrderRecord{
			{Code: "B2", Name: "Moon Rabbit", Series: "Night", Price: catalog.USD(1250), Qty: 2},
			{Code: "A1", Name: "Lucky Cat", Price: catalog.USD(500), Qty: 1},
		}, c.OrderRecords())
	})

	t.Run("delete and reset", func(t *testing.T) {
		c := NewCart()
		c.Put(Line{Product: a1, Qty: 1})
		c.Put(Line{Product: b2, Qty: 1})

		assert.True(t, c.Delete("A1"))
		assert.False(t, c.Delete("A1"))
		assert.Equal(t, []string{"B2"}, c.Codes())

		c.Reset()
		assert.Empty(t, c.Lines())
	})
}
