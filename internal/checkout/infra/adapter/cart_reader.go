package adapter

import (
	"context"

	cartapp "github.com/dwikikusuma/luckybox/internal/cart/app"
	checkoutapp "github.com/dwikikusuma/luckybox/internal/checkout/app"
)

type CartStoreReader struct {
	store *cartapp.Store
}

func NewCartStoreReader(store *cartapp.Store) *CartStoreReader {
	return &CartStoreReader{store: store}
}

func (r *CartStoreReader) GetCart(ctx context.Context) ([]checkoutapp.CartItem, error) {
	payload := r.store.OrderPayload()

	items := make([]checkoutapp.CartItem, 0, len(payload))
	for _, rec := range payload {
		items = append(items, checkoutapp.CartItem{
			Code:      rec.Code,
			Name:      rec.Name,
			Series:    rec.Series,
			Currency:  rec.Price.Currency,
			UnitPrice: rec.Price.Amount,
			Quantity:  int64(rec.Qty),
		})
	}
	return items, nil
}
