package app

import (
	"context"

	"github.com/dwikikusuma/luckybox/internal/catalog/domain"
)

type ProductSource interface {
	FetchProducts(ctx context.Context) ([]domain.Product, error)
}
