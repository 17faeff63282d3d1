package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dwikikusuma/luckybox/internal/catalog/domain"
)

type Service struct {
	src ProductSource
	log *slog.Logger
}

func NewService(src ProductSource, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		src: src,
		log: log,
	}
}

// Load fetches the catalog once. It fails closed: any retrieval or parse
// error yields an empty catalog instead of an error.
func (s *Service) Load(ctx context.Context) domain.Catalog {
	catalog, err := s.Reload(ctx)
	if err != nil {
		s.log.Warn("catalog unavailable, continuing with empty catalog", slog.Any("err", err))
		return domain.NewCatalog(nil)
	}
	return catalog
}

// Reload fetches the catalog again and reports failures, so a running
// session can keep its current catalog when the new one is unreadable.
func (s *Service) Reload(ctx context.Context) (domain.Catalog, error) {
	products, err := s.src.FetchProducts(ctx)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("fetch catalog: %w", err)
	}

	catalog := domain.NewCatalog(products)
	if dropped := len(products) - catalog.Len(); dropped > 0 {
		s.log.Warn("catalog has repeated codes", slog.Int("dropped", dropped))
	}
	s.log.Info("catalog loaded", slog.Int("products", catalog.Len()))
	return catalog, nil
}
