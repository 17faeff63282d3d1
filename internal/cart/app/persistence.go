package app

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/dwikikusuma/luckybox/internal/cart/domain"
)

// save overwrites the slot with the current lines as [{code, qty}].
// Failures are logged and otherwise ignored.
func (s *Store) save(ctx context.Context) {
	data, err := json.Marshal(s.cart.Entries())
	if err != nil {
		s.log.Error("encode cart failed", slog.Any("err", err))
		return
	}
	if err := s.slot.Set(ctx, s.key, data); err != nil {
		s.log.Error("persist cart failed", slog.String("key", s.key), slog.Any("err", err))
	}
}

// Restore replaces the in-memory cart with the stored one. Absent or
// unreadable storage counts as an empty cart. Entries are resolved against
// the current catalog; unknown codes and non-positive quantities are
// dropped. It returns the number of restored lines.
func (s *Store) Restore(ctx context.Context) int {
	entries := s.readEntries(ctx)

	s.cart.Reset()
	dropped := 0
	for _, e := range entries {
		product, ok := s.catalog.Lookup(e.Code)
		if !ok || e.Qty <= 0 {
			dropped++
			continue
		}
		s.cart.Put(domain.Line{Product: product, Qty: e.Qty})
	}

	if dropped > 0 {
		s.log.Info("dropped stale cart entries", slog.Int("dropped", dropped))
	}
	s.notify(Change{Kind: ChangeRestored})
	return s.cart.Len()
}

func (s *Store) readEntries(ctx context.Context) []domain.StoredEntry {
	raw, ok, err := s.slot.Get(ctx, s.key)
	if err != nil {
		s.log.Warn("read stored cart failed", slog.String("key", s.key), slog.Any("err", err))
		return nil
	}
	if !ok || len(raw) == 0 {
		return nil
	}

	var entries []domain.StoredEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		s.log.Warn("stored cart is malformed, starting empty", slog.Any("err", err))
		return nil
	}
	return entries
}
