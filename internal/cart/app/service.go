package app

import (
	"context"
	"log/slog"
	"math"
	"slices"

	"github.com/dwikikusuma/luckybox/internal/cart/domain"
	catalog "github.com/dwikikusuma/luckybox/internal/catalog/domain"
)

const DefaultStorageKey = "luckybox_cart"

type ChangeKind int

const (
	ChangeAdded ChangeKind = iota + 1
	ChangeUpdated
	ChangeRemoved
	ChangeRestored
	ChangeReconciled
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeAdded:
		return "added"
	case ChangeUpdated:
		return "updated"
	case ChangeRemoved:
		return "removed"
	case ChangeRestored:
		return "restored"
	case ChangeReconciled:
		return "reconciled"
	default:
		return "unknown"
	}
}

// Change describes one store mutation. Code and Qty are empty for
// restore and reconcile.
type Change struct {
	Kind ChangeKind
	Code string
	Qty  int
}

type subscriber struct {
	id int
	fn func(Change)
}

type Options struct {
	Key string
	Log *slog.Logger
}

// Store owns the cart for one session. It is not safe for concurrent use;
// callers drive it from a single event loop.
type Store struct {
	catalog catalog.Catalog
	cart    *domain.Cart
	slot    Slot
	key     string
	log     *slog.Logger

	subs   []subscriber
	nextID int
}

func NewStore(cat catalog.Catalog, slot Slot, opts Options) *Store {
	if opts.Key == "" {
		opts.Key = DefaultStorageKey
	}
	if opts.Log == nil {
		opts.Log = slog.Default()
	}
	return &Store{
		catalog: cat,
		cart:    domain.NewCart(),
		slot:    slot,
		key:     opts.Key,
		log:     opts.Log,
	}
}

// AddToCart adds qty units of the product. Unknown codes and non-positive
// quantities are ignored.
func (s *Store) AddToCart(ctx context.Context, code string, qty int) bool {
	if qty <= 0 {
		return false
	}
	product, ok := s.catalog.Lookup(code)
	if !ok {
		s.log.Debug("add ignored, unknown product", slog.String("code", code))
		return false
	}

	kind := ChangeAdded
	line, exists := s.cart.Get(code)
	if exists {
		kind = ChangeUpdated
		next := addQty(line.Qty, qty)
		if next == line.Qty {
			return false
		}
		line.Qty = next
	} else {
		line = domain.Line{Product: product, Qty: qty}
	}
	s.cart.Put(line)

	s.commit(ctx, Change{Kind: kind, Code: code, Qty: line.Qty})
	return true
}

// ChangeQty applies a signed delta to an existing line. A resulting
// quantity of zero or less removes the line.
func (s *Store) ChangeQty(ctx context.Context, code string, delta int) bool {
	line, ok := s.cart.Get(code)
	if !ok || delta == 0 {
		return false
	}

	next := addQty(line.Qty, delta)
	if next == line.Qty {
		return false
	}
	line.Qty = next
	if line.Qty <= 0 {
		s.cart.Delete(code)
		s.commit(ctx, Change{Kind: ChangeRemoved, Code: code})
		return true
	}

	s.cart.Put(line)
	s.commit(ctx, Change{Kind: ChangeUpdated, Code: code, Qty: line.Qty})
	return true
}

// SetQty sets an absolute quantity. qty <= 0 removes the line.
func (s *Store) SetQty(ctx context.Context, code string, qty int) bool {
	if qty <= 0 {
		if !s.cart.Delete(code) {
			return false
		}
		s.commit(ctx, Change{Kind: ChangeRemoved, Code: code})
		return true
	}

	product, ok := s.catalog.Lookup(code)
	if !ok {
		return false
	}

	kind := ChangeAdded
	if _, exists := s.cart.Get(code); exists {
		kind = ChangeUpdated
	}
	s.cart.Put(domain.Line{Product: product, Qty: qty})

	s.commit(ctx, Change{Kind: kind, Code: code, Qty: qty})
	return true
}

func (s *Store) Remove(ctx context.Context, code string) bool {
	return s.SetQty(ctx, code, 0)
}

// addQty saturates at math.MaxInt. qty is always at least one, so a
// negative delta cannot wrap.
func addQty(qty, delta int) int {
	if delta > 0 && qty > math.MaxInt-delta {
		return math.MaxInt
	}
	return qty + delta
}

func (s *Store) Qty(code string) int {
	l, _ := s.cart.Get(code)
	return l.Qty
}

func (s *Store) Lines() []domain.Line {
	return s.cart.Lines()
}

func (s *Store) Len() int {
	return s.cart.Len()
}

func (s *Store) IsEmpty() bool {
	return s.cart.Len() == 0
}

func (s *Store) Total() catalog.Money {
	return s.cart.Total()
}

// OrderPayload lists one record per line in insertion order.
func (s *Store) OrderPayload() []domain.OrderRecord {
	return s.cart.OrderRecords()
}

func (s *Store) Catalog() catalog.Catalog {
	return s.catalog
}

// Subscribe registers fn for every subsequent change and returns a
// function that removes it.
func (s *Store) Subscribe(fn func(Change)) (unsubscribe func()) {
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscriber{id: id, fn: fn})

	return func() {
		s.subs = slices.DeleteFunc(slices.Clone(s.subs), func(sub subscriber) bool { return sub.id == id })
	}
}

// Reconcile swaps in a reloaded catalog. Lines pick up the new product
// data; lines whose code no longer resolves are dropped.
func (s *Store) Reconcile(ctx context.Context, cat catalog.Catalog) {
	s.catalog = cat

	changed := false
	for _, line := range s.cart.Lines() {
		product, ok := cat.Lookup(line.Product.Code)
		if !ok {
			s.cart.Delete(line.Product.Code)
			changed = true
			continue
		}
		if product != line.Product {
			s.cart.Put(domain.Line{Product: product, Qty: line.Qty})
			changed = true
		}
	}

	if !changed {
		return
	}
	s.log.Info("cart reconciled with reloaded catalog", slog.Int("lines", s.cart.Len()))
	s.commit(ctx, Change{Kind: ChangeReconciled})
}

func (s *Store) commit(ctx context.Context, c Change) {
	s.save(ctx)
	s.notify(c)
}

func (s *Store) notify(c Change) {
	for _, sub := range s.subs {
		sub.fn(c)
	}
}
