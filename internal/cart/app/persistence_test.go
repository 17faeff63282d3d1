package app

import (
	"context"
	"errors"
	"testing"

	"github.com/dwikikusuma/luckybox/internal/cart/domain"
	"github.com/dwikikusuma/luckybox/internal/cart/infra/memory"
	catalog "github.com/dwikikusuma/luckybox/internal/catalog/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenSlot struct{ err error }

func (b brokenSlot) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, b.err
}

func (b brokenSlot) Set(ctx context.Context, key string, value []byte) error {
	return b.err
}

func TestSaveWritesCodeQtyPairs(t *testing.T) {
	ctx := context.Background()
	s, slot := newTestStore(t)

	s.AddToCart(ctx, "B2", 1)
	s.AddToCart(ctx, "A1", 3)

	raw, ok, err := slot.Get(ctx, DefaultStorageKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[{"code":"B2","qty":1},{"code":"A1","qty":3}]`, string(raw))

	s.ChangeQty(ctx, "B2", -1)
	s.ChangeQty(ctx, "A1", -3)
	raw, _, _ = slot.Get(ctx, DefaultStorageKey)
	assert.JSONEq(t, `[]`, string(raw))
}

func TestRestoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	slot := memory.NewSlot()

	original := NewStore(testCatalog(), slot, Options{})
	original.AddToCart(ctx, "C3", 4)
	original.AddToCart(ctx, "A1", 1)
	original.SetQty(ctx, "B2", 2)

	restored := NewStore(testCatalog(), slot, Options{})
	require.Equal(t, 3, restored.Restore(ctx))

	if diff := cmp.Diff(original.Lines(), restored.Lines()); diff != "" {
		t.Fatalf("restored cart mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, original.Total().Equal(restored.Total()))
}

func TestRestore(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name   string
		stored string
		want   []domain.StoredEntry
	}{
		{
			name:   "unknown codes dropped",
			stored: `[{"code":"A1","qty":2},{"code":"GONE","qty":5},{"code":"B2","qty":1}]`,
			want:   []domain.StoredEntry{{Code: "A1", Qty: 2}, {Code: "B2", Qty: 1}},
		},
		{
			name:   "non-positive qty dropped",
			stored: `[{"code":"A1","qty":0},{"code":"B2","qty":-4}]`,
			want:   []domain.StoredEntry{},
		},
		{
			name:   "repeated code keeps first position and last qty",
			stored: `[{"code":"A1","qty":1},{"code":"B2","qty":1},{"code":"A1","qty":9}]`,
			want:   []domain.StoredEntry{{Code: "A1", Qty: 9}, {Code: "B2", Qty: 1}},
		},
		{
			name:   "malformed json",
			stored: `[{"code":"A1",`,
			want:   []domain.StoredEntry{},
		},
		{
			name:   "wrong shape",
			stored: `{"A1":2}`,
			want:   []domain.StoredEntry{},
		},
		{
			name:   "fractional qty",
			stored: `[{"code":"A1","qty":1.5}]`,
			want:   []domain.StoredEntry{},
		},
		{
			name:   "null",
			stored: `null`,
			want:   []domain.StoredEntry{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			slot := memory.NewSlot()
			require.NoError(t, slot.Set(ctx, DefaultStorageKey, []byte(tc.stored)))

			s := NewStore(testCatalog(), slot, Options{})
			assert.NotPanics(t, func() { s.Restore(ctx) })

			got := make([]domain.StoredEntry, 0)
			for _, l := range s.Lines() {
				got = append(got, domain.StoredEntry{Code: l.Product.Code, Qty: l.Qty})
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRestoreAbsentAndUnreadable(t *testing.T) {
	ctx := context.Background()

	s := NewStore(testCatalog(), memory.NewSlot(), Options{})
	assert.Zero(t, s.Restore(ctx))

	s = NewStore(testCatalog(), brokenSlot{err: errors.New("disk gone")}, Options{})
	assert.Zero(t, s.Restore(ctx))
}

func TestRestoreAgainstShrunkCatalog(t *testing.T) {
	ctx := context.Background()
	slot := memory.NewSlot()

	before := NewStore(testCatalog(), slot, Options{})
	before.AddToCart(ctx, "A1", 1)
	before.AddToCart(ctx, "B2", 2)

	shrunk := catalog.NewCatalog([]catalog.Product{{Code: "B2", Name: "Moon Rabbit", Price: catalog.USD(1250)}})
	after := NewStore(shrunk, slot, Options{})
	require.Equal(t, 1, after.Restore(ctx))
	assert.Equal(t, 2, after.Qty("B2"))
}

func TestRestoreNotifies(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	var got []Change
	s.Subscribe(func(c Change) { got = append(got, c) })
	s.Restore(ctx)

	assert.Equal(t, []Change{{Kind: ChangeRestored}}, got)
}

func TestSaveFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()
	s := NewStore(testCatalog(), brokenSlot{err: errors.New("quota exceeded")}, Options{Key: "custom"})

	assert.True(t, s.AddToCart(ctx, "A1", 1))
	assert.Equal(t, 1, s.Qty("A1"))
}
