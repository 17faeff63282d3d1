package storefront

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartapp "github.com/dwikikusuma/luckybox/internal/cart/app"
	"github.com/dwikikusuma/luckybox/internal/cart/infra/memory"
	catalog "github.com/dwikikusuma/luckybox/internal/catalog/domain"
	checkoutapp "github.com/dwikikusuma/luckybox/internal/checkout/app"
	"github.com/dwikikusuma/luckybox/internal/checkout/infra/adapter"
	"github.com/dwikikusuma/luckybox/internal/checkout/infra/formfile"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	left  = tea.KeyMsg{Type: tea.KeyLeft}
	right = tea.KeyMsg{Type: tea.KeyRight}
)

func newTestModel(t *testing.T, products []catalog.Product, sink checkoutapp.FormSink) (*Model, *cartapp.Store) {
	t.Helper()
	store := cartapp.NewStore(catalog.NewCatalog(products), memory.NewSlot(), cartapp.Options{})
	svc := checkoutapp.NewService(adapter.NewCartStoreReader(store), sink)
	m := New(context.Background(), store, svc, nil)
	t.Cleanup(m.Close)
	return m, store
}

var shelf = []catalog.Product{
	{Code: "A1", Name: "Lucky Cat", Series: "Classic", Price: catalog.USD(500)},
	{Code: "B2", Name: "Moon Rabbit", Price: catalog.USD(1250)},
}

func press(m *Model, msgs ...tea.Msg) {
	for _, msg := range msgs {
		m.Update(msg)
	}
}

func TestCarouselQuickAdd(t *testing.T) {
	m, store := newTestModel(t, shelf, nil)

	press(m, enter)
	assert.Equal(t, 1, store.Qty("A1"))

	press(m, right, enter, enter)
	assert.Equal(t, 2, store.Qty("B2"))

	press(m, right, enter)
	assert.Equal(t, 2, store.Qty("A1"), "carousel wraps back to the first item")

	press(m, left, left, enter)
	assert.Equal(t, 3, store.Qty("A1"))
	assert.Equal(t, "$40.00", store.Total().String())
}

func TestGridAdd(t *testing.T) {
	m, store := newTestModel(t, shelf, nil)

	press(m, runes("2"), runes("2"), runes("9"))
	assert.Equal(t, 2, store.Qty("B2"))
	assert.Equal(t, 1, store.Len())
}

func TestCartCarousel(t *testing.T) {
	m, store := newTestModel(t, shelf, nil)
	press(m, runes("1"), runes("2"))

	press(m, runes("+"))
	assert.Equal(t, 2, store.Qty("A1"))

	press(m, runes("]"), runes("-"))
	assert.Zero(t, store.Qty("B2"))

	press(m, runes("x"))
	assert.True(t, store.IsEmpty())
	assert.Contains(t, m.View(), "Cart is empty")
}

func TestEmptyCartCheckoutIsBlocked(t *testing.T) {
	m, store := newTestModel(t, shelf, nil)

	press(m, runes("c"))
	assert.Equal(t, emptyCartNotice, m.notice)
	assert.Nil(t, m.drawer)
	assert.True(t, store.IsEmpty())

	press(m, runes("1"))
	assert.True(t, store.IsEmpty(), "notice blocks input until dismissed")

	press(m, enter)
	assert.Empty(t, m.notice)
	press(m, runes("1"))
	assert.Equal(t, 1, store.Qty("A1"))
}

func TestCheckoutDrawerAndHandOff(t *testing.T) {
	out := filepath.Join(t.TempDir(), "order.json")
	m, _ := newTestModel(t, shelf, formfile.NewSink(out))

	press(m, runes("1"), runes("c"))
	require.NotNil(t, m.drawer)
	assert.Equal(t, "$5.00", m.drawer.Total)
	assert.Contains(t, m.View(), `"code": "A1"`)

	press(m, enter)
	assert.FileExists(t, out)
	assert.Contains(t, m.status, "handed off")

	press(m, esc)
	assert.Nil(t, m.drawer)
}

func TestStatusFollowsStoreChanges(t *testing.T) {
	m, store := newTestModel(t, shelf, nil)

	store.AddToCart(context.Background(), "B2", 3)
	assert.Equal(t, "added B2 ×3", m.status)

	store.Remove(context.Background(), "B2")
	assert.Equal(t, "removed B2", m.status)

	m.Close()
	store.AddToCart(context.Background(), "A1", 1)
	assert.Equal(t, "removed B2", m.status)
}

func TestCatalogReload(t *testing.T) {
	m, store := newTestModel(t, shelf, nil)
	press(m, runes("1"), runes("2"), right)

	press(m, CatalogReloadedMsg{Catalog: catalog.NewCatalog(shelf[:1])})

	assert.Equal(t, 1, store.Len())
	p, ok := m.choice.Current()
	require.True(t, ok)
	assert.Equal(t, "A1", p.Code, "cursor clamps to the last valid item")
	assert.Equal(t, 0, m.choice.Index())
}

func TestEmptyCatalogShowsPlaceholder(t *testing.T) {
	m, store := newTestModel(t, nil, nil)

	press(m, enter, right, left, runes("1"))
	assert.True(t, store.IsEmpty())
	assert.True(t, strings.Contains(m.View(), catalog.Placeholder().Name))
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t, shelf, nil)
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
