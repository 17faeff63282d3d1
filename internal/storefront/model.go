// Package storefront is the terminal view of the shop: a product grid, the
// choice carousel, the cart carousel and the checkout drawer. It only
// projects store state and forwards key presses as store operations.
package storefront

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	cartapp "github.com/dwikikusuma/luckybox/internal/cart/app"
	cartdomain "github.com/dwikikusuma/luckybox/internal/cart/domain"
	catalog "github.com/dwikikusuma/luckybox/internal/catalog/domain"
	checkoutapp "github.com/dwikikusuma/luckybox/internal/checkout/app"
	checkoutdomain "github.com/dwikikusuma/luckybox/internal/checkout/domain"
	"github.com/dwikikusuma/luckybox/internal/selection"
)

const gridSize = 9

const emptyCartNotice = "Add at least one item first."

// CatalogReloadedMsg delivers a reloaded catalog to the event loop.
type CatalogReloadedMsg struct {
	Catalog catalog.Catalog
}

type Model struct {
	ctx      context.Context
	store    *cartapp.Store
	checkout *checkoutapp.Service
	log      *slog.Logger

	keys   keyMap
	styles styles

	choice *selection.Picker[catalog.Product]
	cart   *selection.Picker[cartdomain.Line]

	drawer *checkoutdomain.OrderForm
	notice string
	status string

	unsubscribe func()
}

func New(ctx context.Context, store *cartapp.Store, checkout *checkoutapp.Service, log *slog.Logger) *Model {
	if log == nil {
		log = slog.Default()
	}
	m := &Model{
		ctx:      ctx,
		store:    store,
		checkout: checkout,
		log:      log,
		keys:     defaultKeys(),
		styles:   defaultStyles(),
		choice:   selection.NewPicker(func() []catalog.Product { return store.Catalog().Products() }),
		cart:     selection.NewPicker(store.Lines),
	}
	m.unsubscribe = store.Subscribe(m.onChange)
	return m
}

// Close detaches the view from the store.
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

func (m *Model) onChange(c cartapp.Change) {
	switch c.Kind {
	case cartapp.ChangeAdded, cartapp.ChangeUpdated:
		m.status = fmt.Sprintf("%s %s ×%d", c.Kind, c.Code, c.Qty)
	case cartapp.ChangeRemoved:
		m.status = fmt.Sprintf("removed %s", c.Code)
	default:
		m.status = fmt.Sprintf("cart %s (%d lines)", c.Kind, m.store.Len())
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case CatalogReloadedMsg:
		m.store.Reconcile(m.ctx, msg.Catalog)
		m.log.Info("catalog reloaded", slog.Int("products", msg.Catalog.Len()))
		if m.drawer != nil {
			m.refreshDrawer()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	// the notice blocks everything until dismissed
	if m.notice != "" {
		if key.Matches(msg, m.keys.Close) || msg.Type == tea.KeyEnter {
			m.notice = ""
		}
		return m, nil
	}

	if m.drawer != nil {
		switch {
		case key.Matches(msg, m.keys.Close):
			m.drawer = nil
		case msg.Type == tea.KeyEnter:
			m.submit()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Prev):
		m.choice.Advance(selection.Prev)
	case key.Matches(msg, m.keys.Next):
		m.choice.Advance(selection.Next)
	case key.Matches(msg, m.keys.Add):
		if p, ok := m.choice.Current(); ok {
			m.store.AddToCart(m.ctx, p.Code, 1)
		}
	case key.Matches(msg, m.keys.Grid):
		m.addFromGrid(msg.String())
	case key.Matches(msg, m.keys.CartPrev):
		m.cart.Advance(selection.Prev)
	case key.Matches(msg, m.keys.CartNext):
		m.cart.Advance(selection.Next)
	case key.Matches(msg, m.keys.Plus):
		if l, ok := m.cart.Current(); ok {
			m.store.ChangeQty(m.ctx, l.Product.Code, 1)
		}
	case key.Matches(msg, m.keys.Minus):
		if l, ok := m.cart.Current(); ok {
			m.store.ChangeQty(m.ctx, l.Product.Code, -1)
		}
	case key.Matches(msg, m.keys.Remove):
		if l, ok := m.cart.Current(); ok {
			m.store.Remove(m.ctx, l.Product.Code)
		}
	case key.Matches(msg, m.keys.Checkout):
		m.openCheckout()
	}
	return m, nil
}

func (m *Model) addFromGrid(k string) {
	if len(k) != 1 || k[0] < '1' || k[0] > '9' {
		return
	}
	if p, ok := m.store.Catalog().At(int(k[0] - '1')); ok {
		m.store.AddToCart(m.ctx, p.Code, 1)
	}
}

func (m *Model) openCheckout() {
	form, err := m.checkout.Prefill(m.ctx)
	if errors.Is(err, checkoutapp.ErrEmptyCart) {
		m.notice = emptyCartNotice
		return
	}
	if err != nil {
		m.log.Error("prefill order form failed", slog.Any("err", err))
		m.status = "checkout unavailable"
		return
	}
	m.drawer = &form
}

func (m *Model) refreshDrawer() {
	form, err := m.checkout.Prefill(m.ctx)
	if err != nil {
		m.drawer = nil
		return
	}
	m.drawer = &form
}

func (m *Model) submit() {
	form, err := m.checkout.Submit(m.ctx)
	switch {
	case errors.Is(err, checkoutapp.ErrNoSink):
		m.status = "order form ready; no hand-off configured"
	case errors.Is(err, checkoutapp.ErrEmptyCart):
		m.drawer = nil
		m.notice = emptyCartNotice
	case err != nil:
		m.log.Error("order form hand-off failed", slog.Any("err", err))
		m.status = "order form hand-off failed"
	default:
		m.log.Info("order form handed off", slog.String("reference", form.Reference), slog.String("total", form.Total))
		m.drawer = &form
		m.status = "order form " + form.Reference + " handed off"
	}
}

func (m *Model) View() string {
	var b strings.Builder
	s := m.styles

	b.WriteString(s.Title.Render("LUCKYBOX"))
	b.WriteString("\n\n")

	products := m.store.Catalog().Products()
	if len(products) == 0 {
		products = []catalog.Product{catalog.Placeholder()}
	}
	for i, p := range products {
		if i == gridSize {
			break
		}
		b.WriteString(s.Slot.Render(fmt.Sprintf("[%d] %s", i+1, p.Name)))
		if p.Series != "" {
			b.WriteString(s.Muted.Render(p.Series) + " ")
		}
		b.WriteString(s.Price.Render(p.Price.String()))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	shown, ok := m.choice.Current()
	if !ok {
		shown = catalog.Placeholder()
	}
	b.WriteString(s.Screen.Render(fmt.Sprintf("‹ %s  %s ›", shown.Name, s.Muted.Render(fmt.Sprintf("%d/%d", m.choice.Index()+1, max(m.choice.Len(), 1))))))
	b.WriteString("\n")

	if line, ok := m.cart.Current(); ok {
		b.WriteString(s.Screen.Render(fmt.Sprintf("‹ %s ×%d ›", line.Product.Name, line.Qty)))
	} else {
		b.WriteString(s.Screen.Render("Cart is empty ×0"))
	}
	b.WriteString("\n")

	b.WriteString(s.Total.Render("Total: " + m.store.Total().String()))
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(s.Muted.Render(m.status))
		b.WriteString("\n")
	}

	if m.drawer != nil {
		b.WriteString("\n")
		b.WriteString(s.Drawer.Render(fmt.Sprintf(
			"Order %s\n\n%s\n\nTotal %s\n\nenter submit · esc close",
			m.drawer.Reference, m.drawer.Items, m.drawer.Total,
		)))
		b.WriteString("\n")
	}

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(s.Notice.Render(m.notice + "\n\nenter ok"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.Help.Render(helpLine(m.keys.help())))
	return b.String()
}

func helpLine(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " · ")
}
