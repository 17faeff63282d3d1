package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dwikikusuma/luckybox/internal/checkout/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CartReader interface {
	GetCart(ctx context.Context) ([]CartItem, error)
}

type CartItem struct {
	Code      string
	Name      string
	Series    string
	Currency  string
	UnitPrice decimal.Decimal
	Quantity  int64
}

// FormSink receives a prefilled order form for external submission.
type FormSink interface {
	Submit(ctx context.Context, form domain.OrderForm) error
}

var (
	ErrEmptyCart = errors.New("add at least one item first")
	ErrNoSink    = errors.New("no order form sink configured")
)

type Service struct {
	Cart CartReader
	Sink FormSink

	newReference func() string
}

func NewService(cart CartReader, sink FormSink) *Service {
	return &Service{
		Cart:         cart,
		Sink:         sink,
		newReference: uuid.NewString,
	}
}

func (s *Service) Quote(ctx context.Context) (domain.Quote, error) {
	items, err := s.Cart.GetCart(ctx)
	if err != nil {
		return domain.Quote{}, err
	}
	if len(items) == 0 {
		return domain.Quote{}, ErrEmptyCart
	}

	lines := make([]domain.QuoteLine, 0, len(items))
	total := domain.Money{Currency: items[0].Currency}
	for _, it := range items {
		if it.Quantity <= 0 {
			return domain.Quote{}, fmt.Errorf("quantity must be greater than zero: %s=%d", it.Code, it.Quantity)
		}
		lineTotal := it.UnitPrice.Mul(decimal.NewFromInt(it.Quantity))
		lines = append(lines, domain.QuoteLine{
			Code:      it.Code,
			Name:      it.Name,
			Series:    it.Series,
			Quantity:  it.Quantity,
			UnitPrice: domain.Money{Currency: it.Currency, Amount: it.UnitPrice},
			LineTotal: domain.Money{Currency: it.Currency, Amount: lineTotal},
		})
		total.Amount = total.Amount.Add(lineTotal)
	}

	return domain.Quote{Lines: lines, Total: total}, nil
}

// Prefill builds the order form from the cart. An empty cart is refused
// with ErrEmptyCart.
func (s *Service) Prefill(ctx context.Context) (domain.OrderForm, error) {
	q, err := s.Quote(ctx)
	if err != nil {
		return domain.OrderForm{}, err
	}

	records := make([]domain.OrderRecord, 0, len(q.Lines))
	for _, ln := range q.Lines {
		records = append(records, domain.OrderRecord{
			Code:   ln.Code,
			Name:   ln.Name,
			Series: ln.Series,
			Price:  json.Number(ln.UnitPrice.Amount.String()),
			Qty:    ln.Quantity,
		})
	}

	items, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return domain.OrderForm{}, fmt.Errorf("encode order items: %w", err)
	}

	return domain.OrderForm{
		Reference: s.newReference(),
		Items:     string(items),
		Total:     q.Total.String(),
	}, nil
}

// Submit prefills the form and hands it to the configured sink.
func (s *Service) Submit(ctx context.Context) (domain.OrderForm, error) {
	if s.Sink == nil {
		return domain.OrderForm{}, ErrNoSink
	}
	form, err := s.Prefill(ctx)
	if err != nil {
		return domain.OrderForm{}, err
	}
	if err := s.Sink.Submit(ctx, form); err != nil {
		return domain.OrderForm{}, fmt.Errorf("hand off order form: %w", err)
	}
	return form, nil
}
