package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Money keeps the exact catalog amount; String rounds to cents.
type Money struct {
	Currency string
	Amount   decimal.Decimal
}

// String renders the form total, e.g. "$15.00".
func (m Money) String() string {
	fixed := m.Amount.StringFixed(2)
	if m.Currency == "" || m.Currency == "USD" {
		return "$" + fixed
	}
	return fixed + " " + m.Currency
}

type QuoteLine struct {
	Code      string
	Name      string
	Series    string
	Quantity  int64
	UnitPrice Money
	LineTotal Money
}

type Quote struct {
	Lines []QuoteLine
	Total Money
}

// OrderRecord is one entry of the items field handed to the order form.
type OrderRecord struct {
	Code   string      `json:"code"`
	Name   string      `json:"name"`
	Series string      `json:"series,omitempty"`
	Price  json.Number `json:"price"`
	Qty    int64       `json:"qty"`
}

// OrderForm carries the two form fields plus a reference for the prefill.
type OrderForm struct {
	Reference string `json:"reference"`
	Items     string `json:"items"`
	Total     string `json:"total"`
}
