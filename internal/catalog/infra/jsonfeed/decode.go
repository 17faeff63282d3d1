// Package jsonfeed reads the static product feed: a JSON array of
// {code, name, series?, price, image} records.
package jsonfeed

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"reflect"

	"github.com/dwikikusuma/luckybox/internal/catalog/domain"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type productRecord struct {
	Code   string           `json:"code" validate:"required"`
	Name   string           `json:"name" validate:"required"`
	Series string           `json:"series"`
	Price  *decimal.Decimal `json:"price" validate:"required,gte=0"`
	Image  string           `json:"image"`
}

// Decoder turns feed bytes into products. Malformed JSON is an error;
// records that fail validation are skipped.
type Decoder struct {
	validate *validator.Validate
	currency string
	log      *slog.Logger
}

func NewDecoder(currency string, log *slog.Logger) *Decoder {
	if currency == "" {
		currency = domain.DefaultCurrency
	}
	if log == nil {
		log = slog.Default()
	}

	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	return &Decoder{validate: v, currency: currency, log: log}
}

func (d *Decoder) Decode(r io.Reader) ([]domain.Product, error) {
	var records []productRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode product feed: %w", err)
	}

	out := make([]domain.Product, 0, len(records))
	for i, rec := range records {
		if err := d.validate.Struct(rec); err != nil {
			d.log.Warn("skipping invalid product record",
				slog.Int("index", i),
				slog.String("code", rec.Code),
				slog.Any("err", err),
			)
			continue
		}
		out = append(out, domain.Product{
			Code:   rec.Code,
			Name:   rec.Name,
			Series: rec.Series,
			Price:  domain.NewMoney(d.currency, *rec.Price),
			Image:  rec.Image,
		})
	}
	return out, nil
}
