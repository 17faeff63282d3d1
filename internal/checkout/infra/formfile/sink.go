// Package formfile hands prefilled order forms to an external submitter
// by writing them to a JSON file.
package formfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dwikikusuma/luckybox/internal/checkout/domain"
)

type Sink struct {
	path string
}

func NewSink(path string) *Sink {
	return &Sink{path: path}
}

func (s *Sink) Submit(ctx context.Context, form domain.OrderForm) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(form, "", "  ")
	if err != nil {
		return fmt.Errorf("encode order form: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create form dir: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("write order form: %w", err)
	}
	return nil
}
