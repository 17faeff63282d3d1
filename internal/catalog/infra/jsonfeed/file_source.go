package jsonfeed

import (
	"context"
	"fmt"
	"os"

	"github.com/dwikikusuma/luckybox/internal/catalog/domain"
)

type FileSource struct {
	path string
	dec  *Decoder
}

func NewFileSource(path string, dec *Decoder) *FileSource {
	return &FileSource{path: path, dec: dec}
}

func (s *FileSource) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open product feed: %w", err)
	}
	defer f.Close()

	return s.dec.Decode(f)
}
