package jsonfeed

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dwikikusuma/luckybox/internal/catalog/domain"
)

type HTTPSource struct {
	url    string
	client *http.Client
	dec    *Decoder
}

func NewHTTPSource(url string, client *http.Client, dec *Decoder) *HTTPSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSource{url: url, client: client, dec: dec}
}

// FetchProducts performs a single GET; there is no retry.
func (s *HTTPSource) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build feed request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch product feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch product feed: unexpected status %d", resp.StatusCode)
	}

	return s.dec.Decode(resp.Body)
}
