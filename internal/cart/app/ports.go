package app

import "context"

// Slot is a durable key-value store holding the serialized cart, the
// equivalent of a browser's local storage.
type Slot interface {
	// Get reports ok=false when nothing is stored under key.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
}
