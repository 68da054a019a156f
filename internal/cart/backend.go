package cart

import "context"

// Backend is the durable storage behind one cart. The whole cart is written
// as a single JSON array under a fixed key; there is no per-item write.
// Store depends ONLY on this interface.
type Backend interface {
	// Load returns the raw payload and whether anything was stored.
	Load(ctx context.Context) ([]byte, bool, error)

	// Save overwrites the stored payload. Last writer wins.
	Save(ctx context.Context, payload []byte) error

	// Watch delivers a best-effort signal whenever another writer saves.
	// The channel is closed when ctx ends.
	Watch(ctx context.Context) <-chan struct{}
}
