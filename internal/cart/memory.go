package cart

import (
	"context"
	"sync"
)

// MemoryBackend keeps the payload in process memory. Used by tests and as a
// degraded fallback when no Redis is configured.
type MemoryBackend struct {
	mu       sync.Mutex
	payload  []byte
	stored   bool
	watchers []chan struct{}
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

func (b *MemoryBackend) Load(ctx context.Context) ([]byte, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.stored {
		return nil, false, nil
	}
	out := make([]byte, len(b.payload))
	copy(out, b.payload)
	return out, true, nil
}

func (b *MemoryBackend) Save(ctx context.Context, payload []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.payload = make([]byte, len(payload))
	copy(b.payload, payload)
	b.stored = true

	for _, w := range b.watchers {
		select {
		case w <- struct{}{}:
		default:
		}
	}
	return nil
}

func (b *MemoryBackend) Watch(ctx context.Context) <-chan struct{} {
	ch := make(chan struct{}, 1)

	b.mu.Lock()
	b.watchers = append(b.watchers, ch)
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		for i, w := range b.watchers {
			if w == ch {
				b.watchers = append(b.watchers[:i], b.watchers[i+1:]...)
				break
			}
		}
		b.mu.Unlock()
		close(ch)
	}()

	return ch
}

// SeedRaw overwrites the stored payload without going through Save. Tests
// use it to simulate a corrupt or externally written cart.
func (b *MemoryBackend) SeedRaw(payload []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.payload = append([]byte(nil), payload...)
	b.stored = true
}
