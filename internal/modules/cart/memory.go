package cart

import (
	"context"
	"sync"
)

type memoryRepository struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// NewMemoryRepository keeps snapshots in process memory. Used by tests and
// by deployments that treat carts as ephemeral (CART_STORAGE=memory). It
// round-trips items through the same serialized form as the Postgres
// repository so both behave identically.
func NewMemoryRepository() Repository {
	return &memoryRepository{slots: make(map[string][]byte)}
}

func (r *memoryRepository) Load(_ context.Context, cartID string) ([]LineItem, error) {
	r.mu.RLock()
	payload, ok := r.slots[cartID]
	r.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	return decodeSnapshot(payload)
}

func (r *memoryRepository) Save(_ context.Context, cartID string, items []LineItem) error {
	payload, err := encodeSnapshot(items)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.slots[cartID] = payload
	r.mu.Unlock()
	return nil
}

func (r *memoryRepository) Delete(_ context.Context, cartID string) error {
	r.mu.Lock()
	delete(r.slots, cartID)
	r.mu.Unlock()
	return nil
}
