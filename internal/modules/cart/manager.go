package cart

import (
	"context"
	"sync"

	"github.com/georgemunganga/printa-storefront/internal/metrics"
	"github.com/sirupsen/logrus"
)

// Manager hands out one Store per cart ID so that all operations on a cart
// go through the same aggregate. Stores are hydrated lazily on first touch
// and kept for the life of the process.
type Manager struct {
	repo    Repository
	logger  *logrus.Logger
	metrics *metrics.Metrics

	mu     sync.Mutex
	stores map[string]*Store
}

// NewManager creates a store manager over the given snapshot repository.
func NewManager(repo Repository, logger *logrus.Logger, m *metrics.Metrics) *Manager {
	return &Manager{
		repo:    repo,
		logger:  logger,
		metrics: m,
		stores:  make(map[string]*Store),
	}
}

// Store returns the aggregate for the given cart, hydrating it from the
// repository on first use.
func (m *Manager) Store(ctx context.Context, cartID string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.stores[cartID]; ok {
		return s
	}
	s := NewStore(ctx, cartID, m.repo, m.logger, m.metrics)
	m.stores[cartID] = s
	return s
}
