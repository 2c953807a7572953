package cart

import (
	"context"
	"errors"
	"sync"

	"github.com/georgemunganga/printa-storefront/internal/metrics"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrQuantityTooLow is returned when an operation asks for a quantity
// below one.
var ErrQuantityTooLow = errors.New("quantity must be at least 1")

// Store is the sole mutator of one cart's state. Every operation mutates
// the in-memory item list, recomputes the derived totals from the full
// list, persists the snapshot, and returns. The in-memory state stays
// authoritative for the session: persistence write failures are logged
// and ignored.
type Store struct {
	cartID  string
	repo    Repository
	logger  *logrus.Entry
	metrics *metrics.Metrics

	mu     sync.Mutex
	items  []LineItem
	totals Totals
}

// NewStore hydrates a store from the repository. A missing or corrupt
// snapshot seeds an empty cart; hydration never fails and is never
// surfaced to the shopper.
func NewStore(ctx context.Context, cartID string, repo Repository, logger *logrus.Logger, m *metrics.Metrics) *Store {
	entry := logger.WithField("cart_id", cartID)
	items, err := repo.Load(ctx, cartID)
	if err != nil {
		entry.WithError(err).Warn("cart snapshot unreadable, starting empty")
		items = nil
	}
	return &Store{
		cartID:  cartID,
		repo:    repo,
		logger:  entry,
		metrics: m,
		items:   items,
		totals:  computeTotals(items),
	}
}

// AddItem merges the candidate into an existing slot when a non-custom item
// with the same identity tuple is already present, and appends a new slot
// otherwise. Stock is advisory; the store never clamps quantity against it.
func (s *Store) AddItem(ctx context.Context, item LineItem) error {
	if item.Quantity < 1 {
		return ErrQuantityTooLow
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}

	op := "add"
	if i := mergeTarget(s.items, item); i >= 0 {
		s.items[i].Quantity += item.Quantity
		s.items[i].StockHint = item.StockHint // latest hint wins
		op = "merge"
	} else {
		s.items = append(s.items, item)
	}

	s.commit(ctx, op)
	return nil
}

// RemoveItem deletes the slot with the given ID. Removing an ID that is not
// present is a no-op.
func (s *Store) RemoveItem(ctx context.Context, id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]LineItem, 0, len(s.items))
	for _, it := range s.items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(s.items) {
		return
	}

	s.items = kept
	s.commit(ctx, "remove")
}

// UpdateQuantity overwrites the quantity of the non-custom slot matching the
// identity tuple. A key matching no slot is a no-op. The caller is expected
// to bounds-check against stock before calling; the store only enforces the
// floor.
func (s *Store) UpdateQuantity(ctx context.Context, key ItemKey, quantity int) error {
	if quantity < 1 {
		return ErrQuantityTooLow
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, it := range s.items {
		if !it.IsCustomOrder && it.Key() == key {
			s.items[i].Quantity = quantity
			s.commit(ctx, "update")
			return nil
		}
	}
	return nil
}

// Clear empties the cart and removes the persisted snapshot entirely, rather
// than persisting an empty list, so a fresh session starts with no artifact.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.totals = Totals{}
	if err := s.repo.Delete(ctx, s.cartID); err != nil {
		s.logger.WithError(err).Error("cart snapshot delete failed")
	}
	s.metrics.CartOperation("clear")
}

// Items returns a copy of the ordered line-item list.
func (s *Store) Items() []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]LineItem, len(s.items))
	copy(items, s.items)
	return items
}

// Totals returns the current derived aggregates.
func (s *Store) Totals() Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totals
}

// Snapshot returns the item list and totals as one consistent read.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]LineItem, len(s.items))
	copy(items, s.items)
	return Snapshot{CartID: s.cartID, Items: items, Totals: s.totals}
}

// commit recomputes totals from the full list and writes the snapshot.
// Callers hold s.mu.
func (s *Store) commit(ctx context.Context, op string) {
	s.totals = computeTotals(s.items)
	s.metrics.CartOperation(op)
	if err := s.repo.Save(ctx, s.cartID, s.items); err != nil {
		s.logger.WithError(err).Error("cart snapshot write failed")
	}
}
