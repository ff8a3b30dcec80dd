// Package cart holds the cart store and the pricing calculator.
package cart

import (
	"sync"

	"platter/internal/domain/constants"
	"platter/internal/domain/entity"
	"platter/internal/errors"
)

// Option configures a Store.
type Option func(*Store)

// WithMaxLines caps the number of distinct lines. Zero means unlimited.
func WithMaxLines(n int) Option {
	return func(s *Store) {
		s.maxLines = n
	}
}

// Store is the authoritative set of lines for one session. All methods are
// safe for concurrent use; each mutation is applied atomically.
type Store struct {
	mu         sync.RWMutex
	checkoutMu sync.Mutex
	lines      []entity.LineItem
	index      map[string]int
	maxLines   int
}

// NewStore creates an empty cart store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		index: make(map[string]int),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// AddLine merges desc into the line with the same LineID, or appends it as a
// new line. desc.Quantity is the amount to add. A merge that would take the
// line past constants.MaxLineQuantity fails with ErrQuantityLimit.
func (s *Store) AddLine(desc entity.LineItem) error {
	_, err := s.Add(desc)

	return err
}

// Add is AddLine returning a copy of the resulting line.
func (s *Store) Add(desc entity.LineItem) (entity.LineItem, error) {
	if desc.LineID == "" || desc.Quantity <= 0 || desc.Quantity > constants.MaxLineQuantity || desc.UnitPrice.IsNegative() {
		return entity.LineItem{}, errors.WithStack(ErrInvalidLine)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if i, ok := s.index[desc.LineID]; ok {
		if desc.Quantity > constants.MaxLineQuantity-s.lines[i].Quantity {
			return entity.LineItem{}, errors.WithStack(ErrQuantityLimit)
		}
		s.lines[i].Quantity += desc.Quantity

		return s.lines[i].Clone(), nil
	}

	if desc.RestaurantID != "" && len(s.lines) > 0 && s.lines[0].RestaurantID != desc.RestaurantID {
		return entity.LineItem{}, errors.WithStack(ErrRestaurantMismatch)
	}

	if s.maxLines > 0 && len(s.lines) >= s.maxLines {
		return entity.LineItem{}, errors.WithStack(ErrCartFull)
	}

	s.index[desc.LineID] = len(s.lines)
	s.lines = append(s.lines, desc.Clone())

	return desc.Clone(), nil
}

// SetQuantity sets the quantity of a line exactly. A quantity of zero or less
// removes the line; one above constants.MaxLineQuantity is capped. Unknown
// line IDs are ignored.
func (s *Store) SetQuantity(lineID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.setQuantityLocked(lineID, quantity)
}

// AdjustQuantity adds delta to a line's quantity, removing the line when the
// result drops to zero or below and capping it at constants.MaxLineQuantity.
// Unknown line IDs are ignored.
func (s *Store) AdjustQuantity(lineID string, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[lineID]
	if !ok {
		return
	}

	// Stored quantities are within [1, MaxLineQuantity], so neither branch overflows.
	quantity := s.lines[i].Quantity
	if delta >= constants.MaxLineQuantity-quantity {
		quantity = constants.MaxLineQuantity
	} else {
		quantity += delta
	}
	s.setQuantityLocked(lineID, quantity)
}

// LockCheckout serializes checkouts of this cart. Line mutations are not
// blocked. The returned func releases the lock.
func (s *Store) LockCheckout() (unlock func()) {
	s.checkoutMu.Lock()

	return s.checkoutMu.Unlock
}

// RemoveLine deletes a line. Unknown line IDs are ignored.
func (s *Store) RemoveLine(lineID string) {
	s.SetQuantity(lineID, 0)
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	s.index = make(map[string]int)
}

// Snapshot returns a copy of the lines in insertion order.
func (s *Store) Snapshot() []entity.LineItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.LineItem, len(s.lines))
	for i, line := range s.lines {
		out[i] = line.Clone()
	}

	return out
}

// Line returns a copy of a single line.
func (s *Store) Line(lineID string) (entity.LineItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[lineID]
	if !ok {
		return entity.LineItem{}, false
	}

	return s.lines[i].Clone(), true
}

// Len returns the number of distinct lines.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.lines)
}

func (s *Store) setQuantityLocked(lineID string, quantity int) {
	i, ok := s.index[lineID]
	if !ok {
		return
	}

	if quantity > 0 {
		s.lines[i].Quantity = min(quantity, constants.MaxLineQuantity)

		return
	}

	s.lines = append(s.lines[:i], s.lines[i+1:]...)
	delete(s.index, lineID)
	for j := i; j < len(s.lines); j++ {
		s.index[s.lines[j].LineID] = j
	}
}
