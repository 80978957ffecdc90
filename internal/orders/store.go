// Package orders holds committed orders and the order-creation
// transaction that validates a request and takes stock atomically.
package orders

import (
	"sync"

	"github.com/DarlanCavalcante/tech10/internal/domain"
)

// Store keeps committed orders in memory, in creation order. Order ids
// start at 1 and only advance when an order is actually stored, so a
// failed request never consumes an id.
type Store struct {
	mu     sync.RWMutex
	orders []domain.Order
	index  map[int64]int
	nextID int64
}

// NewStore returns an empty order store.
func NewStore() *Store {
	return &Store{
		index:  make(map[int64]int),
		nextID: 1,
	}
}

// Append assigns the next id to the order and stores it.
func (s *Store) Append(o domain.Order) domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	o.ID = s.nextID
	s.nextID++
	s.index[o.ID] = len(s.orders)
	s.orders = append(s.orders, o)
	return o
}

// Get retrieves an order by id.
func (s *Store) Get(id int64) (domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return domain.Order{}, ErrOrderNotFound
	}
	return s.orders[i], nil
}

// List returns all orders in creation order.
func (s *Store) List() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// UpdateStatus sets the order's status and returns the updated order.
// Status values are not validated here: transitions belong to the
// order-management side.
func (s *Store) UpdateStatus(id int64, status domain.OrderStatus) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return domain.Order{}, ErrOrderNotFound
	}
	s.orders[i].Status = status
	return s.orders[i], nil
}
