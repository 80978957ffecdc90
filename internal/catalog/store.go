// Package catalog holds the in-memory product catalog and is the single
// owner of stock mutation during order processing.
package catalog

import (
	"sort"
	"sync"

	"github.com/DarlanCavalcante/tech10/internal/domain"
)

// Store provides safe concurrent access to the product catalog.
type Store struct {
	mu       sync.RWMutex
	products map[int64]*domain.Product
	nextID   int64
}

// NewStore creates a catalog pre-populated with the given products.
// The product id counter continues after the highest seeded id.
func NewStore(seed ...domain.Product) *Store {
	s := &Store{
		products: make(map[int64]*domain.Product, len(seed)),
		nextID:   1,
	}
	for _, p := range seed {
		p := p
		s.products[p.ID] = &p
		if p.ID >= s.nextID {
			s.nextID = p.ID + 1
		}
	}
	return s
}

// Get returns a copy of the product with the given id.
func (s *Store) Get(id int64) (domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return domain.Product{}, ErrProductNotFound
	}
	return *p, nil
}

// List returns all products in ascending id order.
func (s *Store) List() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Create adds a new product, assigning it the next sequential id.
func (s *Store) Create(p domain.Product) domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.nextID
	s.nextID++
	s.products[p.ID] = &p
	return p
}

// ProductPatch carries the fields of a partial product update. Nil fields
// are left untouched.
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *float64
	Image       *string
	Stock       *int
}

// Update applies a partial update and returns the updated product.
// Empty name/image and non-positive price are ignored rather than
// applied; stock updates below zero are ignored to keep the
// never-negative invariant.
func (s *Store) Update(id int64, patch ProductPatch) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return domain.Product{}, ErrProductNotFound
	}
	if patch.Name != nil && *patch.Name != "" {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil && *patch.Price > 0 {
		p.Price = *patch.Price
	}
	if patch.Image != nil && *patch.Image != "" {
		p.Image = *patch.Image
	}
	if patch.Stock != nil && *patch.Stock >= 0 {
		p.Stock = *patch.Stock
	}
	return *p, nil
}

// Delete removes a product from the catalog.
func (s *Store) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return ErrProductNotFound
	}
	delete(s.products, id)
	return nil
}

// DecrementStock atomically takes stock for a whole order. It is the only
// stock mutator reachable from order processing.
//
// First pass: every item is validated in request order, counting repeated
// product ids cumulatively. Second pass: stock is decremented. A failure
// on any item leaves every product untouched. Returns pre-decrement
// product snapshots, one per requested item in request order.
func (s *Store) DecrementStock(items []domain.ItemRequest) ([]domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	need := make(map[int64]int, len(items))
	snapshots := make([]domain.Product, 0, len(items))
	for _, item := range items {
		p, ok := s.products[item.ProductID]
		if !ok {
			return nil, &ProductNotFoundError{ProductID: item.ProductID}
		}
		need[item.ProductID] += item.Quantity
		if p.Stock < need[item.ProductID] {
			return nil, &InsufficientStockError{ProductName: p.Name}
		}
		snapshots = append(snapshots, *p)
	}

	for id, qty := range need {
		s.products[id].Stock -= qty
	}
	return snapshots, nil
}
