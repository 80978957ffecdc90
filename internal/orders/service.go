package orders

import (
	"context"
	"time"

	"github.com/DarlanCavalcante/tech10/internal/catalog"
	"github.com/DarlanCavalcante/tech10/internal/domain"
)

// Service is the order committer: the only path that turns an order
// request into stock mutation and a stored order.
type Service struct {
	catalog *catalog.Store
	orders  *Store
	now     func() time.Time
}

// NewService creates the committer over the given catalog and order store.
func NewService(catalog *catalog.Store, orders *Store) *Service {
	return &Service{
		catalog: catalog,
		orders:  orders,
		now:     time.Now,
	}
}

// CreateOrder validates the request, atomically decrements stock for
// every item and stores the resulting order. All-or-nothing: any
// validation failure leaves stock, the order list and the id counter
// untouched.
func (s *Service) CreateOrder(ctx context.Context, req domain.OrderRequest) (domain.Order, error) {
	if req.CustomerName == "" || req.CustomerEmail == "" || len(req.Items) == 0 {
		return domain.Order{}, ErrIncompleteData
	}
	for _, item := range req.Items {
		if item.ProductID <= 0 || item.Quantity <= 0 {
			return domain.Order{}, ErrIncompleteData
		}
	}

	// Validation against live stock and the decrement happen inside one
	// catalog critical section, so two concurrent orders can never both
	// pass the check for the same unit of stock.
	snapshots, err := s.catalog.DecrementStock(req.Items)
	if err != nil {
		return domain.Order{}, err
	}

	items := make([]domain.OrderItem, len(req.Items))
	var total float64
	for i, item := range req.Items {
		p := snapshots[i]
		subtotal := p.Price * float64(item.Quantity)
		items[i] = domain.OrderItem{
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    item.Quantity,
			Price:       p.Price,
			Subtotal:    subtotal,
		}
		total += subtotal
	}

	order := domain.Order{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Items:         items,
		Total:         total,
		Status:        domain.StatusPending,
		CreatedAt:     s.now(),
	}
	return s.orders.Append(order), nil
}
