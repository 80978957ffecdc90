package orders

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DarlanCavalcante/tech10/internal/catalog"
	"github.com/DarlanCavalcante/tech10/internal/domain"
)

func setupService() (*Service, *catalog.Store, *Store) {
	cat := catalog.NewStore(
		domain.Product{ID: 1, Name: "Smartphone XYZ", Price: 1999.99, Stock: 10},
		domain.Product{ID: 2, Name: "Notebook ABC", Price: 3499.99, Stock: 5},
	)
	orders := NewStore()
	return NewService(cat, orders), cat, orders
}

func validRequest() domain.OrderRequest {
	return domain.OrderRequest{
		CustomerName:  "Maria Silva",
		CustomerEmail: "maria@example.com",
		Items:         []domain.ItemRequest{{ProductID: 2, Quantity: 2}},
	}
}

func TestCreateOrder_Success(t *testing.T) {
	svc, cat, _ := setupService()

	order, err := svc.CreateOrder(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), order.ID)
	assert.Equal(t, "Maria Silva", order.CustomerName)
	assert.Equal(t, domain.StatusPending, order.Status)
	assert.WithinDuration(t, time.Now(), order.CreatedAt, time.Minute)

	require.Len(t, order.Items, 1)
	item := order.Items[0]
	assert.Equal(t, "Notebook ABC", item.ProductName)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, 3499.99, item.Price)
	assert.Equal(t, 6999.98, item.Subtotal)
	assert.Equal(t, 6999.98, order.Total)

	p, _ := cat.Get(2)
	assert.Equal(t, 3, p.Stock)
}

func TestCreateOrder_TotalSumsSubtotals(t *testing.T) {
	svc, _, _ := setupService()

	req := validRequest()
	req.Items = []domain.ItemRequest{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 1},
	}
	order, err := svc.CreateOrder(context.Background(), req)
	require.NoError(t, err)

	var sum float64
	for _, item := range order.Items {
		assert.Equal(t, item.Price*float64(item.Quantity), item.Subtotal)
		sum += item.Subtotal
	}
	assert.Equal(t, sum, order.Total)
}

func TestCreateOrder_IncompleteData(t *testing.T) {
	svc, _, _ := setupService()

	cases := map[string]func(*domain.OrderRequest){
		"missing name":      func(r *domain.OrderRequest) { r.CustomerName = "" },
		"missing email":     func(r *domain.OrderRequest) { r.CustomerEmail = "" },
		"no items":          func(r *domain.OrderRequest) { r.Items = nil },
		"zero quantity":     func(r *domain.OrderRequest) { r.Items[0].Quantity = 0 },
		"negative quantity": func(r *domain.OrderRequest) { r.Items[0].Quantity = -1 },
		"bad product id":    func(r *domain.OrderRequest) { r.Items[0].ProductID = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := validRequest()
			mutate(&req)
			_, err := svc.CreateOrder(context.Background(), req)
			assert.ErrorIs(t, err, ErrIncompleteData)
		})
	}
}

func TestCreateOrder_InsufficientStock(t *testing.T) {
	svc, cat, store := setupService()

	req := validRequest()
	req.Items = []domain.ItemRequest{{ProductID: 2, Quantity: 6}}
	_, err := svc.CreateOrder(context.Background(), req)
	assert.ErrorIs(t, err, catalog.ErrInsufficientStock)

	p, _ := cat.Get(2)
	assert.Equal(t, 5, p.Stock)
	assert.Empty(t, store.List())
}

func TestCreateOrder_ProductNotFound(t *testing.T) {
	svc, _, _ := setupService()

	req := validRequest()
	req.Items = []domain.ItemRequest{{ProductID: 999, Quantity: 1}}
	_, err := svc.CreateOrder(context.Background(), req)
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)
}

func TestCreateOrder_FailureDoesNotConsumeID(t *testing.T) {
	svc, _, _ := setupService()
	ctx := context.Background()

	bad := validRequest()
	bad.Items = []domain.ItemRequest{{ProductID: 2, Quantity: 100}}
	_, err := svc.CreateOrder(ctx, bad)
	require.Error(t, err)

	order, err := svc.CreateOrder(ctx, validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(1), order.ID)
}

func TestCreateOrder_PartialFailureLeavesAllStock(t *testing.T) {
	svc, cat, _ := setupService()

	req := validRequest()
	req.Items = []domain.ItemRequest{
		{ProductID: 1, Quantity: 5},
		{ProductID: 2, Quantity: 6},
	}
	_, err := svc.CreateOrder(context.Background(), req)
	assert.ErrorIs(t, err, catalog.ErrInsufficientStock)

	p, _ := cat.Get(1)
	assert.Equal(t, 10, p.Stock)
	p, _ = cat.Get(2)
	assert.Equal(t, 5, p.Stock)
}
