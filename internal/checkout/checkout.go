// Package checkout turns the local cart into a submitted order. The
// submission is the one point where client state meets authoritative
// server stock: the server validates every line against the live
// catalog, so a stale cart ceiling can never oversell.
package checkout

import (
	"context"
	"errors"

	"github.com/DarlanCavalcante/tech10/internal/cart"
	"github.com/DarlanCavalcante/tech10/internal/domain"
)

var ErrEmptyCart = errors.New("cart is empty, nothing to checkout")

// API is the slice of the storefront client the flow needs.
type API interface {
	CreateOrder(ctx context.Context, req domain.OrderRequest) (domain.Order, error)
}

// Flow submits the cart's contents as an order.
type Flow struct {
	api  API
	cart *cart.Cart
}

func NewFlow(api API, cart *cart.Cart) *Flow {
	return &Flow{api: api, cart: cart}
}

// Submit sends the cart to the committer. On success the cart is
// cleared and the created order returned; on any failure the cart is
// left untouched and the error surfaced as-is.
func (f *Flow) Submit(ctx context.Context, customerName, customerEmail string) (domain.Order, error) {
	if f.cart.IsEmpty() {
		return domain.Order{}, ErrEmptyCart
	}

	lines := f.cart.Lines()
	items := make([]domain.ItemRequest, len(lines))
	for i, l := range lines {
		items[i] = domain.ItemRequest{ProductID: l.ProductID, Quantity: l.Quantity}
	}

	order, err := f.api.CreateOrder(ctx, domain.OrderRequest{
		CustomerName:  customerName,
		CustomerEmail: customerEmail,
		Items:         items,
	})
	if err != nil {
		return domain.Order{}, err
	}

	if err := f.cart.Clear(); err != nil {
		// the order is committed; report the storage failure alongside it
		return order, err
	}
	return order, nil
}
