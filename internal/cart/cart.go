// Package cart implements the shopper's local cart: one line per
// product, quantities capped at the stock last observed from the
// catalog, state persisted through a Storage on every mutation.
package cart

import "errors"

var (
	// ErrStockLimit means the line already holds every unit the catalog
	// reported in stock. Local-only: the server re-checks at checkout.
	ErrStockLimit = errors.New("maximum stock quantity reached")

	// ErrLineNotFound means no line exists for the given product.
	ErrLineNotFound = errors.New("product not in cart")
)

// Line is one product-and-quantity entry. The JSON keys match the cart
// array the browser client persists, so stored carts round-trip.
type Line struct {
	ProductID int64   `json:"id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	MaxStock  int     `json:"maxStock"`
}

// Totals is the cart summary, recomputed on every query.
type Totals struct {
	ItemCount int
	Total     float64
}

// Cart holds the in-progress selection. Not safe for concurrent use:
// the client mutates it from a single goroutine.
type Cart struct {
	storage Storage
	lines   []Line
}

// Load restores a cart from storage. Absent or corrupt stored state
// yields an empty cart; only storage I/O failures are returned.
func Load(storage Storage) (*Cart, error) {
	lines, err := storage.Load()
	if err != nil {
		if !errors.Is(err, ErrCorrupt) {
			return nil, err
		}
		lines = nil
	}
	return &Cart{storage: storage, lines: sanitize(lines)}, nil
}

// sanitize drops stored lines that violate cart invariants: duplicate
// product ids, non-positive quantities, quantities above the recorded
// ceiling.
func sanitize(lines []Line) []Line {
	seen := make(map[int64]bool, len(lines))
	out := make([]Line, 0, len(lines))
	for _, l := range lines {
		if l.Quantity <= 0 || seen[l.ProductID] {
			continue
		}
		if l.MaxStock > 0 && l.Quantity > l.MaxStock {
			l.Quantity = l.MaxStock
		}
		seen[l.ProductID] = true
		out = append(out, l)
	}
	return out
}

// AddItem puts one unit of the product in the cart. maxStock is the
// stock just observed from the catalog; an existing line adopts it as
// its new ceiling. At the ceiling nothing changes and ErrStockLimit is
// reported.
func (c *Cart) AddItem(productID int64, name string, unitPrice float64, maxStock int) error {
	if l := c.find(productID); l != nil {
		if l.Quantity >= maxStock {
			return ErrStockLimit
		}
		l.MaxStock = maxStock
		l.Quantity++
		return c.persist()
	}
	if maxStock < 1 {
		return ErrStockLimit
	}
	c.lines = append(c.lines, Line{
		ProductID: productID,
		Name:      name,
		UnitPrice: unitPrice,
		Quantity:  1,
		MaxStock:  maxStock,
	})
	return c.persist()
}

// Increment raises a line's quantity by one, up to its ceiling.
func (c *Cart) Increment(productID int64) error {
	l := c.find(productID)
	if l == nil {
		return ErrLineNotFound
	}
	if l.Quantity >= l.MaxStock {
		return ErrStockLimit
	}
	l.Quantity++
	return c.persist()
}

// Decrement lowers a line's quantity by one, removing the line when it
// reaches zero.
func (c *Cart) Decrement(productID int64) error {
	l := c.find(productID)
	if l == nil {
		return ErrLineNotFound
	}
	l.Quantity--
	if l.Quantity == 0 {
		c.drop(productID)
	}
	return c.persist()
}

// Remove drops the product's line unconditionally. Removing an absent
// product is a no-op.
func (c *Cart) Remove(productID int64) error {
	c.drop(productID)
	return c.persist()
}

// Clear empties the cart. Idempotent.
func (c *Cart) Clear() error {
	c.lines = nil
	return c.persist()
}

// Totals recomputes the item count and total from the lines.
func (c *Cart) Totals() Totals {
	var t Totals
	for _, l := range c.lines {
		t.ItemCount += l.Quantity
		t.Total += l.UnitPrice * float64(l.Quantity)
	}
	return t
}

// Lines returns a copy of the cart's lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c *Cart) find(productID int64) *Line {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			return &c.lines[i]
		}
	}
	return nil
}

func (c *Cart) drop(productID int64) {
	out := c.lines[:0]
	for _, l := range c.lines {
		if l.ProductID != productID {
			out = append(out, l)
		}
	}
	c.lines = out
}

func (c *Cart) persist() error {
	return c.storage.Save(c.lines)
}
