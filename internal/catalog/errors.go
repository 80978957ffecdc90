package catalog

import (
	"errors"
	"fmt"
)

// Common errors returned by the catalog store
var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ProductNotFoundError reports which product id an order referenced but
// the catalog does not have. Its message is the API wire message.
type ProductNotFoundError struct {
	ProductID int64
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("Produto %d não encontrado", e.ProductID)
}

func (e *ProductNotFoundError) Unwrap() error { return ErrProductNotFound }

// InsufficientStockError reports which product could not cover the
// requested quantity. Its message is the API wire message.
type InsufficientStockError struct {
	ProductName string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Estoque insuficiente para %s", e.ProductName)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }
