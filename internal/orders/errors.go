package orders

import "errors"

var (
	// ErrIncompleteData means the order request is missing required
	// fields or carries malformed items.
	ErrIncompleteData = errors.New("incomplete order data")

	// ErrOrderNotFound indicates the requested order does not exist.
	ErrOrderNotFound = errors.New("order not found")
)
