package cart

import "errors"

// Storage persists the serialized cart lines under a single fixed key.
type Storage interface {
	Load() ([]Line, error)
	Save(lines []Line) error
}

// ErrCorrupt means the persisted cart could not be decoded. Load
// recovers from it by starting with an empty cart.
var ErrCorrupt = errors.New("stored cart is corrupt")
