package inventory

import (
	"errors"
	"fmt"
)

var (
	ErrItemNotFound      = errors.New("inventory item not found")
	ErrContention        = errors.New("inventory item is being modified by another attempt")
	ErrOutOfStock        = errors.New("out of stock")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrStockInvariant    = errors.New("reserved stock exceeds current stock")
)

// ShortageError reports how much is left when a request cannot be covered.
type ShortageError struct {
	Available int
	Requested int
}

func (e *ShortageError) Error() string {
	return fmt.Sprintf("insufficient stock: requested %d, available %d", e.Requested, e.Available)
}

func (e *ShortageError) Unwrap() error {
	return ErrInsufficientStock
}
