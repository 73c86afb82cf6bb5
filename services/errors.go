package services

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("resource not found")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInvalidQuantity   = errors.New("quantity must be greater than zero")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrForbidden         = errors.New("access denied")
	ErrInvalidTransition = errors.New("invalid order status transition")
)

// InsufficientStockError identifies the product that could not be
// fulfilled. It matches ErrInsufficientStock under errors.Is.
type InsufficientStockError struct {
	ProductID   uint
	ProductName string
	Requested   int
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %q (id %d): requested %d, available %d",
		e.ProductName, e.ProductID, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}
