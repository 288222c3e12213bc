// internal/store/errors.go
package store

import "errors"

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrSessionNotFound   = errors.New("session not found")
)
