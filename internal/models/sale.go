// internal/models/sale.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is a snapshot of a product at the time it entered the cart,
// plus the requested quantity. Price and category are copies, not live
// references; repricing the catalog never changes a recorded sale.
type CartItem struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
}

// Subtotal returns price x quantity for this line.
func (i CartItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}

// Sale is an immutable ledger entry created exactly once per checkout.
type Sale struct {
	ID        uuid.UUID  `json:"id"`
	Items     []CartItem `json:"items"`
	Total     float64    `json:"total"`
	Date      time.Time  `json:"date"`
	CashierID uuid.UUID  `json:"cashier_id"`
}
