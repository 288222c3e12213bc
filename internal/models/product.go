// internal/models/product.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog entry. Owned exclusively by the catalog store;
// stock only changes through UpdateProduct or ProcessSale.
type Product struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Price     float64   `json:"price"`
	Stock     int       `json:"stock"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
