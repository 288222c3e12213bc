// internal/store/store.go
package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/brewline/pos-backend/internal/models"
)

// Store owns the product catalog and the append-only sales ledger. All
// mutations go through its methods; callers never touch the maps directly.
//
// A single mutex covers both collections so that ProcessSale's stock
// decrement and ledger append are observable as one atomic step: no reader
// sees the decrement without the sale, or the sale without the decrement.
type Store struct {
	mu       sync.RWMutex
	products map[uuid.UUID]*models.Product
	order    []uuid.UUID // catalog insertion order, kept stable for views
	sales    []models.Sale
	now      func() time.Time
}

func New() *Store {
	return &Store{
		products: make(map[uuid.UUID]*models.Product),
		now:      time.Now,
	}
}

// AddProduct allocates a fresh identifier, assigns a placeholder image
// reference and inserts the product at the end of the catalog order.
func (s *Store) AddProduct(name, category string, price float64, stock int) models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	p := &models.Product{
		ID:        uuid.New(),
		Name:      name,
		Category:  category,
		Price:     price,
		Stock:     stock,
		ImageURL:  placeholderImageURL(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.products[p.ID] = p
	s.order = append(s.order, p.ID)
	return *p
}

// UpdateProduct replaces the catalog entry matching product.ID.
// Returns ErrProductNotFound for an unknown identifier.
func (s *Store) UpdateProduct(product models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.products[product.ID]
	if !ok {
		return ErrProductNotFound
	}

	product.CreatedAt = existing.CreatedAt
	product.UpdatedAt = s.now()
	if product.ImageURL == "" {
		product.ImageURL = existing.ImageURL
	}
	*existing = product
	return nil
}

// DeleteProduct removes the entry. Returns ErrProductNotFound for an
// unknown identifier; the catalog is untouched in that case.
func (s *Store) DeleteProduct(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return ErrProductNotFound
	}

	delete(s.products, id)
	for i, pid := range s.order {
		if pid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// GetProductByID is a pure lookup.
func (s *Store) GetProductByID(id uuid.UUID) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	return *p, nil
}

// Products returns a copy of the catalog in insertion order.
func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.products[id])
	}
	return out
}

// Sales returns a copy of the ledger in chronological (append) order.
func (s *Store) Sales() []models.Sale {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Sale, len(s.sales))
	copy(out, s.sales)
	return out
}

// ProcessSale decrements stock for every cart item and appends a sale
// record to the ledger in one critical section.
//
// Items whose product has vanished from the catalog are skipped for the
// stock decrement but still contribute their snapshot price to the total.
// An item whose quantity exceeds the available stock rejects the whole
// sale with ErrInsufficientStock before anything is mutated.
func (s *Store) ProcessSale(cart []models.CartItem, cashierID uuid.UUID) (models.Sale, error) {
	if len(cart) == 0 {
		return models.Sale{}, ErrEmptyCart
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Validate before mutating so a rejected sale leaves no trace.
	// Quantities are aggregated per product first; duplicate cart lines
	// for the same product must not pass the stock check one by one.
	requested := make(map[uuid.UUID]int)
	for _, item := range cart {
		requested[item.ProductID] += item.Quantity
	}
	for id, qty := range requested {
		p, ok := s.products[id]
		if !ok {
			continue
		}
		if p.Stock < qty {
			return models.Sale{}, fmt.Errorf("%w: %s has %d left, %d requested",
				ErrInsufficientStock, p.Name, p.Stock, qty)
		}
	}

	now := s.now()
	var total float64
	items := make([]models.CartItem, len(cart))
	copy(items, cart)

	for _, item := range items {
		total += item.Subtotal()
		if p, ok := s.products[item.ProductID]; ok {
			p.Stock -= item.Quantity
			p.UpdatedAt = now
		}
	}

	sale := models.Sale{
		ID:        uuid.New(),
		Items:     items,
		Total:     total,
		Date:      now,
		CashierID: cashierID,
	}
	s.sales = append(s.sales, sale)
	return sale, nil
}

func placeholderImageURL() string {
	return fmt.Sprintf("https://picsum.photos/seed/%s/400/300", uuid.NewString()[:8])
}
