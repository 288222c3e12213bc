// internal/services/inventory_service.go
package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/brewline/pos-backend/internal/models"
	"github.com/brewline/pos-backend/internal/store"
	"github.com/brewline/pos-backend/internal/utils"
)

// InventoryService fronts the catalog for the HTTP surface: request
// validation plus the store's CRUD operations.
type InventoryService struct {
	store *store.Store
}

type CreateProductRequest struct {
	Name     string  `json:"name" validate:"required,min=1,max=255"`
	Category string  `json:"category" validate:"required,min=1,max=100"`
	Price    float64 `json:"price" validate:"gte=0"`
	Stock    int     `json:"stock" validate:"gte=0"`
}

type UpdateProductRequest struct {
	Name     string  `json:"name" validate:"required,min=1,max=255"`
	Category string  `json:"category" validate:"required,min=1,max=100"`
	Price    float64 `json:"price" validate:"gte=0"`
	Stock    int     `json:"stock" validate:"gte=0"`
}

func NewInventoryService(st *store.Store) *InventoryService {
	return &InventoryService{store: st}
}

func (s *InventoryService) CreateProduct(req *CreateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	product := s.store.AddProduct(req.Name, req.Category, req.Price, req.Stock)
	return &product, nil
}

func (s *InventoryService) UpdateProduct(id uuid.UUID, req *UpdateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.store.GetProductByID(id)
	if err != nil {
		return nil, err
	}

	existing.Name = req.Name
	existing.Category = req.Category
	existing.Price = req.Price
	existing.Stock = req.Stock

	if err := s.store.UpdateProduct(existing); err != nil {
		return nil, err
	}

	updated, err := s.store.GetProductByID(id)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *InventoryService) DeleteProduct(id uuid.UUID) error {
	return s.store.DeleteProduct(id)
}

func (s *InventoryService) GetProduct(id uuid.UUID) (*models.Product, error) {
	product, err := s.store.GetProductByID(id)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// ListProducts returns the catalog in stable insertion order, optionally
// filtered by category or a case-insensitive name search.
func (s *InventoryService) ListProducts(category, search string) []models.Product {
	products := s.store.Products()
	if category == "" && search == "" {
		return products
	}

	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if category != "" && p.Category != category {
			continue
		}
		if search != "" && !containsFold(p.Name, search) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// LowStock returns products at or below the given threshold.
func (s *InventoryService) LowStock(threshold int) []models.Product {
	var low []models.Product
	for _, p := range s.store.Products() {
		if p.Stock <= threshold {
			low = append(low, p)
		}
	}
	return low
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
