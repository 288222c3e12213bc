// internal/services/sales_service.go
package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/brewline/pos-backend/internal/models"
	"github.com/brewline/pos-backend/internal/store"
	"github.com/brewline/pos-backend/internal/utils"
)

// SalesService turns checkout requests into ledger entries.
type SalesService struct {
	store *store.Store
}

type CheckoutItem struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
}

type CheckoutRequest struct {
	Items []CheckoutItem `json:"items" validate:"required,min=1,dive"`
}

func NewSalesService(st *store.Store) *SalesService {
	return &SalesService{store: st}
}

// Checkout snapshots the referenced products into cart items at current
// catalog prices, then processes the sale. Pricing is server-side; the
// client only names products and quantities.
func (s *SalesService) Checkout(req *CheckoutRequest, cashierID uuid.UUID) (*models.Sale, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	cart := make([]models.CartItem, 0, len(req.Items))
	for _, item := range req.Items {
		product, err := s.store.GetProductByID(item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("product %s: %w", item.ProductID, err)
		}
		cart = append(cart, models.CartItem{
			ProductID: product.ID,
			Name:      product.Name,
			Category:  product.Category,
			Price:     product.Price,
			Quantity:  item.Quantity,
		})
	}

	sale, err := s.store.ProcessSale(cart, cashierID)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"sale_id":    sale.ID,
		"cashier_id": cashierID,
		"items":      len(sale.Items),
		"total":      sale.Total,
	}).Info("Sale processed")

	return &sale, nil
}

// ListSales returns one page of the ledger, newest first when order is
// "desc" (the default).
func (s *SalesService) ListSales(params utils.PaginationParams) ([]models.Sale, int64) {
	sales := s.store.Sales()

	if params.Order == "desc" {
		reversed := make([]models.Sale, len(sales))
		for i, sale := range sales {
			reversed[len(sales)-1-i] = sale
		}
		sales = reversed
	}

	total := int64(len(sales))
	start, end := utils.PageBounds(params, len(sales))
	return sales[start:end], total
}

// GetSale looks a single ledger entry up by id.
func (s *SalesService) GetSale(id uuid.UUID) (*models.Sale, error) {
	for _, sale := range s.store.Sales() {
		if sale.ID == id {
			return &sale, nil
		}
	}
	return nil, fmt.Errorf("sale %s not found", id)
}
