// internal/services/sales_service_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewline/pos-backend/internal/store"
	"github.com/brewline/pos-backend/internal/utils"
)

func TestCheckout(t *testing.T) {
	st := store.New()
	brew := st.AddProduct("Nitro Cold Brew", "Coffee", 5.50, 30)
	svc := NewSalesService(st)
	cashier := uuid.New()

	sale, err := svc.Checkout(&CheckoutRequest{
		Items: []CheckoutItem{{ProductID: brew.ID, Quantity: 2}},
	}, cashier)
	require.NoError(t, err)

	assert.Equal(t, 11.00, sale.Total)
	assert.Equal(t, cashier, sale.CashierID)
	require.Len(t, sale.Items, 1)

	// The line item is priced from the catalog, not the request.
	assert.Equal(t, "Nitro Cold Brew", sale.Items[0].Name)
	assert.Equal(t, "Coffee", sale.Items[0].Category)
	assert.Equal(t, 5.50, sale.Items[0].Price)

	got, err := st.GetProductByID(brew.ID)
	require.NoError(t, err)
	assert.Equal(t, 28, got.Stock)
}

func TestCheckoutUnknownProduct(t *testing.T) {
	st := store.New()
	svc := NewSalesService(st)

	_, err := svc.Checkout(&CheckoutRequest{
		Items: []CheckoutItem{{ProductID: uuid.New(), Quantity: 1}},
	}, uuid.New())
	assert.ErrorIs(t, err, store.ErrProductNotFound)
	assert.Empty(t, st.Sales())
}

func TestCheckoutInsufficientStock(t *testing.T) {
	st := store.New()
	muffin := st.AddProduct("Blueberry Muffin", "Pastry", 3.50, 5)
	svc := NewSalesService(st)

	_, err := svc.Checkout(&CheckoutRequest{
		Items: []CheckoutItem{{ProductID: muffin.ID, Quantity: 6}},
	}, uuid.New())
	assert.ErrorIs(t, err, store.ErrInsufficientStock)

	got, _ := st.GetProductByID(muffin.ID)
	assert.Equal(t, 5, got.Stock)
	assert.Empty(t, st.Sales())
}

func TestCheckoutValidation(t *testing.T) {
	st := store.New()
	p := st.AddProduct("Espresso", "Coffee", 3.00, 100)
	svc := NewSalesService(st)

	_, err := svc.Checkout(&CheckoutRequest{}, uuid.New())
	assert.Error(t, err)

	_, err = svc.Checkout(&CheckoutRequest{
		Items: []CheckoutItem{{ProductID: p.ID, Quantity: 0}},
	}, uuid.New())
	assert.Error(t, err)
	assert.Empty(t, st.Sales())
}

func TestListSales(t *testing.T) {
	st := store.New()
	p := st.AddProduct("Espresso", "Coffee", 3.00, 100)
	svc := NewSalesService(st)

	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		sale, err := svc.Checkout(&CheckoutRequest{
			Items: []CheckoutItem{{ProductID: p.ID, Quantity: 1}},
		}, uuid.New())
		require.NoError(t, err)
		ids = append(ids, sale.ID)
	}

	// Default order is newest first.
	sales, total := svc.ListSales(utils.PaginationParams{Page: 1, Limit: 20, Order: "desc"})
	assert.Equal(t, int64(3), total)
	require.Len(t, sales, 3)
	assert.Equal(t, ids[2], sales[0].ID)
	assert.Equal(t, ids[0], sales[2].ID)

	// Ascending keeps ledger order.
	sales, _ = svc.ListSales(utils.PaginationParams{Page: 1, Limit: 20, Order: "asc"})
	assert.Equal(t, ids[0], sales[0].ID)

	// Pagination slices the page out.
	sales, total = svc.ListSales(utils.PaginationParams{Page: 2, Limit: 2, Order: "asc"})
	assert.Equal(t, int64(3), total)
	require.Len(t, sales, 1)
	assert.Equal(t, ids[2], sales[0].ID)
}

func TestGetSale(t *testing.T) {
	st := store.New()
	p := st.AddProduct("Espresso", "Coffee", 3.00, 100)
	svc := NewSalesService(st)

	sale, err := svc.Checkout(&CheckoutRequest{
		Items: []CheckoutItem{{ProductID: p.ID, Quantity: 1}},
	}, uuid.New())
	require.NoError(t, err)

	got, err := svc.GetSale(sale.ID)
	require.NoError(t, err)
	assert.Equal(t, sale.ID, got.ID)

	_, err = svc.GetSale(uuid.New())
	assert.ErrorContains(t, err, "not found")
}
