// internal/handlers/sale.go
package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/brewline/pos-backend/internal/services"
	"github.com/brewline/pos-backend/internal/store"
	"github.com/brewline/pos-backend/internal/utils"
)

type SaleHandler struct {
	salesService *services.SalesService
}

func NewSaleHandler(salesService *services.SalesService) *SaleHandler {
	return &SaleHandler{
		salesService: salesService,
	}
}

// POST /sales/checkout
func (h *SaleHandler) Checkout(c *gin.Context) {
	cashierID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	sale, err := h.salesService.Checkout(&req, cashierID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrProductNotFound):
			utils.NotFoundResponse(c, "Product")
		case errors.Is(err, store.ErrInsufficientStock):
			utils.ErrorResponse(c, 409, "INSUFFICIENT_STOCK", err.Error(), nil)
		case errors.Is(err, store.ErrEmptyCart):
			utils.BadRequestResponse(c, "Cart is empty", nil)
		default:
			utils.BadRequestResponse(c, err.Error(), nil)
		}
		return
	}

	utils.CreatedResponse(c, gin.H{
		"sale": sale,
	})
}

// GET /sales
func (h *SaleHandler) GetSales(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	sales, total := h.salesService.ListSales(params)

	result := utils.CreatePaginationResult(sales, total, params)
	utils.PaginatedResponse(c, result)
}

// GET /sales/:id
func (h *SaleHandler) GetSale(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid sale ID", nil)
		return
	}

	sale, err := h.salesService.GetSale(id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Sale")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"sale": sale,
	})
}
