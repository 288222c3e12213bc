// internal/handlers/product.go
package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/brewline/pos-backend/internal/services"
	"github.com/brewline/pos-backend/internal/store"
	"github.com/brewline/pos-backend/internal/utils"
)

type ProductHandler struct {
	inventoryService *services.InventoryService
}

func NewProductHandler(inventoryService *services.InventoryService) *ProductHandler {
	return &ProductHandler{
		inventoryService: inventoryService,
	}
}

// GET /products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	category := c.Query("category")
	search := c.Query("search")

	products := h.inventoryService.ListProducts(category, search)

	utils.SuccessResponse(c, gin.H{
		"products": products,
	})
}

// GET /products/low-stock
func (h *ProductHandler) GetLowStockProducts(c *gin.Context) {
	threshold := 10
	if t, err := strconv.Atoi(c.DefaultQuery("threshold", "10")); err == nil && t >= 0 {
		threshold = t
	}

	utils.SuccessResponse(c, gin.H{
		"products": h.inventoryService.LowStock(threshold),
	})
}

// GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	product, err := h.inventoryService.GetProduct(id)
	if err != nil {
		utils.NotFoundResponse(c, "Product")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"product": product,
	})
}

// POST /products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req services.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	product, err := h.inventoryService.CreateProduct(&req)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"product": product,
	})
}

// PUT /products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	var req services.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	product, err := h.inventoryService.UpdateProduct(id, &req)
	if err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			utils.NotFoundResponse(c, "Product")
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"product": product,
	})
}

// DELETE /products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	if err := h.inventoryService.DeleteProduct(id); err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			utils.NotFoundResponse(c, "Product")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Product deleted",
	})
}
