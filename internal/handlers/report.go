// internal/handlers/report.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/brewline/pos-backend/internal/services"
	"github.com/brewline/pos-backend/internal/utils"
)

type ReportHandler struct {
	reportService *services.ReportService
}

func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// GET /reports/summary
func (h *ReportHandler) GetSummary(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"summary": h.reportService.Summary(),
	})
}

// GET /reports/revenue-by-day
func (h *ReportHandler) GetRevenueByDay(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"revenue_by_day": h.reportService.RevenueByDay(),
	})
}

// GET /reports/top-products
func (h *ReportHandler) GetTopProducts(c *gin.Context) {
	limit := 5
	if l, err := strconv.Atoi(c.DefaultQuery("limit", "5")); err == nil && l > 0 && l <= 50 {
		limit = l
	}

	utils.SuccessResponse(c, gin.H{
		"top_products": h.reportService.TopProducts(limit),
	})
}

// GET /reports/category-breakdown
func (h *ReportHandler) GetCategoryBreakdown(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"category_breakdown": h.reportService.CategoryBreakdown(),
	})
}
