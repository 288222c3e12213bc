// internal/services/report_service.go
package services

import (
	"sort"

	"github.com/brewline/pos-backend/internal/models"
	"github.com/brewline/pos-backend/internal/store"
)

// ReportService derives aggregates from the ledger on demand. Nothing
// here is stored; every report is recomputed from a snapshot.
type ReportService struct {
	store *store.Store
}

type SalesSummary struct {
	TotalRevenue float64 `json:"total_revenue"`
	TotalSales   int     `json:"total_sales"`
	AvgSaleValue float64 `json:"avg_sale_value"`
}

func NewReportService(st *store.Store) *ReportService {
	return &ReportService{store: st}
}

func (s *ReportService) Summary() SalesSummary {
	sales := s.store.Sales()

	summary := SalesSummary{TotalSales: len(sales)}
	for _, sale := range sales {
		summary.TotalRevenue += sale.Total
	}
	if summary.TotalSales > 0 {
		summary.AvgSaleValue = summary.TotalRevenue / float64(summary.TotalSales)
	}
	return summary
}

// RevenueByDay buckets ledger totals per calendar day, oldest first.
func (s *ReportService) RevenueByDay() []models.ChartPoint {
	byDay := make(map[string]float64)
	for _, sale := range s.store.Sales() {
		day := sale.Date.Format("2006-01-02")
		byDay[day] += sale.Total
	}

	points := make([]models.ChartPoint, 0, len(byDay))
	for day, revenue := range byDay {
		points = append(points, models.ChartPoint{Name: day, Value: revenue})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Name < points[j].Name })
	return points
}

// TopProducts ranks products by units sold and returns the first limit.
func (s *ReportService) TopProducts(limit int) []models.ChartPoint {
	byProduct := make(map[string]float64)
	for _, sale := range s.store.Sales() {
		for _, item := range sale.Items {
			byProduct[item.Name] += float64(item.Quantity)
		}
	}

	points := make([]models.ChartPoint, 0, len(byProduct))
	for name, qty := range byProduct {
		points = append(points, models.ChartPoint{Name: name, Value: qty})
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].Value != points[j].Value {
			return points[i].Value > points[j].Value
		}
		return points[i].Name < points[j].Name
	})

	if limit > 0 && len(points) > limit {
		points = points[:limit]
	}
	return points
}

// CategoryBreakdown counts units sold per category.
func (s *ReportService) CategoryBreakdown() []models.ChartPoint {
	byCategory := make(map[string]float64)
	for _, sale := range s.store.Sales() {
		for _, item := range sale.Items {
			byCategory[item.Category] += float64(item.Quantity)
		}
	}

	points := make([]models.ChartPoint, 0, len(byCategory))
	for category, qty := range byCategory {
		points = append(points, models.ChartPoint{Name: category, Value: qty})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Name < points[j].Name })
	return points
}
