// internal/router/router.go
package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/brewline/pos-backend/internal/ai/gemini"
	"github.com/brewline/pos-backend/internal/config"
	"github.com/brewline/pos-backend/internal/handlers"
	"github.com/brewline/pos-backend/internal/middleware"
	"github.com/brewline/pos-backend/internal/services"
	"github.com/brewline/pos-backend/internal/store"
	"github.com/brewline/pos-backend/internal/utils"
)

func Initialize(st *store.Store, sessions *store.SessionStore, cfg *config.Config) *gin.Engine {
	// Initialize services
	geminiClient := gemini.NewClient(
		cfg.AI.APIKey,
		cfg.AI.BaseURL,
		cfg.AI.Model,
		time.Duration(cfg.AI.Timeout)*time.Second,
		cfg.AI.MaxRetries,
	)

	authService := services.NewAuthService(sessions, cfg)
	inventoryService := services.NewInventoryService(st)
	salesService := services.NewSalesService(st)
	reportService := services.NewReportService(st)
	insightService := services.NewInsightService(st, geminiClient)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(inventoryService)
	saleHandler := handlers.NewSaleHandler(salesService)
	reportHandler := handlers.NewReportHandler(reportService)
	insightHandler := handlers.NewInsightHandler(insightService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", middleware.AuthRequired(sessions), authHandler.Logout)
			auth.GET("/me", middleware.AuthRequired(sessions), authHandler.GetProfile)
		}

		// Product routes
		products := v1.Group("/products")
		products.Use(middleware.AuthRequired(sessions))
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/low-stock", productHandler.GetLowStockProducts)
			products.GET("/:id", productHandler.GetProduct)

			// Catalog mutations are admin-only
			admin := products.Group("")
			admin.Use(middleware.AdminRequired())
			{
				admin.POST("", productHandler.CreateProduct)
				admin.PUT("/:id", productHandler.UpdateProduct)
				admin.DELETE("/:id", productHandler.DeleteProduct)
			}
		}

		// Sales routes
		sales := v1.Group("/sales")
		sales.Use(middleware.AuthRequired(sessions))
		{
			sales.POST("/checkout", saleHandler.Checkout)
			sales.GET("", saleHandler.GetSales)
			sales.GET("/:id", saleHandler.GetSale)
		}

		// Report routes
		reports := v1.Group("/reports")
		reports.Use(middleware.AuthRequired(sessions))
		{
			reports.GET("/summary", reportHandler.GetSummary)
			reports.GET("/revenue-by-day", reportHandler.GetRevenueByDay)
			reports.GET("/top-products", reportHandler.GetTopProducts)
			reports.GET("/category-breakdown", reportHandler.GetCategoryBreakdown)
		}

		// Insight routes
		insights := v1.Group("/insights")
		insights.Use(middleware.AuthRequired(sessions), middleware.InsightRateLimit())
		{
			insights.POST("", insightHandler.RequestInsight)
		}
	}

	return r
}
