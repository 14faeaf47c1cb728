package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kizuma-trade/backoffice-service/internal/delivery/http/handlers"
	"github.com/kizuma-trade/backoffice-service/internal/delivery/http/middleware"
	"github.com/kizuma-trade/backoffice-service/internal/infrastructure/metrics"
	"github.com/kizuma-trade/backoffice-service/internal/usecase"
)

type RouterDeps struct {
	SellerUsecase   usecase.SellerUsecase
	SupplierUsecase usecase.SupplierUsecase
	OrderUsecase    usecase.OrderUsecase

	Metrics  *metrics.BackofficeMetrics
	Registry prometheus.Gatherer

	Username string
	Password string
}

// NewRouter wires the public read endpoints, the login pair and the
// credential-guarded mutation endpoints.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(deps.Metrics))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-Id"},
		ExposeHeaders:    []string{"X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	authHandler := handlers.NewAuthHandler(deps.Username, deps.Password)
	sellerHandler := handlers.NewSellerHandler(deps.SellerUsecase)
	supplierHandler := handlers.NewSupplierHandler(deps.SupplierUsecase)
	orderHandler := handlers.NewOrderHandler(deps.OrderUsecase)

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))

	api := router.Group("/api")
	{
		api.POST("/login", authHandler.Login)

		api.GET("/seller", sellerHandler.GetSeller)
		api.GET("/suppliers", supplierHandler.GetSuppliers)
		api.GET("/suppliers/:id", supplierHandler.GetSupplierByID)
		api.GET("/suppliers/:id/orders", orderHandler.GetSupplierOrders)
		api.GET("/stats", supplierHandler.GetStats)

		protected := api.Group("")
		protected.Use(middleware.Authenticate(deps.Username, deps.Password))
		{
			protected.GET("/verify-auth", authHandler.VerifyAuth)

			protected.PUT("/seller/balance", sellerHandler.UpdateBalance)

			protected.POST("/suppliers", supplierHandler.CreateSupplier)
			protected.PUT("/suppliers/:id", supplierHandler.UpdateSupplier)
			protected.DELETE("/suppliers/:id", supplierHandler.DeleteSupplier)

			protected.POST("/orders", orderHandler.CreateOrder)
			protected.PUT("/orders/:id", orderHandler.UpdateOrder)
			protected.DELETE("/orders/:id", orderHandler.DeleteOrder)
			protected.POST("/orders/:id/split", orderHandler.SplitOrder)
		}
	}

	return router
}
