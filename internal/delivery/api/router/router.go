// Package router wires the HTTP routes of the loyalty club API.
package router

import (
	"clubefast/internal/delivery/api/middleware"
	"clubefast/internal/delivery/api/router/handler"
	"clubefast/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	CustomerHandler   *handler.CustomerHandler
	InvoiceHandler    *handler.InvoiceHandler
	CatalogHandler    *handler.CatalogHandler
	RedemptionHandler *handler.RedemptionHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	customerHandler   *handler.CustomerHandler
	invoiceHandler    *handler.InvoiceHandler
	catalogHandler    *handler.CatalogHandler
	redemptionHandler *handler.RedemptionHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		customerHandler:   params.CustomerHandler,
		invoiceHandler:    params.InvoiceHandler,
		catalogHandler:    params.CatalogHandler,
		redemptionHandler: params.RedemptionHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.RefreshToken)
	}

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	apiV1.GET("/me", r.customerHandler.GetProfile)
	apiV1.GET("/me/history", r.customerHandler.GetHistory)

	invoicesGroup := apiV1.Group("/invoices")
	{
		invoicesGroup.POST("", r.invoiceHandler.ProcessInvoice)
		invoicesGroup.POST("/preview", r.invoiceHandler.PreviewInvoice)
		invoicesGroup.GET("", r.invoiceHandler.ListOrders)
	}

	prizesGroup := apiV1.Group("/prizes")
	{
		prizesGroup.GET("", r.catalogHandler.ListPrizes)
		prizesGroup.GET("/:id", r.catalogHandler.GetPrize)
	}

	redemptionsGroup := apiV1.Group("/redemptions")
	{
		redemptionsGroup.POST("", r.redemptionHandler.Redeem)
		redemptionsGroup.GET("", r.redemptionHandler.ListMine)
		redemptionsGroup.GET("/:id/qr", r.redemptionHandler.RedemptionQR)
	}

	// Admin routes require the admin role on top of authentication
	adminGroup := apiV1.Group("/admin")
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/prizes", r.catalogHandler.AdminListPrizes)
		adminGroup.POST("/prizes", r.catalogHandler.CreatePrize)
		adminGroup.PUT("/prizes/:id", r.catalogHandler.UpdatePrize)
		adminGroup.DELETE("/prizes/:id", r.catalogHandler.DeletePrize)

		adminGroup.GET("/redemptions", r.redemptionHandler.ListRedemptions)
		adminGroup.GET("/redemptions/export", r.redemptionHandler.ExportRedemptions)
		adminGroup.POST("/redemptions/:id/collect", r.redemptionHandler.MarkCollected)
		adminGroup.POST("/redemptions/collect-by-qr", r.redemptionHandler.CollectByQR)

		adminGroup.GET("/customers", r.customerHandler.ListCustomers)
		adminGroup.GET("/customers/:id", r.customerHandler.GetCustomer)

		adminGroup.GET("/dashboard", r.customerHandler.Dashboard)
		adminGroup.GET("/providers", r.invoiceHandler.Providers)
	}
}
