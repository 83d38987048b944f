// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"stampcard/config"
	"stampcard/internal/delivery/api/middleware"
	"stampcard/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CustomerHandler     *handler.CustomerHandler
	StampHandler        *handler.StampHandler
	RedemptionHandler   *handler.RedemptionHandler
	SettingsHandler     *handler.SettingsHandler
	ReportHandler       *handler.ReportHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	customerHandler     *handler.CustomerHandler
	stampHandler        *handler.StampHandler
	redemptionHandler   *handler.RedemptionHandler
	settingsHandler     *handler.SettingsHandler
	reportHandler       *handler.ReportHandler
	authMiddleware      *middleware.AuthMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
	config              *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		customerHandler:     params.CustomerHandler,
		stampHandler:        params.StampHandler,
		redemptionHandler:   params.RedemptionHandler,
		settingsHandler:     params.SettingsHandler,
		reportHandler:       params.ReportHandler,
		authMiddleware:      params.AuthMiddleware,
		rateLimitMiddleware: params.RateLimitMiddleware,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Everything else requires a bearer token
	api := e.Group("")
	api.Use(r.authMiddleware.Authenticate)

	// Point-of-sale writes are rate limited per actor
	limit := r.rateLimitMiddleware.Limit
	api.POST("/register-customer", r.customerHandler.RegisterCustomer, limit)
	api.POST("/add-stamp", r.stampHandler.AddStamp, limit)
	api.POST("/redeem-reward", r.redemptionHandler.RedeemReward, limit)

	api.POST("/customer-lookup", r.customerHandler.LookupCustomer)

	customersGroup := api.Group("/customers")
	{
		customersGroup.PATCH("/:id/status", r.customerHandler.UpdateStatus)
		customersGroup.GET("/:id/qr", r.customerHandler.QRCode)
		customersGroup.GET("/:id/history", r.customerHandler.History)
	}

	locationsGroup := api.Group("/locations")
	{
		locationsGroup.GET("/:id/settings", r.settingsHandler.GetSettings)
		locationsGroup.PUT("/:id/settings", r.settingsHandler.UpdateSettings)
	}

	reportsGroup := api.Group("/reports")
	{
		reportsGroup.GET("/summary", r.reportHandler.Summary)
	}
}
