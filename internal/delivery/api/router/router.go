// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"platter/config"
	"platter/internal/delivery/api/middleware"
	"platter/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler    *handler.SessionHandler
	CatalogHandler    *handler.CatalogHandler
	CartHandler       *handler.CartHandler
	OrderHandler      *handler.OrderHandler
	TestHandler       *handler.TestHandler
	SessionMiddleware *middleware.SessionMiddleware
	Config            *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler    *handler.SessionHandler
	catalogHandler    *handler.CatalogHandler
	cartHandler       *handler.CartHandler
	orderHandler      *handler.OrderHandler
	testHandler       *handler.TestHandler
	sessionMiddleware *middleware.SessionMiddleware
	config            *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler:    params.SessionHandler,
		catalogHandler:    params.CatalogHandler,
		cartHandler:       params.CartHandler,
		orderHandler:      params.OrderHandler,
		testHandler:       params.TestHandler,
		sessionMiddleware: params.SessionMiddleware,
		config:            params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")
	apiV1.GET("/health", handler.HealthCheck)
	apiV1.POST("/sessions", r.sessionHandler.StartSession)

	// Catalog browsing is public
	restaurantsGroup := apiV1.Group("/restaurants")
	{
		restaurantsGroup.GET("", r.catalogHandler.ListRestaurants)
		restaurantsGroup.GET("/:id", r.catalogHandler.GetRestaurant)
		restaurantsGroup.GET("/:id/menu", r.catalogHandler.GetMenu)
	}

	// Cart routes act on the caller's session
	cartGroup := apiV1.Group("/cart")
	cartGroup.Use(r.sessionMiddleware.RequireSession)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.DELETE("", r.cartHandler.ClearCart)
		cartGroup.GET("/quote", r.cartHandler.Quote)
		cartGroup.POST("/lines", r.cartHandler.AddLine)
		cartGroup.PUT("/lines/:lineId", r.cartHandler.SetQuantity)
		cartGroup.PATCH("/lines/:lineId", r.cartHandler.AdjustQuantity)
		cartGroup.DELETE("/lines/:lineId", r.cartHandler.RemoveLine)
	}

	apiV1.POST("/checkout", r.orderHandler.Checkout, r.sessionMiddleware.RequireSession)

	// Orders are visible only to the session that placed them
	ordersGroup := apiV1.Group("/orders")
	ordersGroup.Use(r.sessionMiddleware.RequireSession)
	{
		ordersGroup.GET("/:id", r.orderHandler.GetOrder)
		ordersGroup.GET("/:id/qr", r.orderHandler.PickupQR)
	}
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Test routes - only enabled when configured
	if r.config.TestRoutes != nil && r.config.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		testGroup.GET("/public", r.testHandler.TestPublicEndpoint)
		testGroup.GET("/session", r.testHandler.TestSessionMiddleware, r.sessionMiddleware.RequireSession)
	}
}
