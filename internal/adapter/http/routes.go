// Package http provides the HTTP handler layer for the flight search API.
package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers the flight search API routes.
func RegisterRoutes(e *echo.Echo, h *FlightHandler) {
	e.GET("/health", h.Health)
	e.POST("/flights", h.SearchFlights)
}

// RegisterRoutesWithMiddleware registers routes with endpoint-specific
// middleware. The health check stays middleware-free for load balancers.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *FlightHandler, middleware ...echo.MiddlewareFunc) {
	e.GET("/health", h.Health)
	e.POST("/flights", h.SearchFlights, middleware...)
}
