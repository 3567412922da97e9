package http

import "github.com/labstack/echo/v4"

// Handler registers a set of routes on the shared Echo instance.
// Implemented by the API surface in internal/handler.
type Handler interface {
	RegisterRoutes(e *echo.Echo)
}
