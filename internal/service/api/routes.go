package api

import (
	"github.com/labstack/echo/v4"

	"github.com/consoletracker/console-catalog/internal/service/api/handler/system"
)

// RegisterRoutes registers the global routes of the API service: the
// unauthenticated system endpoints /health and /version.
func RegisterRoutes(e *echo.Echo, h *system.Handler) {
	e.GET("/health", h.HealthCheckHandler)
	e.GET("/version", h.VersionHandler)
}
