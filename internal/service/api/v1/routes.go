// Package v1 defines the /api/v1 routes of the catalog API.
package v1

import (
	"github.com/labstack/echo/v4"

	"github.com/consoletracker/console-catalog/internal/service/api/v1/handler"
)

// RegisterRoutes registers the v1 endpoints under /api/v1.
//
// Endpoints:
//   - GET /api/v1/products - filtered, sorted, paginated listing page
//   - GET /api/v1/facets   - facet values of the full collection
func RegisterRoutes(e *echo.Echo, h *handler.Handler) {
	v1Group := e.Group("/api/v1")

	v1Group.GET("/products", h.ProductsHandler)
	v1Group.GET("/facets", h.FacetsHandler)
}
