// Package handler serves the v1 product endpoints: the filtered,
// sorted, paginated listing page and the standalone facet values.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	applog "github.com/consoletracker/console-catalog/internal/pkg/log"
	"github.com/consoletracker/console-catalog/internal/query"
	"github.com/consoletracker/console-catalog/internal/service/api/constants"
	"github.com/consoletracker/console-catalog/internal/service/api/httputil"
	"github.com/consoletracker/console-catalog/internal/service/api/v1/model/request"
	"github.com/consoletracker/console-catalog/internal/service/contract"
)

// Handler serves the v1 product endpoints.
type Handler struct {
	catalogProvider contract.CatalogProvider

	defaultPageSize int
	maxPageSize     int
}

// NewHandler creates the v1 handler. The page sizes come from the
// catalog configuration.
func NewHandler(catalogProvider contract.CatalogProvider, defaultPageSize, maxPageSize int) *Handler {
	if catalogProvider == nil {
		panic(constants.PanicMsgCatalogProviderRequired)
	}

	return &Handler{
		catalogProvider: catalogProvider,

		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

// ProductsHandler evaluates the query described by the URL parameters
// against the catalog and returns the result page with the
// collection-wide facet values.
//
// Odd parameter values degrade instead of failing: an unknown sortBy
// falls back to the original order, a page past the end returns an
// empty page. The only propagated failure is a catalog that could not
// be loaded, which answers 503.
func (h *Handler) ProductsHandler(c echo.Context) error {
	var req request.ProductQuery
	if err := c.Bind(&req); err != nil {
		return httputil.NewBadRequestError(constants.ErrMsgBadRequest)
	}

	records, err := h.catalogProvider.Catalog()
	if err != nil {
		applog.WithComponent(constants.ComponentHandler).WithError(err).Error("catalog is unavailable")
		return httputil.NewServiceUnavailableError(constants.ErrMsgCatalogUnavailable)
	}

	result := query.Evaluate(records, req.Spec(h.defaultPageSize, h.maxPageSize))

	return c.JSON(http.StatusOK, result)
}

// FacetsHandler returns the facet values of the full collection, for
// filter UIs that need the options before the first query.
func (h *Handler) FacetsHandler(c echo.Context) error {
	records, err := h.catalogProvider.Catalog()
	if err != nil {
		applog.WithComponent(constants.ComponentHandler).WithError(err).Error("catalog is unavailable")
		return httputil.NewServiceUnavailableError(constants.ErrMsgCatalogUnavailable)
	}

	return c.JSON(http.StatusOK, query.ComputeFacets(records))
}
