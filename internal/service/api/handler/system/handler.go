// Package system handles the unauthenticated system endpoints: health
// check and version information.
package system

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	applog "github.com/consoletracker/console-catalog/internal/pkg/log"
	"github.com/consoletracker/console-catalog/internal/pkg/version"
	"github.com/consoletracker/console-catalog/internal/service/api/constants"
	"github.com/consoletracker/console-catalog/internal/service/api/model/system"
	"github.com/consoletracker/console-catalog/internal/service/contract"
)

// Handler serves the system endpoints.
type Handler struct {
	catalogProvider contract.CatalogProvider

	buildInfo version.Info

	serverStartTime time.Time
}

// NewHandler creates the system endpoint handler.
func NewHandler(catalogProvider contract.CatalogProvider, buildInfo version.Info) *Handler {
	if catalogProvider == nil {
		panic(constants.PanicMsgCatalogProviderRequired)
	}

	return &Handler{
		catalogProvider: catalogProvider,

		buildInfo: buildInfo,

		serverStartTime: time.Now(),
	}
}

// HealthCheckHandler reports the server state and the state of the
// catalog store. Monitoring systems poll this without authentication;
// a failed catalog load turns the aggregate status unhealthy while the
// endpoint itself still answers 200.
func (h *Handler) HealthCheckHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/health",
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug("health check requested")

	uptime := int64(time.Since(h.serverStartTime).Seconds())

	deps := make(map[string]system.DependencyStatus)

	if records, err := h.catalogProvider.Catalog(); err != nil {
		deps[constants.DependencyCatalog] = system.DependencyStatus{
			Status:  constants.HealthStatusUnhealthy,
			Message: err.Error(),
		}
	} else {
		deps[constants.DependencyCatalog] = system.DependencyStatus{
			Status:  constants.HealthStatusHealthy,
			Message: fmt.Sprintf("%d records loaded", len(records)),
		}
	}

	serverStatus := constants.HealthStatusHealthy
	for _, dep := range deps {
		if dep.Status != constants.HealthStatusHealthy {
			serverStatus = constants.HealthStatusUnhealthy
			break
		}
	}

	return c.JSON(http.StatusOK, system.HealthResponse{
		Status:       serverStatus,
		Uptime:       uptime,
		Dependencies: deps,
	})
}

// VersionHandler returns the build metadata of the running binary.
func (h *Handler) VersionHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/version",
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug("version info requested")

	return c.JSON(http.StatusOK, system.VersionResponse{
		Version:   h.buildInfo.Version,
		Commit:    h.buildInfo.Commit,
		BuildDate: h.buildInfo.BuildDate,
		GoVersion: h.buildInfo.GoVersion,
		Platform:  h.buildInfo.Platform,
	})
}
