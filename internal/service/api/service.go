// Package api runs the HTTP server of the catalog: the echo instance,
// its middleware chain and routes, and the graceful shutdown handling.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/consoletracker/console-catalog/internal/config"
	applog "github.com/consoletracker/console-catalog/internal/pkg/log"
	"github.com/consoletracker/console-catalog/internal/pkg/version"
	"github.com/consoletracker/console-catalog/internal/service/api/constants"
	"github.com/consoletracker/console-catalog/internal/service/api/handler/system"
	v1 "github.com/consoletracker/console-catalog/internal/service/api/v1"
	v1handler "github.com/consoletracker/console-catalog/internal/service/api/v1/handler"
	"github.com/consoletracker/console-catalog/internal/service/contract"
)

// shutdownTimeout bounds the graceful shutdown of in-flight requests.
const shutdownTimeout = 5 * time.Second

// Service manages the lifecycle of the HTTP API server.
//
// Start launches the server in its own goroutines and returns; the
// server shuts down gracefully when the service stop context is
// canceled, waiting up to shutdownTimeout for in-flight requests.
type Service struct {
	appConfig *config.AppConfig

	catalogProvider contract.CatalogProvider

	buildInfo version.Info

	running   bool
	runningMu sync.Mutex
}

// NewService creates the API service.
func NewService(appConfig *config.AppConfig, catalogProvider contract.CatalogProvider, buildInfo version.Info) *Service {
	if appConfig == nil {
		panic(constants.PanicMsgAppConfigRequired)
	}
	if catalogProvider == nil {
		panic(constants.PanicMsgCatalogProviderRequired)
	}

	return &Service{
		appConfig: appConfig,

		catalogProvider: catalogProvider,

		buildInfo: buildInfo,
	}
}

// Start launches the API service and returns immediately.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info("starting the API service")

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(constants.ComponentService).Warn("the API service is already running (duplicate start)")
		return nil
	}

	s.running = true

	go s.runServiceLoop(serviceStopCtx, serviceStopWG)

	applog.WithComponent(constants.ComponentService).Info("API service started")

	return nil
}

// runServiceLoop sets up the server, starts it and waits for shutdown.
func (s *Service) runServiceLoop(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	e := s.setupServer()

	httpServerDone := make(chan struct{})
	go s.startHTTPServer(e, httpServerDone)

	s.waitForShutdown(serviceStopCtx, e, httpServerDone)
}

// setupServer builds the echo instance with all handlers and routes.
func (s *Service) setupServer() *echo.Echo {
	systemHandler := system.NewHandler(s.catalogProvider, s.buildInfo)
	v1Handler := v1handler.NewHandler(
		s.catalogProvider,
		s.appConfig.Catalog.DefaultPageSize,
		s.appConfig.Catalog.MaxPageSize,
	)

	e := NewHTTPServer(HTTPServerConfig{
		Debug:        s.appConfig.Debug,
		EnableHSTS:   s.appConfig.Web.TLSServer,
		AllowOrigins: s.appConfig.CORS.AllowOrigins,
	})

	RegisterRoutes(e, systemHandler)
	v1.RegisterRoutes(e, v1Handler)

	return e
}

// startHTTPServer runs the listener until the server is shut down,
// then closes done.
func (s *Service) startHTTPServer(e *echo.Echo, done chan struct{}) {
	defer close(done)

	port := s.appConfig.Web.ListenPort
	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port": port,
		"tls":  s.appConfig.Web.TLSServer,
	}).Debug("starting the http server")

	var err error
	if s.appConfig.Web.TLSServer {
		err = e.StartTLS(
			fmt.Sprintf(":%d", port),
			s.appConfig.Web.TLSCertFile,
			s.appConfig.Web.TLSKeyFile,
		)
	} else {
		err = e.Start(fmt.Sprintf(":%d", port))
	}

	s.handleServerError(err)
}

// handleServerError classifies the listener's exit error.
// http.ErrServerClosed is the normal graceful shutdown path.
func (s *Service) handleServerError(err error) {
	if err == nil {
		return
	}

	if errors.Is(err, http.ErrServerClosed) {
		applog.WithComponent(constants.ComponentService).Info("http server stopped")
		return
	}

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port":  s.appConfig.Web.ListenPort,
		"error": err,
	}).Error("the http server terminated unexpectedly")
}

// waitForShutdown blocks until the stop signal or an early server
// exit, then drains in-flight requests.
func (s *Service) waitForShutdown(serviceStopCtx context.Context, e *echo.Echo, httpServerDone chan struct{}) {
	select {
	case <-serviceStopCtx.Done():
		applog.WithComponent(constants.ComponentService).Info("stopping the API service")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			applog.WithComponent(constants.ComponentService).WithError(err).Error("error during http server shutdown")
		}

		// Wait until the listener goroutine has fully exited.
		<-httpServerDone

	case <-httpServerDone:
		// The server died on its own; nothing left to shut down.
		applog.WithComponent(constants.ComponentService).Error("the API service exited unexpectedly")
	}

	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info("API service stopped")
}
