package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	applog "github.com/consoletracker/console-catalog/internal/pkg/log"
	"github.com/consoletracker/console-catalog/internal/service/api/constants"
	"github.com/consoletracker/console-catalog/internal/service/api/httputil"
	appmiddleware "github.com/consoletracker/console-catalog/internal/service/api/middleware"
)

// HTTPServerConfig carries the settings needed to build the echo
// instance.
type HTTPServerConfig struct {
	// Debug enables echo's debug mode.
	Debug bool

	// EnableHSTS adds the Strict-Transport-Security header. Only
	// meaningful when the server is actually terminating TLS.
	EnableHSTS bool

	// AllowOrigins is the CORS origin allow-list.
	AllowOrigins []string

	// RequestTimeout caps per-request handling time. Zero applies the
	// default of 60 seconds.
	RequestTimeout time.Duration
}

// hstsMaxAge is one year, the common baseline for HSTS.
const hstsMaxAge = 31536000

// NewHTTPServer builds an echo instance with the full middleware chain
// wired, in this order:
//
//  1. PanicRecovery, first so panics anywhere below are caught
//  2. RequestID, before logging so entries carry the ID
//  3. Server header scrub, hides the stack from fingerprinting
//  4. HTTPLogger, before rate limiting so rejected requests are logged
//  5. RateLimiting, per-IP token bucket
//  6. BodyLimit
//  7. Timeout
//  8. CORS
//  9. Secure headers, last so every response gets them
//
// Routes are not registered here; the caller wires them on the
// returned instance.
func NewHTTPServer(cfg HTTPServerConfig) *echo.Echo {
	e := echo.New()

	e.Debug = cfg.Debug
	e.HideBanner = true

	e.Server.ReadTimeout = constants.DefaultReadTimeout
	e.Server.ReadHeaderTimeout = constants.DefaultReadHeaderTimeout
	e.Server.WriteTimeout = constants.DefaultWriteTimeout
	e.Server.IdleTimeout = constants.DefaultIdleTimeout

	// Route echo's own messages through the application logger.
	e.Logger = appmiddleware.Logger{Logger: applog.StandardLogger()}

	e.HTTPErrorHandler = httputil.ErrorHandler

	timeout := cfg.RequestTimeout
	if timeout == 0 {
		timeout = constants.DefaultRequestTimeout
	}

	e.Use(appmiddleware.PanicRecovery())
	e.Use(middleware.RequestID())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(echo.HeaderServer, "")
			return next(c)
		}
	})
	e.Use(appmiddleware.HTTPLogger())
	e.Use(appmiddleware.RateLimiting(constants.DefaultRateLimitPerSecond, constants.DefaultRateLimitBurst))
	e.Use(middleware.BodyLimit(constants.DefaultMaxBodySize))
	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: timeout,
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
	}))

	secureConfig := middleware.DefaultSecureConfig
	if cfg.EnableHSTS {
		secureConfig.HSTSMaxAge = hstsMaxAge
	}
	e.Use(middleware.SecureWithConfig(secureConfig))

	return e
}
