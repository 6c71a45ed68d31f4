// Package constants groups the fixed values of the API service so that
// handlers, middleware and the server setup share one source of truth.
package constants

import "time"

// Component names identifying the origin of a log entry.
const (
	// ComponentService is the component name of service lifecycle logs.
	ComponentService = "api.service"

	// ComponentHandler is the component name of handler logs.
	ComponentHandler = "api.handler"

	// ComponentMiddleware is the component name of middleware logs.
	ComponentMiddleware = "api.middleware"

	// ComponentErrorHandler is the component name of the global error
	// handler logs.
	ComponentErrorHandler = "api.error_handler"
)

// HTTP server defaults.
const (
	// DefaultReadTimeout limits reading the full request, body included.
	DefaultReadTimeout = 60 * time.Second

	// DefaultReadHeaderTimeout limits reading the request headers. Kept
	// short to defend against slowloris-style clients.
	DefaultReadHeaderTimeout = 10 * time.Second

	// DefaultWriteTimeout limits writing the response.
	DefaultWriteTimeout = 60 * time.Second

	// DefaultIdleTimeout limits how long a keep-alive connection may sit
	// idle.
	DefaultIdleTimeout = 60 * time.Second

	// DefaultRequestTimeout cancels request handling that runs too long,
	// returning 503 to the client.
	DefaultRequestTimeout = 60 * time.Second

	// DefaultRateLimitPerSecond is the per-IP sustained request rate.
	DefaultRateLimitPerSecond = 20

	// DefaultRateLimitBurst is the per-IP burst allowance.
	DefaultRateLimitBurst = 40

	// DefaultMaxBodySize caps the request body. The API is read-only, so
	// nothing legitimate comes close to this.
	DefaultMaxBodySize = "128K"
)

// Standard error messages returned to clients.
const (
	// 400 Bad Request
	ErrMsgBadRequest = "the request is invalid"

	// 404 Not Found
	ErrMsgNotFound = "the requested resource was not found"

	// 429 Too Many Requests
	ErrMsgTooManyRequests = "too many requests, please retry shortly"

	// 500 Internal Server Error
	ErrMsgInternalServer = "an internal server error occurred"

	// 503 Service Unavailable
	ErrMsgCatalogUnavailable = "the product catalog is currently unavailable, please retry shortly"
)

// Health check status values.
const (
	// HealthStatusHealthy marks a healthy server or dependency.
	HealthStatusHealthy = "healthy"

	// HealthStatusUnhealthy marks an unhealthy server or dependency.
	HealthStatusUnhealthy = "unhealthy"

	// DependencyCatalog is the dependency ID of the catalog store.
	DependencyCatalog = "catalog"
)

// Panic messages for unrecoverable wiring mistakes at startup.
const (
	// PanicMsgAppConfigRequired signals a nil AppConfig.
	PanicMsgAppConfigRequired = "AppConfig is required"

	// PanicMsgCatalogProviderRequired signals a nil CatalogProvider.
	PanicMsgCatalogProviderRequired = "CatalogProvider is required"
)

// SensitiveQueryParams lists the query parameters whose values must be
// masked before a request URI is logged.
var SensitiveQueryParams = []string{
	"api_key",
	"password",
	"token",
	"secret",
}
