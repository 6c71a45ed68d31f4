package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newRateLimitedServer(requestsPerSecond, burst int) *echo.Echo {
	e := echo.New()
	e.Use(RateLimiting(requestsPerSecond, burst))
	e.GET("/", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return e
}

func doRequest(e *echo.Echo, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = ip + ":12345"
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRateLimitingAllowsWithinBurst(t *testing.T) {
	e := newRateLimitedServer(1, 3)

	for i := 0; i < 3; i++ {
		rec := doRequest(e, "10.0.0.1")
		assert.Equal(t, http.StatusOK, rec.Code, "request %d should pass", i+1)
	}
}

func TestRateLimitingRejectsBeyondBurst(t *testing.T) {
	e := newRateLimitedServer(1, 2)

	doRequest(e, "10.0.0.1")
	doRequest(e, "10.0.0.1")
	rec := doRequest(e, "10.0.0.1")

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
}

func TestRateLimitingIsolatesClientIPs(t *testing.T) {
	e := newRateLimitedServer(1, 1)

	doRequest(e, "10.0.0.1")
	rejected := doRequest(e, "10.0.0.1")
	other := doRequest(e, "10.0.0.2")

	assert.Equal(t, http.StatusTooManyRequests, rejected.Code)
	assert.Equal(t, http.StatusOK, other.Code)
}

func TestRateLimitingPanicsOnInvalidSettings(t *testing.T) {
	assert.Panics(t, func() { RateLimiting(0, 10) })
	assert.Panics(t, func() { RateLimiting(10, 0) })
}

func TestIPRateLimiterConcurrentAccess(t *testing.T) {
	limiter := newIPRateLimiter(100, 100)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			limiter.getLimiter("10.0.0.1").Allow()
			limiter.getLimiter("10.0.0.2").Allow()
		}()
	}
	wg.Wait()

	assert.Len(t, limiter.limiters, 2)
}
