package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPanicRecoveryConvertsPanicToError(t *testing.T) {
	e := echo.New()
	e.Use(PanicRecovery())
	e.GET("/panic", func(c echo.Context) error {
		panic("something broke")
	})

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	rec := httptest.NewRecorder()

	require.NotPanics(t, func() {
		e.ServeHTTP(rec, req)
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestPanicRecoveryKeepsErrorValue(t *testing.T) {
	e := echo.New()
	e.Use(PanicRecovery())

	var handled error
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		handled = err
		c.NoContent(http.StatusInternalServerError)
	}

	sentinel := errors.New("sentinel failure")
	e.GET("/panic", func(c echo.Context) error {
		panic(sentinel)
	})

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.ErrorIs(t, handled, sentinel)
}

func TestPanicRecoveryLeavesNormalRequestsAlone(t *testing.T) {
	e := echo.New()
	e.Use(PanicRecovery())
	e.GET("/ok", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
