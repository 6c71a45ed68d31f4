// Package httputil provides the global HTTP error handler and the
// standard error response constructors of the API.
package httputil

import (
	"net/http"

	"github.com/labstack/echo/v4"

	applog "github.com/consoletracker/console-catalog/internal/pkg/log"
	"github.com/consoletracker/console-catalog/internal/service/api/constants"
	"github.com/consoletracker/console-catalog/internal/service/api/model/response"
)

// ErrorHandler is the global echo error handler. It converts every
// error reaching the framework into the standard ErrorResponse JSON
// shape and logs it with request context at a level matching the
// status class.
func ErrorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	message := constants.ErrMsgInternalServer

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if msg, ok := he.Message.(string); ok {
			message = msg
		} else if resp, ok := he.Message.(response.ErrorResponse); ok {
			message = resp.Message
		}
	}

	// Echo's default 404 text leaks routing details; unify it.
	if code == http.StatusNotFound {
		message = constants.ErrMsgNotFound
	}

	fields := applog.Fields{
		"path":        c.Request().URL.Path,
		"method":      c.Request().Method,
		"status_code": code,
		"error":       err,
		"remote_ip":   c.RealIP(),
		"request_id":  c.Response().Header().Get(echo.HeaderXRequestID),
	}

	if code >= http.StatusInternalServerError {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Error("http server error")
	} else if code >= http.StatusBadRequest {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Warn("http client error")
	}

	// The response may already have been written by the handler.
	if c.Response().Committed {
		return
	}

	// HEAD responses carry no body.
	if c.Request().Method == http.MethodHead {
		c.NoContent(code)
		return
	}

	c.JSON(code, response.ErrorResponse{
		ResultCode: code,
		Message:    message,
	})
}
