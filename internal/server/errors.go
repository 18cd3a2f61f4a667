package server

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/avatarkit/internal/handlers"
	"github.com/nfrund/avatarkit/internal/middleware"
)

// setupErrorHandling installs an error handler that logs unhandled errors
// with a stack trace. HTTP errors raised on purpose keep echo's behaviour.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			e.DefaultHTTPErrorHandler(err, c)
			return
		}

		middleware.FromContext(c.Request().Context()).Error("Internal Server Error (Unhandled)",
			"error", err.Error(),
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"stack_trace", string(debug.Stack()),
		)

		resp := handlers.ErrorResponse{Code: "internal_error", Message: http.StatusText(http.StatusInternalServerError)}
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(http.StatusInternalServerError)
			return
		}
		_ = c.JSON(http.StatusInternalServerError, resp)
	}
}
