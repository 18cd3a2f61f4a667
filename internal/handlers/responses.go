package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ErrorResponse is the standard format for API error responses.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Mounts  int    `json:"mounts"`
}

// BadRequest converts a bind or validation failure into a 400 with a
// readable message listing the offending fields.
func BadRequest(err error) *echo.HTTPError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fmt.Sprintf("%s failed %q", fe.Field(), fe.Tag()))
		}
		return echo.NewHTTPError(http.StatusBadRequest, ErrorResponse{
			Code:    "invalid_request",
			Message: strings.Join(fields, "; "),
		})
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		return echo.NewHTTPError(http.StatusBadRequest, ErrorResponse{
			Code:    "invalid_request",
			Message: fmt.Sprint(he.Message),
		})
	}

	return echo.NewHTTPError(http.StatusBadRequest, ErrorResponse{
		Code:    "invalid_request",
		Message: err.Error(),
	})
}
