package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports liveness along with the live mount count.
type HealthHandler struct {
	version string
	mounts  func() int
}

// NewHealthHandler creates a new HealthHandler. mounts may be nil.
func NewHealthHandler(version string, mounts func() int) *HealthHandler {
	return &HealthHandler{version: version, mounts: mounts}
}

// HealthGet handles GET /health.
func (h *HealthHandler) HealthGet(c echo.Context) error {
	resp := HealthResponse{Status: "ok", Version: h.version}
	if h.mounts != nil {
		resp.Mounts = h.mounts()
	}
	return c.JSON(http.StatusOK, resp)
}
