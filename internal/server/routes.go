package server

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/avatarkit/internal/handlers"
)

// RegisterRoutes sets up the routes that do not belong to a module.
func (s *Server) RegisterRoutes() {
	var mounts func() int
	if s.Mounts != nil {
		mounts = s.Mounts.Len
	}
	health := handlers.NewHealthHandler(s.version, mounts)
	s.E.GET("/health", health.HealthGet)

	preview := strings.TrimSuffix(s.Cfg.GetBasePath(), "/") + "/preview?name=avatarkit&show_status=true&status=online"
	s.E.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, preview)
	})
}
