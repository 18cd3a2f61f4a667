package server

import (
	"errors"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/avatarkit/internal/config"
	"github.com/nfrund/avatarkit/internal/handlers"
	"github.com/nfrund/avatarkit/internal/middleware"
	"github.com/nfrund/avatarkit/internal/module"
	"github.com/nfrund/avatarkit/internal/mount"
	"github.com/nfrund/avatarkit/internal/rendering"
)

// Dependencies holds everything the server needs. Echo may be nil.
type Dependencies struct {
	Config   config.Provider
	Renderer *rendering.UniversalRenderer
	Mounts   *mount.Store
	Echo     *echo.Echo
	Version  string
}

// Server holds the dependencies for the HTTP server.
type Server struct {
	E        *echo.Echo
	Cfg      config.Provider
	Renderer *rendering.UniversalRenderer
	Mounts   *mount.Store
	version  string
	modules  []module.Module
}

// New creates a new Server instance with the middleware chain installed.
func New(deps Dependencies) (*Server, error) {
	if deps.Config == nil {
		return nil, errors.New("server: config is required")
	}
	if deps.Renderer == nil {
		return nil, errors.New("server: renderer is required")
	}

	e := deps.Echo
	if e == nil {
		e = echo.New()
	}
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.Renderer = deps.Renderer

	e.Use(echomw.RequestID())
	e.Use(middleware.Logger)
	e.Use(echomw.Recover())
	setupErrorHandling(e)

	return &Server{
		E:        e,
		Cfg:      deps.Config,
		Renderer: deps.Renderer,
		Mounts:   deps.Mounts,
		version:  deps.Version,
	}, nil
}
