package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nfrund/avatarkit/internal/module"
	"github.com/nfrund/avatarkit/internal/registry"
)

// InitModules registers every module, then boots each one on the base path
// group. A failing module stops startup. A mount store published by a
// module backs /health when the server was built without one.
func (s *Server) InitModules(ctx context.Context, modules []module.Module, reg *registry.Registry) error {
	for _, m := range modules {
		if err := m.Register(reg); err != nil {
			return fmt.Errorf("failed to register module %s: %w", m.Name(), err)
		}
	}
	if s.Mounts == nil {
		if store, ok := registry.Get(reg, registry.MountStoreKey); ok {
			s.Mounts = store
		}
	}

	group := s.E.Group(s.Cfg.GetBasePath())
	for _, m := range modules {
		slog.Info("Booting module", "module", m.Name())
		if err := m.Boot(ctx, group, reg); err != nil {
			return fmt.Errorf("failed to boot module %s: %w", m.Name(), err)
		}
		s.modules = append(s.modules, m)
	}
	return nil
}

// shutdownModules stops booted modules in reverse boot order.
func (s *Server) shutdownModules(ctx context.Context) error {
	var errs []error
	for i := len(s.modules) - 1; i >= 0; i-- {
		m := s.modules[i]
		if err := m.Shutdown(ctx); err != nil {
			slog.Error("Module shutdown failed", "module", m.Name(), "error", err)
			errs = append(errs, fmt.Errorf("module %s: %w", m.Name(), err))
		}
	}
	s.modules = nil
	return errors.Join(errs...)
}
