package registry

import (
	"github.com/nfrund/avatarkit/internal/mount"
	"github.com/nfrund/avatarkit/internal/theme"
)

// Service keys shared between modules.
const (
	ThemeStoreKey Key[*theme.Store] = "theme.store"
	MountStoreKey Key[*mount.Store] = "mount.store"
)
