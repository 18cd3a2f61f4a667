package registry_test

import (
	"testing"

	"github.com/nfrund/avatarkit/internal/config"
	"github.com/nfrund/avatarkit/internal/mount"
	"github.com/nfrund/avatarkit/internal/registry"
	"github.com/nfrund/avatarkit/internal/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	cfg := &config.Config{GroupMax: 4}
	reg := registry.New(cfg)
	assert.Equal(t, 4, reg.Config().GetGroupMax())

	_, ok := registry.Get(reg, registry.ThemeStoreKey)
	assert.False(t, ok)

	themes := theme.NewStore(theme.Default())
	registry.Set(reg, registry.ThemeStoreKey, themes)

	got, ok := registry.Get(reg, registry.ThemeStoreKey)
	require.True(t, ok)
	assert.Same(t, themes, got)
}

func TestRegistry_TypeMismatch(t *testing.T) {
	reg := registry.New(&config.Config{})
	registry.Set(reg, registry.Key[string]("mount.store"), "not a store")

	_, ok := registry.Get(reg, registry.MountStoreKey)
	assert.False(t, ok)
}

func TestMustGet(t *testing.T) {
	reg := registry.New(&config.Config{})
	assert.Panics(t, func() { registry.MustGet(reg, registry.MountStoreKey) })

	mounts := mount.NewStore()
	registry.Set(reg, registry.MountStoreKey, mounts)
	assert.Same(t, mounts, registry.MustGet(reg, registry.MountStoreKey))
}
