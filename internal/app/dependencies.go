package app

import (
	"github.com/nfrund/avatarkit/internal/modules/avatars"
	"github.com/nfrund/avatarkit/internal/mount"
	"github.com/nfrund/avatarkit/internal/pubsub"
	"github.com/nfrund/avatarkit/internal/rendering"
	"github.com/nfrund/avatarkit/internal/theme"
)

// Dependencies holds the core services that are required by the application's modules.
// This struct is passed from the main application entrypoint to wire up the modules.
type Dependencies struct {
	Publisher  pubsub.Publisher
	Subscriber pubsub.Subscriber
	Renderer   rendering.Renderer
	Themes     *theme.Store
	Mounts     *mount.Store
}

// avatarsDeps creates the dependency struct for the avatars module.
func avatarsDeps(deps Dependencies) avatars.Dependencies {
	return avatars.Dependencies{
		Subscriber: deps.Subscriber,
		Renderer:   deps.Renderer,
		Themes:     deps.Themes,
		Mounts:     deps.Mounts,
	}
}
