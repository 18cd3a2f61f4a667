package avatars

import (
	"context"
	"time"

	"github.com/nfrund/avatarkit/internal/avatar"
	"github.com/nfrund/avatarkit/internal/mount"
	"github.com/nfrund/avatarkit/internal/pubsub"
)

// Clicked is published when an interactive avatar is activated.
var Clicked = pubsub.NewEvent[Click]("avatar.clicked", "An interactive avatar was clicked or activated from the keyboard")

// Click is the payload of Clicked.
type Click struct {
	MountID     string    `json:"mount_id"`
	DisplayName string    `json:"display_name,omitempty"`
	At          time.Time `json:"at"`
}

// ClickPublisher returns a click handler that publishes Clicked to p.
func ClickPublisher(p pubsub.Publisher) mount.ClickFunc {
	return func(ctx context.Context, id string, spec avatar.Spec) error {
		return pubsub.Publish(ctx, p, Clicked, id, Click{
			MountID:     id,
			DisplayName: spec.DisplayName,
			At:          time.Now().UTC(),
		})
	}
}
