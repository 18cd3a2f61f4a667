package avatargroup

import (
	"fmt"

	"github.com/nfrund/avatarkit/internal/avatar"
	"github.com/nfrund/avatarkit/internal/theme"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Viewer resolves an avatar's current view. *avatar.Machine implements it.
type Viewer interface {
	View(th theme.Theme) avatar.View
}

// Mounter supplies the viewer and hooks for one visible slot. Servers use it
// to register each avatar so image events can be reported back.
type Mounter func(slot Slot) (Viewer, avatar.Hooks)

// Static mounts every slot as a fresh, unconnected machine.
func Static(slot Slot) (Viewer, avatar.Hooks) {
	return avatar.NewMachine(slot.Spec), avatar.Hooks{}
}

// Render draws the composition as a horizontal stack.
func Render(th theme.Theme, c Composition, mount Mounter) g.Node {
	if mount == nil {
		mount = Static
	}

	return h.Div(
		h.Class("avatar-group avatar-group-"+c.Spacing.String()),
		h.Role("group"),
		h.Data("hidden", fmt.Sprint(c.Hidden)),
		h.Style("display:flex;flex-direction:row;align-items:center"),
		g.Map(c.Visible, func(slot Slot) g.Node {
			v, hooks := mount(slot)
			return h.Div(
				h.Class("avatar-group-item"),
				h.Data("priority", fmt.Sprint(slot.Priority)),
				h.Style(slotStyle(slot.Priority, slot.Offset)),
				avatar.Render(v.View(th), hooks),
			)
		}),
		overflowBadge(th, c.Overflow),
	)
}

func overflowBadge(th theme.Theme, o *Overflow) g.Node {
	if o == nil {
		return nil
	}
	px := o.Size.Pixels()
	return h.Div(
		h.Class("avatar-group-item avatar-group-overflow"),
		h.Data("priority", fmt.Sprint(o.Priority)),
		h.Style(slotStyle(o.Priority, o.Offset)),
		h.Span(
			h.Class("avatar avatar-"+o.Size.String()+" avatar-circular"),
			h.Aria("label", fmt.Sprintf("%d more", o.Hidden)),
			h.Style(fmt.Sprintf(
				"display:inline-flex;align-items:center;justify-content:center;width:%dpx;height:%dpx;border-radius:50%%;background:%s;color:%s;font-size:%dpx;font-weight:600",
				px, px, th.Colors.Neutral, th.Colors.TextPrimary, px*2/5,
			)),
			g.Text(o.Label),
		),
	)
}

func slotStyle(priority, offset int) string {
	return fmt.Sprintf("position:relative;z-index:%d;margin-left:%dpx", priority, offset)
}
