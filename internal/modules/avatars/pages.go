package avatars

import (
	"github.com/nfrund/avatarkit/internal/avatar"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func previewContent(spec avatar.Spec, rendered g.Node) g.Node {
	return h.Section(
		h.Class("avatar-preview"),
		h.H1(g.Text("Avatar preview")),
		h.Div(h.Class("avatar-preview-stage"), rendered),
		h.Dl(
			h.Class("avatar-preview-spec"),
			row("Name", spec.DisplayName),
			row("Image", spec.ImageURL),
			row("Size", spec.Size.String()),
			row("Shape", spec.Shape.String()),
			g.If(spec.ShowStatus, row("Status", spec.Status.String())),
			g.If(spec.Interactive, row("Interactive", "yes")),
		),
	)
}

func row(term, value string) g.Node {
	if value == "" {
		value = "none"
	}
	return g.Group{h.Dt(g.Text(term)), h.Dd(g.Text(value))}
}
