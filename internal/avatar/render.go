package avatar

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	"maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"
)

// Hooks connects a rendered avatar to its server-side mount. The zero value
// renders a static avatar.
type Hooks struct {
	// ID is the DOM id of the root element, used as the swap target.
	ID string
	// LoadURL and ErrorURL receive the image load and error events and
	// respond with the re-rendered avatar, which replaces the root element.
	LoadURL  string
	ErrorURL string
	// ClickURL receives clicks on interactive avatars.
	ClickURL string
}

// personPath is a generic silhouette on a 24x24 grid.
const personPath = "M12 12c2.7 0 4.8-2.1 4.8-4.8S14.7 2.4 12 2.4 7.2 4.5 7.2 7.2 9.3 12 12 12zm0 2.4c-3.2 0-9.6 1.6-9.6 4.8v2.4h19.2v-2.4c0-3.2-6.4-4.8-9.6-4.8z"

// Render draws v as an HTML fragment.
func Render(v View, hooks Hooks) g.Node {
	px := v.Size.Pixels()

	return h.Div(
		g.If(hooks.ID != "", h.ID(hooks.ID)),
		components.Classes{
			"avatar":                           true,
			"avatar-" + v.Size.String():        true,
			"avatar-" + v.Shape.String():       true,
			"avatar-interactive":               v.Interactive,
			"avatar-state-" + v.State.String(): true,
		},
		h.Data("state", v.State.String()),
		h.Role(roleFor(v)),
		h.Aria("label", v.Label),
		g.If(v.State == StateLoading, h.Aria("busy", "true")),
		h.Style(styles(
			"position:relative",
			"display:inline-flex",
			"flex-shrink:0",
			fmt.Sprintf("width:%dpx", px),
			fmt.Sprintf("height:%dpx", px),
			cursorFor(v),
		)),
		g.If(v.Interactive, h.TabIndex("0")),
		g.If(v.Interactive && hooks.ClickURL != "", g.Group{
			hx.Post(hooks.ClickURL),
			hx.Trigger("click, keyup[key=='Enter']"),
			hx.Swap("none"),
		}),
		content(v, hooks),
		overlay(v.Overlay),
	)
}

func content(v View, hooks Hooks) g.Node {
	face := []string{
		"display:flex",
		"align-items:center",
		"justify-content:center",
		"width:100%",
		"height:100%",
		"overflow:hidden",
		"border-radius:" + v.Radius,
	}

	switch v.State {
	case StateLoading:
		return g.Group{
			h.Span(
				h.Class("avatar-skeleton animate-pulse"),
				h.Style(styles(append(face, "background:"+v.Background)...)),
			),
			g.If(v.ImageURL != "", h.Img(
				h.Src(v.ImageURL),
				h.Alt(v.Alt),
				h.Style("display:none"),
				eventHook("onload", hooks.LoadURL, hooks.ID),
				eventHook("onerror", hooks.ErrorURL, hooks.ID),
			)),
		}

	case StateImageShown:
		return h.Img(
			h.Class("avatar-image"),
			h.Src(v.ImageURL),
			h.Alt(v.Alt),
			h.Style(styles(append(face, "object-fit:cover")...)),
			eventHook("onerror", hooks.ErrorURL, hooks.ID),
		)

	case StateInitials, StateFallback:
		return h.Span(
			h.Class("avatar-text"),
			h.Style(styles(append(face,
				"background:"+v.Background,
				"color:"+v.Foreground,
				"font-weight:600",
				fmt.Sprintf("font-size:%dpx", v.Size.Pixels()*2/5),
				"user-select:none",
			)...)),
			g.Text(v.Text),
		)

	default:
		return h.Span(
			h.Class("avatar-icon"),
			h.Style(styles(append(face, "background:"+v.Background, "color:"+v.Foreground)...)),
			g.El("svg",
				g.Attr("viewBox", "0 0 24 24"),
				g.Attr("width", "60%"),
				g.Attr("height", "60%"),
				g.Attr("fill", "currentColor"),
				g.Attr("aria-hidden", "true"),
				g.El("path", g.Attr("d", personPath)),
			),
		)
	}
}

func overlay(o *Overlay) g.Node {
	if o == nil {
		return nil
	}
	return h.Span(
		h.Class("avatar-status avatar-status-"+o.Status.String()),
		h.Data("status", o.Status.String()),
		h.Title(o.Status.String()),
		h.Style(styles(
			"position:absolute",
			fmt.Sprintf("right:%dpx", o.Offset),
			fmt.Sprintf("bottom:%dpx", o.Offset),
			fmt.Sprintf("width:%dpx", o.Diameter),
			fmt.Sprintf("height:%dpx", o.Diameter),
			"border-radius:50%",
			"border:2px solid #FFFFFF",
			"background:"+o.Color,
		)),
	)
}

// eventHook posts an image event to url and swaps the response over the
// avatar root. Without a mount the event is ignored.
func eventHook(attr, url, target string) g.Node {
	if url == "" || target == "" {
		return nil
	}
	return g.Attr(attr, fmt.Sprintf(
		"htmx.ajax('POST','%s',{target:'#%s',swap:'outerHTML'})", url, target,
	))
}

func roleFor(v View) string {
	if v.Interactive {
		return "button"
	}
	return "img"
}

func cursorFor(v View) string {
	if v.Interactive {
		return "cursor:pointer"
	}
	return "cursor:default"
}

func styles(decls ...string) string {
	return strings.Join(decls, ";")
}
