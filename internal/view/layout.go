package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"
)

// HTMXSrc is the htmx build the pages load. Avatar image and click hooks
// rely on htmx.ajax being available.
const HTMXSrc = "https://unpkg.com/htmx.org@2.0.4"

// PageTitle handles the conditional logic for the page title.
func PageTitle(title string) string {
	if title != "" {
		return title + " - avatarkit"
	}
	return "avatarkit"
}

// Base wraps content in the HTML document shell.
func Base(title string, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return components.HTML5(components.HTML5Props{
			Title:    PageTitle(title),
			Language: "en",
			Head: []g.Node{
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.Script(h.Src(HTMXSrc)),
				h.StyleEl(g.Raw(`@keyframes pulse{50%{opacity:.5}}.animate-pulse{animation:pulse 2s cubic-bezier(.4,0,.6,1) infinite}`)),
			},
			Body: []g.Node{
				h.Main(
					h.Class("container"),
					AdaptTemplToGomponent(ctx, content),
				),
			},
		}).Render(w)
	})
}
