package cmd

import (
	"errors"

	"github.com/nfrund/avatarkit/internal/avatar"
	"github.com/nfrund/avatarkit/internal/modules/avatars"
	"github.com/spf13/cobra"
)

func newRenderCmd(opts *options) *cobra.Command {
	var (
		req    avatars.AvatarRequest
		loaded bool
		failed bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print one avatar as an HTML fragment",
		Long: `Render a single avatar to standard output.

An avatar with an image starts out loading. Use --loaded or --failed to
render it as it looks after the browser reports the image event.

Examples:
  avatarkit render --name "Ada Lovelace"
  avatarkit render --image https://example.com/ada.png --name "Ada Lovelace" --loaded
  avatarkit render --image https://example.com/broken.png --name "Ada Lovelace" --failed
  avatarkit render --fallback "?" --size xl --shape square --status busy --show-status`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if loaded && failed {
				return errors.New("--loaded and --failed are mutually exclusive")
			}
			th, err := opts.loadTheme()
			if err != nil {
				return err
			}
			spec, err := req.ToSpec()
			if err != nil {
				return err
			}

			m := avatar.NewMachine(spec)
			switch {
			case loaded:
				m.OnLoad()
			case failed:
				m.OnError()
			}

			out := cmd.OutOrStdout()
			if err := avatar.Render(m.View(th), avatar.Hooks{}).Render(out); err != nil {
				return err
			}
			_, err = out.Write([]byte("\n"))
			return err
		},
	}

	f := cmd.Flags()
	f.StringVar(&req.Name, "name", "", "display name used for initials and the label")
	f.StringVar(&req.Image, "image", "", "image URL (http, https, data or root-relative)")
	f.StringVar(&req.Alt, "alt", "", "alternative text for the image")
	f.StringVar(&req.Fallback, "fallback", "", "glyph shown when there is no image or name")
	f.StringVar(&req.Size, "size", "md", "xs, sm, md, lg, xl or xxl")
	f.StringVar(&req.Shape, "shape", "circular", "circular, rounded or square")
	f.StringVar(&req.Status, "status", "none", "none, online, offline, away or busy")
	f.BoolVar(&req.ShowStatus, "show-status", false, "draw the status indicator")
	f.BoolVar(&req.Interactive, "interactive", false, "render as a focusable button")
	f.BoolVar(&req.Loading, "loading", false, "force the loading skeleton")
	f.BoolVar(&loaded, "loaded", false, "simulate a successful image load")
	f.BoolVar(&failed, "failed", false, "simulate an image load error")
	return cmd
}
