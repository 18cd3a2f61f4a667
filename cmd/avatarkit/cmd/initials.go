package cmd

import (
	"fmt"
	"io"

	"github.com/nfrund/avatarkit/internal/avatar"
	"github.com/nfrund/avatarkit/internal/raster"
	"github.com/spf13/cobra"
)

func newInitialsCmd(opts *options) *cobra.Command {
	var (
		px    int
		shape string
		out   string
	)

	cmd := &cobra.Command{
		Use:   "initials name",
		Short: "Write an initials badge as a PNG",
		Long: `Rasterise the initials avatar for a name. The badge uses the same
colour the HTML avatar would.

Examples:
  avatarkit initials "Ada Lovelace" --out ada.png
  avatarkit initials "Grace Hopper" --px 128 --shape square > grace.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			th, err := opts.loadTheme()
			if err != nil {
				return err
			}
			s, err := avatar.ParseShape(shape)
			if err != nil {
				return err
			}
			img, err := raster.Initials(th, args[0], px, s)
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if out != "" {
				f, err := opts.fs.Create(out)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}
			return raster.EncodePNG(w, img)
		},
	}

	cmd.Flags().IntVar(&px, "px", 64, "badge size in pixels (8 to 512)")
	cmd.Flags().StringVar(&shape, "shape", "circular", "circular, rounded or square")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file; standard output when empty")
	return cmd
}
