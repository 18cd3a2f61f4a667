package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/nfrund/avatarkit/internal/avatar"
	"github.com/nfrund/avatarkit/internal/identity"
	"github.com/nfrund/avatarkit/internal/modules/avatars"
	"github.com/spf13/cobra"
)

func newColorCmd(opts *options) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "color name...",
		Short: "Show the identity colour and initials for names",
		Long: `Print the palette colour and initials each name maps to. The mapping
is stable: the same name always gets the same colour.

Examples:
  avatarkit color "Ada Lovelace" "Grace Hopper"
  avatarkit color --format json "Ada Lovelace"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			th, err := opts.loadTheme()
			if err != nil {
				return err
			}

			results := make([]avatars.ColorResponse, len(args))
			for i, name := range args {
				results[i] = avatars.ColorResponse{
					Name:     name,
					Color:    identity.ColorFor(name, th.Palette),
					Initials: identity.InitialsFor(name),
				}
			}

			out := cmd.OutOrStdout()
			switch format {
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(results)
			case "table":
				for _, r := range results {
					fmt.Fprintf(out, "%s %s %s\n",
						swatch(r.Initials, r.Color, avatar.InitialsForeground),
						styleHex.Render(r.Color),
						styleName.Render(r.Name),
					)
				}
				fmt.Fprintln(out, styleDim.Render(fmt.Sprintf("%d colours in palette %q", len(th.Palette), th.Name)))
				return nil
			default:
				return fmt.Errorf("unknown format %q: use table or json", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "output format: table or json")
	return cmd
}
