package cmd

import (
	"github.com/nfrund/avatarkit/internal/avatargroup"
	"github.com/nfrund/avatarkit/internal/modules/avatars"
	"github.com/spf13/cobra"
)

func newGroupCmd(opts *options) *cobra.Command {
	var req avatars.GroupRequest

	cmd := &cobra.Command{
		Use:   "group [name...]",
		Short: "Print a stacked avatar group as an HTML fragment",
		Long: `Render a group of overlapping avatars. Members beyond --max are
summarised by a "+N" badge.

Examples:
  avatarkit group Ada Grace Linus Ken Rob Barbara --max 4
  avatarkit group Ada Grace --image https://example.com/ada.png --spacing tight`,
		RunE: func(cmd *cobra.Command, args []string) error {
			th, err := opts.loadTheme()
			if err != nil {
				return err
			}
			req.Names = append(req.Names, args...)
			specs, size, spacing, err := req.ToSpecs()
			if err != nil {
				return err
			}
			comp, err := avatargroup.Compose(specs, req.Max, size, spacing)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err := avatargroup.Render(th, comp, nil).Render(out); err != nil {
				return err
			}
			_, err = out.Write([]byte("\n"))
			return err
		},
	}

	f := cmd.Flags()
	f.StringArrayVar(&req.Images, "image", nil, "image URL for the member at the same position (repeatable)")
	f.IntVar(&req.Max, "max", 5, "maximum number of avatars shown before the overflow badge")
	f.StringVar(&req.Size, "size", "md", "xs, sm, md, lg, xl or xxl")
	f.StringVar(&req.Spacing, "spacing", "normal", "tight, normal or loose")
	return cmd
}
