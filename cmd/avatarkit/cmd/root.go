package cmd

import (
	"fmt"
	"os"

	"github.com/nfrund/avatarkit/internal/logging"
	"github.com/nfrund/avatarkit/internal/theme"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// options are the persistent flags shared by every command.
type options struct {
	themeFile string
	logLevel  string
	logFormat string
	fs        afero.Fs
}

// loadTheme returns the theme named by --theme, or the built-in one.
func (o *options) loadTheme() (theme.Theme, error) {
	if o.themeFile == "" {
		return theme.Default(), nil
	}
	return theme.Load(o.fs, o.themeFile)
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	opts := &options{fs: fs}

	root := &cobra.Command{
		Use:   "avatarkit",
		Short: "Render identity avatars",
		Long: `avatarkit renders user avatars: an image, initials on a colour derived
from the name, a fallback glyph or a default icon, with an optional status dot.

Available commands:
  serve      Run the HTTP server with htmx-driven avatar fragments
  render     Print one avatar as an HTML fragment
  group      Print a stacked avatar group as an HTML fragment
  color      Show the identity colour and initials for names
  initials   Write an initials badge as a PNG

Use "avatarkit [command] --help" for more information about a specific command.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.NewWithWriter(cmd.ErrOrStderr(), opts.logFormat, opts.logLevel)
		},
	}

	root.PersistentFlags().StringVar(&opts.themeFile, "theme", "", "theme file (.toml or .json); defaults to the built-in theme")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	root.PersistentFlags().StringVar(&opts.logFormat, "log-format", "text", "log format: text or json")

	root.AddCommand(
		newVersionCmd(),
		newServeCmd(opts),
		newRenderCmd(opts),
		newGroupCmd(opts),
		newColorCmd(opts),
		newInitialsCmd(opts),
	)
	return root
}

// Execute executes the root command
func Execute() {
	if err := newRootCmd(afero.NewOsFs()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styleError.Render("✗")+" "+err.Error())
		os.Exit(1)
	}
}
