package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/nfrund/avatarkit/internal/app"
	"github.com/nfrund/avatarkit/internal/config"
	"github.com/nfrund/avatarkit/internal/logging"
	"github.com/spf13/cobra"
)

func newServeCmd(opts *options) *cobra.Command {
	var (
		addr     string
		basePath string
		watch    bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the avatar HTTP server",
		Long: `Run the HTTP server. Configuration comes from the environment and an
optional .env file; flags given here take precedence.

Examples:
  avatarkit serve
  avatarkit serve --addr :9000 --theme ./theme.toml --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.New()
			if cmd.Flags().Changed("addr") {
				cfg.ServerAddr = addr
			}
			if cmd.Flags().Changed("base-path") {
				cfg.BasePath = basePath
			}
			if opts.themeFile != "" {
				cfg.ThemeFile = opts.themeFile
			}
			if watch {
				cfg.ThemeWatch = true
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = opts.logLevel
			}
			if cmd.Flags().Changed("log-format") {
				cfg.LogFormat = opts.logFormat
			}
			logging.NewWithWriter(cmd.ErrOrStderr(), cfg.LogFormat, cfg.LogLevel)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return app.Run(ctx, cfg, version)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&basePath, "base-path", "/avatars", "path prefix for avatar routes")
	cmd.Flags().BoolVar(&watch, "watch", false, "reload the theme file when it changes")
	return cmd
}
