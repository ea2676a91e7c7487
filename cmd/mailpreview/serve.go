package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/mailpreview/app/devserver"
	"github.com/dmitrymomot/mailpreview/core/config"
	"github.com/dmitrymomot/mailpreview/internal/demo"
	"github.com/dmitrymomot/mailpreview/mailpreview"
)

type serveOptions struct {
	addr   string
	debug  bool
	noDemo bool
}

func newServeCmd(root *rootOptions) *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the development server",
		Long: `Serve hosts the preview pages under MAIL_PREVIEW_MOUNT_PATH
(default /mail-preview). The pages answer 403 unless DEBUG is enabled.

Examples:
  DEBUG=true mailpreview serve
  mailpreview serve --debug --addr 127.0.0.1:9000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadServeConfig(cmd, root, opts)
			if err != nil {
				return err
			}

			reg := mailpreview.NewRegistry()
			if !opts.noDemo {
				demo.Register(reg)
			}

			app, err := devserver.NewApp(devserver.WithConfig(cfg), devserver.WithRegistry(reg))
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return app.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address (overrides SERVER_ADDR)")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "enable the preview pages (overrides DEBUG)")
	cmd.Flags().BoolVar(&opts.noDemo, "no-demo", false, "do not register the built-in demo previews")
	return cmd
}

// loadServeConfig reads the environment and applies the flags that were set explicitly.
func loadServeConfig(cmd *cobra.Command, root *rootOptions, opts *serveOptions) (devserver.Config, error) {
	var cfg devserver.Config
	if err := config.Load(&cfg); err != nil {
		return cfg, err
	}

	if opts.addr != "" {
		cfg.Server.Addr = opts.addr
	}
	if cmd.Flags().Changed("debug") {
		cfg.MailPreview.Debug = opts.debug
	}
	if f := cmd.Flag("log-level"); f != nil && f.Changed {
		cfg.LogLevel = root.logLevel
	}
	return cfg, nil
}
