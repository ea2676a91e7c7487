package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/mailpreview/core/logger"
)

type rootOptions struct {
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "mailpreview",
		Short: "Preview generated emails in the browser",
		Long: `mailpreview renders the emails produced by registered mailer previews
so they can be checked in a browser without sending anything.

Quick Start:
  mailpreview scan <dir>     List preview classes declared in a directory
  mailpreview gen            Generate registration code for Go previews
  mailpreview serve          Start the development server`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.logLevel, "log-level", "l", "info", "log level (debug, info, warn, error)")

	cmd.AddCommand(
		newScanCmd(opts),
		newGenCmd(opts),
		newServeCmd(opts),
	)
	return cmd
}

// cliLogger logs to the command's stderr at the configured level.
func (o *rootOptions) cliLogger(cmd *cobra.Command) (*slog.Logger, error) {
	level, err := logger.ParseLevel(o.logLevel)
	if err != nil {
		return nil, err
	}
	return logger.New(
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithLevel(level),
		logger.WithAttr(logger.Component("cli")),
	), nil
}
