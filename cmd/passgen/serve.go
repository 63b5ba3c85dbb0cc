package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/passwords/app/passgen"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the password HTTP API",
		Long: `Serve the password HTTP API until interrupted. Configuration comes from the
environment (and a .env file): SERVER_*, PASSWORD_*, APP_*, LOG_LEVEL, LOG_FORMAT.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app, err := passgen.NewApp()
			if err != nil {
				return err
			}
			return app.Run(ctx)
		},
	}
}
