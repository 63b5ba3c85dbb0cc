package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/passwords/pkg/randsource"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passgen",
		Short: "Generate random passwords from character class quotas",
		Long: `passgen composes passwords from a number of upper case letters, lower case
letters, symbols and digits drawn from a cryptographically secure source.

  # 4 upper, 8 lower, 2 symbols and 2 digits (defaults, see PASSWORD_* variables)
  $ passgen generate

  # Serve the HTTP API on SERVER_ADDR
  $ passgen serve`,
		Version:       randsource.AlphabetVersion,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.AddCommand(
		newGenerateCmd(),
		newServeCmd(),
		newAlphabetsCmd(),
	)

	return cmd
}
