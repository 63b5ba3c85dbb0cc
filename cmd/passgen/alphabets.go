package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/passwords/pkg/randsource"
)

func newAlphabetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "alphabets",
		Short: "Show the character alphabets used for each class",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version: %s\n", randsource.AlphabetVersion)
			for _, class := range randsource.Classes() {
				fmt.Fprintf(out, "%-7s %s\n", class.String()+":", class.Alphabet())
			}
			return nil
		},
	}
}
