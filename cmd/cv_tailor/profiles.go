package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/cv-tailor/internal/report"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List the registered weight profiles",
	Long:  "Prints every registered weight profile with its dimensions, weights, and fallback redistribution.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		printer := report.NewPrinter(cmd.OutOrStdout(), true)
		return printer.PrintProfiles()
	},
}

func init() {
	rootCmd.AddCommand(profilesCmd)
}
