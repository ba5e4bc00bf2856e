package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-tailor/internal/arbiter"
	"github.com/jonathan/cv-tailor/internal/report"
)

var (
	arbitrateOriginal  string
	arbitrateCandidate string
)

var arbitrateCmd = &cobra.Command{
	Use:   "arbitrate",
	Short: "Decide between an original text unit and a rewrite",
	Long: `Scores both versions and keeps the one with the higher total. A rewrite
that loses any quantifiable achievement is rejected outright, whatever
its score; ties keep the original.`,
	RunE: runArbitrate,
}

func init() {
	arbitrateCmd.Flags().StringVarP(&arbitrateOriginal, "original", "o", "", "Original text, or @path to read from a file (required)")
	arbitrateCmd.Flags().StringVarP(&arbitrateCandidate, "candidate", "c", "", "Candidate rewrite, or @path to read from a file (required)")
	_ = arbitrateCmd.MarkFlagRequired("original")
	_ = arbitrateCmd.MarkFlagRequired("candidate")
	rootCmd.AddCommand(arbitrateCmd)
}

// resolveArg returns the value itself, or the file contents when the value
// starts with @.
func resolveArg(value string) (string, error) {
	if !strings.HasPrefix(value, "@") {
		return value, nil
	}
	path := strings.TrimPrefix(value, "@")
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return strings.TrimSpace(string(data)), nil
}

func runArbitrate(cmd *cobra.Command, _ []string) error {
	original, err := resolveArg(arbitrateOriginal)
	if err != nil {
		return err
	}
	candidate, err := resolveArg(arbitrateCandidate)
	if err != nil {
		return err
	}

	decision := arbiter.Arbitrate(original, candidate)
	printer := report.NewPrinter(cmd.OutOrStdout(), true)
	printer.PrintDecision(&decision)
	return nil
}
