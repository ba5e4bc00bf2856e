package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-tailor/internal/report"
	"github.com/jonathan/cv-tailor/internal/scoring"
)

var analyzeText string

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Score a text unit across all four analysis stages",
	Long: `Runs the competency-indicator, parser-compatibility, readability, and
domain-signal analyzers against one text unit and prints the stage
breakdown with the weighted total.

The text comes from --text, a file argument, or stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeText, "text", "t", "", "Text unit to score (overrides the file argument)")
	rootCmd.AddCommand(analyzeCmd)
}

// readTextInput resolves the unit text from flag, file argument, or stdin.
func readTextInput(flag string, args []string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	text, err := readTextInput(analyzeText, args)
	if err != nil {
		return err
	}
	text = strings.TrimSpace(text)

	result := scoring.Analyze(text)
	printer := report.NewPrinter(cmd.OutOrStdout(), true)
	return printer.PrintAnalysis(&result)
}
