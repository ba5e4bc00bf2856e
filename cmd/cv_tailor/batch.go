package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-tailor/internal/arbiter"
	"github.com/jonathan/cv-tailor/internal/report"
)

var batchJSON bool

var batchCmd = &cobra.Command{
	Use:   "batch <originals-file> <candidates-file>",
	Short: "Arbitrate two files of text units pairwise",
	Long: `Reads one text unit per line from each file and arbitrates them
pairwise. When the candidates file is shorter, the remaining originals
stand unopposed; extra candidates count as new units.`,
	Args: cobra.ExactArgs(2),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().BoolVar(&batchJSON, "json", false, "Print the raw result as JSON")
	rootCmd.AddCommand(batchCmd)
}

// readUnits loads one text unit per non-empty line.
func readUnits(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var units []string
	for _, line := range strings.Split(string(data), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			units = append(units, line)
		}
	}
	return units, nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	originals, err := readUnits(args[0])
	if err != nil {
		return err
	}
	candidates, err := readUnits(args[1])
	if err != nil {
		return err
	}

	result := arbiter.RunBatch(originals, candidates)

	if batchJSON {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}
	printer := report.NewPrinter(cmd.OutOrStdout(), true)
	return printer.PrintBatch(&result)
}
