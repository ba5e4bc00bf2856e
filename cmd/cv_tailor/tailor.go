package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/jonathan/cv-tailor/internal/config"
	"github.com/jonathan/cv-tailor/internal/generation"
	"github.com/jonathan/cv-tailor/internal/ingestion"
	"github.com/jonathan/cv-tailor/internal/pipeline"
	"github.com/jonathan/cv-tailor/internal/report"
	"github.com/jonathan/cv-tailor/internal/sections"
)

var (
	tailorCandidatePath string
	tailorOutputPath    string
	tailorOffline       bool
)

var tailorCmd = &cobra.Command{
	Use:   "tailor <document-file>",
	Short: "Tailor a whole document section by section",
	Long: `Splits the document into sections, produces a rewrite candidate for
each, and arbitrates every candidate against its original so the final
document never scores below the input.

Candidates come from a pre-generated document (--candidate), the Gemini
API (requires an API key), or the built-in rule-based rewriter
(--offline). A job posting, given via config as a file or URL, adds
keyword matching to the document score.`,
	Args: cobra.ExactArgs(1),
	RunE: runTailor,
}

func init() {
	tailorCmd.Flags().StringVarP(&tailorCandidatePath, "candidate", "c", "", "Path to a pre-generated candidate document")
	tailorCmd.Flags().StringVarP(&tailorOutputPath, "output", "o", "", "Write the final document to this file instead of stdout")
	tailorCmd.Flags().BoolVar(&tailorOffline, "offline", false, "Use the rule-based rewriter instead of the Gemini API")
	rootCmd.AddCommand(tailorCmd)
}

// loadJobText resolves the job posting from the configured file or URL.
// URL fetches go through the bbolt-backed cache.
func loadJobText(ctx context.Context, cfg *config.Config) (string, error) {
	switch {
	case cfg.Job != "":
		data, err := os.ReadFile(cfg.Job)
		if err != nil {
			return "", fmt.Errorf("reading job posting %s: %w", cfg.Job, err)
		}
		return string(data), nil
	case cfg.JobURL != "":
		cache, err := ingestion.OpenCache(cfg.CachePath, cfg.CacheTTL)
		if err != nil {
			return "", err
		}
		defer func() { _ = cache.Close() }()
		return cache.FetchJobPostingCached(ctx, cfg.JobURL)
	default:
		return "", nil
	}
}

// buildGenerator picks the candidate source for this run.
func buildGenerator(ctx context.Context, cfg *config.Config) (generation.Generator, error) {
	if tailorOffline {
		return generation.NewMockGenerator(), nil
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("no API key configured; pass --offline or supply --candidate")
	}
	genCfg := generation.DefaultConfig()
	if cfg.Model != "" {
		genCfg.Models[generation.ModelTier(cfg.ModelTier)] = cfg.Model
	}
	return generation.NewGeminiGenerator(ctx, genCfg, cfg.APIKey)
}

func runTailor(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading document %s: %w", args[0], err)
	}
	document := strings.TrimSpace(string(data))

	jobText, err := loadJobText(ctx, cfg)
	if err != nil {
		return err
	}

	opts := pipeline.RunOptions{
		Document: document,
		JobText:  jobText,
		Logger:   log,
	}
	if tailorCandidatePath != "" {
		candidate, err := os.ReadFile(tailorCandidatePath)
		if err != nil {
			return fmt.Errorf("reading candidate %s: %w", tailorCandidatePath, err)
		}
		opts.Candidate = strings.TrimSpace(string(candidate))
	} else {
		gen, err := buildGenerator(ctx, cfg)
		if err != nil {
			return err
		}
		defer func() { _ = gen.Close() }()
		opts.Generator = gen

		// Generation dominates the runtime, so the bar tracks sections.
		bar := progressbar.NewOptions(len(sections.Split(document)),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionSetDescription("[cyan]Tailoring[reset]"),
			progressbar.OptionOnCompletion(func() {
				fmt.Println()
			}),
		)
		opts.OnProgress = func(event pipeline.ProgressEvent) {
			if event.Step == "generate" {
				_ = bar.Add(1)
			}
		}
	}

	result, err := pipeline.Run(ctx, opts)
	if err != nil {
		return err
	}

	printer := report.NewPrinter(cmd.OutOrStdout(), true)
	if err := printer.PrintDocument(result); err != nil {
		return err
	}

	if tailorOutputPath != "" {
		if err := os.WriteFile(tailorOutputPath, []byte(result.FinalDocument), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", tailorOutputPath, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Final document written to %s\n", tailorOutputPath)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n", result.FinalDocument)
	return nil
}
