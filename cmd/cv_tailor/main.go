// Package main provides the cv_tailor entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/cv-tailor/internal/config"
	"github.com/jonathan/cv-tailor/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "cv_tailor",
	Short: "Deterministic scoring and arbitration for career documents",
	Long:  "cv_tailor scores resume bullets and documents across four analysis stages, arbitrates LLM rewrites against their originals, and guarantees that no accepted rewrite ever scores below what it replaces.",
}

var (
	cfgPath  string
	flagJSON bool
	flagDbg  bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to a cv-tailor.yaml config file")
	rootCmd.PersistentFlags().BoolVarP(&flagDbg, "debug", "d", false, "Verbose/debug output")
	rootCmd.PersistentFlags().BoolVarP(&flagJSON, "json-log", "j", false, "JSON format for logging")
}

// loadConfig merges the config file, environment, and logging flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = flagDbg
	}
	if cmd.Flags().Changed("json-log") {
		cfg.JSONLog = flagJSON
	}
	// The conventional env var name takes over when nothing else set a key.
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	return logger.New(cfg.JSONLog, cfg.Debug)
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
