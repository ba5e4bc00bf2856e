package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/cv-tailor/internal/generation"
	"github.com/jonathan/cv-tailor/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server exposing the scorers, the arbiter, and the
document pipeline. Without an API key the /tailor endpoint only accepts
pre-generated candidate documents.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Server.Addr = addr
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	var gen generation.Generator
	if cfg.APIKey != "" {
		gen, err = generation.NewGeminiGenerator(cmd.Context(), generation.DefaultConfig(), cfg.APIKey)
		if err != nil {
			return err
		}
	} else {
		log.Warn("no API key configured; /tailor requires pre-generated candidates",
			zap.String("hint", "set GEMINI_API_KEY or api-key in config"))
	}

	return server.New(cfg, log, gen).Start()
}
