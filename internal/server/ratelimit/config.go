package ratelimit

import (
	"net/http"
	"os"
	"strconv"
	"time"
)

// Tier is one request budget: a steady refill of Limit tokens per Window,
// with Burst tokens spendable immediately. Burst 0 means the full Limit is
// available up front.
type Tier struct {
	Name   string
	Limit  int
	Window time.Duration
	Burst  int
}

// Config holds the limiter settings. The API has exactly three budget
// classes: tailoring calls the generation provider and is scarce, the pure
// scoring endpoints are cheap, and everything else falls under the default
// tier. The health check is never limited.
type Config struct {
	Enabled       bool
	Tailor        Tier
	Scoring       Tier
	Batch         Tier
	Default       Tier
	SweepInterval time.Duration
}

// LoadConfig reads the limiter settings from the environment, falling back
// to the built-in tiers.
func LoadConfig() *Config {
	return &Config{
		Enabled: envBool("RATE_LIMIT_ENABLED", true),
		Tailor:  Tier{Name: "tailor", Limit: 30, Window: time.Hour, Burst: 5},
		Scoring: Tier{Name: "scoring", Limit: 300, Window: time.Minute, Burst: 30},
		Batch:   Tier{Name: "batch", Limit: 60, Window: time.Minute, Burst: 10},
		Default: Tier{
			Name:   "default",
			Limit:  envInt("RATE_LIMIT_DEFAULT_LIMIT", 1000),
			Window: envDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		},
		SweepInterval: envDuration("RATE_LIMIT_SWEEP_INTERVAL", 5*time.Minute),
	}
}

// TierFor maps a request to its budget. The second return is false when the
// request is exempt from limiting entirely.
func (c *Config) TierFor(method, path string) (Tier, bool) {
	if method == http.MethodGet && path == "/health" {
		return Tier{}, false
	}
	if method != http.MethodPost {
		return c.Default, true
	}
	switch path {
	case "/tailor":
		return c.Tailor, true
	case "/analyze", "/arbitrate":
		return c.Scoring, true
	case "/batch":
		return c.Batch, true
	}
	return c.Default, true
}

func envInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
