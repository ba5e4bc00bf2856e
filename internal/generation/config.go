// Package generation provides the external text-generation collaborator:
// an abstraction over rewrite providers, a Gemini-backed implementation,
// and a deterministic mock for tests. The scoring core never calls this
// package; callers obtain a candidate here and pass plain strings into the
// arbiter.
package generation

// ModelTier represents the complexity/capability level of a model
type ModelTier string

const (
	// TierLite is for simple tasks: keyword extraction, classification
	TierLite ModelTier = "lite"
	// TierStandard is for moderate reasoning: section summaries
	TierStandard ModelTier = "standard"
	// TierAdvanced is for complex reasoning: bullet and section rewriting
	TierAdvanced ModelTier = "advanced"
)

// Config holds the model configuration for the generator
type Config struct {
	Models map[ModelTier]string
}

// DefaultConfig returns the default Gemini tier mapping
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
	}
}

// Model returns the model name for a tier, falling back through standard
// and lite when the requested tier is not configured.
func (c *Config) Model(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	return c.Models[TierLite]
}
