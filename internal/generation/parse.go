package generation

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed rewrite_response.schema.json
var rewriteResponseSchema string

// rewriteResponse is the only shape a generation response is allowed to take.
type rewriteResponse struct {
	Rewritten string `json:"rewritten"`
}

// ParseRewriteResponse converts the raw model output into a clean text
// unit. The parse fails closed: anything that is not schema-valid JSON
// resolves to ErrNoCandidate instead of silently defaulting fields, so a
// malformed generation is treated as "no candidate" rather than scored.
func ParseRewriteResponse(raw string) (string, error) {
	cleaned := stripMarkdownFences(raw)

	schemaLoader := gojsonschema.NewStringLoader(rewriteResponseSchema)
	documentLoader := gojsonschema.NewStringLoader(cleaned)

	validation, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return "", fmt.Errorf("response is not valid JSON: %w", ErrNoCandidate)
	}
	if !validation.Valid() {
		var problems []string
		for _, desc := range validation.Errors() {
			problems = append(problems, desc.String())
		}
		return "", fmt.Errorf("response failed schema validation (%s): %w", strings.Join(problems, "; "), ErrNoCandidate)
	}

	var parsed rewriteResponse
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", ErrNoCandidate)
	}

	text := strings.TrimSpace(parsed.Rewritten)
	if text == "" {
		return "", fmt.Errorf("response rewrote to empty text: %w", ErrNoCandidate)
	}
	return text, nil
}

// stripMarkdownFences removes a ```json ... ``` wrapper some models insist on.
func stripMarkdownFences(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
