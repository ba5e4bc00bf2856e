package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeDomainIntelligence(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantDetail string
	}{
		{"Causal framing", "Rebuilt the cache layer, resulting in faster page loads", "causal framing"},
		{"Collaboration breadth", "Partnered with design on the checkout revamp", "collaboration breadth"},
		{"Explicit team size", "Coordinated a team of 8 across two offices", "explicit team size"},
		{"Problem framing", "Eliminated flaky builds in the release pipeline", "problem framing"},
		{"Quantified outcome", "Tuned the query planner, resulting in 60% faster reports", "quantified outcome"},
		{"Activity only", "Attended weekly planning meetings", "no outcome signals detected"},
		{"Empty text", "", "no outcome signals detected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := AnalyzeDomainIntelligence(tt.text)
			require.NotEmpty(t, result.Details)
			assert.True(t, result.Score >= 0 && result.Score <= 100)

			found := false
			for _, d := range result.Details {
				if strings.Contains(d, tt.wantDetail) {
					found = true
				}
			}
			assert.True(t, found, "expected detail containing %q, got %v", tt.wantDetail, result.Details)
		})
	}
}

func TestAnalyzeDomainIntelligence_OutcomeBeatsActivity(t *testing.T) {
	activity := AnalyzeDomainIntelligence("Maintained the nightly batch jobs")
	outcome := AnalyzeDomainIntelligence("Rewrote the nightly batch jobs, which led to a 45% shorter close cycle for a team of 6")
	assert.Greater(t, outcome.Score, activity.Score)
}
