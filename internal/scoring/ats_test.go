package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeATS(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantDetail string
	}{
		{"Action verb opener", "Delivered the billing migration across 4 services", "opens with an action verb"},
		{"Passive opener", "Was responsible for maintaining the billing system", "passive opener"},
		{"Quantified", "Reduced infrastructure spend by 35% over two quarters", "contains a quantifiable token"},
		{"Unquantified", "Improved the user onboarding experience meaningfully", "no quantifiable token found"},
		{"Box drawing glyph", "Shipped 4 dashboards │ weekly reporting │ trend alerts", "parser-hostile glyph"},
		{"Too short", "Fixed 3 bugs", "outside the"},
		{"Length in band", "Launched a self-serve analytics portal adopted by 40 internal teams", "length within the parseable band"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := AnalyzeATS(tt.text)
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

func TestAnalyzeATS_MetricDominates(t *testing.T) {
	// The quantifiable-token signal must outweigh every other adjustment,
	// so a unit that kept its metric always outscores the same unit with
	// the metric stripped.
	withMetric := AnalyzeATS("Increased retention by 40%")
	withoutMetric := AnalyzeATS("Improved retention")
	assert.Greater(t, withMetric.Score, withoutMetric.Score)

	// Even a structurally messy original beats a polished metric-free rewrite.
	messy := AnalyzeATS("was responsible for increasing retention by 40% somehow\t\t\t│")
	polished := AnalyzeATS("Transformed the retention program with a refreshed lifecycle strategy")
	assert.Greater(t, messy.Score, polished.Score)
}

func TestAnalyzeATS_EmptyText(t *testing.T) {
	result := AnalyzeATS("")
	assert.True(t, result.Score >= 0 && result.Score <= 100)
	require.NotEmpty(t, result.Details)
}

func TestAnalyzeATS_AdversarialInput(t *testing.T) {
	long := strings.Repeat("pipeline ", 500)
	control := "Shipped\x00\x01\x02 the thing"

	for _, text := range []string{long, control} {
		result := AnalyzeATS(text)
		assert.True(t, result.Score >= 0 && result.Score <= 100)
		assert.NotEmpty(t, result.Details)
	}
}
