package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeRecruiterUX(t *testing.T) {
	runOn := "worked with many different teams and systems over several years to gradually improve many aspects of the overall platform including deployments and monitoring and alerting without any real pause in the continuous delivery process"

	tests := []struct {
		name       string
		text       string
		wantDetail string
	}{
		{"Concise bullet", "Cut deploy time from 40m to 6m", "concise single-glance phrasing"},
		{"Over scan limit", strings.Repeat("improved the reporting pipeline and ", 8), "scan limit"},
		{"Run-on structure", runOn, "run-on structure"},
		{"Filler opener", "I built the reporting pipeline", "buries the lede"},
		{"Front-loaded", "Rebuilt the reporting pipeline", "front-loaded phrasing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := AnalyzeRecruiterUX(tt.text)
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

func TestAnalyzeRecruiterUX_IndependentOfATS(t *testing.T) {
	// ATS-friendly (has metrics) yet unreadable: recruiter stage penalizes
	// what the ATS stage rewards.
	unreadable := "Delivered 23% growth by continuously iterating on the experimentation platform roadmap while simultaneously coordinating the migration of seventeen legacy reporting systems plus the gradual rollout of the new unified self-serve analytics tooling suite across every region"
	readable := "Simplified onboarding flows for new users"

	assert.Greater(t, AnalyzeATS(unreadable).Score, AnalyzeATS(readable).Score)
	assert.Greater(t, AnalyzeRecruiterUX(readable).Score, AnalyzeRecruiterUX(unreadable).Score)
}

func TestAnalyzeRecruiterUX_EmptyText(t *testing.T) {
	result := AnalyzeRecruiterUX("")
	assert.True(t, result.Score >= 0 && result.Score <= 100)
	assert.NotEmpty(t, result.Details)
}
