package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze_TotalScoreFormula(t *testing.T) {
	texts := []string{
		"Led product roadmap strategy using RICE, shipping 15 features resulting in 25% revenue growth",
		"Managed the product roadmap",
		"Increased retention by 40%",
		"was responsible for various tasks",
		"",
	}

	profile := BulletProfile()
	for _, text := range texts {
		result := Analyze(text)

		// Reproduce the aggregation independently from the raw stage scores
		expected := result.Indicators.Score*profile.Weight(DimIndicators) +
			result.ATS.Score*profile.Weight(DimATS) +
			result.RecruiterUX.Score*profile.Weight(DimRecruiterUX) +
			result.DomainIntelligence.Score*profile.Weight(DimDomainIntelligence)

		assert.Equal(t, math.Round(expected), result.TotalScore, "total for %q", text)
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	text := "Reduced infrastructure spend by 35%, partnering with a team of 4"
	first := Analyze(text)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Analyze(text))
	}
}

func TestAnalyze_StageBounds(t *testing.T) {
	for _, text := range []string{"", "short", "Led a team of 9, resulting in $3M savings and 2x throughput"} {
		result := Analyze(text)
		for _, stage := range []float64{
			result.Indicators.Score,
			result.ATS.Score,
			result.RecruiterUX.Score,
			result.DomainIntelligence.Score,
		} {
			assert.GreaterOrEqual(t, stage, 0.0)
			assert.LessOrEqual(t, stage, 100.0)
		}
		assert.GreaterOrEqual(t, result.TotalScore, 0.0)
		assert.LessOrEqual(t, result.TotalScore, 100.0)
	}
}

func TestAnalyze_EvidenceAlwaysPresent(t *testing.T) {
	result := Analyze("")
	require.NotEmpty(t, result.Indicators.Details)
	require.NotEmpty(t, result.ATS.Details)
	require.NotEmpty(t, result.RecruiterUX.Details)
	require.NotEmpty(t, result.DomainIntelligence.Details)
}
