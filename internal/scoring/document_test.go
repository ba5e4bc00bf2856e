package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombineDocumentScore(t *testing.T) {
	tests := []struct {
		name             string
		core             float64
		keywordMatch     float64
		structuralFormat float64
		wantOverall      float64
	}{
		{
			"All components present",
			80, 60, 70,
			// 80*0.5 + 60*0.3 + 70*0.2
			72.0,
		},
		{
			"No job posting falls back to two-stage weights",
			80, 0, 70,
			// 80*0.7 + 70*0.3
			77.0,
		},
		{
			"One-decimal rounding",
			77.77, 66.66, 55.55,
			// 38.885 + 19.998 + 11.11 = 69.993 -> 70.0
			70.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := CombineDocumentScore(tt.core, tt.keywordMatch, tt.structuralFormat)
			assert.InDelta(t, tt.wantOverall, score.Overall, 1e-9)
			assert.InDelta(t, RoundDocument(tt.core), score.Core, 1e-9)
			assert.InDelta(t, RoundDocument(tt.keywordMatch), score.KeywordMatch, 1e-9)
			assert.InDelta(t, RoundDocument(tt.structuralFormat), score.StructuralFormat, 1e-9)
		})
	}
}
