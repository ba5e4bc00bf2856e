package scoring

import "github.com/jonathan/cv-tailor/internal/types"

// Analyze runs one text unit through all four analyzer stages and combines
// the stage scores under the bullet-level weight profile. The result is a
// fresh value; identical input always produces an identical result.
func Analyze(text string) types.AnalysisResult {
	indicators := AnalyzeIndicators(text)
	ats := AnalyzeATS(text)
	recruiterUX := AnalyzeRecruiterUX(text)
	domainIntelligence := AnalyzeDomainIntelligence(text)

	total := Combine(BulletProfile(), map[string]float64{
		DimIndicators:         indicators.Score,
		DimATS:                ats.Score,
		DimRecruiterUX:        recruiterUX.Score,
		DimDomainIntelligence: domainIntelligence.Score,
	})

	return types.AnalysisResult{
		Indicators:         indicators,
		ATS:                ats,
		RecruiterUX:        recruiterUX,
		DomainIntelligence: domainIntelligence,
		TotalScore:         RoundBullet(total),
	}
}
