// Package types provides type definitions for structured data used throughout the cv-tailor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Stage identifies one of the independent heuristic analyzers.
type Stage string

// Stage constants, in declaration order. Rejection reasons are reported in this order.
const (
	StageIndicators         Stage = "indicators"
	StageATS                Stage = "ats"
	StageRecruiterUX        Stage = "recruiter_ux"
	StageDomainIntelligence Stage = "domain_intelligence"
)

// Stages lists all analyzer stages in declaration order.
var Stages = []Stage{StageIndicators, StageATS, StageRecruiterUX, StageDomainIntelligence}

// DisplayName returns the human-readable name for a stage.
func (s Stage) DisplayName() string {
	switch s {
	case StageIndicators:
		return "Cold Indicators"
	case StageATS:
		return "ATS Compatibility"
	case StageRecruiterUX:
		return "Recruiter UX"
	case StageDomainIntelligence:
		return "Domain Intelligence"
	}
	return string(s)
}

// StageResult holds the outcome of a single analyzer stage.
// Score is bounded to [0,100]; Details always contains at least one evidence string.
type StageResult struct {
	Score   float64  `json:"score"`
	Details []string `json:"details"`
}

// AnalysisResult holds the per-stage results and the weighted total for one text unit.
// TotalScore is derived by the aggregator; it is never set directly.
type AnalysisResult struct {
	Indicators         StageResult `json:"indicators"`
	ATS                StageResult `json:"ats"`
	RecruiterUX        StageResult `json:"recruiter_ux"`
	DomainIntelligence StageResult `json:"domain_intelligence"`
	TotalScore         float64     `json:"total_score"`
}

// StageResultFor returns the result recorded for the given stage.
func (a *AnalysisResult) StageResultFor(stage Stage) StageResult {
	switch stage {
	case StageIndicators:
		return a.Indicators
	case StageATS:
		return a.ATS
	case StageRecruiterUX:
		return a.RecruiterUX
	case StageDomainIntelligence:
		return a.DomainIntelligence
	}
	return StageResult{}
}

// StageScore returns the score recorded for the given stage.
func (a *AnalysisResult) StageScore(stage Stage) float64 {
	return a.StageResultFor(stage).Score
}
