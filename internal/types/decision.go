package types

// Winner identifies which side of an arbitration prevailed.
type Winner string

// Winner constants for arbitration outcomes
const (
	WinnerOriginal Winner = "original"
	WinnerTailored Winner = "tailored"
)

// RejectionReason records why a candidate was rejected. Stage-drop reasons
// carry Drop = OriginalScore - TailoredScore, always positive. When the
// metric-protection override fires without any stage dropping, a single
// reason is synthesized instead with Drop 0 and Detail naming the lost
// metric tokens.
type RejectionReason struct {
	Stage         Stage   `json:"stage"`
	StageName     string  `json:"stage_name"`
	OriginalScore float64 `json:"original_score"`
	TailoredScore float64 `json:"tailored_score"`
	Drop          float64 `json:"drop"`
	Detail        string  `json:"detail,omitempty"`
}

// ArbiterDecision is the outcome of arbitrating one (original, candidate) pair.
// Bullet holds the winning text. RejectionReasons is non-empty whenever the
// metric-protection override fired, regardless of the score delta.
type ArbiterDecision struct {
	Bullet           string            `json:"bullet"`
	Winner           Winner            `json:"winner"`
	ScoreDelta       float64           `json:"score_delta"`
	OriginalAnalysis AnalysisResult    `json:"original_analysis"`
	TailoredAnalysis AnalysisResult    `json:"tailored_analysis"`
	RejectionReasons []RejectionReason `json:"rejection_reasons"`
}

// WinningScore returns the total score of the side that won the arbitration.
func (d *ArbiterDecision) WinningScore() float64 {
	if d.Winner == WinnerTailored {
		return d.TailoredAnalysis.TotalScore
	}
	return d.OriginalAnalysis.TotalScore
}

// ArbiterResult aggregates the decisions for an ordered batch of pairs.
// MethodologyPreserved is true exactly when the optimised total did not
// regress below the original total; per-unit non-regression makes this
// hold for every valid batch.
type ArbiterResult struct {
	Decisions            []ArbiterDecision `json:"decisions"`
	OptimisedBullets     []string          `json:"optimised_bullets"`
	OriginalTotalScore   float64           `json:"original_total_score"`
	OptimisedTotalScore  float64           `json:"optimised_total_score"`
	MethodologyPreserved bool              `json:"methodology_preserved"`
}
