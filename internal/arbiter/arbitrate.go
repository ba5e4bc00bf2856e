// Package arbiter decides, per text unit, whether to keep the original or
// adopt a candidate rewrite, and proves why via per-stage deltas. Accepted
// results never score below the original: per-unit non-regression is the
// package's core guarantee.
package arbiter

import (
	"strconv"
	"strings"

	"github.com/jonathan/cv-tailor/internal/scoring"
	"github.com/jonathan/cv-tailor/internal/types"
)

// Arbitrate compares an original text unit against a candidate rewrite.
//
// Both units run through all four analyzer stages and the aggregator. If
// the candidate dropped any quantifiable token present in the original, the
// metric-protection override forces the original to win unconditionally,
// regardless of aggregate score. Otherwise the higher total score wins,
// with ties favoring the original.
//
// Whenever the original wins, one rejection reason is emitted per stage
// whose score dropped, in stage declaration order. A candidate that kept
// some metrics but lost others can score equal-or-better on every stage;
// in that case the override still fires and a single reason is synthesized
// naming the lost tokens, so the decision is never unexplained. The score
// delta is always tailored minus original, regardless of winner.
func Arbitrate(original, candidate string) types.ArbiterDecision {
	originalAnalysis := scoring.Analyze(original)
	tailoredAnalysis := scoring.Analyze(candidate)

	decision := types.ArbiterDecision{
		OriginalAnalysis: originalAnalysis,
		TailoredAnalysis: tailoredAnalysis,
		ScoreDelta:       tailoredAnalysis.TotalScore - originalAnalysis.TotalScore,
	}

	missing := scoring.MissingMetrics(original, candidate)
	switch {
	case len(missing) > 0:
		// Factual fidelity beats polish: a stripped metric disqualifies the
		// candidate even when every stage improved.
		decision.Winner = types.WinnerOriginal
	case tailoredAnalysis.TotalScore > originalAnalysis.TotalScore:
		decision.Winner = types.WinnerTailored
	default:
		decision.Winner = types.WinnerOriginal
	}

	if decision.Winner == types.WinnerOriginal {
		decision.Bullet = original
		decision.RejectionReasons = collectRejectionReasons(&originalAnalysis, &tailoredAnalysis)
		if len(missing) > 0 && len(decision.RejectionReasons) == 0 {
			decision.RejectionReasons = []types.RejectionReason{
				metricLossReason(&originalAnalysis, &tailoredAnalysis, missing),
			}
		}
	} else {
		decision.Bullet = candidate
	}
	return decision
}

// metricLossReason explains an override that no stage drop accounts for.
// A unit that kept at least one quantifiable token still scores as
// quantified, so the stage columns can be level even though the candidate
// lost a metric.
func metricLossReason(original, tailored *types.AnalysisResult, missing []scoring.MetricToken) types.RejectionReason {
	tokens := make([]string, 0, len(missing))
	for _, m := range missing {
		tokens = append(tokens, strconv.Quote(m.Raw))
	}
	return types.RejectionReason{
		Stage:         types.StageATS,
		StageName:     types.StageATS.DisplayName(),
		OriginalScore: original.StageScore(types.StageATS),
		TailoredScore: tailored.StageScore(types.StageATS),
		Detail:        "dropped metric " + strings.Join(tokens, ", "),
	}
}

// collectRejectionReasons itemizes every stage where the candidate scored
// below the original, in stage declaration order.
func collectRejectionReasons(original, tailored *types.AnalysisResult) []types.RejectionReason {
	var reasons []types.RejectionReason
	for _, stage := range types.Stages {
		originalScore := original.StageScore(stage)
		tailoredScore := tailored.StageScore(stage)
		if originalScore > tailoredScore {
			reasons = append(reasons, types.RejectionReason{
				Stage:         stage,
				StageName:     stage.DisplayName(),
				OriginalScore: originalScore,
				TailoredScore: tailoredScore,
				Drop:          originalScore - tailoredScore,
			})
		}
	}
	return reasons
}
