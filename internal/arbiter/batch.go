package arbiter

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/cv-tailor/internal/scoring"
	"github.com/jonathan/cv-tailor/internal/types"
)

// RunBatch arbitrates an ordered collection of (original, candidate) pairs
// and rolls up aggregate before/after totals.
//
// Items pair by position. When candidates is shorter, the missing positions
// fall back to the original (candidate == original, so the delta is zero
// and the original wins with no rejection reasons). When candidates is
// longer, the extra tailored items stand as their own pairs with no
// original counterpart and trivially win - the "new section added" case.
//
// Pairs are evaluated concurrently; scoring is pure and deterministic, so
// no coordination is needed beyond preserving input order in the outputs.
func RunBatch(originals, candidates []string) types.ArbiterResult {
	total := len(originals)
	if len(candidates) > total {
		total = len(candidates)
	}
	decisions := make([]types.ArbiterDecision, total)

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < total; i++ {
		g.Go(func() error {
			switch {
			case i >= len(originals):
				decisions[i] = newSectionDecision(candidates[i])
			case i >= len(candidates):
				decisions[i] = Arbitrate(originals[i], originals[i])
			default:
				decisions[i] = Arbitrate(originals[i], candidates[i])
			}
			return nil
		})
	}
	// Workers never return errors; Wait only synchronizes.
	_ = g.Wait()

	result := types.ArbiterResult{
		Decisions:        decisions,
		OptimisedBullets: make([]string, 0, total),
	}
	for i := range decisions {
		if i < len(originals) {
			result.OriginalTotalScore += decisions[i].OriginalAnalysis.TotalScore
		}
		result.OptimisedTotalScore += decisions[i].WinningScore()
		result.OptimisedBullets = append(result.OptimisedBullets, decisions[i].Bullet)
	}
	result.MethodologyPreserved = result.OptimisedTotalScore >= result.OriginalTotalScore
	return result
}

// newSectionDecision wraps a candidate that has no original counterpart.
// There is nothing to regress against, so the candidate wins as-is.
func newSectionDecision(candidate string) types.ArbiterDecision {
	analysis := scoring.Analyze(candidate)
	return types.ArbiterDecision{
		Bullet:           candidate,
		Winner:           types.WinnerTailored,
		ScoreDelta:       analysis.TotalScore,
		TailoredAnalysis: analysis,
	}
}
