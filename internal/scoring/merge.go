package scoring

import (
	"sort"

	"github.com/jonathan/cv-tailor/internal/types"
)

// MergeIndicatorSets combines a base and a candidate indicator set so that
// no dimension ever regresses: each shared dimension keeps the higher of
// the two scores, with evidence and suggestion inherited from the side that
// supplied the winning score (falling back to the other side's when empty).
// Dimensions present only in the candidate are added. The returned set is a
// fresh value ordered by dimension id; neither input is modified.
func MergeIndicatorSets(base, candidate types.IndicatorSet) types.IndicatorSet {
	merged := make([]types.IndicatorEntry, 0, len(base.Entries)+len(candidate.Entries))

	candidateByID := make(map[int]types.IndicatorEntry, len(candidate.Entries))
	for _, e := range candidate.Entries {
		candidateByID[e.DimensionID] = e
	}

	seen := make(map[int]bool, len(base.Entries))
	for _, b := range base.Entries {
		seen[b.DimensionID] = true
		c, ok := candidateByID[b.DimensionID]
		if !ok {
			merged = append(merged, b)
			continue
		}
		if c.Score > b.Score {
			merged = append(merged, inheritText(c, b))
		} else {
			// Ties favor the base side
			merged = append(merged, inheritText(b, c))
		}
	}

	for _, c := range candidate.Entries {
		if !seen[c.DimensionID] {
			merged = append(merged, c)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].DimensionID < merged[j].DimensionID
	})
	return types.IndicatorSet{Entries: merged}
}

// inheritText keeps the winner's evidence and suggestion, filling either
// from the loser when the winner left it empty.
func inheritText(winner, loser types.IndicatorEntry) types.IndicatorEntry {
	if winner.Evidence == "" {
		winner.Evidence = loser.Evidence
	}
	if winner.Suggestion == "" {
		winner.Suggestion = loser.Suggestion
	}
	return winner
}
