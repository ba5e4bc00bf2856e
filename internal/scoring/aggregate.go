package scoring

import "math"

// Combine computes the weighted sum of the given dimension scores under a
// profile, unrounded. Callers apply RoundBullet or RoundDocument depending
// on the level they operate at.
//
// When the profile declares a fallback and every dimension the fallback
// omits carries the sentinel score 0 (structurally unavailable, e.g. no job
// posting so keyword matching cannot run), the fallback's weights are used
// instead of counting the missing dimension as a scored zero.
func Combine(profile *WeightProfile, scores map[string]float64) float64 {
	effective := profile
	if fb := profile.Fallback; fb != nil && fallbackApplies(profile, fb, scores) {
		effective = fb
	}

	total := 0.0
	for _, d := range effective.Dimensions {
		total += scores[d.ID] * d.Weight
	}
	return total
}

// fallbackApplies reports whether every dimension present in the primary
// profile but absent from the fallback is structurally unavailable.
func fallbackApplies(primary, fallback *WeightProfile, scores map[string]float64) bool {
	missing := false
	for _, d := range primary.Dimensions {
		inFallback := false
		for _, f := range fallback.Dimensions {
			if f.ID == d.ID {
				inFallback = true
				break
			}
		}
		if !inFallback {
			missing = true
			if scores[d.ID] != 0 {
				return false
			}
		}
	}
	return missing
}

// RoundBullet applies the bullet-level rounding convention: nearest integer.
func RoundBullet(score float64) float64 {
	return math.Round(score)
}

// RoundDocument applies the document-level rounding convention: one decimal
// place, so 2.333... rounds to 2.3.
func RoundDocument(score float64) float64 {
	return math.Round(score*10) / 10
}

// clampScore bounds a stage score to [0,100].
func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
