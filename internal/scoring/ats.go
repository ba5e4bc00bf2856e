package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/cv-tailor/internal/types"
)

const (
	atsBaseScore         = 50.0
	atsVerbBonus         = 10.0
	atsVerbPenalty       = 10.0
	atsQuantifiedBonus   = 30.0
	atsQuantifiedPenalty = 30.0
	atsGlyphPenalty      = 10.0
	atsLengthBonus       = 10.0
	atsLengthPenalty     = 10.0

	atsMinLength = 40
	atsMaxLength = 260
)

// Common strong action verbs for resume bullets (heuristic check)
var actionVerbs = map[string]bool{
	"achieved": true, "architected": true, "built": true, "created": true,
	"delivered": true, "designed": true, "developed": true, "directed": true,
	"engineered": true, "implemented": true, "improved": true, "increased": true,
	"launched": true, "led": true, "managed": true, "optimized": true,
	"reduced": true, "scaled": true, "shipped": true, "transformed": true,
}

// passiveOpeners are weak openings an automated parser penalizes.
var passiveOpeners = []string{
	"was responsible for",
	"responsible for",
	"was tasked with",
	"worked on",
	"helped with",
	"helped",
	"assisted",
	"participated in",
	"involved in",
}

// forbiddenGlyphs are characters known to break resume parsers: box-drawing
// characters, pipe tables, and similar layout tricks.
var forbiddenGlyphs = []string{"│", "┌", "┐", "└", "┘", "├", "┤", "─", "┬", "┴", "┼", "║", "╔", "|"}

// AnalyzeATS checks the structural properties an automated resume parser
// rewards. The quantifiable-token check dominates every other adjustment:
// it is the single strongest ATS-style signal. Note it only sees whether any
// metric is present, so a unit that lost one metric but kept another still
// scores as quantified; the arbiter handles that case separately.
func AnalyzeATS(text string) types.StageResult {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return types.StageResult{
			Score:   atsBaseScore - atsQuantifiedPenalty - atsLengthPenalty,
			Details: []string{"empty text unit"},
		}
	}

	score := atsBaseScore
	var details []string
	lower := strings.ToLower(trimmed)

	switch {
	case hasPassiveOpener(lower):
		score -= atsVerbPenalty
		details = append(details, "passive opener weakens parse ranking")
	case startsWithActionVerb(lower):
		score += atsVerbBonus
		details = append(details, "opens with an action verb")
	default:
		details = append(details, "does not open with a recognized action verb")
	}

	if HasQuantifiableToken(trimmed) {
		score += atsQuantifiedBonus
		details = append(details, "contains a quantifiable token")
	} else {
		score -= atsQuantifiedPenalty
		details = append(details, "no quantifiable token found")
	}

	if glyph := findForbiddenGlyph(trimmed); glyph != "" {
		score -= atsGlyphPenalty
		details = append(details, fmt.Sprintf("contains parser-hostile glyph %q", glyph))
	}
	if strings.Count(trimmed, "\t") > 2 {
		score -= atsGlyphPenalty
		details = append(details, "excessive tab characters")
	}

	if len(trimmed) >= atsMinLength && len(trimmed) <= atsMaxLength {
		score += atsLengthBonus
		details = append(details, "length within the parseable band")
	} else {
		score -= atsLengthPenalty
		details = append(details, fmt.Sprintf("length %d outside the %d-%d band", len(trimmed), atsMinLength, atsMaxLength))
	}

	return types.StageResult{Score: clampScore(score), Details: details}
}

func startsWithActionVerb(lower string) bool {
	words := strings.Fields(lower)
	if len(words) == 0 {
		return false
	}
	first := strings.TrimRight(words[0], ".,!?;:")
	if actionVerbs[first] {
		return true
	}
	// Past-tense heuristic: -ed verbs of reasonable length are usually actions
	return strings.HasSuffix(first, "ed") && len(first) > 3
}

func hasPassiveOpener(lower string) bool {
	for _, opener := range passiveOpeners {
		if strings.HasPrefix(lower, opener+" ") || lower == opener {
			return true
		}
	}
	return false
}

func findForbiddenGlyph(text string) string {
	for _, glyph := range forbiddenGlyphs {
		if strings.Contains(text, glyph) {
			return glyph
		}
	}
	return ""
}
