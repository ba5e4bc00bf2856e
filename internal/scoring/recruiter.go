package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/cv-tailor/internal/types"
)

const (
	recruiterBaseScore = 60.0

	// Recruiters skim; anything past this length is skipped, not read.
	recruiterScanLimit    = 220
	recruiterConciseLimit = 120
	recruiterLongLimit    = 160

	recruiterConciseBonus = 15.0
	recruiterLongPenalty  = 10.0
	recruiterScanPenalty  = 25.0
	recruiterFrontBonus   = 10.0
	recruiterFrontPenalty = 5.0
	recruiterRunOnPenalty = 20.0
	recruiterBreaksBonus  = 5.0

	// Words in a row without a punctuation break before a clause reads as run-on
	runOnWordLimit = 30
)

// fillerOpeners are words that bury the lede when they open a bullet.
var fillerOpeners = map[string]bool{
	"i": true, "we": true, "the": true, "a": true, "an": true,
	"my": true, "our": true, "this": true, "there": true, "it": true,
	"was": true, "were": true, "being": true, "also": true,
}

// AnalyzeRecruiterUX models human scanability: concise, front-loaded
// phrasing scores well; long or run-on structure scores poorly. This stage
// is independent of the ATS checks - a unit can carry metrics yet be
// unreadable, and vice versa.
func AnalyzeRecruiterUX(text string) types.StageResult {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return types.StageResult{
			Score:   recruiterBaseScore - recruiterFrontPenalty,
			Details: []string{"empty text unit"},
		}
	}

	score := recruiterBaseScore
	var details []string

	length := len(trimmed)
	switch {
	case length > recruiterScanLimit:
		score -= recruiterScanPenalty
		details = append(details, fmt.Sprintf("length %d exceeds the %d-character scan limit", length, recruiterScanLimit))
	case length > recruiterLongLimit:
		score -= recruiterLongPenalty
		details = append(details, "longer than a comfortable single read")
	case length <= recruiterConciseLimit:
		score += recruiterConciseBonus
		details = append(details, "concise single-glance phrasing")
	default:
		details = append(details, "moderate length")
	}

	first := strings.ToLower(strings.TrimRight(strings.Fields(trimmed)[0], ".,!?;:"))
	if fillerOpeners[first] {
		score -= recruiterFrontPenalty
		details = append(details, "buries the lede behind a filler opener")
	} else {
		score += recruiterFrontBonus
		details = append(details, "front-loaded phrasing")
	}

	longest := longestUnbrokenRun(trimmed)
	if longest > runOnWordLimit {
		score -= recruiterRunOnPenalty
		details = append(details, fmt.Sprintf("run-on structure: %d words without a punctuation break", longest))
	} else if wordCount(trimmed) > 15 && longest < wordCount(trimmed) {
		score += recruiterBreaksBonus
		details = append(details, "punctuation breaks aid scanning")
	}

	return types.StageResult{Score: clampScore(score), Details: details}
}

// longestUnbrokenRun counts the longest sequence of words between
// punctuation breaks.
func longestUnbrokenRun(text string) int {
	segments := strings.FieldsFunc(text, func(r rune) bool {
		switch r {
		case '.', ',', ';', ':', '!', '?', '-', '(', ')':
			return true
		}
		return false
	})
	longest := 0
	for _, seg := range segments {
		if n := wordCount(seg); n > longest {
			longest = n
		}
	}
	return longest
}

func wordCount(text string) int {
	return len(strings.Fields(text))
}
