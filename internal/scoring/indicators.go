package scoring

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/cv-tailor/internal/types"
)

// competencyDimension is one of the ten fixed professional-competency
// dimensions scanned by the cold-indicator analyzer.
type competencyDimension struct {
	ID       int
	Name     string
	Keywords []string
}

// The ten dimensions, in stable ID order. Keyword lists are matched
// case-insensitively against the whole unit.
var competencyDimensions = []competencyDimension{
	{1, "Domain Knowledge", []string{"architecture", "pipeline", "infrastructure", "platform", "framework", "protocol", "compliance", "methodology", "roadmap", "strategy"}},
	{2, "Problem Solving", []string{"solved", "debugged", "diagnosed", "root cause", "optimized", "streamlined", "automated", "redesigned", "resolved"}},
	{3, "Communication", []string{"presented", "documented", "reported", "communicated", "negotiated", "facilitated", "authored", "briefed"}},
	{4, "Leadership", []string{"led", "managed", "directed", "mentored", "coached", "supervised", "spearheaded", "drove", "headed"}},
	{5, "Collaboration", []string{"collaborated", "partnered", "cross-functional", "stakeholder", "team of", "coordinated", "liaised"}},
	{6, "Initiative", []string{"initiated", "launched", "founded", "pioneered", "proposed", "introduced", "championed", "shipping", "shipped"}},
	{7, "Adaptability", []string{"migrated", "transitioned", "adapted", "pivoted", "modernized", "refactored", "restructured"}},
	{8, "Attention to Detail", []string{"audited", "reviewed", "validated", "verified", "tested", "monitored", "quality", "accuracy"}},
	{9, "Continuous Learning", []string{"learned", "certified", "trained", "researched", "evaluated", "adopted", "prototyped"}},
	{10, "Ownership", []string{"owned", "accountable", "delivered", "maintained", "operated", "oversaw", "end-to-end"}},
}

const (
	indicatorBaseScore     = 20.0
	indicatorPerDimension  = 7.0
	indicatorNumberBonus   = 5.0
	indicatorToolBonus     = 5.0
	indicatorRoleVerbBonus = 4.0
)

// namedToolPattern matches capitalized or all-caps tokens that look like
// named tools and methodologies (RICE, Kubernetes, SQL) rather than
// sentence-initial words.
var namedToolPattern = regexp.MustCompile(`\b[A-Z]{2,}\b|\s[A-Z][a-z]+[A-Z]\w*\b`)

// roleVerbs are leading verbs that signal the writer held a role, not just
// attended one.
var roleVerbs = map[string]bool{
	"led": true, "managed": true, "built": true, "designed": true,
	"created": true, "delivered": true, "launched": true, "owned": true,
	"drove": true, "shipped": true, "architected": true, "founded": true,
}

// AnalyzeIndicators scans one text unit for lexical signals of the ten
// competency dimensions. The score grows monotonically with the number of
// distinct dimensions matched, capped at 100, and always carries at least
// one evidence string.
func AnalyzeIndicators(text string) types.StageResult {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return types.StageResult{
			Score:   indicatorBaseScore,
			Details: []string{"no strong signals detected"},
		}
	}

	lower := strings.ToLower(trimmed)
	score := indicatorBaseScore
	var details []string

	for _, dim := range competencyDimensions {
		if kw := firstKeywordMatch(lower, dim.Keywords); kw != "" {
			score += indicatorPerDimension
			details = append(details, fmt.Sprintf("%s signal: %q", dim.Name, kw))
		}
	}

	if HasQuantifiableToken(trimmed) {
		score += indicatorNumberBonus
		details = append(details, "quantified statement")
	}
	if namedToolPattern.MatchString(trimmed) {
		score += indicatorToolBonus
		details = append(details, "named tool or methodology")
	}
	if words := strings.Fields(lower); len(words) > 0 && roleVerbs[strings.TrimRight(words[0], ".,!?;:")] {
		score += indicatorRoleVerbBonus
		details = append(details, "opens with a role verb")
	}

	if len(details) == 0 {
		details = []string{"no strong signals detected"}
	}
	return types.StageResult{Score: clampScore(score), Details: details}
}

// firstKeywordMatch returns the first keyword found in the lowercased text,
// or "" when none match.
func firstKeywordMatch(lower string, keywords []string) string {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return kw
		}
	}
	return ""
}

// IndicatorProfile scores one text against each of the ten competency
// dimensions independently on the 1-10 scale used for document-level
// non-regression merging. A dimension with no signal sits at the floor;
// each distinct keyword hit raises it.
func IndicatorProfile(text string) types.IndicatorSet {
	lower := strings.ToLower(text)
	entries := make([]types.IndicatorEntry, 0, len(competencyDimensions))

	for _, dim := range competencyDimensions {
		score := 3.0
		var evidence string
		for _, kw := range dim.Keywords {
			if strings.Contains(lower, kw) {
				score += 2.0
				if evidence == "" {
					evidence = fmt.Sprintf("matched %q", kw)
				}
			}
		}
		if score > 10 {
			score = 10
		}
		entry := types.IndicatorEntry{
			DimensionID: dim.ID,
			Name:        dim.Name,
			Score:       score,
			Evidence:    evidence,
		}
		if evidence == "" {
			entry.Suggestion = fmt.Sprintf("add evidence of %s", strings.ToLower(dim.Name))
		}
		entries = append(entries, entry)
	}
	return types.IndicatorSet{Entries: entries}
}
