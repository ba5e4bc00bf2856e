package scoring

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/cv-tailor/internal/types"
)

const (
	domainBaseScore          = 40.0
	domainCausalBonus        = 20.0
	domainCollaborationBonus = 15.0
	domainProblemVerbBonus   = 15.0
	domainOutcomeBonus       = 10.0
)

// causalPhrases signal outcome-over-output framing: the writer connects an
// action to its result.
var causalPhrases = []string{
	"resulting in",
	"which led to",
	"leading to",
	"which resulted in",
	"which drove",
	"driving",
	"enabling",
	"which enabled",
	"contributing to",
}

// collaborationTerms signal breadth beyond solo work.
var collaborationTerms = []string{
	"cross-functional",
	"team of",
	"stakeholder",
	"partnered",
	"collaborated",
	"across teams",
	"with engineering",
	"with design",
	"with product",
}

// problemVerbs frame the unit around a problem the writer removed.
var problemVerbs = []string{
	"solved", "reduced", "eliminated", "resolved", "streamlined",
	"cut", "prevented", "fixed", "unblocked", "mitigated",
}

// teamSizePattern matches explicit team-size statements ("team of 8").
var teamSizePattern = regexp.MustCompile(`(?i)team of \d+`)

// AnalyzeDomainIntelligence scores outcome-over-output framing: causal
// language, collaboration breadth, and problem-framing verbs. This stage
// separates a bullet that lists an activity from one that demonstrates
// judgment and impact.
func AnalyzeDomainIntelligence(text string) types.StageResult {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return types.StageResult{
			Score:   domainBaseScore,
			Details: []string{"no outcome signals detected"},
		}
	}

	lower := strings.ToLower(trimmed)
	score := domainBaseScore
	var details []string

	if phrase := firstKeywordMatch(lower, causalPhrases); phrase != "" {
		score += domainCausalBonus
		details = append(details, fmt.Sprintf("causal framing: %q", phrase))
	}
	if term := firstKeywordMatch(lower, collaborationTerms); term != "" {
		score += domainCollaborationBonus
		if teamSizePattern.MatchString(trimmed) {
			details = append(details, "names an explicit team size")
		} else {
			details = append(details, fmt.Sprintf("collaboration breadth: %q", term))
		}
	}
	if verb := firstKeywordMatch(lower, problemVerbs); verb != "" {
		score += domainProblemVerbBonus
		details = append(details, fmt.Sprintf("problem framing: %q", verb))
	}
	if HasQuantifiableToken(trimmed) && firstKeywordMatch(lower, causalPhrases) != "" {
		score += domainOutcomeBonus
		details = append(details, "quantified outcome")
	}

	if len(details) == 0 {
		details = []string{"no outcome signals detected"}
	}
	return types.StageResult{Score: clampScore(score), Details: details}
}
