package scoring

import (
	"regexp"
	"sort"
	"strings"
)

// MetricKind classifies a quantifiable token.
type MetricKind string

// Metric kind constants
const (
	MetricPercent    MetricKind = "percent"
	MetricCurrency   MetricKind = "currency"
	MetricMultiplier MetricKind = "multiplier"
	MetricCount      MetricKind = "count"
)

// MetricToken is one quantifiable fact found in a text unit. Value is the
// normalized numeric core used for presence comparison, so "40%" and
// "40 percent" compare equal while "40%" and "nearly half" do not.
type MetricToken struct {
	Raw   string
	Value string
	Kind  MetricKind
}

// Ordered most-specific first so percentages are not consumed as bare counts.
var metricPatterns = []struct {
	kind    MetricKind
	pattern *regexp.Regexp
}{
	{MetricPercent, regexp.MustCompile(`\d+(?:[.,]\d+)*\s?(?:%|percent\b)`)},
	{MetricCurrency, regexp.MustCompile(`[$€£]\s?\d+(?:[.,]\d+)*\s?[kKmMbB]?\b`)},
	{MetricMultiplier, regexp.MustCompile(`\b\d+(?:\.\d+)?[xX]\b`)},
	{MetricCount, regexp.MustCompile(`\b\d+(?:[.,]\d+)*\+?(?:[kKmMbB]\b)?`)},
}

var numericCore = regexp.MustCompile(`\d+(?:[.,]\d+)*`)

// normalizeMetricValue reduces a raw match to its comparable numeric core:
// digits and decimal point only, thousands separators removed.
func normalizeMetricValue(raw string) string {
	core := numericCore.FindString(raw)
	// "1,500" and "1500" are the same fact
	if strings.Count(core, ",") > 0 && !strings.Contains(core, ".") {
		core = strings.ReplaceAll(core, ",", "")
	}
	return core
}

// QuantifiableTokens extracts every quantifiable token from a text unit,
// classified and normalized, preserving first-occurrence order. Overlapping
// matches resolve to the most specific class (a percentage is never also a
// count).
func QuantifiableTokens(text string) []MetricToken {
	type match struct {
		start, end int
		token      MetricToken
	}
	var matches []match

	overlaps := func(start, end int) bool {
		for _, m := range matches {
			if start < m.end && end > m.start {
				return true
			}
		}
		return false
	}

	for _, mp := range metricPatterns {
		for _, loc := range mp.pattern.FindAllStringIndex(text, -1) {
			if overlaps(loc[0], loc[1]) {
				continue
			}
			raw := text[loc[0]:loc[1]]
			matches = append(matches, match{
				start: loc[0],
				end:   loc[1],
				token: MetricToken{
					Raw:   strings.TrimSpace(raw),
					Value: normalizeMetricValue(raw),
					Kind:  mp.kind,
				},
			})
		}
	}

	sort.Slice(matches, func(i, j int) bool { return matches[i].start < matches[j].start })

	tokens := make([]MetricToken, 0, len(matches))
	for _, m := range matches {
		tokens = append(tokens, m.token)
	}
	return tokens
}

// HasQuantifiableToken reports whether the text contains any quantifiable token.
func HasQuantifiableToken(text string) bool {
	return len(QuantifiableTokens(text)) > 0
}

// MissingMetrics returns the tokens of original whose numeric value does not
// appear anywhere in candidate. Any non-empty result disqualifies the
// candidate regardless of aggregate score: there is deliberately no
// tolerance for rephrased near-equal values.
func MissingMetrics(original, candidate string) []MetricToken {
	candidateValues := make(map[string]bool)
	for _, t := range QuantifiableTokens(candidate) {
		candidateValues[t.Value] = true
	}

	var missing []MetricToken
	seen := make(map[string]bool)
	for _, t := range QuantifiableTokens(original) {
		if t.Value == "" || candidateValues[t.Value] || seen[t.Value] {
			continue
		}
		seen[t.Value] = true
		missing = append(missing, t)
	}
	return missing
}
