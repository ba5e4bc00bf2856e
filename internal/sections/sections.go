// Package sections splits a career document into named sections and
// matches section names fuzzily so original and candidate documents can be
// aligned before per-section arbitration.
package sections

import (
	"regexp"
	"strings"

	"github.com/jonathan/cv-tailor/internal/types"
)

// sectionAliases maps common section-name variants to canonical names.
var sectionAliases = map[string]string{
	"experience":              "Work Experience",
	"work experience":         "Work Experience",
	"professional experience": "Work Experience",
	"employment":              "Work Experience",
	"employment history":      "Work Experience",
	"work history":            "Work Experience",
	"education":               "Education",
	"academic background":     "Education",
	"skills":                  "Skills",
	"technical skills":        "Skills",
	"core competencies":       "Skills",
	"summary":                 "Summary",
	"profile":                 "Summary",
	"professional summary":    "Summary",
	"objective":               "Summary",
	"about":                   "Summary",
	"projects":                "Projects",
	"personal projects":       "Projects",
	"certifications":          "Certifications",
	"licenses":                "Certifications",
	"publications":            "Publications",
	"awards":                  "Awards",
	"honors":                  "Awards",
	"volunteering":            "Volunteering",
	"volunteer experience":    "Volunteering",
	"languages":               "Languages",
	"references":              "References",
}

var nonAlphaPattern = regexp.MustCompile(`[^a-z ]+`)

// normalizeName lowercases a section name and strips punctuation and
// decorations so "WORK EXPERIENCE:" and "Work Experience" compare equal.
func normalizeName(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))
	lower = nonAlphaPattern.ReplaceAllString(lower, "")
	return strings.Join(strings.Fields(lower), " ")
}

// CanonicalName resolves a section name to its canonical form, or returns
// the trimmed input when no alias is known.
func CanonicalName(name string) string {
	normalized := normalizeName(name)
	if canonical, ok := sectionAliases[normalized]; ok {
		return canonical
	}
	return strings.TrimSpace(name)
}

// NamesMatch reports whether two section names refer to the same section,
// e.g. "Work Experience" and "Experience".
func NamesMatch(a, b string) bool {
	na, nb := normalizeName(a), normalizeName(b)
	if na == "" || nb == "" {
		return false
	}
	if na == nb {
		return true
	}
	return CanonicalName(a) == CanonicalName(b)
}

// Split divides a document into named sections. A line is treated as a
// heading when it is short, carries no sentence punctuation, and is either
// entirely upper-case, ends with a colon, or is a known section name. Text
// before the first heading lands in a "Summary" section.
func Split(document string) []types.Section {
	lines := strings.Split(document, "\n")

	var result []types.Section
	current := types.Section{Name: "Summary"}
	var body []string

	flush := func() {
		text := strings.TrimSpace(strings.Join(body, "\n"))
		if text != "" {
			current.Text = text
			result = append(result, current)
		}
		body = nil
	}

	for _, line := range lines {
		if name, ok := headingName(line); ok {
			flush()
			current = types.Section{Name: name}
			continue
		}
		body = append(body, line)
	}
	flush()
	return result
}

// headingName reports whether a line is a section heading, returning the
// canonical section name when it is.
func headingName(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || len(trimmed) > 40 {
		return "", false
	}
	if strings.ContainsAny(trimmed, ".,;!?") {
		return "", false
	}

	normalized := normalizeName(trimmed)
	if _, known := sectionAliases[normalized]; known {
		return CanonicalName(trimmed), true
	}
	if strings.HasSuffix(trimmed, ":") && len(strings.Fields(trimmed)) <= 4 {
		return CanonicalName(strings.TrimSuffix(trimmed, ":")), true
	}
	if trimmed == strings.ToUpper(trimmed) && trimmed != strings.ToLower(trimmed) && len(strings.Fields(trimmed)) <= 4 {
		return CanonicalName(trimmed), true
	}
	return "", false
}

// AlignedPair is an original section matched with its candidate rewrite.
// Candidate is empty when no counterpart exists; Original is empty for
// candidate-only sections ("new section added").
type AlignedPair struct {
	Name      string
	Original  string
	Candidate string
}

// Align pairs original sections with candidate sections by fuzzy name
// match, preserving original order. Candidate sections with no original
// counterpart are appended in their own order.
func Align(originals, candidates []types.Section) []AlignedPair {
	used := make([]bool, len(candidates))
	pairs := make([]AlignedPair, 0, len(originals))

	for _, orig := range originals {
		pair := AlignedPair{Name: CanonicalName(orig.Name), Original: orig.Text}
		for i, cand := range candidates {
			if !used[i] && NamesMatch(orig.Name, cand.Name) {
				pair.Candidate = cand.Text
				used[i] = true
				break
			}
		}
		pairs = append(pairs, pair)
	}

	for i, cand := range candidates {
		if !used[i] {
			pairs = append(pairs, AlignedPair{Name: CanonicalName(cand.Name), Candidate: cand.Text})
		}
	}
	return pairs
}
