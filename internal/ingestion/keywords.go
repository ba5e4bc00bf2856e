package ingestion

import (
	"regexp"
	"sort"
	"strings"
)

// maxKeywords bounds how many terms one posting contributes.
const maxKeywords = 30

var stopwords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "by": true, "for": true, "from": true, "has": true, "have": true,
	"in": true, "is": true, "it": true, "its": true, "of": true, "on": true,
	"or": true, "our": true, "that": true, "the": true, "their": true,
	"this": true, "to": true, "we": true, "will": true, "with": true,
	"you": true, "your": true, "role": true, "team": true, "work": true,
	"experience": true, "years": true, "ability": true, "strong": true,
	"skills": true, "including": true, "responsibilities": true,
}

var wordPattern = regexp.MustCompile(`[a-zA-Z][a-zA-Z+#.-]+`)

// ExtractKeywords pulls the most frequent non-stopword terms from a job
// posting, lowercased, most frequent first. Ties break alphabetically so
// the result is deterministic.
func ExtractKeywords(jobText string) []string {
	counts := make(map[string]int)
	for _, word := range wordPattern.FindAllString(strings.ToLower(jobText), -1) {
		word = strings.Trim(word, ".-")
		if len(word) < 2 || stopwords[word] {
			continue
		}
		counts[word]++
	}

	keywords := make([]string, 0, len(counts))
	for word := range counts {
		keywords = append(keywords, word)
	}
	sort.Slice(keywords, func(i, j int) bool {
		if counts[keywords[i]] != counts[keywords[j]] {
			return counts[keywords[i]] > counts[keywords[j]]
		}
		return keywords[i] < keywords[j]
	})

	if len(keywords) > maxKeywords {
		keywords = keywords[:maxKeywords]
	}
	return keywords
}

// KeywordMatchScore scores how much of the posting's vocabulary a document
// covers, on the 0-100 scale the document aggregator expects. An empty
// keyword list means the dimension is structurally unavailable and scores
// the 0 sentinel.
func KeywordMatchScore(document string, keywords []string) float64 {
	if len(keywords) == 0 {
		return 0
	}
	lower := strings.ToLower(document)
	matched := 0
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			matched++
		}
	}
	return float64(matched) / float64(len(keywords)) * 100
}
