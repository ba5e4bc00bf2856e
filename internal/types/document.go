package types

// Section is one named slice of a document, as produced by the splitter.
type Section struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// DocumentScore holds the document-level component scores and their weighted overall.
// KeywordMatch is 0 when no job posting was supplied; the aggregator's
// fallback profile then redistributes its weight.
type DocumentScore struct {
	Overall          float64 `json:"overall"`
	Core             float64 `json:"core"`
	StructuralFormat float64 `json:"structural_format"`
	KeywordMatch     float64 `json:"keyword_match"`
}

// DocumentDecision pairs an arbitrated section with its name.
type DocumentDecision struct {
	SectionName string          `json:"section_name"`
	Decision    ArbiterDecision `json:"decision"`
}

// DocumentResult is the outcome of tailoring a whole document.
type DocumentResult struct {
	Sections       []DocumentDecision `json:"sections"`
	FinalDocument  string             `json:"final_document"`
	OriginalScore  DocumentScore      `json:"original_score"`
	OptimisedScore DocumentScore      `json:"optimised_score"`
	Indicators     IndicatorSet       `json:"indicators"`
}
