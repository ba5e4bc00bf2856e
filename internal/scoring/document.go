package scoring

import "github.com/jonathan/cv-tailor/internal/types"

// CombineDocumentScore folds the document-level component scores into one
// overall number under the registered document profile. A keywordMatch of 0
// means the dimension was structurally unavailable (no job posting), which
// routes through the legacy two-stage fallback weights instead of counting
// a zero. Document-level values round to one decimal.
func CombineDocumentScore(core, keywordMatch, structuralFormat float64) types.DocumentScore {
	overall := Combine(DocumentProfile(), map[string]float64{
		DimCore:             core,
		DimKeywordMatch:     keywordMatch,
		DimStructuralFormat: structuralFormat,
	})
	return types.DocumentScore{
		Overall:          RoundDocument(overall),
		Core:             RoundDocument(core),
		StructuralFormat: RoundDocument(structuralFormat),
		KeywordMatch:     RoundDocument(keywordMatch),
	}
}
