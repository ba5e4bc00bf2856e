package types

// IndicatorEntry is one named document-level quality dimension with a 1-10 score.
type IndicatorEntry struct {
	DimensionID int     `json:"dimension_id"`
	Name        string  `json:"name"`
	Score       float64 `json:"score"`
	Evidence    string  `json:"evidence,omitempty"`
	Suggestion  string  `json:"suggestion,omitempty"`
}

// IndicatorSet is an ordered set of indicator entries, sorted by DimensionID.
type IndicatorSet struct {
	Entries []IndicatorEntry `json:"entries"`
}

// Average returns the mean score across all entries, or 0 for an empty set.
func (s *IndicatorSet) Average() float64 {
	if len(s.Entries) == 0 {
		return 0
	}
	sum := 0.0
	for _, e := range s.Entries {
		sum += e.Score
	}
	return sum / float64(len(s.Entries))
}

// Find returns the entry with the given dimension id, or nil if absent.
func (s *IndicatorSet) Find(dimensionID int) *IndicatorEntry {
	for i := range s.Entries {
		if s.Entries[i].DimensionID == dimensionID {
			return &s.Entries[i]
		}
	}
	return nil
}
