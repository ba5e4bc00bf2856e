package sections

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-tailor/internal/types"
)

func TestNamesMatch(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected bool
	}{
		{"Exact match", "Education", "Education", true},
		{"Case insensitive", "SKILLS", "skills", true},
		{"Alias - experience", "Work Experience", "Experience", true},
		{"Alias - employment history", "Employment History", "Professional Experience", true},
		{"Alias - summary", "Profile", "Objective", true},
		{"Trailing colon", "Education:", "Education", true},
		{"Different sections", "Education", "Skills", false},
		{"Empty name", "", "Skills", false},
		{"Unknown but equal", "Patents", "patents", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NamesMatch(tt.a, tt.b), "NamesMatch(%q, %q)", tt.a, tt.b)
		})
	}
}

func TestSplit(t *testing.T) {
	document := `Seasoned platform engineer with a focus on reliability.

WORK EXPERIENCE
Led the migration of 40 services to Kubernetes.
Cut deploy times by 70%.

Education:
BSc Computer Science, 2015

SKILLS
Go, Postgres, Terraform`

	sections := Split(document)
	require.Len(t, sections, 4)

	assert.Equal(t, "Summary", sections[0].Name)
	assert.Contains(t, sections[0].Text, "Seasoned platform engineer")

	assert.Equal(t, "Work Experience", sections[1].Name)
	assert.Contains(t, sections[1].Text, "Kubernetes")

	assert.Equal(t, "Education", sections[2].Name)
	assert.Equal(t, "Skills", sections[3].Name)
}

func TestSplit_NoHeadings(t *testing.T) {
	sections := Split("Just one paragraph of prose, with no headings at all.")
	require.Len(t, sections, 1)
	assert.Equal(t, "Summary", sections[0].Name)
}

func TestSplit_EmptyDocument(t *testing.T) {
	assert.Empty(t, Split(""))
	assert.Empty(t, Split("\n\n\n"))
}

func TestAlign(t *testing.T) {
	originals := []types.Section{
		{Name: "Summary", Text: "original summary"},
		{Name: "Work Experience", Text: "original experience"},
		{Name: "Education", Text: "original education"},
	}
	candidates := []types.Section{
		{Name: "Experience", Text: "tailored experience"},
		{Name: "Profile", Text: "tailored summary"},
		{Name: "Certifications", Text: "new certifications"},
	}

	pairs := Align(originals, candidates)
	require.Len(t, pairs, 4)

	assert.Equal(t, "Summary", pairs[0].Name)
	assert.Equal(t, "tailored summary", pairs[0].Candidate)

	assert.Equal(t, "Work Experience", pairs[1].Name)
	assert.Equal(t, "tailored experience", pairs[1].Candidate)

	// No candidate rewrote education
	assert.Equal(t, "Education", pairs[2].Name)
	assert.Empty(t, pairs[2].Candidate)

	// Candidate-only section appended last
	assert.Equal(t, "Certifications", pairs[3].Name)
	assert.Empty(t, pairs[3].Original)
}
