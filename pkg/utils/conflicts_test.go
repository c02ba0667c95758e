package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reqs(texts ...string) []Requirement {
	out := make([]Requirement, len(texts))
	for i, t := range texts {
		out[i] = Requirement{ID: CreateRequirementID(t, i+1), Text: t}
	}
	return out
}

func TestDetectRequirementConflicts(t *testing.T) {
	tests := []struct {
		name         string
		input        []Requirement
		wantCategory []string
		wantMatches  [][2]string
	}{
		{
			name:         "different quarters",
			input:        reqs("Launch must happen in Q2", "Launch must happen in Q4"),
			wantCategory: []string{CategoryQuarter},
			wantMatches:  [][2]string{{"q2", "q4"}},
		},
		{
			name:         "identical strings",
			input:        reqs("Launch must happen in Q2", "Launch must happen in Q2"),
			wantCategory: []string{},
		},
		{
			name:         "must versus must not",
			input:        reqs("The app must not store card data", "The app must store card data"),
			wantCategory: []string{CategoryMustNot},
			wantMatches:  [][2]string{{"must not", "must"}},
		},
		{
			name:         "must not on second side",
			input:        reqs("The app must store card data", "The app must not store card data"),
			wantCategory: []string{CategoryMustNot},
			wantMatches:  [][2]string{{"must", "must not"}},
		},
		{
			name:         "budget",
			input:        reqs("Budget is $50,000", "Budget is $75,000"),
			wantCategory: []string{CategoryBudget},
			wantMatches:  [][2]string{{"$50,000", "$75,000"}},
		},
		{
			name:         "duration",
			input:        reqs("Delivery in 6 weeks", "Delivery in 3 months"),
			wantCategory: []string{CategoryDuration},
			wantMatches:  [][2]string{{"6 weeks", "3 months"}},
		},
		{
			name:         "single requirement",
			input:        reqs("Launch in Q2"),
			wantCategory: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectRequirementConflicts(tt.input)

			require.Len(t, got, len(tt.wantCategory))
			for i, c := range got {
				assert.Equal(t, tt.wantCategory[i], c.Category)
				assert.Equal(t, tt.wantMatches[i][0], c.Match1)
				assert.Equal(t, tt.wantMatches[i][1], c.Match2)
				assert.Equal(t, tt.input[0].ID, c.Requirement1.ID)
				assert.Equal(t, tt.input[1].ID, c.Requirement2.ID)
			}
		})
	}
}

func TestDetectRequirementConflicts_IDsAreSequential(t *testing.T) {
	got := DetectRequirementConflicts(reqs("Ship in Q1", "Ship in Q2", "Ship in Q3"))

	require.Len(t, got, 3)
	assert.Equal(t, "conflict_1", got[0].ID)
	assert.Equal(t, "conflict_3", got[2].ID)
	assert.Equal(t, "Potential conflict: 'q1' vs 'q2'", got[0].Description)
}

func TestConflictCandidates(t *testing.T) {
	got := ConflictCandidates("Must launch by Q2 2024. Must launch by Q4 2024. The team met on Monday! Budget is $50,000?")

	assert.Equal(t, []string{"Must launch by Q2 2024", "Must launch by Q4 2024", "Budget is $50,000"}, got)
	assert.Empty(t, ConflictCandidates("   "))
}
