package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// Heuristic conflict categories.
const (
	CategoryMustNot  = "must_not"
	CategoryQuarter  = "quarter"
	CategoryBudget   = "budget"
	CategoryDuration = "duration"
)

var (
	mustPattern     = regexp.MustCompile(`\bmust\b`)
	mustNotPattern  = regexp.MustCompile(`\bmust\b.*\bnot\b`)
	quarterPattern  = regexp.MustCompile(`\bq[1-4]\b`)
	budgetPattern   = regexp.MustCompile(`\$[\d,]+`)
	durationPattern = regexp.MustCompile(`\d+\s*(?:weeks?|months?|days?)`)

	valuePatterns = []struct {
		category string
		pattern  *regexp.Regexp
	}{
		{CategoryQuarter, quarterPattern},
		{CategoryBudget, budgetPattern},
		{CategoryDuration, durationPattern},
	}
)

// RequirementConflict is one pairwise finding of DetectRequirementConflicts.
type RequirementConflict struct {
	ID           string      `json:"id"`
	Category     string      `json:"category"`
	Requirement1 Requirement `json:"requirement_1"`
	Requirement2 Requirement `json:"requirement_2"`
	Match1       string      `json:"match_1"`
	Match2       string      `json:"match_2"`
	Description  string      `json:"description"`
}

// ConflictCandidates returns the sentences of text worth comparing for
// conflicts: requirement sentences plus any sentence that says "must" or
// mentions a quarter, budget or duration. Order is preserved.
func ConflictCandidates(text string) []string {
	candidates := []string{}
	for _, sentence := range sentenceSplit.Split(text, -1) {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}
		if isRequirementSentence(sentence) || hasConflictSignal(strings.ToLower(sentence)) {
			candidates = append(candidates, sentence)
		}
	}
	return candidates
}

func hasConflictSignal(lowered string) bool {
	if mustPattern.MatchString(lowered) {
		return true
	}
	for _, vp := range valuePatterns {
		if vp.pattern.MatchString(lowered) {
			return true
		}
	}
	return false
}

// DetectRequirementConflicts compares every pair of requirements. Two
// requirements conflict in a value category (quarter, budget, duration) when
// both mention one and the first mentions differ, and in the must_not
// category when both say "must" and exactly one of them negates it.
//
// Runs in O(n²) over the input; callers should keep lists to a few hundred.
func DetectRequirementConflicts(requirements []Requirement) []RequirementConflict {
	conflicts := []RequirementConflict{}
	lowered := make([]string, len(requirements))
	for i, r := range requirements {
		lowered[i] = strings.ToLower(r.Text)
	}

	add := func(i, j int, category, m1, m2 string) {
		conflicts = append(conflicts, RequirementConflict{
			ID:           fmt.Sprintf("conflict_%d", len(conflicts)+1),
			Category:     category,
			Requirement1: requirements[i],
			Requirement2: requirements[j],
			Match1:       m1,
			Match2:       m2,
			Description:  fmt.Sprintf("Potential conflict: '%s' vs '%s'", m1, m2),
		})
	}

	for i := 0; i < len(requirements); i++ {
		for j := i + 1; j < len(requirements); j++ {
			t1, t2 := lowered[i], lowered[j]

			if mustPattern.MatchString(t1) && mustPattern.MatchString(t2) {
				neg1 := mustNotPattern.FindString(t1)
				neg2 := mustNotPattern.FindString(t2)
				if (neg1 == "") != (neg2 == "") {
					m1, m2 := neg1, neg2
					if m1 == "" {
						m1 = mustPattern.FindString(t1)
					}
					if m2 == "" {
						m2 = mustPattern.FindString(t2)
					}
					add(i, j, CategoryMustNot, m1, m2)
				}
			}

			for _, vp := range valuePatterns {
				m1 := vp.pattern.FindString(t1)
				m2 := vp.pattern.FindString(t2)
				if m1 != "" && m2 != "" && m1 != m2 {
					add(i, j, vp.category, m1, m2)
				}
			}
		}
	}
	return conflicts
}
