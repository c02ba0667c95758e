package utils

import (
	"math"
	"strings"
)

// CalculateConfidenceScore rates a set of sources, one type entry per source.
// Quantity contributes up to 0.8 and each distinct type adds 0.05.
func CalculateConfidenceScore(sourceTypes []string) float64 {
	if len(sourceTypes) == 0 {
		return 0
	}

	base := math.Min(float64(len(sourceTypes))/5.0, 0.8)

	unique := make(map[string]struct{})
	for _, t := range sourceTypes {
		if t == "" {
			t = "unknown"
		}
		unique[t] = struct{}{}
	}

	score := math.Min(base+float64(len(unique))*0.05, 1.0)
	return math.Round(score*100) / 100
}

type Completeness struct {
	IsComplete             bool     `json:"is_complete"`
	CompletenessPercentage float64  `json:"completeness_percentage"`
	CompletedSections      int      `json:"completed_sections"`
	TotalRequiredSections  int      `json:"total_required_sections"`
	MissingSections        []string `json:"missing_sections"`
}

// ValidateCompleteness checks that every required section id has content.
// A template with no required sections is never complete.
func ValidateCompleteness(content map[string]interface{}, requiredIDs []string) Completeness {
	res := Completeness{
		TotalRequiredSections: len(requiredIDs),
		MissingSections:       []string{},
	}
	for _, id := range requiredIDs {
		if SectionFilled(content[id]) {
			res.CompletedSections++
		} else {
			res.MissingSections = append(res.MissingSections, id)
		}
	}

	if len(requiredIDs) > 0 {
		pct := float64(res.CompletedSections) / float64(len(requiredIDs)) * 100
		res.CompletenessPercentage = math.Round(pct*10) / 10
	}
	res.IsComplete = res.TotalRequiredSections > 0 && res.CompletedSections == res.TotalRequiredSections
	return res
}

// SectionFilled reports whether a section value carries content. Section
// objects are judged by their "content" field when present, then by an
// explicit "completed" flag.
func SectionFilled(v interface{}) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(val) != ""
	case bool:
		return val
	case float64:
		return val != 0
	case []interface{}:
		return len(val) > 0
	case map[string]interface{}:
		if content, ok := val["content"]; ok {
			return SectionFilled(content)
		}
		if done, ok := val["completed"].(bool); ok {
			return done
		}
		return len(val) > 0
	default:
		return true
	}
}
