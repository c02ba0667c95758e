package utils

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	requirementIndicator = regexp.MustCompile(`(?i)(?:must|should|shall)\s+(?:have|be|include|support)|required?\s+to|needs?\s+to|(?:will|would)\s+(?:have|include|support)`)
	sentenceSplit        = regexp.MustCompile(`[.!?]+`)

	stakeholderPatterns = []*regexp.Regexp{
		regexp.MustCompile(`([A-Z][a-z]+\s+[A-Z][a-z]+)\s*[\(\-]\s*([A-Z][A-Za-z\s]+)[\)]`),
		regexp.MustCompile(`([A-Z][a-z]+\s+[A-Z][a-z]+),\s*([A-Z][A-Za-z\s]+)`),
	}

	measurablePattern = regexp.MustCompile(`(?i)(?:\d+%|\d+\s*(?:users?|sales?|customers?)|increase.*\d+|reduce.*\d+)`)
	timeBoundPattern  = regexp.MustCompile(`(?i)\b(?:by|within|in)\s+(?:\d+\s*(?:months?|weeks?|days?|years?)|q[1-4]|january|february|march|april|may|june|july|august|september|october|november|december)\b`)
)

const minRequirementWords = 5

// Requirement is an extracted requirement sentence with a stable id.
type Requirement struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type Stakeholder struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// ExtractRequirements returns sentences of five or more words containing a
// requirement phrase such as "must have" or "needs to".
func ExtractRequirements(text string) []string {
	requirements := []string{}
	for _, sentence := range sentenceSplit.Split(text, -1) {
		sentence = strings.TrimSpace(sentence)
		if isRequirementSentence(sentence) {
			requirements = append(requirements, sentence)
		}
	}
	return requirements
}

func isRequirementSentence(sentence string) bool {
	return requirementIndicator.MatchString(sentence) && len(strings.Fields(sentence)) >= minRequirementWords
}

// IdentifyRequirements extracts requirements from text and numbers them from 1.
func IdentifyRequirements(text string) []Requirement {
	sentences := ExtractRequirements(text)
	out := make([]Requirement, 0, len(sentences))
	for i, s := range sentences {
		out = append(out, Requirement{ID: CreateRequirementID(s, i+1), Text: s})
	}
	return out
}

// CreateRequirementID builds "REQ-<initials of first three words>-NNN".
func CreateRequirementID(text string, index int) string {
	words := strings.Fields(text)
	if len(words) > 3 {
		words = words[:3]
	}
	var abbr strings.Builder
	for _, w := range words {
		r, _ := utf8.DecodeRuneInString(w)
		abbr.WriteRune(unicode.ToUpper(r))
	}
	return fmt.Sprintf("REQ-%s-%03d", abbr.String(), index)
}

// ExtractStakeholders finds "First Last (Role)" and "First Last, Role"
// mentions, keeping the first role seen per name.
func ExtractStakeholders(text string) []Stakeholder {
	seen := make(map[string]bool)
	stakeholders := []Stakeholder{}
	for _, pattern := range stakeholderPatterns {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			name := strings.TrimSpace(m[1])
			if seen[name] {
				continue
			}
			seen[name] = true
			stakeholders = append(stakeholders, Stakeholder{Name: name, Role: strings.TrimSpace(m[2])})
		}
	}
	return stakeholders
}

// SMART bucket names.
const (
	SmartSpecific   = "specific"
	SmartMeasurable = "measurable"
	SmartAchievable = "achievable"
	SmartRelevant   = "relevant"
	SmartTimeBound  = "time_bound"
)

// ParseSmartObjectives files text under the measurable and time_bound buckets
// when it carries metrics or deadlines. The other buckets are always empty.
func ParseSmartObjectives(text string) map[string][]string {
	smart := map[string][]string{
		SmartSpecific:   {},
		SmartMeasurable: {},
		SmartAchievable: {},
		SmartRelevant:   {},
		SmartTimeBound:  {},
	}
	if measurablePattern.MatchString(text) {
		smart[SmartMeasurable] = append(smart[SmartMeasurable], text)
	}
	if timeBoundPattern.MatchString(text) {
		smart[SmartTimeBound] = append(smart[SmartTimeBound], text)
	}
	return smart
}
