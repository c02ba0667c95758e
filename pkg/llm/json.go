package llm

import (
	"bytes"
	"encoding/json"
)

// JSONInstruction is appended to every prompt that expects a JSON reply.
const JSONInstruction = "\n\nIMPORTANT: Return ONLY valid JSON. No markdown, no code blocks, no explanations. Just pure JSON."

// JSONReply is the outcome of asking a model for JSON. Valid is false when
// the cleaned text did not parse; Raw is always populated.
type JSONReply struct {
	Raw   string
	Value interface{}
	Valid bool
}

// Object returns the parsed value, or {"content": Raw} when parsing failed.
func (r *JSONReply) Object() interface{} {
	if r.Valid {
		return r.Value
	}
	return map[string]interface{}{"content": r.Raw}
}

// Map returns the parsed value when it is a JSON object.
func (r *JSONReply) Map() (map[string]interface{}, bool) {
	if !r.Valid {
		return nil, false
	}
	m, ok := r.Value.(map[string]interface{})
	return m, ok
}

// StripCodeFences removes a leading ```json or ``` fence and a trailing ```
// fence. Fence-free text comes back trimmed.
func StripCodeFences(text string) string {
	b := bytes.TrimSpace([]byte(text))
	if bytes.HasPrefix(b, []byte("```json")) {
		b = bytes.TrimPrefix(b, []byte("```json"))
	} else {
		b = bytes.TrimPrefix(b, []byte("```"))
	}
	b = bytes.TrimSuffix(bytes.TrimSpace(b), []byte("```"))
	return string(bytes.TrimSpace(b))
}

// ParseJSONReply cleans text and tries to decode it. It never fails.
func ParseJSONReply(text string) *JSONReply {
	cleaned := StripCodeFences(text)
	reply := &JSONReply{Raw: cleaned}

	var value interface{}
	if err := json.Unmarshal([]byte(cleaned), &value); err == nil {
		reply.Value = value
		reply.Valid = true
	}
	return reply
}

// EstimateTokens approximates a token count at four characters per token.
func EstimateTokens(text string) int {
	return len(text) / 4
}
