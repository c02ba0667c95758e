package utils

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"
)

const MaxFilenameLength = 255

var (
	urlPattern          = regexp.MustCompile("https?://[^\\s<>\"{}|\\\\^`\\[\\]]+")
	invalidFilenameChar = regexp.MustCompile(`[<>:"/\\|?*]`)
)

// ExtractURLs returns every http(s) URL in text, in order of appearance.
func ExtractURLs(text string) []string {
	urls := urlPattern.FindAllString(text, -1)
	if urls == nil {
		return []string{}
	}
	return urls
}

// SanitizeFilename replaces characters that are invalid in file names,
// trims dots and spaces and caps the length, keeping the extension.
func SanitizeFilename(filename string) string {
	sanitized := invalidFilenameChar.ReplaceAllString(filename, "_")
	sanitized = strings.Trim(sanitized, ". ")

	runes := []rune(sanitized)
	if len(runes) > MaxFilenameLength {
		if dot := strings.LastIndex(sanitized, "."); dot != -1 {
			name, ext := []rune(sanitized[:dot]), []rune(sanitized[dot+1:])
			keep := MaxFilenameLength - len(ext) - 1
			if keep < 0 {
				keep = 0
			}
			if keep > len(name) {
				keep = len(name)
			}
			sanitized = string(name[:keep]) + "." + string(ext)
		} else {
			sanitized = string(runes[:MaxFilenameLength])
		}
	}

	if sanitized == "" {
		return "unnamed_file"
	}
	return sanitized
}

// HumanizeID turns "success_metrics" into "Success Metrics".
func HumanizeID(id string) string {
	return titleCase(strings.ReplaceAll(id, "_", " "))
}

func titleCase(s string) string {
	var sb strings.Builder
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				sb.WriteRune(unicode.ToLower(r))
			} else {
				sb.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
			continue
		}
		sb.WriteRune(r)
		prevLetter = false
	}
	return sb.String()
}

// FormatBRDSection renders a section as markdown with a title derived from its id.
func FormatBRDSection(sectionID string, content interface{}) string {
	return FormatSection(HumanizeID(sectionID), content)
}

// FormatSection renders content under a "## title" heading. Objects become
// "###" sub-sections in key order and lists become numbered items.
func FormatSection(title string, content interface{}) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## %s\n\n", title)

	switch val := content.(type) {
	case string:
		fmt.Fprintf(&sb, "%s\n\n", val)
	case map[string]interface{}:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&sb, "### %s\n%s\n\n", HumanizeID(k), Stringify(val[k]))
		}
	case []interface{}:
		for i, item := range val {
			fmt.Fprintf(&sb, "%d. %s\n", i+1, Stringify(item))
		}
		sb.WriteString("\n")
	default:
		fmt.Fprintf(&sb, "%s\n\n", Stringify(val))
	}
	return sb.String()
}

// Stringify renders a scalar as text and objects or lists as compact JSON.
func Stringify(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	case map[string]interface{}, []interface{}:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(b)
	default:
		return fmt.Sprint(val)
	}
}
