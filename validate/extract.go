package validate

import (
	"regexp"
	"strings"
)

// LLM responses rarely contain clean JSON: markdown fences, commentary and
// trailing commas are common. These patterns pull the object out first.
var (
	jsonBlockPattern     = regexp.MustCompile("(?s)```(?:json)?\\s*\\n?(\\{.*\\})\\s*```")
	jsonObjectPattern    = regexp.MustCompile(`(?s)\{[\s\S]*\}`)
	trailingCommaPattern = regexp.MustCompile(`,\s*([}\]])`)
)

// extractJSON returns the first JSON object found in the response, cleaned of
// trailing commas, or "" when none is present.
func extractJSON(content string) string {
	raw := ""
	if matches := jsonBlockPattern.FindStringSubmatch(content); len(matches) > 1 {
		raw = matches[1]
	} else if match := jsonObjectPattern.FindString(content); match != "" {
		raw = match
	}
	if raw == "" {
		return ""
	}
	return trailingCommaPattern.ReplaceAllString(raw, "$1")
}

// fieldPattern builds the per-field regex used when JSON parsing fails:
// key"? : "value", tolerant of missing quotes around the key.
func fieldPattern(key string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)"?` + regexp.QuoteMeta(key) + `"?\s*:\s*"((?:[^"\\]|\\.)*)"`)
}

var (
	titlePattern     = fieldPattern("meta_title")
	descPattern      = fieldPattern("meta_description")
	focusPattern     = fieldPattern("focus_keyword")
	reasoningPattern = fieldPattern("reasoning")
)

// extractField applies a field pattern and unescapes basic JSON escapes.
func extractField(raw string, pattern *regexp.Regexp) string {
	matches := pattern.FindStringSubmatch(raw)
	if len(matches) < 2 {
		return ""
	}
	value := matches[1]
	value = strings.ReplaceAll(value, `\"`, `"`)
	value = strings.ReplaceAll(value, `\\`, `\`)
	return value
}
