// Package validate turns raw LLM output into clean, length-constrained SEO
// fields. It is the terminal error boundary of the pipeline: Validate always
// returns a fully populated result and never panics or errors, regardless of
// what the model produced.
package validate

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/seo-metapilot/backend/regional"
)

const (
	maxTitleLength        = 60
	titleTruncateAt       = 57
	minDescriptionLength  = 140
	maxDescriptionLength  = 160
	descriptionTruncateAt = 157

	// descriptionCTA pads short descriptions into the valid range. Long
	// enough that any non-empty candidate lands at or above the minimum.
	descriptionCTA = "Kontaktieren Sie uns jetzt für eine unverbindliche Beratung – wir nehmen uns Zeit für Ihr Anliegen und erstellen Ihnen gerne eine passende Offerte."
)

// Context carries what the validator needs for the deterministic fallback.
type Context struct {
	FocusKeyword string
	PageTitle    string
	Regional     *regional.Context
}

// Validation reports the computed lengths and validity flags.
type Validation struct {
	TitleLength       int  `json:"titleLength"`
	TitleValid        bool `json:"titleValid"`
	DescriptionLength int  `json:"descriptionLength"`
	DescriptionValid  bool `json:"descriptionValid"`
}

// Result is the validated SEO output. All fields are always present; unknown
// values are empty strings, never missing.
type Result struct {
	MetaTitle       string     `json:"metaTitle"`
	MetaDescription string     `json:"metaDescription"`
	FocusKeyword    string     `json:"focusKeyword"`
	Reasoning       string     `json:"reasoning"`
	UsedFallback    bool       `json:"usedFallback"`
	Validation      Validation `json:"validation"`
}

type parsedFields struct {
	MetaTitle       string `json:"meta_title"`
	MetaDescription string `json:"meta_description"`
	FocusKeyword    string `json:"focus_keyword"`
	Reasoning       string `json:"reasoning"`
}

var (
	htmlTagPattern    = regexp.MustCompile(`<[^>]*>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Validate parses, cleans and length-corrects the raw LLM response. When
// nothing usable can be extracted it falls back to deterministic generation
// from the context.
func Validate(raw string, ctx Context) *Result {
	fields := parseResponse(raw)

	result := &Result{
		MetaTitle:       sanitize(fields.MetaTitle),
		MetaDescription: sanitize(fields.MetaDescription),
		FocusKeyword:    sanitize(fields.FocusKeyword),
		Reasoning:       strings.TrimSpace(fields.Reasoning),
	}

	if result.MetaTitle == "" && result.MetaDescription == "" {
		applyFallback(result, ctx)
	}

	if result.FocusKeyword == "" {
		result.FocusKeyword = ctx.FocusKeyword
	}

	result.MetaTitle = enforceTitle(result.MetaTitle)
	result.MetaDescription = enforceDescription(result.MetaDescription)
	result.Validation = computeValidation(result)

	return result
}

// parseResponse tries strict JSON first, then per-field regex extraction.
func parseResponse(raw string) parsedFields {
	var fields parsedFields

	if extracted := extractJSON(raw); extracted != "" {
		if err := json.Unmarshal([]byte(extracted), &fields); err == nil {
			return fields
		}
	}

	// Fallback parse: each field independently, unmatched fields stay empty.
	fields.MetaTitle = extractField(raw, titlePattern)
	fields.MetaDescription = extractField(raw, descPattern)
	fields.FocusKeyword = extractField(raw, focusPattern)
	fields.Reasoning = extractField(raw, reasoningPattern)
	return fields
}

// applyFallback fills the result from the deterministic fallback generator.
func applyFallback(result *Result, ctx Context) {
	result.UsedFallback = true
	result.MetaTitle = fallbackTitle(ctx)
	result.MetaDescription = fallbackDescription(ctx)
	if result.Reasoning == "" {
		result.Reasoning = "Automatisch generiert aus der Inhaltsanalyse."
	}
}

// fallbackTitle builds "{focus} - {title}", prepending the keyword only when
// the title does not already contain it.
func fallbackTitle(ctx Context) string {
	title := strings.TrimSpace(ctx.PageTitle)
	focus := strings.TrimSpace(ctx.FocusKeyword)

	switch {
	case title == "" && focus == "":
		return "Startseite"
	case title == "":
		return focus
	case focus == "":
		return title
	case strings.Contains(strings.ToLower(title), strings.ToLower(focus)):
		return title
	default:
		return focus + " - " + title
	}
}

// fallbackDescription fills the fixed template, substituting up to two
// regional names when regional targeting is enabled.
func fallbackDescription(ctx Context) string {
	subject := strings.TrimSpace(ctx.FocusKeyword)
	if subject == "" {
		subject = strings.TrimSpace(ctx.PageTitle)
	}
	if subject == "" {
		subject = "unsere Dienstleistungen"
	}

	regionPart := ""
	if ctx.Regional != nil && ctx.Regional.Enabled {
		names := regionNames(ctx.Regional, 2)
		switch len(names) {
		case 1:
			regionPart = " in " + names[0]
		case 2:
			regionPart = " in " + names[0] + " und " + names[1]
		}
	}

	return "Erfahren Sie mehr über " + subject + regionPart +
		" – persönliche Beratung, transparente Konditionen und langjährige Erfahrung."
}

func regionNames(rc *regional.Context, limit int) []string {
	names := []string{}
	for _, code := range rc.SelectedCantons {
		if canton, ok := regional.CantonByCode(code); ok {
			names = append(names, canton.Name)
		}
		if len(names) == limit {
			break
		}
	}
	if len(names) == 0 && rc.TargetRegion != "" {
		names = append(names, rc.TargetRegion)
	}
	return names
}

// sanitize strips HTML, collapses whitespace and trims.
func sanitize(s string) string {
	s = htmlTagPattern.ReplaceAllString(s, " ")
	s = whitespacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// enforceTitle truncates over-long titles to 57 runes plus ellipsis.
func enforceTitle(title string) string {
	runes := []rune(title)
	if len(runes) <= maxTitleLength {
		return title
	}
	return strings.TrimSpace(string(runes[:titleTruncateAt])) + "..."
}

// enforceDescription pads short descriptions with the fixed call to action
// and truncates over-long ones to 157 runes plus ellipsis.
func enforceDescription(desc string) string {
	if desc == "" {
		return ""
	}

	if len([]rune(desc)) < minDescriptionLength {
		if !strings.HasSuffix(desc, ".") && !strings.HasSuffix(desc, "!") {
			desc += "."
		}
		desc += " " + descriptionCTA
	}

	runes := []rune(desc)
	if len(runes) > maxDescriptionLength {
		return strings.TrimSpace(string(runes[:descriptionTruncateAt])) + "..."
	}
	return desc
}

func computeValidation(r *Result) Validation {
	titleLen := len([]rune(r.MetaTitle))
	descLen := len([]rune(r.MetaDescription))

	return Validation{
		TitleLength:       titleLen,
		TitleValid:        titleLen > 0 && titleLen <= maxTitleLength,
		DescriptionLength: descLen,
		DescriptionValid:  descLen >= minDescriptionLength && descLen <= maxDescriptionLength,
	}
}
