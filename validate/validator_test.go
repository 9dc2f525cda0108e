package validate

import (
	"strings"
	"testing"

	"github.com/seo-metapilot/backend/regional"
)

// validDescription is exactly in the accepted length range.
var validDescription = strings.Repeat("Treuhand Beratung für KMU. ", 5) + "Jetzt anfragen."

func TestValidateCleanJSON(t *testing.T) {
	raw := `{"meta_title":"Treuhand Zürich - Beratung für KMU","meta_description":"` +
		validDescription + `","focus_keyword":"treuhand","reasoning":"Fokus auf Haupt-Keyword."}`

	r := Validate(raw, Context{})

	if r.UsedFallback {
		t.Error("Expected no fallback for clean JSON")
	}
	if r.MetaTitle != "Treuhand Zürich - Beratung für KMU" {
		t.Errorf("Unexpected title: %q", r.MetaTitle)
	}
	if r.FocusKeyword != "treuhand" {
		t.Errorf("Unexpected focus keyword: %q", r.FocusKeyword)
	}
	if !r.Validation.TitleValid {
		t.Errorf("Expected valid title, length %d", r.Validation.TitleLength)
	}
	if !r.Validation.DescriptionValid {
		t.Errorf("Expected valid description, length %d", r.Validation.DescriptionLength)
	}
}

func TestValidateMarkdownFencedJSON(t *testing.T) {
	raw := "Hier ist das Ergebnis:\n```json\n{\n  \"meta_title\": \"Steuerberatung Bern\",\n" +
		"  \"meta_description\": \"" + validDescription + "\",\n  \"focus_keyword\": \"steuerberatung\",\n}\n```\nViel Erfolg!"

	r := Validate(raw, Context{})

	if r.UsedFallback {
		t.Error("Expected no fallback for fenced JSON")
	}
	if r.MetaTitle != "Steuerberatung Bern" {
		t.Errorf("Unexpected title: %q", r.MetaTitle)
	}
}

func TestValidateRegexExtraction(t *testing.T) {
	// Broken JSON: unquoted key and garbage around the fields.
	raw := `Die Metadaten lauten: meta_title: "Buchhaltung leicht gemacht" und weiter ` +
		`"meta_description": "` + validDescription + `" fertig.`

	r := Validate(raw, Context{})

	if r.MetaTitle != "Buchhaltung leicht gemacht" {
		t.Errorf("Expected regex extraction of title, got %q", r.MetaTitle)
	}
	if r.UsedFallback {
		t.Error("Expected no fallback when fields are extractable")
	}
}

func TestValidateFallback(t *testing.T) {
	t.Run("EmptyResponse", func(t *testing.T) {
		r := Validate("", Context{FocusKeyword: "treuhand", PageTitle: "Unsere Dienstleistungen"})

		if !r.UsedFallback {
			t.Fatal("Expected fallback for empty response")
		}
		if r.MetaTitle != "treuhand - Unsere Dienstleistungen" {
			t.Errorf("Unexpected fallback title: %q", r.MetaTitle)
		}
		if !r.Validation.DescriptionValid {
			t.Errorf("Fallback description must be valid, length %d", r.Validation.DescriptionLength)
		}
	})

	t.Run("FocusAlreadyInTitle", func(t *testing.T) {
		r := Validate("", Context{FocusKeyword: "treuhand", PageTitle: "Treuhand Experten"})

		if r.MetaTitle != "Treuhand Experten" {
			t.Errorf("Expected title kept as-is, got %q", r.MetaTitle)
		}
	})

	t.Run("NothingAvailable", func(t *testing.T) {
		r := Validate("keine brauchbare antwort", Context{})

		if !r.UsedFallback {
			t.Fatal("Expected fallback")
		}
		if r.MetaTitle != "Startseite" {
			t.Errorf("Expected default title 'Startseite', got %q", r.MetaTitle)
		}
	})

	t.Run("RegionalDescription", func(t *testing.T) {
		rc := &regional.Context{
			Enabled:         true,
			SelectedCantons: []string{"ZH", "BE"},
		}
		r := Validate("", Context{FocusKeyword: "treuhand", Regional: rc})

		if !strings.Contains(r.MetaDescription, "Zürich") || !strings.Contains(r.MetaDescription, "Bern") {
			t.Errorf("Expected both region names in description: %q", r.MetaDescription)
		}
	})
}

func TestEnforceTitle(t *testing.T) {
	long := strings.Repeat("Treuhand ", 10) // 90 runes

	r := Validate(`{"meta_title":"`+strings.TrimSpace(long)+`","meta_description":"`+validDescription+`"}`, Context{})

	if got := len([]rune(r.MetaTitle)); got > 60 {
		t.Errorf("Title exceeds 60 runes: %d", got)
	}
	if !strings.HasSuffix(r.MetaTitle, "...") {
		t.Errorf("Expected ellipsis on truncated title: %q", r.MetaTitle)
	}
}

func TestEnforceDescription(t *testing.T) {
	t.Run("ShortGetsPadded", func(t *testing.T) {
		r := Validate(`{"meta_title":"Titel","meta_description":"Kurz."}`, Context{})

		length := len([]rune(r.MetaDescription))
		if length < 140 || length > 160 {
			t.Errorf("Padded description out of range: %d runes", length)
		}
		if !strings.Contains(r.MetaDescription, "Kontaktieren Sie uns") {
			t.Errorf("Expected call to action appended: %q", r.MetaDescription)
		}
	})

	t.Run("LongGetsTruncated", func(t *testing.T) {
		long := strings.Repeat("Beratung und Betreuung ", 10)
		r := Validate(`{"meta_title":"Titel","meta_description":"`+long+`"}`, Context{})

		length := len([]rune(r.MetaDescription))
		if length > 160 {
			t.Errorf("Description exceeds 160 runes: %d", length)
		}
		if !strings.HasSuffix(r.MetaDescription, "...") {
			t.Errorf("Expected ellipsis on truncated description: %q", r.MetaDescription)
		}
	})
}

func TestSanitizeStripsHTML(t *testing.T) {
	r := Validate(`{"meta_title":"<b>Treuhand</b>   Zürich","meta_description":"`+validDescription+`"}`, Context{})

	if strings.Contains(r.MetaTitle, "<") {
		t.Errorf("HTML survived sanitization: %q", r.MetaTitle)
	}
	if r.MetaTitle != "Treuhand Zürich" {
		t.Errorf("Expected collapsed whitespace, got %q", r.MetaTitle)
	}
}
