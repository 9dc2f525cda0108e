package classify

import (
	"strings"
	"testing"

	"github.com/seo-metapilot/backend/keywords"
	"github.com/seo-metapilot/backend/seotext"
)

func analyzeFor(t *testing.T, content string) *Classification {
	t.Helper()
	p := seotext.Process(content)
	ka := keywords.Analyze(p)
	return Classify(p, ka)
}

func TestClassifyCategory(t *testing.T) {
	t.Run("Commercial", func(t *testing.T) {
		cl := analyzeFor(t, "Unsere Dienstleistungen und Angebote im Überblick. "+
			"Transparente Preise für jede Beratung. Verlangen Sie eine Offerte für unsere Leistungen.")

		if cl.ContentType != ContentTypeCommercial {
			t.Errorf("Expected commercial, got %q", cl.ContentType)
		}
		if cl.SearchIntent != cl.ContentType {
			t.Errorf("Search intent %q diverges from content type %q", cl.SearchIntent, cl.ContentType)
		}
	})

	t.Run("Transactional", func(t *testing.T) {
		cl := analyzeFor(t, "Jetzt online buchen und Termin reservieren. "+
			"Kontaktieren Sie uns für einen Rabatt. Direkt im Shop bestellen und Gutschein anmelden.")

		if cl.ContentType != ContentTypeTransactional {
			t.Errorf("Expected transactional, got %q", cl.ContentType)
		}
	})

	t.Run("DefaultInformational", func(t *testing.T) {
		cl := analyzeFor(t, "Schöne lange Spaziergänge entlang gemütlicher Seeufer entspannen Körper und Geist nachhaltig.")

		if cl.ContentType != ContentTypeInformational {
			t.Errorf("Expected informational default, got %q", cl.ContentType)
		}
	})
}

func TestScoresWithinBounds(t *testing.T) {
	cl := analyzeFor(t, "Die professionelle Software Implementierung erfordert digitale Infrastruktur. "+
		"Haben Sie Fragen? Wir liefern Antworten! Über 500 Projekte erfolgreich umgesetzt.")

	scores := map[string]int{
		"readability": cl.ReadabilityScore,
		"engagement":  cl.EngagementScore,
		"technical":   cl.TechnicalScore,
		"uniqueness":  cl.UniquenessScore,
		"quality":     cl.ContentQuality.OverallScore,
	}
	for name, score := range scores {
		if score < 0 || score > 100 {
			t.Errorf("%s score out of bounds: %d", name, score)
		}
	}
}

func TestContentQualityRecommendations(t *testing.T) {
	t.Run("ThinContent", func(t *testing.T) {
		cl := analyzeFor(t, "Willkommen auf unserer Seite.")

		if len(cl.ContentQuality.Recommendations) == 0 {
			t.Fatal("Expected recommendations for thin content")
		}
		found := false
		for _, r := range cl.ContentQuality.Recommendations {
			if strings.Contains(r, "Wörter") || strings.Contains(r, "Inhalt") {
				found = true
			}
		}
		if !found {
			t.Errorf("Expected a word-count recommendation, got %v", cl.ContentQuality.Recommendations)
		}
	})

	t.Run("ComplexWords", func(t *testing.T) {
		cl := analyzeFor(t, "Die Digitalisierung ermöglicht Automatisierung, Individualisierung "+
			"sowie Implementierung komplizierter Organisationsprozesse.")

		found := false
		for _, r := range cl.ContentQuality.Recommendations {
			if strings.Contains(r, "Silben") {
				found = true
			}
		}
		if !found {
			t.Errorf("Expected a syllable recommendation, got %v", cl.ContentQuality.Recommendations)
		}
	})

	t.Run("EmptyContent", func(t *testing.T) {
		cl := analyzeFor(t, "")

		if cl.ReadabilityScore != 50 {
			t.Errorf("Expected neutral readability 50 for empty content, got %d", cl.ReadabilityScore)
		}
		if cl.ContentType != ContentTypeInformational {
			t.Errorf("Expected informational default, got %q", cl.ContentType)
		}
	})
}

func TestSeasonalContext(t *testing.T) {
	cl := analyzeFor(t, "Unsere Weihnachten Aktion bringt festliche Stimmung in den Winter. "+
		"Advent Angebote für die ganze Familie verfügbar.")

	if len(cl.SeasonalContext) == 0 {
		t.Fatal("Expected seasonal context")
	}
	for _, s := range cl.SeasonalContext {
		if s == "Winter" {
			return
		}
	}
	t.Errorf("Expected 'Winter' in seasonal context, got %v", cl.SeasonalContext)
}

func TestComplexityLevel(t *testing.T) {
	tests := []struct {
		name        string
		avgWordLen  float64
		avgSentence float64
		want        string
	}{
		{"Simple", 4.5, 10, ComplexityBeginner},
		{"Intermediate", 6.5, 15, ComplexityIntermediate},
		{"Expert", 9.0, 12, ComplexityExpert},
		{"LongSentences", 5.0, 26, ComplexityExpert},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := complexityLevel(tt.avgWordLen, tt.avgSentence); got != tt.want {
				t.Errorf("complexityLevel(%f, %f) = %q, want %q", tt.avgWordLen, tt.avgSentence, got, tt.want)
			}
		})
	}
}
