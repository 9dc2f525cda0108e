package strategy

import (
	"testing"

	"github.com/seo-metapilot/backend/classify"
	"github.com/seo-metapilot/backend/keywords"
	"github.com/seo-metapilot/backend/regional"
	"github.com/seo-metapilot/backend/seotext"
)

func analyzeAll(content string, regions []string) (*keywords.Analysis, *classify.Classification, *regional.Context, *seotext.ProcessedText) {
	p := seotext.Process(content)
	ka := keywords.Analyze(p)
	cl := classify.Classify(p, ka)
	rc := regional.Analyze(content, regional.Settings{SelectedRegions: regions})
	return ka, cl, rc, p
}

const richContent = "Treuhand Beratung für kleine Unternehmen in Zürich. " +
	"Unsere Treuhand Spezialisten übernehmen Buchhaltung und Steuererklärung. " +
	"Mit Treuhand Erfahrung seit über zwanzig Jahren begleiten wir Firmen aller Grössen. " +
	"Die Buchhaltung bleibt dabei stets transparent und nachvollziehbar dokumentiert."

func TestDevelop(t *testing.T) {
	t.Run("FocusFromPrimaries", func(t *testing.T) {
		ka, cl, rc, p := analyzeAll(richContent, nil)
		r := Develop(ka, cl, rc, "Treuhand Zürich", p)

		if r.FocusKeyword != "treuhand" {
			t.Errorf("Expected focus 'treuhand', got %q", r.FocusKeyword)
		}
		if r.StrategyConfidence < 60 {
			t.Errorf("Expected confidence above base for matching title, got %d", r.StrategyConfidence)
		}
	})

	t.Run("TitleMatchRaisesConfidence", func(t *testing.T) {
		ka, cl, rc, p := analyzeAll(richContent, nil)

		with := Develop(ka, cl, rc, "Treuhand Zürich", p)
		without := Develop(ka, cl, rc, "Ganz anderes Thema", p)

		if with.StrategyConfidence <= without.StrategyConfidence {
			t.Errorf("Expected title match to raise confidence: %d vs %d",
				with.StrategyConfidence, without.StrategyConfidence)
		}
	})

	t.Run("RegionalBonus", func(t *testing.T) {
		ka, cl, rcOff, p := analyzeAll(richContent, nil)
		_, _, rcOn, _ := analyzeAll(richContent, []string{"ZH"})

		off := Develop(ka, cl, rcOff, "Treuhand", p)
		on := Develop(ka, cl, rcOn, "Treuhand", p)

		if on.StrategyConfidence != off.StrategyConfidence+5 {
			t.Errorf("Expected +5 regional bonus: %d vs %d",
				on.StrategyConfidence, off.StrategyConfidence)
		}
	})

	t.Run("NoKeywords", func(t *testing.T) {
		ka, cl, rc, p := analyzeAll("", nil)
		r := Develop(ka, cl, rc, "", p)

		if r.FocusKeyword != "" {
			t.Errorf("Expected empty focus keyword, got %q", r.FocusKeyword)
		}
		if len(r.PrimaryVariations) != 0 {
			t.Errorf("Expected no variations, got %v", r.PrimaryVariations)
		}
		// Base 60, minus 40 for missing keywords, minus 10 for low quality.
		if r.StrategyConfidence != 10 {
			t.Errorf("Expected confidence 10, got %d", r.StrategyConfidence)
		}
	})
}
