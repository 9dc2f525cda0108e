package promptgen

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/seo-metapilot/backend/research"
)

const sampleContent = "Treuhand Beratung für kleine Unternehmen in Zürich. " +
	"Unsere Treuhand Spezialisten übernehmen Buchhaltung und Steuererklärung. " +
	"Mit Treuhand Erfahrung seit vielen Jahren begleiten wir Firmen aller Grössen."

// stubResearch returns fixed results or a fixed error for every call.
type stubResearch struct {
	suggestions []string
	related     []string
	synonyms    []string
	places      []research.Place
	err         error
	panics      bool
}

func (s *stubResearch) Suggest(ctx context.Context, term string) ([]string, error) {
	if s.panics {
		panic("research client exploded")
	}
	return s.suggestions, s.err
}

func (s *stubResearch) RelatedTerms(ctx context.Context, term string) ([]string, error) {
	return s.related, s.err
}

func (s *stubResearch) Synonyms(ctx context.Context, term string) ([]string, error) {
	return s.synonyms, s.err
}

func (s *stubResearch) PlaceLookup(ctx context.Context, term string) ([]research.Place, error) {
	return s.places, s.err
}

func TestBuildUniversalPath(t *testing.T) {
	t.Run("NoResearchClient", func(t *testing.T) {
		b := NewBuilder()
		bundle := b.Build(context.Background(), sampleContent, "Treuhand Zürich", Settings{}, time.Now())

		if bundle.Path != PathUniversal {
			t.Errorf("Expected universal path, got %q", bundle.Path)
		}
		if bundle.Prompt == "" {
			t.Fatal("Expected a prompt")
		}
		if !strings.Contains(bundle.Prompt, "TECHNISCHE VORGABEN") {
			t.Error("Prompt missing technical footer")
		}
		if !strings.Contains(bundle.Prompt, "INHALTSANALYSE") {
			t.Error("Prompt missing analysis block")
		}
	})

	t.Run("FailingResearchClient", func(t *testing.T) {
		b := NewBuilder(WithResearchClient(&stubResearch{err: errors.New("network down")}))
		bundle := b.Build(context.Background(), sampleContent, "Treuhand Zürich", Settings{}, time.Now())

		if bundle.Path != PathUniversal {
			t.Errorf("Expected universal fallback on research errors, got %q", bundle.Path)
		}
	})

	t.Run("PanickingResearchClient", func(t *testing.T) {
		b := NewBuilder(WithResearchClient(&stubResearch{panics: true}))

		bundle := b.Build(context.Background(), sampleContent, "Treuhand Zürich", Settings{}, time.Now())

		if bundle.Path != PathUniversal {
			t.Errorf("Expected universal fallback after panic, got %q", bundle.Path)
		}
		if bundle.Prompt == "" {
			t.Error("Expected a prompt despite panic")
		}
	})

	t.Run("BudgetExhausted", func(t *testing.T) {
		b := NewBuilder(WithResearchClient(&stubResearch{suggestions: []string{"treuhand kosten"}}))

		// Pipeline started long ago, no budget left for any sub-step.
		start := time.Now().Add(-time.Minute)
		bundle := b.Build(context.Background(), sampleContent, "Treuhand Zürich", Settings{}, start)

		if bundle.Path != PathUniversal {
			t.Errorf("Expected universal path with exhausted budget, got %q", bundle.Path)
		}
	})
}

func TestBuildEnhancedPath(t *testing.T) {
	stub := &stubResearch{
		suggestions: []string{"treuhand zürich", "treuhand kosten"},
		related:     []string{"Buchhaltung", "Steuererklärung"},
		synonyms:    []string{"Treuhänder"},
	}
	b := NewBuilder(WithResearchClient(stub))

	bundle := b.Build(context.Background(), sampleContent, "Treuhand Zürich", Settings{}, time.Now())

	if bundle.Path != PathEnhanced {
		t.Fatalf("Expected enhanced path, got %q", bundle.Path)
	}
	if !strings.Contains(bundle.Prompt, "AKTUELLE SUCHDATEN") {
		t.Error("Prompt missing research block")
	}
	if !strings.Contains(bundle.Prompt, "treuhand zürich") {
		t.Error("Prompt missing suggestions")
	}
	if !strings.Contains(bundle.Prompt, "TECHNISCHE VORGABEN") {
		t.Error("Prompt missing technical footer")
	}
	if bundle.FocusKeyword != "treuhand" {
		t.Errorf("Unexpected focus keyword: %q", bundle.FocusKeyword)
	}
}

func TestBuildRegionalBlock(t *testing.T) {
	b := NewBuilder()
	settings := Settings{SelectedRegions: []string{"ZH"}, IncludeRegions: true}

	bundle := b.Build(context.Background(), sampleContent, "Treuhand", settings, time.Now())

	if !strings.Contains(bundle.Prompt, "REGIONALER FOKUS") {
		t.Error("Prompt missing regional block")
	}
	if !strings.Contains(bundle.Prompt, "Zürich") {
		t.Error("Prompt missing target region")
	}
	if len(bundle.Cantons) != 1 || bundle.Cantons[0] != "ZH" {
		t.Errorf("Unexpected cantons: %v", bundle.Cantons)
	}
}

func TestBuildDegenerateInput(t *testing.T) {
	b := NewBuilder()
	bundle := b.Build(context.Background(), "", "", Settings{}, time.Now())

	if bundle.Prompt == "" {
		t.Fatal("Expected a prompt for empty content")
	}
	if bundle.Path != PathUniversal {
		t.Errorf("Expected universal path, got %q", bundle.Path)
	}
}

func TestSettingsTone(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		want     string
	}{
		{"BrandVoiceWins", Settings{BrandVoice: "locker und direkt", PremiumTone: true}, "locker und direkt"},
		{"Premium", Settings{PremiumTone: true}, "gehoben und exklusiv"},
		{"Default", Settings{}, "professionell und vertrauenswürdig"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.settings.Tone(); got != tt.want {
				t.Errorf("Tone() = %q, want %q", got, tt.want)
			}
		})
	}
}
