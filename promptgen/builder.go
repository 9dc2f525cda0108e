// Package promptgen assembles the natural-language prompt handed to the LLM.
// It orchestrates the local analyzers and, when available and within budget,
// the external keyword-research sources. Research is strictly best-effort: the
// builder always terminates in a valid prompt, falling back to the universal
// path on any research failure.
package promptgen

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/seo-metapilot/backend/classify"
	"github.com/seo-metapilot/backend/keywords"
	"github.com/seo-metapilot/backend/regional"
	"github.com/seo-metapilot/backend/research"
	"github.com/seo-metapilot/backend/seotext"
	"github.com/seo-metapilot/backend/strategy"
)

// Generation paths.
const (
	PathEnhanced  = "enhanced"
	PathUniversal = "universal"
)

const (
	// DefaultResearchBudget bounds all research calls per generation,
	// measured from the pipeline start.
	DefaultResearchBudget = 10 * time.Second

	// estimatedStepCost is the assumed wall-clock cost of one research
	// sub-step. A sub-step is skipped once the remaining budget drops
	// below this; started sub-steps run to completion.
	estimatedStepCost = 2 * time.Second

	maxPromptSuggestions = 8
	maxPromptRelated     = 6
	maxPromptSynonyms    = 6
)

// Analysis bundles every locally computed signal for one content item.
type Analysis struct {
	Processed      *seotext.ProcessedText   `json:"-"`
	Keywords       *keywords.Analysis       `json:"keywords"`
	Classification *classify.Classification `json:"classification"`
	Regional       *regional.Context        `json:"regional"`
	Strategy       *strategy.Result         `json:"strategy"`
}

// Bundle is the assembled prompt plus the context snapshot used to build it.
// Immutable once built; consumed exactly once by the LLM collaborator.
type Bundle struct {
	Prompt       string    `json:"prompt"`
	Path         string    `json:"path"`
	FocusKeyword string    `json:"focusKeyword"`
	Tone         string    `json:"tone"`
	Cantons      []string  `json:"cantons"`
	Focus        string    `json:"optimizationFocus"`
	Settings     Settings  `json:"settings"`
	Analysis     *Analysis `json:"analysis"`
}

// researchData is what the enhanced path gathered before the budget ran out.
type researchData struct {
	suggestions []string
	related     []string
	synonyms    []string
	places      []research.Place
}

func (r researchData) hasResults() bool {
	return len(r.suggestions) > 0 || len(r.related) > 0 || len(r.synonyms) > 0
}

// Builder builds prompts. The research client is optional; a nil client
// disables the enhanced path entirely.
type Builder struct {
	research research.Client
	budget   time.Duration
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithResearchClient enables the enhanced path with the given collaborator.
func WithResearchClient(c research.Client) BuilderOption {
	return func(b *Builder) { b.research = c }
}

// WithResearchBudget overrides the research time budget.
func WithResearchBudget(d time.Duration) BuilderOption {
	return func(b *Builder) { b.budget = d }
}

// NewBuilder creates a prompt builder.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{budget: DefaultResearchBudget}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// AnalyzeContent runs the full local analysis chain over one content item.
func AnalyzeContent(content, title string, settings Settings) *Analysis {
	processed := seotext.Process(content)
	ka := keywords.Analyze(processed)
	cl := classify.Classify(processed, ka)
	rc := regional.Analyze(content, regional.Settings{SelectedRegions: settings.Regions()})
	st := strategy.Develop(ka, cl, rc, title, processed)

	return &Analysis{
		Processed:      processed,
		Keywords:       ka,
		Classification: cl,
		Regional:       rc,
		Strategy:       st,
	}
}

// Build assembles the prompt for one content item. start marks the pipeline
// start; the research budget counts from there. Build never fails.
func (b *Builder) Build(ctx context.Context, content, title string, settings Settings, start time.Time) *Bundle {
	analysis := AnalyzeContent(content, title, settings)

	bundle := &Bundle{
		Path:         PathUniversal,
		FocusKeyword: analysis.Strategy.FocusKeyword,
		Tone:         settings.Tone(),
		Cantons:      analysis.Regional.SelectedCantons,
		Focus:        settings.OptimizationFocus,
		Settings:     settings,
		Analysis:     analysis,
	}

	if b.research != nil {
		if data, ok := b.gatherResearch(ctx, analysis, start); ok && data.hasResults() {
			bundle.Path = PathEnhanced
			bundle.Prompt = b.buildEnhancedPrompt(title, settings, analysis, data)
			return bundle
		}
	}

	bundle.Prompt = b.buildUniversalPrompt(title, settings, analysis)
	return bundle
}

// gatherResearch collects suggestions, related terms, synonyms and places,
// checking the remaining budget between sub-steps. A panicking or failing
// client never escapes: the caller falls back to the universal path.
func (b *Builder) gatherResearch(ctx context.Context, analysis *Analysis, start time.Time) (data researchData, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("research client panic recovered: %v", r)
			ok = false
		}
	}()

	term := analysis.Strategy.FocusKeyword
	if term == "" {
		term = strings.ToLower(analysis.Keywords.MainTopic)
	}
	if term == "" {
		return data, false
	}

	remaining := func() time.Duration { return b.budget - time.Since(start) }

	if remaining() >= estimatedStepCost {
		if suggestions, err := b.research.Suggest(ctx, term); err == nil {
			data.suggestions = suggestions
		}
	}
	if remaining() >= estimatedStepCost {
		if related, err := b.research.RelatedTerms(ctx, term); err == nil {
			data.related = related
		}
	}
	if remaining() >= estimatedStepCost {
		if synonyms, err := b.research.Synonyms(ctx, term); err == nil {
			data.synonyms = synonyms
		}
	}
	if remaining() >= estimatedStepCost && analysis.Regional.Enabled {
		if places, err := b.research.PlaceLookup(ctx, analysis.Regional.TargetRegion); err == nil {
			data.places = places
		}
	}

	return data, true
}

// buildEnhancedPrompt produces the research-backed prompt section order:
// research results, content analysis, regional block, technical footer.
func (b *Builder) buildEnhancedPrompt(title string, settings Settings, analysis *Analysis, data researchData) string {
	var sb strings.Builder

	sb.WriteString("Erstelle SEO-Metadaten für die folgende Seite.\n\n")
	writeBusinessBlock(&sb, settings)

	sb.WriteString("AKTUELLE SUCHDATEN:\n")
	if len(data.suggestions) > 0 {
		sb.WriteString("- Trendige Suchvorschläge: " + joinLimited(data.suggestions, maxPromptSuggestions) + "\n")
	}
	if len(data.related) > 0 {
		sb.WriteString("- Verwandte Begriffe: " + joinLimited(data.related, maxPromptRelated) + "\n")
	}
	if len(data.synonyms) > 0 {
		sb.WriteString("- Synonyme: " + joinLimited(data.synonyms, maxPromptSynonyms) + "\n")
	}
	if len(data.places) > 0 {
		names := make([]string, 0, len(data.places))
		for _, p := range data.places {
			names = append(names, p.Name)
		}
		sb.WriteString("- Relevante Orte: " + joinLimited(names, 5) + "\n")
	}
	sb.WriteString("\n")

	writeAnalysisBlock(&sb, title, analysis)
	writeRegionalBlock(&sb, analysis.Regional)
	writeTechnicalFooter(&sb, settings)

	return sb.String()
}

// buildUniversalPrompt produces the heuristic-only prompt.
func (b *Builder) buildUniversalPrompt(title string, settings Settings, analysis *Analysis) string {
	var sb strings.Builder

	sb.WriteString("Erstelle SEO-Metadaten für die folgende Seite.\n\n")
	writeBusinessBlock(&sb, settings)
	writeAnalysisBlock(&sb, title, analysis)

	intent := analysis.Classification.SearchIntent
	if hints, ok := intentKeywordHints[intent]; ok {
		sb.WriteString("SUCHINTENTION (" + intent + ") — passende Begriffe: " +
			strings.Join(hints, ", ") + "\n")
	}

	if industry := classifyIndustry(analysis.Processed.Words); industry != "" {
		sb.WriteString("BRANCHENBEGRIFFE (" + industry + "): " +
			strings.Join(industryKeywordHints[industry], ", ") + "\n")
	}
	sb.WriteString("\n")

	writeRegionalBlock(&sb, analysis.Regional)
	writeTechnicalFooter(&sb, settings)

	return sb.String()
}

// classifyIndustry picks the first industry with at least two indicator hits.
func classifyIndustry(words []string) string {
	wordSet := make(map[string]bool, len(words))
	for _, w := range words {
		wordSet[w] = true
	}

	for _, industry := range industryOrder {
		hits := 0
		for _, indicator := range industryIndicators[industry] {
			if wordSet[indicator] {
				hits++
			}
		}
		if hits >= 2 {
			return industry
		}
	}
	return ""
}

func writeBusinessBlock(sb *strings.Builder, settings Settings) {
	if settings.BusinessContext == "" && settings.TargetAudience == "" {
		return
	}
	sb.WriteString("UNTERNEHMEN:\n")
	if settings.BusinessContext != "" {
		sb.WriteString("- Kontext: " + settings.BusinessContext + "\n")
	}
	if settings.TargetAudience != "" {
		sb.WriteString("- Zielgruppe: " + settings.TargetAudience + "\n")
	}
	sb.WriteString("\n")
}

func writeAnalysisBlock(sb *strings.Builder, title string, analysis *Analysis) {
	sb.WriteString("INHALTSANALYSE:\n")
	sb.WriteString("- Seitentitel: " + title + "\n")
	sb.WriteString("- Hauptthema: " + analysis.Keywords.MainTopic + "\n")
	if analysis.Strategy.FocusKeyword != "" {
		sb.WriteString("- Fokus-Keyword: " + analysis.Strategy.FocusKeyword + "\n")
	}
	if len(analysis.Keywords.PrimaryKeywords) > 0 {
		sb.WriteString("- Wichtige Begriffe: " + joinLimited(analysis.Keywords.PrimaryKeywords, 8) + "\n")
	}
	if len(analysis.Strategy.PrimaryVariations) > 0 {
		sb.WriteString("- Longtail-Varianten: " + joinLimited(analysis.Strategy.PrimaryVariations, 5) + "\n")
	}
	sb.WriteString("- Inhaltstyp: " + analysis.Classification.ContentType + "\n")
	sb.WriteString(fmt.Sprintf("- Qualität: %d/100, Lesbarkeit: %d/100\n",
		analysis.Classification.ContentQuality.OverallScore,
		analysis.Classification.ReadabilityScore))
	sb.WriteString("\n")
}

func writeRegionalBlock(sb *strings.Builder, rc *regional.Context) {
	if rc == nil || !rc.Enabled {
		return
	}
	sb.WriteString("REGIONALER FOKUS:\n")
	sb.WriteString("- Zielregion: " + rc.TargetRegion + "\n")
	if len(rc.LocalKeywords) > 0 {
		sb.WriteString("- Lokale Begriffe: " + joinLimited(rc.LocalKeywords, 8) + "\n")
	}
	sb.WriteString("\n")
}

// writeTechnicalFooter appends the fixed technical instructions. Both paths
// share this footer verbatim.
func writeTechnicalFooter(sb *strings.Builder, settings Settings) {
	sb.WriteString("TECHNISCHE VORGABEN:\n")
	sb.WriteString("- Meta-Titel: maximal 58 Zeichen, Fokus-Keyword möglichst am Anfang\n")
	sb.WriteString("- Meta-Beschreibung: 140 bis 155 Zeichen, mit klarer Handlungsaufforderung\n")
	sb.WriteString("- Tonalität: " + settings.Tone() + "\n")
	if settings.OptimizationFocus != "" {
		sb.WriteString("- Optimierungsfokus: " + settings.OptimizationFocus + "\n")
	}
	sb.WriteString("- Antworte ausschliesslich mit einem JSON-Objekt mit den Feldern ")
	sb.WriteString(`"meta_title", "meta_description", "focus_keyword" und "reasoning".` + "\n")
}

func joinLimited(items []string, limit int) string {
	if len(items) > limit {
		items = items[:limit]
	}
	return strings.Join(items, ", ")
}
