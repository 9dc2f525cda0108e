// Package classify derives content type, search intent, complexity and
// quality scores from normalized text. All computations are deterministic.
package classify

import (
	"fmt"
	"math"
	"strings"

	"github.com/seo-metapilot/backend/keywords"
	"github.com/seo-metapilot/backend/seotext"
)

// Content type and search intent categories.
const (
	ContentTypeInformational = "informational"
	ContentTypeCommercial    = "commercial"
	ContentTypeTransactional = "transactional"
	ContentTypeNavigational  = "navigational"
)

// Complexity levels.
const (
	ComplexityBeginner     = "beginner"
	ComplexityIntermediate = "intermediate"
	ComplexityExpert       = "expert"
)

// ContentQuality is the weighted quality composite with its sub-scores.
type ContentQuality struct {
	OverallScore          int      `json:"overallScore"`
	WordCountScore        int      `json:"wordCountScore"`
	ReadabilityScore      int      `json:"readabilityScore"`
	KeywordRelevanceScore int      `json:"keywordRelevanceScore"`
	StructureScore        int      `json:"structureScore"`
	Recommendations       []string `json:"recommendations"`
}

// Classification is the full classifier output for one text.
type Classification struct {
	ContentType      string         `json:"contentType"`
	SearchIntent     string         `json:"searchIntent"`
	ComplexityLevel  string         `json:"complexityLevel"`
	ReadabilityScore int            `json:"readabilityScore"`
	EngagementScore  int            `json:"engagementScore"`
	TechnicalScore   int            `json:"technicalScore"`
	UniquenessScore  int            `json:"uniquenessScore"`
	ContentQuality   ContentQuality `json:"contentQuality"`
	SemanticThemes   []string       `json:"semanticThemes"`
	SeasonalContext  []string       `json:"seasonalContext"`
	CompetitiveHints []string       `json:"competitiveHints"`
}

// Classify computes the classification for a processed text and its keyword
// analysis. Same inputs always yield the same outputs.
func Classify(p *seotext.ProcessedText, ka *keywords.Analysis) *Classification {
	avgWordLen := averageWordLength(p.Words)
	avgSentenceLen := averageSentenceLength(p)

	category := classifyCategory(p.Words)

	c := &Classification{
		ContentType:      category,
		SearchIntent:     category,
		ComplexityLevel:  complexityLevel(avgWordLen, avgSentenceLen),
		ReadabilityScore: readabilityScore(avgWordLen, avgSentenceLen, p),
		EngagementScore:  engagementScore(p),
		TechnicalScore:   technicalScore(ka, p),
		UniquenessScore:  uniquenessScore(p.Words),
		SemanticThemes:   semanticThemes(p.Words),
		SeasonalContext:  seasonalContext(p.Words),
		CompetitiveHints: competitiveHints(p.Words),
	}
	c.ContentQuality = contentQuality(p, ka, c.ReadabilityScore)

	return c
}

// classifyCategory scores each category by indicator membership and picks the
// highest; ties fall to the earlier category in the fixed enumeration order.
func classifyCategory(words []string) string {
	best := ContentTypeInformational
	bestScore := 0

	for _, category := range categoryOrder {
		indicators := categoryIndicators[category]
		score := 0
		for _, w := range words {
			if indicators[w] {
				score++
			}
		}
		if score > bestScore {
			best = category
			bestScore = score
		}
	}
	return best
}

func complexityLevel(avgWordLen, avgSentenceLen float64) string {
	switch {
	case avgWordLen > 8 || avgSentenceLen > 25:
		return ComplexityExpert
	case avgWordLen > 6 || avgSentenceLen > 20:
		return ComplexityIntermediate
	default:
		return ComplexityBeginner
	}
}

func readabilityScore(avgWordLen, avgSentenceLen float64, p *seotext.ProcessedText) int {
	if len(p.Sentences) == 0 || len(p.Words) == 0 {
		return 50
	}
	score := 100 - avgSentenceLen*2 - avgWordLen*5
	return clamp(int(math.Round(score)), 0, 100)
}

// engagementScore starts at 50 and adds capped bonuses for interaction
// markers, plus word-count adjustments.
func engagementScore(p *seotext.ProcessedText) int {
	score := 50

	score += cappedCount(p.Raw, "?", 2, 10)
	score += cappedCount(p.Raw, "!", 2, 10)
	score += cappedCount(p.Raw, "\"", 1, 10)
	score += cappedCountFunc(p.Raw, isDigit, 1, 10)
	score += cappedCount(strings.ToLower(p.Raw), "http", 5, 10)

	if p.WordCount > 500 {
		score += 10
	}
	if p.WordCount < 100 {
		score -= 20
	}

	return clamp(score, 0, 100)
}

func technicalScore(ka *keywords.Analysis, p *seotext.ProcessedText) int {
	if len(p.Words) == 0 {
		return 0
	}
	ratio := float64(len(ka.TechnicalKeywords)) / float64(len(p.Words))
	return int(math.Min(100, math.Round(ratio*1000)))
}

// uniquenessScore is the lexical diversity ratio scaled to [0,100]:
// distinct meaningful words over total meaningful words.
func uniquenessScore(words []string) int {
	if len(words) == 0 {
		return 0
	}
	unique := make(map[string]bool, len(words))
	for _, w := range words {
		unique[w] = true
	}
	return clamp(int(math.Round(float64(len(unique))/float64(len(words))*100)), 0, 100)
}

func contentQuality(p *seotext.ProcessedText, ka *keywords.Analysis, readability int) ContentQuality {
	q := ContentQuality{
		ReadabilityScore: readability,
		Recommendations:  []string{},
	}

	switch {
	case p.WordCount >= 300:
		q.WordCountScore = 100
	case p.WordCount >= 200:
		q.WordCountScore = 80
	case p.WordCount >= 100:
		q.WordCountScore = 60
	default:
		q.WordCountScore = 30
	}

	switch {
	case len(p.Sentences) >= 5:
		q.StructureScore = 100
	case len(p.Sentences) >= 3:
		q.StructureScore = 70
	default:
		q.StructureScore = 40
	}

	q.KeywordRelevanceScore = clamp(len(ka.PrimaryKeywords)*10, 0, 100)

	overall := 0.3*float64(q.WordCountScore) +
		0.3*float64(q.ReadabilityScore) +
		0.2*float64(q.KeywordRelevanceScore) +
		0.2*float64(q.StructureScore)
	q.OverallScore = clamp(int(math.Round(overall)), 0, 100)

	if q.WordCountScore < 60 {
		q.Recommendations = append(q.Recommendations,
			fmt.Sprintf("Mehr Inhalt ergänzen: aktuell %d Wörter, empfohlen sind mindestens 300", p.WordCount))
	}
	if q.ReadabilityScore < 50 {
		q.Recommendations = append(q.Recommendations,
			"Kürzere Sätze und einfachere Wörter verwenden, um die Lesbarkeit zu verbessern")
	}
	if seotext.AverageSyllables(p.Words) > 3 {
		q.Recommendations = append(q.Recommendations,
			"Wörter mit weniger Silben bevorzugen, damit der Text leichter verständlich bleibt")
	}
	if q.KeywordRelevanceScore < 30 {
		q.Recommendations = append(q.Recommendations,
			"Wichtige Begriffe häufiger verwenden, damit ein klarer Themenfokus entsteht")
	}
	if q.StructureScore < 70 {
		q.Recommendations = append(q.Recommendations,
			"Inhalt in mehr vollständige Sätze und Absätze gliedern")
	}

	return q
}

func semanticThemes(words []string) []string {
	themes := []string{}
	seen := make(map[string]bool)
	for _, w := range words {
		if theme, ok := themeVocabulary[w]; ok && !seen[theme] {
			seen[theme] = true
			themes = append(themes, theme)
		}
	}
	return themes
}

func seasonalContext(words []string) []string {
	seasons := []string{}
	seen := make(map[string]bool)
	for _, w := range words {
		if season, ok := seasonalVocabulary[w]; ok && !seen[season] {
			seen[season] = true
			seasons = append(seasons, season)
		}
	}
	return seasons
}

func competitiveHints(words []string) []string {
	hints := []string{}
	seen := make(map[string]bool)
	for _, w := range words {
		if competitiveVocabulary[w] && !seen[w] {
			seen[w] = true
			hints = append(hints, w)
		}
	}
	return hints
}

func averageWordLength(words []string) float64 {
	if len(words) == 0 {
		return 0
	}
	total := 0
	for _, w := range words {
		total += len([]rune(w))
	}
	return float64(total) / float64(len(words))
}

func averageSentenceLength(p *seotext.ProcessedText) float64 {
	if len(p.Sentences) == 0 {
		return 0
	}
	total := 0
	for _, s := range p.Sentences {
		total += len(strings.Fields(s))
	}
	return float64(total) / float64(len(p.Sentences))
}

func cappedCount(s, substr string, perHit, limit int) int {
	return clamp(strings.Count(s, substr)*perHit, 0, limit)
}

func cappedCountFunc(s string, match func(rune) bool, perHit, limit int) int {
	count := 0
	for _, r := range s {
		if match(r) {
			count++
		}
	}
	return clamp(count*perHit, 0, limit)
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
