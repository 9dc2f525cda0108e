// Package strategy fuses keyword, classification and regional signals into a
// single focus-keyword decision.
package strategy

import (
	"strings"

	"github.com/seo-metapilot/backend/classify"
	"github.com/seo-metapilot/backend/keywords"
	"github.com/seo-metapilot/backend/regional"
	"github.com/seo-metapilot/backend/seotext"
)

const (
	baseConfidence           = 60
	titleMatchBonus          = 15
	firstParagraphMatchBonus = 10
	regionalBonus            = 5
	noKeywordPenalty         = 40
)

// Result is the fused keyword strategy. All fields are always present; the
// degenerate case is an empty focus keyword with empty variations.
type Result struct {
	FocusKeyword       string   `json:"focusKeyword"`
	PrimaryVariations  []string `json:"primaryVariations"`
	StrategyConfidence int      `json:"strategyConfidence"`
}

// Develop picks the focus keyword and scores the confidence of the decision.
// The title and processed text sharpen the confidence signal: a focus keyword
// that already appears prominently is a safer bet.
func Develop(ka *keywords.Analysis, cl *classify.Classification, rc *regional.Context, title string, p *seotext.ProcessedText) *Result {
	r := &Result{
		FocusKeyword:      "",
		PrimaryVariations: []string{},
	}

	if len(ka.PrimaryKeywords) > 0 {
		r.FocusKeyword = ka.PrimaryKeywords[0]
	}
	if len(ka.LongTailKeywords) > 0 {
		r.PrimaryVariations = append(r.PrimaryVariations, ka.LongTailKeywords...)
	}

	confidence := baseConfidence

	if r.FocusKeyword == "" {
		confidence -= noKeywordPenalty
	} else {
		focus := strings.ToLower(r.FocusKeyword)
		if strings.Contains(strings.ToLower(title), focus) {
			confidence += titleMatchBonus
		}
		if len(p.Paragraphs) > 0 && strings.Contains(strings.ToLower(p.Paragraphs[0]), focus) {
			confidence += firstParagraphMatchBonus
		}
	}

	if rc != nil && rc.Enabled && rc.SwissRelevanceScore > 0 {
		confidence += regionalBonus
	}
	if cl != nil && cl.ContentQuality.OverallScore < 40 {
		confidence -= 10
	}

	r.StrategyConfidence = clamp(confidence, 0, 100)
	return r
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
