// Package regional detects Swiss canton relevance in content and expands
// selected regions into locality keywords.
package regional

import (
	"strings"
)

const (
	pointsPerMention = 20
	maxScore         = 100
	maxLocalKeywords = 12
)

// Context is the regional relevance result for one content item.
type Context struct {
	Enabled             bool     `json:"enabled"`
	TargetRegion        string   `json:"targetRegion"`
	LocalKeywords       []string `json:"localKeywords"`
	SelectedCantons     []string `json:"selectedCantons"`
	SwissRelevanceScore int      `json:"swissRelevanceScore"`
}

// Settings carries the caller's region selection.
type Settings struct {
	SelectedRegions []string
}

// Analyze scores canton and capital mentions in the content and expands any
// selected regions into locality keywords.
func Analyze(content string, settings Settings) *Context {
	ctx := &Context{
		LocalKeywords:   []string{},
		SelectedCantons: []string{},
	}

	lower := strings.ToLower(content)

	// +20 per distinct recognized place name, capped at 100.
	mentions := 0
	mentioned := []string{}
	for _, code := range cantonOrder {
		canton := cantons[code]
		nameHit := strings.Contains(lower, strings.ToLower(canton.Name))
		capitalHit := strings.Contains(lower, strings.ToLower(canton.Capital))
		if nameHit || capitalHit {
			mentions++
			mentioned = append(mentioned, canton.Name)
		}
	}
	score := mentions * pointsPerMention
	if score > maxScore {
		score = maxScore
	}
	ctx.SwissRelevanceScore = score

	if len(settings.SelectedRegions) == 0 {
		ctx.Enabled = false
		if len(mentioned) > 0 {
			ctx.TargetRegion = mentioned[0]
		}
		return ctx
	}

	ctx.Enabled = true
	seen := make(map[string]bool)

	for _, code := range settings.SelectedRegions {
		canton, ok := CantonByCode(strings.ToUpper(strings.TrimSpace(code)))
		if !ok {
			continue
		}
		ctx.SelectedCantons = append(ctx.SelectedCantons, canton.Code)
		if ctx.TargetRegion == "" {
			ctx.TargetRegion = canton.Name
		}

		for _, kw := range localKeywordsFor(canton) {
			if seen[kw] {
				continue
			}
			seen[kw] = true
			if len(ctx.LocalKeywords) < maxLocalKeywords {
				ctx.LocalKeywords = append(ctx.LocalKeywords, kw)
			}
		}
	}

	return ctx
}

// localKeywordsFor derives the locality phrases for one canton.
func localKeywordsFor(c Canton) []string {
	kws := []string{
		c.Name,
		"Kanton " + c.Name,
		c.Name + " Schweiz",
	}
	if c.Capital != c.Name {
		kws = append(kws, c.Capital)
	}
	return kws
}
