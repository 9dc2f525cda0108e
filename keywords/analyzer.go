// Package keywords extracts keyword candidates, phrases and scores from
// normalized text. All functions are pure and deterministic.
package keywords

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/seo-metapilot/backend/seotext"
)

const (
	maxPrimaryKeywords  = 10
	maxLongTailKeywords = 20
	maxDensityEntries   = 20
	maxScoreEntries     = 30
	maxNgramPhrases     = 50

	minPrimaryFrequency = 2
	minPrimaryLength    = 4
	compoundMinLength   = 13 // words of 13+ runes count as compounds
)

// Analysis is the keyword view derived from one ProcessedText.
type Analysis struct {
	PrimaryKeywords   []string           `json:"primaryKeywords"`
	LongTailKeywords  []string           `json:"longTailKeywords"`
	SemanticKeywords  []string           `json:"semanticKeywords"`
	TechnicalKeywords []string           `json:"technicalKeywords"`
	PowerWords        []string           `json:"powerWords"`
	CompoundKeywords  []string           `json:"compoundKeywords"`
	KeywordDensity    map[string]float64 `json:"keywordDensity"`
	KeywordScores     map[string]float64 `json:"keywordScores"`
	NgramPhrases      []string           `json:"ngramPhrases"`
	MainTopic         string             `json:"mainTopic"`
}

var innerCapitalPattern = regexp.MustCompile(`\p{Ll}\p{Lu}`)

// Analyze derives the full keyword analysis from a processed text.
func Analyze(p *seotext.ProcessedText) *Analysis {
	freq, order := wordFrequency(p.Words)

	a := &Analysis{
		PrimaryKeywords:   primaryKeywords(freq, order),
		LongTailKeywords:  longTailKeywords(p.Sentences),
		SemanticKeywords:  vocabularyMatches(p.Words, semanticVocabulary),
		TechnicalKeywords: vocabularyMatches(p.Words, technicalVocabulary),
		PowerWords:        vocabularyMatches(p.Words, powerVocabulary),
		CompoundKeywords:  compoundKeywords(p),
		KeywordDensity:    keywordDensity(freq, p.WordCount),
		KeywordScores:     keywordScores(freq, p.WordCount),
		NgramPhrases:      ngramPhrases(p.Sentences),
	}
	a.MainTopic = mainTopic(freq, order, p.Sentences)

	return a
}

// wordFrequency counts words and records first-seen order for stable ranking.
func wordFrequency(words []string) (map[string]int, []string) {
	freq := make(map[string]int, len(words))
	order := make([]string, 0, len(words))

	for _, w := range words {
		if freq[w] == 0 {
			order = append(order, w)
		}
		freq[w]++
	}
	return freq, order
}

func primaryKeywords(freq map[string]int, order []string) []string {
	candidates := make([]string, 0, len(order))
	for _, w := range order {
		if freq[w] >= minPrimaryFrequency && len([]rune(w)) >= minPrimaryLength {
			candidates = append(candidates, w)
		}
	}

	// Stable sort keeps first-seen order between equal frequencies.
	sort.SliceStable(candidates, func(i, j int) bool {
		return freq[candidates[i]] > freq[candidates[j]]
	})

	if len(candidates) > maxPrimaryKeywords {
		candidates = candidates[:maxPrimaryKeywords]
	}
	return candidates
}

// longTailKeywords slides 3- and 4-word windows over each sentence and keeps
// phrases within the character bounds.
func longTailKeywords(sentences []string) []string {
	phrases := make([]string, 0, maxLongTailKeywords)
	seen := make(map[string]bool)

	for _, sentence := range sentences {
		tokens := sentenceTokens(sentence)

		collect := func(size, minLen, maxLen int) {
			for i := 0; i+size <= len(tokens); i++ {
				phrase := strings.Join(tokens[i:i+size], " ")
				n := len([]rune(phrase))
				if n < minLen || n > maxLen || seen[phrase] {
					continue
				}
				seen[phrase] = true
				phrases = append(phrases, phrase)
			}
		}

		collect(3, 15, 60)
		collect(4, 20, 80)

		if len(phrases) >= maxLongTailKeywords {
			break
		}
	}

	if len(phrases) > maxLongTailKeywords {
		phrases = phrases[:maxLongTailKeywords]
	}
	return phrases
}

// sentenceTokens lowercases and strips punctuation but keeps stopwords so
// phrases read naturally.
func sentenceTokens(sentence string) []string {
	fields := strings.Fields(strings.ToLower(sentence))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		token := strings.TrimFunc(f, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

func vocabularyMatches(words []string, vocab map[string]bool) []string {
	matches := []string{}
	seen := make(map[string]bool)
	for _, w := range words {
		if vocab[w] && !seen[w] {
			seen[w] = true
			matches = append(matches, w)
		}
	}
	return matches
}

// compoundKeywords picks long words (German compound nouns) plus any raw token
// with an inner capital letter.
func compoundKeywords(p *seotext.ProcessedText) []string {
	compounds := []string{}
	seen := make(map[string]bool)

	for _, w := range p.Words {
		if len([]rune(w)) >= compoundMinLength && !seen[w] {
			seen[w] = true
			compounds = append(compounds, w)
		}
	}

	// Inner capitals only survive in the raw text; Words are lowercased.
	for _, token := range strings.Fields(p.Raw) {
		token = strings.TrimFunc(token, func(r rune) bool { return !unicode.IsLetter(r) })
		if token == "" || !innerCapitalPattern.MatchString(token) {
			continue
		}
		lower := strings.ToLower(token)
		if !seen[lower] {
			seen[lower] = true
			compounds = append(compounds, lower)
		}
	}

	return compounds
}

func keywordDensity(freq map[string]int, totalWords int) map[string]float64 {
	density := make(map[string]float64)
	if totalWords == 0 {
		return density
	}

	type entry struct {
		word  string
		value float64
	}
	entries := make([]entry, 0, len(freq))

	for w, f := range freq {
		if f < minPrimaryFrequency {
			continue
		}
		value := math.Round(float64(f)/float64(totalWords)*100*100) / 100
		entries = append(entries, entry{w, value})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].value != entries[j].value {
			return entries[i].value > entries[j].value
		}
		return entries[i].word < entries[j].word
	})

	for i, e := range entries {
		if i >= maxDensityEntries {
			break
		}
		density[e.word] = e.value
	}
	return density
}

// keywordScores computes the composite frequency/length/bonus score per word.
func keywordScores(freq map[string]int, totalWords int) map[string]float64 {
	scores := make(map[string]float64)
	if totalWords == 0 {
		return scores
	}

	type entry struct {
		word  string
		value float64
	}
	entries := make([]entry, 0, len(freq))

	for w, f := range freq {
		score := float64(f) / float64(totalWords) * 50
		score += math.Min(float64(len([]rune(w)))*2, 20)
		if IsPowerWord(w) {
			score += 15
		}
		if IsTechnicalWord(w) {
			score += 10
		}
		entries = append(entries, entry{w, math.Round(score)})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].value != entries[j].value {
			return entries[i].value > entries[j].value
		}
		return entries[i].word < entries[j].word
	})

	for i, e := range entries {
		if i >= maxScoreEntries {
			break
		}
		scores[e.word] = e.value
	}
	return scores
}

func ngramPhrases(sentences []string) []string {
	phrases := []string{}
	seen := make(map[string]bool)

	add := func(phrase string, minLen int) {
		if len([]rune(phrase)) < minLen || seen[phrase] {
			return
		}
		seen[phrase] = true
		phrases = append(phrases, phrase)
	}

	for _, sentence := range sentences {
		tokens := sentenceTokens(sentence)
		for i := 0; i+2 <= len(tokens); i++ {
			add(strings.Join(tokens[i:i+2], " "), 6)
		}
		for i := 0; i+3 <= len(tokens); i++ {
			add(strings.Join(tokens[i:i+3], " "), 10)
		}
		if len(phrases) >= maxNgramPhrases {
			break
		}
	}

	if len(phrases) > maxNgramPhrases {
		phrases = phrases[:maxNgramPhrases]
	}
	return phrases
}

// mainTopic picks the most frequent meaningful word. It never returns an
// empty string; sentence scanning and a fixed default cover thin inputs.
func mainTopic(freq map[string]int, order []string, sentences []string) string {
	best := ""
	bestCount := 0
	for _, w := range order {
		if freq[w] > bestCount {
			best = w
			bestCount = freq[w]
		}
	}

	if len([]rune(best)) < minPrimaryLength {
		best = ""
		for _, sentence := range sentences {
			for _, token := range sentenceTokens(sentence) {
				if len([]rune(token)) >= minPrimaryLength {
					best = token
					break
				}
			}
			if best != "" {
				break
			}
		}
	}

	if best == "" {
		return "Content"
	}
	return Capitalize(best)
}

// Capitalize uppercases the first rune, leaving the rest untouched.
func Capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
