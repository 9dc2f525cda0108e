// Package seotext normalizes raw, possibly HTML-laden content into the
// sentence, paragraph and word views the downstream analyzers work on.
package seotext

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	minSentenceLength  = 10
	minParagraphLength = 20
	minWordLength      = 3
)

var (
	sentenceSplitPattern  = regexp.MustCompile(`[.!?]+`)
	paragraphSplitPattern = regexp.MustCompile(`\n\s*\n`)
	// wordPattern keeps German letters only; umlauts and ß included.
	wordPattern       = regexp.MustCompile(`[^a-zäöüß]+`)
	whitespacePattern = regexp.MustCompile(`\s+`)
	tagPattern        = regexp.MustCompile(`<[^>]*>`)
)

// Process normalizes content into a ProcessedText. It never fails: empty or
// malformed input yields a structurally complete object with empty lists.
func Process(content string) *ProcessedText {
	plain, paragraphs := stripHTML(content)

	p := &ProcessedText{
		Raw:            content,
		Sentences:      []string{},
		Paragraphs:     paragraphs,
		Words:          []string{},
		CharacterCount: len([]rune(plain)),
	}

	trimmed := strings.TrimSpace(plain)
	if trimmed == "" {
		p.Normalized = ""
		return p
	}

	// Naive word count over the raw (HTML-stripped) content. Density
	// calculations downstream divide by this, not by len(Words).
	p.WordCount = len(strings.Fields(trimmed))

	for _, frag := range sentenceSplitPattern.Split(trimmed, -1) {
		sentence := strings.TrimSpace(frag)
		if len([]rune(sentence)) >= minSentenceLength {
			p.Sentences = append(p.Sentences, sentence)
		}
	}

	if len(p.Paragraphs) == 0 {
		for _, frag := range paragraphSplitPattern.Split(trimmed, -1) {
			para := strings.TrimSpace(frag)
			if len([]rune(para)) >= minParagraphLength {
				p.Paragraphs = append(p.Paragraphs, para)
			}
		}
	}

	p.Words = MeaningfulWords(trimmed)
	p.Normalized = strings.Join(p.Words, " ")

	return p
}

// MeaningfulWords lowercases the text, strips everything that is not a German
// letter and drops short tokens and stopwords.
func MeaningfulWords(text string) []string {
	cleaned := wordPattern.ReplaceAllString(strings.ToLower(text), " ")

	words := make([]string, 0, 64)
	for _, w := range strings.Fields(cleaned) {
		if len([]rune(w)) < minWordLength {
			continue
		}
		if IsStopword(w) {
			continue
		}
		words = append(words, w)
	}
	return words
}

// stripHTML removes markup and returns the plain text plus any paragraphs
// found as <p> elements. Content without markup passes through unchanged.
func stripHTML(content string) (string, []string) {
	paragraphs := []string{}

	if !strings.Contains(content, "<") {
		return content, paragraphs
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		// Fall back to a regex strip; goquery is tolerant so this is rare.
		return tagPattern.ReplaceAllString(content, " "), paragraphs
	}

	doc.Find("script, style, noscript").Remove()

	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		para := collapseWhitespace(s.Text())
		if len([]rune(para)) >= minParagraphLength {
			paragraphs = append(paragraphs, para)
		}
	})

	text := doc.Find("body").Text()
	if strings.TrimSpace(text) == "" {
		text = doc.Text()
	}

	return collapseWhitespace(text), paragraphs
}

func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(s, " "))
}

// CountSyllables estimates syllables for a German word by counting vowel
// groups. Feeds the word-complexity recommendation downstream.
func CountSyllables(word string) int {
	vowels := "aeiouäöüy"
	count := 0
	previousWasVowel := false

	for _, r := range strings.ToLower(word) {
		isVowel := strings.ContainsRune(vowels, r)
		if isVowel && !previousWasVowel {
			count++
		}
		previousWasVowel = isVowel
	}

	if count == 0 {
		count = 1
	}
	return count
}

// AverageSyllables returns the mean syllable count across the given words,
// or 0 for an empty slice.
func AverageSyllables(words []string) float64 {
	if len(words) == 0 {
		return 0
	}
	total := 0
	for _, w := range words {
		total += CountSyllables(w)
	}
	return float64(total) / float64(len(words))
}
