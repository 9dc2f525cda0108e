package seotext

// ProcessedText is an immutable view over one input string. It is created once
// per analysis call and never mutated afterwards.
type ProcessedText struct {
	Raw            string   `json:"raw"`
	Normalized     string   `json:"normalized"`
	Sentences      []string `json:"sentences"`
	Paragraphs     []string `json:"paragraphs"`
	Words          []string `json:"words"`
	WordCount      int      `json:"wordCount"`
	CharacterCount int      `json:"characterCount"`
}
