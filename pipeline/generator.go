// Package pipeline runs the full metadata generation chain: normalize,
// analyze, build prompt, call the LLM and validate the response. One call per
// content item, no shared state between concurrent generations except the
// bounded analysis cache.
package pipeline

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/seo-metapilot/backend/llm"
	"github.com/seo-metapilot/backend/promptgen"
	"github.com/seo-metapilot/backend/stats"
	"github.com/seo-metapilot/backend/validate"
)

const (
	defaultCacheTTL        = 30 * time.Minute
	defaultMaxCacheSize    = 1000
	defaultCleanupInterval = 5 * time.Minute
	defaultConcurrency     = 3
	defaultLLMTimeout      = 90 * time.Second
)

// Completer is the LLM collaborator consumed around the validator.
type Completer interface {
	Complete(ctx context.Context, req llm.Request) (*llm.Response, error)
}

// Request is one generation request.
type Request struct {
	Content  string             `json:"content"`
	Title    string             `json:"title"`
	Settings promptgen.Settings `json:"settings"`
}

// Result is the full generation outcome returned to the caller.
type Result struct {
	Seo          *validate.Result   `json:"seo"`
	Path         string             `json:"path"`
	Analysis     *promptgen.Analysis `json:"analysis"`
	UsedFallback bool               `json:"usedFallback"`
	DurationMs   int64              `json:"durationMs"`
}

type cacheEntry struct {
	analysis  *promptgen.Analysis
	timestamp time.Time
}

// Generator orchestrates the pipeline. Safe for concurrent use.
type Generator struct {
	builder   *promptgen.Builder
	completer Completer

	cache           map[string]cacheEntry
	cacheMutex      sync.RWMutex
	cacheTTL        time.Duration
	maxCacheSize    int
	lastCleanup     time.Time
	cleanupInterval time.Duration

	semaphore  chan struct{}
	llmTimeout time.Duration
	stats      *stats.Storage
}

// Option configures a Generator.
type Option func(*Generator)

// WithCompleter sets the LLM collaborator. Without one, every generation
// produces the deterministic fallback result.
func WithCompleter(c Completer) Option {
	return func(g *Generator) { g.completer = c }
}

// WithStats attaches persistent counters.
func WithStats(s *stats.Storage) Option {
	return func(g *Generator) { g.stats = s }
}

// WithCacheTTL overrides the analysis cache TTL.
func WithCacheTTL(ttl time.Duration) Option {
	return func(g *Generator) { g.cacheTTL = ttl }
}

// WithMaxCacheSize overrides the analysis cache size cap.
func WithMaxCacheSize(size int) Option {
	return func(g *Generator) { g.maxCacheSize = size }
}

// WithLLMTimeout overrides the completion timeout.
func WithLLMTimeout(d time.Duration) Option {
	return func(g *Generator) { g.llmTimeout = d }
}

// New creates a Generator around the given prompt builder.
func New(builder *promptgen.Builder, opts ...Option) *Generator {
	g := &Generator{
		builder:         builder,
		cache:           make(map[string]cacheEntry),
		cacheTTL:        defaultCacheTTL,
		maxCacheSize:    defaultMaxCacheSize,
		cleanupInterval: defaultCleanupInterval,
		lastCleanup:     time.Now(),
		semaphore:       make(chan struct{}, defaultConcurrency),
		llmTimeout:      defaultLLMTimeout,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate runs the pipeline for one content item. It never returns an error
// for degenerate input or collaborator failure: the validator's deterministic
// fallback covers both, and UsedFallback marks the result for the caller.
func (g *Generator) Generate(ctx context.Context, req Request) *Result {
	start := time.Now()

	g.semaphore <- struct{}{}
	defer func() { <-g.semaphore }()

	bundle := g.builder.Build(ctx, req.Content, req.Title, req.Settings, start)
	g.storeAnalysis(g.cacheKey(req), bundle.Analysis)

	raw := g.complete(ctx, bundle.Prompt)

	seo := validate.Validate(raw, validate.Context{
		FocusKeyword: bundle.FocusKeyword,
		PageTitle:    req.Title,
		Regional:     bundle.Analysis.Regional,
	})

	if g.stats != nil {
		g.stats.RecordGeneration(seo.UsedFallback)
	}

	return &Result{
		Seo:          seo,
		Path:         bundle.Path,
		Analysis:     bundle.Analysis,
		UsedFallback: seo.UsedFallback,
		DurationMs:   time.Since(start).Milliseconds(),
	}
}

// Analyze returns the local analysis without prompting the LLM, serving the
// admin preview endpoint. Results are cached by content hash.
func (g *Generator) Analyze(req Request) *promptgen.Analysis {
	if time.Since(g.lastCleanup) > g.cleanupInterval {
		go g.cleanup()
	}

	key := g.cacheKey(req)

	g.cacheMutex.RLock()
	if entry, found := g.cache[key]; found {
		if time.Since(entry.timestamp) < g.cacheTTL {
			g.cacheMutex.RUnlock()
			if g.stats != nil {
				g.stats.RecordCacheAccess(true)
			}
			return entry.analysis
		}
	}
	g.cacheMutex.RUnlock()

	if g.stats != nil {
		g.stats.RecordCacheAccess(false)
	}

	analysis := promptgen.AnalyzeContent(req.Content, req.Title, req.Settings)
	g.storeAnalysis(key, analysis)
	return analysis
}

// complete calls the LLM with the standard system prompt. Any failure yields
// an empty response, which the validator turns into the fallback result.
func (g *Generator) complete(ctx context.Context, prompt string) string {
	if g.completer == nil {
		return ""
	}

	llmCtx, cancel := context.WithTimeout(ctx, g.llmTimeout)
	defer cancel()

	temperature := 0.7
	resp, err := g.completer.Complete(llmCtx, llm.Request{
		Messages: []llm.Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: &temperature,
		MaxTokens:   800,
	})
	if err != nil || resp == nil {
		return ""
	}
	return resp.Content
}

// systemPrompt frames every completion request.
const systemPrompt = "Du bist ein erfahrener SEO-Texter für Schweizer Unternehmen. " +
	"Du schreibst prägnante Meta-Titel und Meta-Beschreibungen auf Deutsch und hältst " +
	"Längenvorgaben exakt ein. Du antwortest ausschliesslich mit einem JSON-Objekt."

func (g *Generator) cacheKey(req Request) string {
	regions := append([]string(nil), req.Settings.SelectedRegions...)
	sort.Strings(regions)

	h := md5.New()
	h.Write([]byte(req.Content))
	h.Write([]byte("|"))
	h.Write([]byte(req.Title))
	h.Write([]byte("|"))
	h.Write([]byte(strings.Join(regions, ",")))
	return hex.EncodeToString(h.Sum(nil))
}

func (g *Generator) storeAnalysis(key string, analysis *promptgen.Analysis) {
	g.cacheMutex.Lock()
	defer g.cacheMutex.Unlock()

	if len(g.cache) >= g.maxCacheSize {
		g.evictOldestLocked(len(g.cache) - g.maxCacheSize + 1)
	}

	g.cache[key] = cacheEntry{analysis: analysis, timestamp: time.Now()}
}

// cleanup drops expired entries and enforces the size cap, oldest first.
func (g *Generator) cleanup() {
	now := time.Now()

	g.cacheMutex.Lock()
	defer g.cacheMutex.Unlock()

	for key, entry := range g.cache {
		if now.Sub(entry.timestamp) > g.cacheTTL {
			delete(g.cache, key)
		}
	}
	if len(g.cache) > g.maxCacheSize {
		g.evictOldestLocked(len(g.cache) - g.maxCacheSize)
	}

	g.lastCleanup = now
}

// evictOldestLocked removes the n oldest entries. Caller holds the lock.
func (g *Generator) evictOldestLocked(n int) {
	type aged struct {
		key       string
		timestamp time.Time
	}
	entries := make([]aged, 0, len(g.cache))
	for key, entry := range g.cache {
		entries = append(entries, aged{key, entry.timestamp})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].timestamp.Before(entries[j].timestamp)
	})

	for i := 0; i < n && i < len(entries); i++ {
		delete(g.cache, entries[i].key)
	}
}

// CacheStats reports the analysis cache state.
type CacheStats struct {
	Entries  int           `json:"entries"`
	TTL      time.Duration `json:"ttl"`
	MaxSize  int           `json:"maxSize"`
}

// GetCacheStats returns the current cache state.
func (g *Generator) GetCacheStats() CacheStats {
	g.cacheMutex.RLock()
	defer g.cacheMutex.RUnlock()

	return CacheStats{
		Entries: len(g.cache),
		TTL:     g.cacheTTL,
		MaxSize: g.maxCacheSize,
	}
}

// ClearCache empties the analysis cache.
func (g *Generator) ClearCache() {
	g.cacheMutex.Lock()
	defer g.cacheMutex.Unlock()
	g.cache = make(map[string]cacheEntry)
}
