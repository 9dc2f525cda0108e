// Package research wraps the lightweight keyword-research sources: Google
// Suggest, Wikipedia, Wiktionary and OpenStreetmap. Every call is best-effort;
// failures and timeouts yield empty results, never a hard error for callers
// that treat research as optional.
package research

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultRequestTimeout = 3 * time.Second
	maxResponseSize       = 2 * 1024 * 1024
	userAgent             = "seo-metapilot/1.0"
)

// Place is one OpenStreetmap lookup result.
type Place struct {
	Name     string `json:"name"`
	Region   string `json:"region"`
	Locality string `json:"locality"`
}

// Client is the keyword-research collaborator consumed by the prompt builder.
type Client interface {
	Suggest(ctx context.Context, term string) ([]string, error)
	RelatedTerms(ctx context.Context, term string) ([]string, error)
	Synonyms(ctx context.Context, term string) ([]string, error)
	PlaceLookup(ctx context.Context, term string) ([]Place, error)
}

// HTTPClient implements Client against the public research endpoints. All
// requests share one rate limiter and one response cache.
type HTTPClient struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	cache      *Cache

	suggestBaseURL    string
	wikipediaBaseURL  string
	wiktionaryBaseURL string
	nominatimBaseURL  string
}

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(h *HTTPClient) { h.httpClient = c }
}

// WithBaseURLs overrides the research endpoints, mainly for tests.
func WithBaseURLs(suggest, wikipedia, wiktionary, nominatim string) Option {
	return func(h *HTTPClient) {
		h.suggestBaseURL = suggest
		h.wikipediaBaseURL = wikipedia
		h.wiktionaryBaseURL = wiktionary
		h.nominatimBaseURL = nominatim
	}
}

// WithCache sets a shared response cache.
func WithCache(cache *Cache) Option {
	return func(h *HTTPClient) { h.cache = cache }
}

// NewHTTPClient creates a research client with sane defaults: 3s per-request
// timeout, 2 requests/second politeness limit, 30-minute response cache.
func NewHTTPClient(opts ...Option) *HTTPClient {
	h := &HTTPClient{
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
		limiter:    rate.NewLimiter(rate.Limit(2), 4),
		cache:      NewCache(30*time.Minute, 500),

		suggestBaseURL:    "https://suggestqueries.google.com",
		wikipediaBaseURL:  "https://de.wikipedia.org",
		wiktionaryBaseURL: "https://de.wiktionary.org",
		nominatimBaseURL:  "https://nominatim.openstreetmap.org",
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Suggest returns Google search suggestions for a term.
func (h *HTTPClient) Suggest(ctx context.Context, term string) ([]string, error) {
	key := "suggest:" + term
	if cached, ok := h.cache.Get(key); ok {
		return cached, nil
	}

	endpoint := fmt.Sprintf("%s/complete/search?client=firefox&hl=de&q=%s",
		h.suggestBaseURL, url.QueryEscape(term))

	body, err := h.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	// Response shape: ["term", ["suggestion", ...], ...]
	var payload []json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil || len(payload) < 2 {
		return nil, fmt.Errorf("unexpected suggest response for %q", term)
	}
	var suggestions []string
	if err := json.Unmarshal(payload[1], &suggestions); err != nil {
		return nil, fmt.Errorf("parse suggest list: %w", err)
	}

	h.cache.Set(key, suggestions)
	return suggestions, nil
}

// RelatedTerms returns Wikipedia opensearch titles for a term.
func (h *HTTPClient) RelatedTerms(ctx context.Context, term string) ([]string, error) {
	key := "related:" + term
	if cached, ok := h.cache.Get(key); ok {
		return cached, nil
	}

	terms, err := h.opensearch(ctx, h.wikipediaBaseURL, term)
	if err != nil {
		return nil, err
	}

	h.cache.Set(key, terms)
	return terms, nil
}

// Synonyms returns Wiktionary opensearch titles for a term.
func (h *HTTPClient) Synonyms(ctx context.Context, term string) ([]string, error) {
	key := "synonyms:" + term
	if cached, ok := h.cache.Get(key); ok {
		return cached, nil
	}

	terms, err := h.opensearch(ctx, h.wiktionaryBaseURL, term)
	if err != nil {
		return nil, err
	}

	// The exact term itself is not a synonym.
	filtered := make([]string, 0, len(terms))
	for _, t := range terms {
		if !strings.EqualFold(t, term) {
			filtered = append(filtered, t)
		}
	}

	h.cache.Set(key, filtered)
	return filtered, nil
}

// PlaceLookup queries Nominatim for Swiss places matching the term.
func (h *HTTPClient) PlaceLookup(ctx context.Context, term string) ([]Place, error) {
	endpoint := fmt.Sprintf("%s/search?q=%s&format=json&countrycodes=ch&limit=5",
		h.nominatimBaseURL, url.QueryEscape(term))

	body, err := h.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var results []struct {
		DisplayName string `json:"display_name"`
		Type        string `json:"type"`
	}
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("parse place lookup: %w", err)
	}

	places := make([]Place, 0, len(results))
	for _, r := range results {
		parts := strings.Split(r.DisplayName, ",")
		place := Place{Name: strings.TrimSpace(parts[0])}
		if len(parts) > 1 {
			place.Locality = strings.TrimSpace(parts[1])
		}
		if len(parts) > 2 {
			place.Region = strings.TrimSpace(parts[len(parts)-2])
		}
		places = append(places, place)
	}
	return places, nil
}

// opensearch runs a MediaWiki opensearch query and returns the title list.
func (h *HTTPClient) opensearch(ctx context.Context, baseURL, term string) ([]string, error) {
	endpoint := fmt.Sprintf("%s/w/api.php?action=opensearch&search=%s&limit=10&format=json",
		baseURL, url.QueryEscape(term))

	body, err := h.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	// Response shape: ["term", [titles...], [descriptions...], [urls...]]
	var payload []json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil || len(payload) < 2 {
		return nil, fmt.Errorf("unexpected opensearch response for %q", term)
	}
	var titles []string
	if err := json.Unmarshal(payload[1], &titles); err != nil {
		return nil, fmt.Errorf("parse opensearch titles: %w", err)
	}
	return titles, nil
}

// get performs one rate-limited GET and returns the size-capped body.
func (h *HTTPClient) get(ctx context.Context, endpoint string) ([]byte, error) {
	if err := h.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("research request failed with status %d", resp.StatusCode)
	}

	return io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
}
