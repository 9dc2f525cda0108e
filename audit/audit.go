// Package audit fetches a published page and checks its current metadata
// against the same length rules the generator enforces. Used by the admin UI
// to show the state of a page before regenerating its metadata.
package audit

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	maxTitleLength       = 60
	minDescriptionLength = 140
	maxDescriptionLength = 160

	defaultCacheTTL     = 30 * time.Minute
	defaultMaxCacheSize = 500
)

// PageAudit is the result of auditing one published page.
type PageAudit struct {
	URL               string   `json:"url"`
	Title             string   `json:"title"`
	TitleLength       int      `json:"titleLength"`
	TitleValid        bool     `json:"titleValid"`
	Description       string   `json:"description"`
	DescriptionLength int      `json:"descriptionLength"`
	DescriptionValid  bool     `json:"descriptionValid"`
	H1Count           int      `json:"h1Count"`
	HasCanonical      bool     `json:"hasCanonical"`
	HasOpenGraph      bool     `json:"hasOpenGraph"`
	Issues            []string `json:"issues"`
}

type cacheEntry struct {
	audit     *PageAudit
	timestamp time.Time
}

// Auditor fetches and audits pages. Results are cached per URL.
type Auditor struct {
	client       *http.Client
	cache        map[string]cacheEntry
	cacheMutex   sync.RWMutex
	cacheTTL     time.Duration
	maxCacheSize int
}

// New creates an Auditor with connection pooling and a bounded result cache.
func New() *Auditor {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	return &Auditor{
		client: &http.Client{
			Timeout:   15 * time.Second,
			Transport: transport,
		},
		cache:        make(map[string]cacheEntry),
		cacheTTL:     defaultCacheTTL,
		maxCacheSize: defaultMaxCacheSize,
	}
}

// Audit fetches the page and evaluates its metadata.
func (a *Auditor) Audit(url string) (*PageAudit, error) {
	key := cacheKey(url)

	a.cacheMutex.RLock()
	if entry, found := a.cache[key]; found && time.Since(entry.timestamp) < a.cacheTTL {
		a.cacheMutex.RUnlock()
		return entry.audit, nil
	}
	a.cacheMutex.RUnlock()

	resp, err := a.client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("page returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}

	audit := evaluate(url, doc)
	a.store(key, audit)
	return audit, nil
}

func evaluate(url string, doc *goquery.Document) *PageAudit {
	audit := &PageAudit{URL: url, Issues: []string{}}

	audit.Title = strings.TrimSpace(doc.Find("title").First().Text())
	audit.TitleLength = len([]rune(audit.Title))
	audit.TitleValid = audit.TitleLength > 0 && audit.TitleLength <= maxTitleLength

	if desc, exists := doc.Find(`meta[name="description"]`).Attr("content"); exists {
		audit.Description = strings.TrimSpace(desc)
	}
	audit.DescriptionLength = len([]rune(audit.Description))
	audit.DescriptionValid = audit.DescriptionLength >= minDescriptionLength &&
		audit.DescriptionLength <= maxDescriptionLength

	audit.H1Count = doc.Find("h1").Length()
	audit.HasCanonical = doc.Find(`link[rel="canonical"]`).Length() > 0
	audit.HasOpenGraph = doc.Find(`meta[property="og:title"]`).Length() > 0

	audit.Issues = collectIssues(audit)
	return audit
}

// collectIssues produces the German issue list shown in the admin UI.
func collectIssues(audit *PageAudit) []string {
	issues := []string{}

	switch {
	case audit.TitleLength == 0:
		issues = append(issues, "Kein Meta-Titel vorhanden")
	case audit.TitleLength > maxTitleLength:
		issues = append(issues, fmt.Sprintf("Meta-Titel zu lang (%d Zeichen, maximal %d)",
			audit.TitleLength, maxTitleLength))
	}

	switch {
	case audit.DescriptionLength == 0:
		issues = append(issues, "Keine Meta-Beschreibung vorhanden")
	case audit.DescriptionLength < minDescriptionLength:
		issues = append(issues, fmt.Sprintf("Meta-Beschreibung zu kurz (%d Zeichen, mindestens %d)",
			audit.DescriptionLength, minDescriptionLength))
	case audit.DescriptionLength > maxDescriptionLength:
		issues = append(issues, fmt.Sprintf("Meta-Beschreibung zu lang (%d Zeichen, maximal %d)",
			audit.DescriptionLength, maxDescriptionLength))
	}

	switch {
	case audit.H1Count == 0:
		issues = append(issues, "Keine H1-Überschrift gefunden")
	case audit.H1Count > 1:
		issues = append(issues, fmt.Sprintf("Mehrere H1-Überschriften gefunden (%d)", audit.H1Count))
	}

	if !audit.HasCanonical {
		issues = append(issues, "Kein Canonical-Link gesetzt")
	}
	if !audit.HasOpenGraph {
		issues = append(issues, "Keine Open-Graph-Tags gefunden")
	}

	return issues
}

func cacheKey(url string) string {
	hash := md5.Sum([]byte(url))
	return hex.EncodeToString(hash[:])
}

func (a *Auditor) store(key string, audit *PageAudit) {
	a.cacheMutex.Lock()
	defer a.cacheMutex.Unlock()

	if len(a.cache) >= a.maxCacheSize {
		a.evictOldestLocked(len(a.cache) - a.maxCacheSize + 1)
	}
	a.cache[key] = cacheEntry{audit: audit, timestamp: time.Now()}
}

func (a *Auditor) evictOldestLocked(n int) {
	type aged struct {
		key       string
		timestamp time.Time
	}
	entries := make([]aged, 0, len(a.cache))
	for key, entry := range a.cache {
		entries = append(entries, aged{key, entry.timestamp})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].timestamp.Before(entries[j].timestamp)
	})

	for i := 0; i < n && i < len(entries); i++ {
		delete(a.cache, entries[i].key)
	}
}
