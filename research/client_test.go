package research

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*HTTPClient, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewHTTPClient(
		WithBaseURLs(server.URL, server.URL, server.URL, server.URL),
		WithHTTPClient(server.Client()),
	)
	return client, server
}

func TestSuggest(t *testing.T) {
	var requests int
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(`["treuhand",["treuhand zürich","treuhand kosten","treuhand kmu"]]`))
	})

	suggestions, err := client.Suggest(context.Background(), "treuhand")
	if err != nil {
		t.Fatalf("Suggest failed: %v", err)
	}
	if len(suggestions) != 3 {
		t.Fatalf("Expected 3 suggestions, got %d", len(suggestions))
	}
	if suggestions[0] != "treuhand zürich" {
		t.Errorf("Unexpected first suggestion: %q", suggestions[0])
	}

	// Second call must come from the cache.
	if _, err := client.Suggest(context.Background(), "treuhand"); err != nil {
		t.Fatalf("Cached suggest failed: %v", err)
	}
	if requests != 1 {
		t.Errorf("Expected 1 upstream request, got %d", requests)
	}
}

func TestSynonymsFilterSelf(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`["beratung",["Beratung","Beratungsgespräch","Consulting"],[],[]]`))
	})

	synonyms, err := client.Synonyms(context.Background(), "beratung")
	if err != nil {
		t.Fatalf("Synonyms failed: %v", err)
	}
	for _, s := range synonyms {
		if s == "Beratung" {
			t.Error("Expected the term itself to be filtered out")
		}
	}
	if len(synonyms) != 2 {
		t.Errorf("Expected 2 synonyms, got %v", synonyms)
	}
}

func TestPlaceLookup(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("countrycodes") != "ch" {
			t.Errorf("Expected countrycodes=ch, got %q", r.URL.Query().Get("countrycodes"))
		}
		w.Write([]byte(`[{"display_name":"Zürich, Bezirk Zürich, Zürich, Schweiz","type":"city"}]`))
	})

	places, err := client.PlaceLookup(context.Background(), "Zürich")
	if err != nil {
		t.Fatalf("PlaceLookup failed: %v", err)
	}
	if len(places) != 1 {
		t.Fatalf("Expected 1 place, got %d", len(places))
	}
	if places[0].Name != "Zürich" {
		t.Errorf("Unexpected place name: %q", places[0].Name)
	}
}

func TestUpstreamErrors(t *testing.T) {
	t.Run("ServerError", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		if _, err := client.Suggest(context.Background(), "treuhand"); err == nil {
			t.Error("Expected error for upstream 500")
		}
	})

	t.Run("MalformedBody", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json at all`))
		})

		if _, err := client.RelatedTerms(context.Background(), "treuhand"); err == nil {
			t.Error("Expected error for malformed response")
		}
	})

	t.Run("ContextCancelled", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
			w.Write([]byte(`["x",[]]`))
		})

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		if _, err := client.Suggest(ctx, "treuhand"); err == nil {
			t.Error("Expected error for cancelled context")
		}
	})
}

func TestCache(t *testing.T) {
	t.Run("TTLExpiry", func(t *testing.T) {
		cache := NewCache(10*time.Millisecond, 10)
		cache.Set("key", []string{"value"})

		if _, ok := cache.Get("key"); !ok {
			t.Fatal("Expected fresh entry to be present")
		}

		time.Sleep(20 * time.Millisecond)
		if _, ok := cache.Get("key"); ok {
			t.Error("Expected entry to expire")
		}
	})

	t.Run("SizeCap", func(t *testing.T) {
		cache := NewCache(time.Minute, 3)
		cache.Set("a", []string{"1"})
		time.Sleep(time.Millisecond)
		cache.Set("b", []string{"2"})
		time.Sleep(time.Millisecond)
		cache.Set("c", []string{"3"})
		time.Sleep(time.Millisecond)
		cache.Set("d", []string{"4"})

		if cache.Len() > 3 {
			t.Errorf("Expected at most 3 entries, got %d", cache.Len())
		}
		if _, ok := cache.Get("a"); ok {
			t.Error("Expected oldest entry to be evicted")
		}
		if _, ok := cache.Get("d"); !ok {
			t.Error("Expected newest entry to survive")
		}
	})
}
