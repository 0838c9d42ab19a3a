package suggest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestLookup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "lake tahoe" {
			t.Errorf("Expected query 'lake tahoe', got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"name":"Lake Tahoe","region":"California","lat":39.0968,"lon":-120.0324}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	suggestions, err := client.Lookup(context.Background(), "lake tahoe")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if len(suggestions) != 1 || suggestions[0].Name != "Lake Tahoe" {
		t.Errorf("Unexpected suggestions: %+v", suggestions)
	}
}

func TestLookupCancelled(t *testing.T) {
	started := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		// Outlive the caller's cancellation.
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	client := NewClient(server.URL)
	suggestions, err := client.Lookup(ctx, "anywhere")
	if err == nil {
		t.Fatal("Expected error after cancellation")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled in chain, got %v", err)
	}
	if suggestions != nil {
		t.Error("A cancelled lookup must not deliver a result")
	}
}

func TestLookupServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	if _, err := NewClient(server.URL).Lookup(context.Background(), "x"); err == nil {
		t.Error("Expected error on non-200 response")
	}
}
