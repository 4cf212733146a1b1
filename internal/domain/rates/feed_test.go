package rates

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestHTTPFeedFetchHistory(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
      {"date":"2025-01-01","sellRate":1000},
      {"date":"2025-01-02","sellRate":"1010.5"},
      {"date":"not-a-date","sellRate":1020}
    ]`))
	}))
	defer server.Close()

	feed := NewHTTPFeed(server.URL, 5*time.Second)
	samples, err := feed.FetchHistory(context.Background())
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if len(samples) != 2 {
		t.Fatalf("expected 2 samples (malformed row skipped), got %d", len(samples))
	}
	if !samples[1].Rate.Equal(decimal.RequireFromString("1010.5")) {
		t.Fatalf("expected rate 1010.5, got %s", samples[1].Rate)
	}
}

func TestHTTPFeedNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	feed := NewHTTPFeed(server.URL, 5*time.Second)
	if _, err := feed.FetchHistory(context.Background()); err == nil {
		t.Fatal("expected error on non-200 response")
	}
}

func TestHTTPFeedBadPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"oops":true}`))
	}))
	defer server.Close()

	feed := NewHTTPFeed(server.URL, 5*time.Second)
	if _, err := feed.FetchHistory(context.Background()); err == nil {
		t.Fatal("expected error on corrupt payload")
	}
}
