package pipeline

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/masashitakano917-maker/apt-explain-sub000/internal/cache"
	"github.com/masashitakano917-maker/apt-explain-sub000/internal/model"
)

func testHTTPConfig() model.HTTPConfig {
	return model.HTTPConfig{
		Timeout:      5 * time.Second,
		UserAgent:    "apt-explain-test/0.1",
		MaxBodyBytes: 1 << 20,
		// robots and rate limiting off so tests hit the handler directly
		RespectRobots: false,
		RatePerSecond: 0,
	}
}

func TestFetchSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != "apt-explain-test/0.1" {
			t.Errorf("User-Agent = %q", got)
		}
		w.Write([]byte("<html><body>グランドパレス品川</body></html>"))
	}))
	defer server.Close()

	f := NewFetcher(testHTTPConfig(), nil)
	result, err := f.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
	if result.FromCache {
		t.Error("FromCache = true on first fetch")
	}
	if result.HTML == "" || result.FinalURL == "" {
		t.Errorf("incomplete result: %+v", result)
	}
}

func TestFetchStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	f := NewFetcher(testHTTPConfig(), nil)
	if _, err := f.Fetch(context.Background(), server.URL); err == nil {
		t.Fatal("expected error for 404 response")
	}
}

func TestFetchUsesCache(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Write([]byte("<html>cached page</html>"))
	}))
	defer server.Close()

	store := cache.NewMemoryCache(time.Minute, time.Minute)
	f := NewFetcher(testHTTPConfig(), store)

	first, err := f.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("first Fetch() error: %v", err)
	}
	second, err := f.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("second Fetch() error: %v", err)
	}

	if got := atomic.LoadInt32(&hits); got != 1 {
		t.Errorf("server hits = %d, want 1", got)
	}
	if !second.FromCache {
		t.Error("second fetch should come from cache")
	}
	if first.HTML != second.HTML {
		t.Errorf("cached HTML mismatch: %q vs %q", first.HTML, second.HTML)
	}
}

func TestFetchBodyLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for i := 0; i < 100; i++ {
			w.Write([]byte("0123456789"))
		}
	}))
	defer server.Close()

	cfg := testHTTPConfig()
	cfg.MaxBodyBytes = 50
	f := NewFetcher(cfg, nil)

	result, err := f.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
	if len(result.HTML) != 50 {
		t.Errorf("body length = %d, want 50", len(result.HTML))
	}
}

func TestFetchWithRetryRecovers(t *testing.T) {
	origSleep := fetchSleepFunc
	fetchSleepFunc = func(time.Duration) {}
	defer func() { fetchSleepFunc = origSleep }()

	var attempts int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&attempts, 1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte("<html>finally</html>"))
	}))
	defer server.Close()

	f := NewFetcher(testHTTPConfig(), nil)
	result, err := f.FetchWithRetry(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("FetchWithRetry() error: %v", err)
	}
	if got := atomic.LoadInt32(&attempts); got != 3 {
		t.Errorf("attempts = %d, want 3", got)
	}
	if result.HTML != "<html>finally</html>" {
		t.Errorf("HTML = %q", result.HTML)
	}
}

func TestFetchWithRetryExhausted(t *testing.T) {
	origSleep := fetchSleepFunc
	var sleeps int
	fetchSleepFunc = func(time.Duration) { sleeps++ }
	defer func() { fetchSleepFunc = origSleep }()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	f := NewFetcher(testHTTPConfig(), nil)
	if _, err := f.FetchWithRetry(context.Background(), server.URL); err == nil {
		t.Fatal("expected error after exhausted retries")
	}
	if sleeps != fetchMaxRetries-1 {
		t.Errorf("sleeps = %d, want %d", sleeps, fetchMaxRetries-1)
	}
}

func TestFetchRespectsRobots(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("User-agent: *\nDisallow: /private/\n"))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>page</html>"))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	cfg := testHTTPConfig()
	cfg.RespectRobots = true
	f := NewFetcher(cfg, nil)

	if _, err := f.Fetch(context.Background(), server.URL+"/private/listing.html"); err == nil {
		t.Error("expected error for robots-disallowed path")
	}
	if _, err := f.Fetch(context.Background(), server.URL+"/public/listing.html"); err != nil {
		t.Errorf("allowed path failed: %v", err)
	}
}
