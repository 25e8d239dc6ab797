package rosu

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// newFakeServer serves the token endpoint under /oauth/token and delegates
// everything else to api. It returns the call counter of the token endpoint.
func newFakeServer(t *testing.T, expiresIn int, api http.HandlerFunc) (*httptest.Server, *int32) {
	t.Helper()

	var tokenCalls int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/oauth/token" {
			n := atomic.AddInt32(&tokenCalls, 1)
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprintf(w, `{"token_type":"Bearer","access_token":"token%d","refresh_token":"refresh%d","expires_in":%d}`, n, n, expiresIn)
			return
		}
		if api != nil {
			api(w, r)
			return
		}
		http.NotFound(w, r)
	}))
	t.Cleanup(srv.Close)

	return srv, &tokenCalls
}

func newTestClient(t *testing.T, srv *httptest.Server, options ...Option) *Client {
	t.Helper()

	base := []Option{
		WithClientID(123),
		WithClientSecret("secret"),
		WithTokenURL(srv.URL + "/oauth/token"),
		WithBaseURL(srv.URL + "/api/"),
		WithRateLimit(100, 1000),
	}

	client, err := New(context.Background(), append(base, options...)...)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	t.Cleanup(client.Close)

	return client
}

func spotlightsHandler(w http.ResponseWriter, r *http.Request) {
	fmt.Fprint(w, `{"spotlights":[]}`)
}

func TestNewRequiresCredentials(t *testing.T) {
	_, err := New(context.Background())
	if err == nil {
		t.Fatal("Expected error without credentials")
	}

	_, err = New(context.Background(), WithClientID(123))
	if err == nil {
		t.Fatal("Expected error without client secret")
	}
}

func TestNewValidatesConfiguration(t *testing.T) {
	srv, _ := newFakeServer(t, 3600, nil)

	_, err := New(context.Background(),
		WithClientID(123),
		WithClientSecret("secret"),
		WithTokenURL(srv.URL+"/oauth/token"),
		WithMaxRetries(-1),
	)
	if err == nil {
		t.Fatal("Expected error for negative retries")
	}

	_, err = New(context.Background(),
		WithClientID(123),
		WithClientSecret("secret"),
		WithTokenURL(srv.URL+"/oauth/token"),
		WithTimeout(0),
	)
	if err == nil {
		t.Fatal("Expected error for zero timeout")
	}
}

func TestNewFailsWhenInitialTokenFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":"invalid_client"}`)
	}))
	defer srv.Close()

	_, err := New(context.Background(),
		WithClientID(123),
		WithClientSecret("wrong"),
		WithTokenURL(srv.URL+"/oauth/token"),
	)
	if err == nil {
		t.Fatal("Expected construction to fail")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected *APIError in chain, got %v", err)
	}
	if apiErr.Payload.Error != "invalid_client" {
		t.Errorf("Expected invalid_client, got %q", apiErr.Payload.Error)
	}
}

func TestNewAcquiresInitialToken(t *testing.T) {
	srv, tokenCalls := newFakeServer(t, 3600, nil)
	client := newTestClient(t, srv)

	token := client.Token()
	if token.Access != "Bearer token1" {
		t.Errorf("Expected Bearer token1, got %q", token.Access)
	}
	if token.ExpiresIn != 3600*time.Second {
		t.Errorf("Expected 3600s lifetime, got %v", token.ExpiresIn)
	}
	if got := atomic.LoadInt32(tokenCalls); got != 1 {
		t.Errorf("Expected 1 token call, got %d", got)
	}
}

func TestConcurrentRequestsSeeToken(t *testing.T) {
	srv, _ := newFakeServer(t, 3600, spotlightsHandler)
	client := newTestClient(t, srv)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := client.Spotlights().Do(context.Background()); err != nil {
				t.Errorf("Request after construction failed: %v", err)
			}
		}()
	}
	wg.Wait()
}

func TestNoTokenFailsRequest(t *testing.T) {
	srv, _ := newFakeServer(t, 3600, spotlightsHandler)
	client := newTestClient(t, srv)

	client.tokenMu.Lock()
	client.token = Token{}
	client.tokenMu.Unlock()

	_, err := client.Spotlights().Do(context.Background())
	if !errors.Is(err, ErrNoToken) {
		t.Errorf("Expected ErrNoToken, got %v", err)
	}
}

func TestRateLimitBoundsThroughput(t *testing.T) {
	srv, _ := newFakeServer(t, 3600, spotlightsHandler)
	// capacity 1, 20 tokens/s; the initial token request consumes the burst
	client := newTestClient(t, srv, WithRateLimit(1, 20))

	start := time.Now()
	for i := 0; i < 4; i++ {
		if _, err := client.Spotlights().Do(context.Background()); err != nil {
			t.Fatalf("Request %d failed: %v", i, err)
		}
	}

	if elapsed := time.Since(start); elapsed < 150*time.Millisecond {
		t.Errorf("Expected rate limiter to slow 4 requests to >=150ms, took %v", elapsed)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	srv, _ := newFakeServer(t, 3600, nil)
	client := newTestClient(t, srv)

	client.Close()
	client.Close()
}

func TestCacheUserIDNumericSkipsNetwork(t *testing.T) {
	srv, _ := newFakeServer(t, 3600, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("Unexpected API call: %s", r.URL.Path)
	})
	client := newTestClient(t, srv)

	id, err := client.cacheUserID(context.Background(), UserID{ID: 2211396})
	if err != nil {
		t.Fatalf("cacheUserID failed: %v", err)
	}
	if id != 2211396 {
		t.Errorf("Expected 2211396, got %d", id)
	}
}
