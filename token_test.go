package rosu

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestTokenRequestClientCredentials(t *testing.T) {
	var mu sync.Mutex
	var body tokenRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Expected application/json, got %q", ct)
		}
		mu.Lock()
		defer mu.Unlock()
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("Decoding token request: %v", err)
		}
		fmt.Fprint(w, `{"token_type":"Bearer","access_token":"token","expires_in":3600}`)
	}))
	defer srv.Close()

	client, err := New(context.Background(),
		WithClientID(123),
		WithClientSecret("secret"),
		WithScope(ScopePublic),
		WithTokenURL(srv.URL),
	)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer client.Close()

	mu.Lock()
	defer mu.Unlock()

	if body.GrantType != "client_credentials" {
		t.Errorf("Expected client_credentials, got %q", body.GrantType)
	}
	if body.Scope != "public" {
		t.Errorf("Expected public scope, got %q", body.Scope)
	}
	if body.ClientID != 123 || body.ClientSecret != "secret" {
		t.Errorf("Expected credentials in body, got id=%d secret=%q", body.ClientID, body.ClientSecret)
	}
	if body.Code != "" || body.RefreshToken != "" {
		t.Error("Client credentials flow must not carry code or refresh token")
	}
}

func TestTokenRequestUserFlow(t *testing.T) {
	var mu sync.Mutex
	var bodies []tokenRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body tokenRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("Decoding token request: %v", err)
		}
		mu.Lock()
		bodies = append(bodies, body)
		mu.Unlock()
		fmt.Fprint(w, `{"token_type":"Bearer","access_token":"token","refresh_token":"refresh","expires_in":3600}`)
	}))
	defer srv.Close()

	client, err := New(context.Background(),
		WithClientID(123),
		WithClientSecret("secret"),
		WithAuthorization("http://localhost/callback", "onetimecode"),
		WithTokenURL(srv.URL),
	)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer client.Close()

	// Second exchange must take the refresh branch now that a refresh token
	// is stored; the one-time code is never sent again.
	if err := client.refreshToken(context.Background()); err != nil {
		t.Fatalf("refreshToken failed: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()

	if len(bodies) != 2 {
		t.Fatalf("Expected 2 token exchanges, got %d", len(bodies))
	}

	first := bodies[0]
	if first.GrantType != "authorization_code" {
		t.Errorf("Expected authorization_code first, got %q", first.GrantType)
	}
	if first.Code != "onetimecode" || first.RedirectURI != "http://localhost/callback" {
		t.Errorf("Expected code and redirect uri, got code=%q uri=%q", first.Code, first.RedirectURI)
	}
	if first.Scope != "identify public" {
		t.Errorf("Expected identify public scope, got %q", first.Scope)
	}

	second := bodies[1]
	if second.GrantType != "refresh_token" {
		t.Errorf("Expected refresh_token second, got %q", second.GrantType)
	}
	if second.RefreshToken != "refresh" {
		t.Errorf("Expected stored refresh token, got %q", second.RefreshToken)
	}
	if second.Code != "" {
		t.Error("Refresh exchange must not resend the one-time code")
	}
}

func TestRefreshLoopRenewsBeforeExpiry(t *testing.T) {
	if testing.Short() {
		t.Skip("timing test")
	}

	srv, tokenCalls := newFakeServer(t, 1, nil)
	client := newTestClient(t, srv)
	defer client.Close()

	// The loop renews at 90% of the 1s lifetime, so a second acquisition
	// must have happened before the first token expired.
	time.Sleep(1000 * time.Millisecond)

	if got := atomic.LoadInt32(tokenCalls); got < 2 {
		t.Errorf("Expected renewal before expiry, token calls = %d", got)
	}

	if access := client.Token().Access; access == "Bearer token1" {
		t.Error("Expected token to have been replaced")
	}
}

func TestRefreshLoopSurvivesFailure(t *testing.T) {
	if testing.Short() {
		t.Skip("timing test")
	}

	var tokenCalls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&tokenCalls, 1)
		if n == 2 {
			// One provider hiccup; the loop must keep its cadence.
			w.WriteHeader(http.StatusServiceUnavailable)
			fmt.Fprint(w, "maintenance")
			return
		}
		fmt.Fprintf(w, `{"token_type":"Bearer","access_token":"token%d","expires_in":1}`, n)
	}))
	defer srv.Close()

	client, err := New(context.Background(),
		WithClientID(123),
		WithClientSecret("secret"),
		WithTokenURL(srv.URL),
	)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer client.Close()

	time.Sleep(2 * time.Second)

	if got := atomic.LoadInt32(&tokenCalls); got < 3 {
		t.Errorf("Expected loop to retry after failure, token calls = %d", got)
	}
}

func TestCloseStopsRefreshLoop(t *testing.T) {
	if testing.Short() {
		t.Skip("timing test")
	}

	srv, tokenCalls := newFakeServer(t, 1, nil)
	client := newTestClient(t, srv)

	client.Close()
	time.Sleep(1200 * time.Millisecond)

	if got := atomic.LoadInt32(tokenCalls); got != 1 {
		t.Errorf("Expected no renewals after Close, token calls = %d", got)
	}
}

func TestTokenReplacedWholesale(t *testing.T) {
	srv, _ := newFakeServer(t, 3600, nil)
	client := newTestClient(t, srv)

	before := client.Token()

	if err := client.refreshToken(context.Background()); err != nil {
		t.Fatalf("refreshToken failed: %v", err)
	}

	after := client.Token()
	if after.Access == before.Access {
		t.Error("Expected a fresh access token")
	}
	if after.ExpiresIn != 3600*time.Second {
		t.Errorf("Expected full lifetime on the new token, got %v", after.ExpiresIn)
	}
}
