package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"studiobook/models"

	"go.uber.org/zap"
)

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	return New(Config{BaseURL: baseURL, Logger: zap.NewNop()})
}

func TestClientAttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(models.HealthResponse{Status: "healthy"})
	}))
	defer srv.Close()

	c := New(Config{BaseURL: srv.URL, Token: "test-token", Logger: zap.NewNop()})
	if _, err := c.Health(context.Background()); err != nil {
		t.Fatalf("health failed: %v", err)
	}
	if gotAuth != "Bearer test-token" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
}

func TestClientOmitsBearerWhenAnonymous(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(models.HealthResponse{Status: "healthy"})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	if _, err := c.Health(context.Background()); err != nil {
		t.Fatalf("health failed: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("anonymous request must not carry a token, got %q", gotAuth)
	}
}

func TestClientExtractsDetailMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail": "Studio not found"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.GetStudioBySlug(context.Background(), "missing")
	if err == nil {
		t.Fatal("expected error")
	}

	apiErr, ok := AsAPIError(err)
	if !ok {
		t.Fatalf("expected APIError, got %T: %v", err, err)
	}
	if apiErr.Status != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", apiErr.Status)
	}
	if apiErr.Message != "Studio not found" {
		t.Fatalf("expected backend detail, got %q", apiErr.Message)
	}
	if !IsNotFound(err) {
		t.Fatal("IsNotFound should match")
	}
	if IsUnauthorized(err) {
		t.Fatal("IsUnauthorized must not match a 404")
	}
}

func TestClientFallsBackToStatusLine(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<html>gateway sadness</html>"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.Health(context.Background())
	apiErr, ok := AsAPIError(err)
	if !ok {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Message != "HTTP 500: Internal Server Error" {
		t.Fatalf("unexpected fallback message: %q", apiErr.Message)
	}
}

func TestClientNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c := newTestClient(t, srv.URL)
	_, err := c.Health(context.Background())
	if err == nil {
		t.Fatal("expected error against a closed server")
	}
	if !errors.Is(err, ErrNetwork) {
		t.Fatalf("expected ErrNetwork, got %v", err)
	}
	if _, ok := AsAPIError(err); ok {
		t.Fatal("transport failures must not surface as APIError")
	}
}

func TestLoginAdoptsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var req models.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("bad login body: %v", err)
		}
		_ = json.NewEncoder(w).Encode(models.TokenResponse{
			AccessToken: "issued-token",
			TokenType:   "bearer",
			ExpiresIn:   1800,
			User:        models.User{ID: "user-1", Email: req.Email},
		})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	if c.Authenticated() {
		t.Fatal("fresh client should be anonymous")
	}

	resp, err := c.Login(context.Background(), "owner@example.com", "secret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if resp.TokenType != "bearer" || resp.ExpiresIn != 1800 {
		t.Fatalf("unexpected token response: %+v", resp)
	}
	if c.Token() != "issued-token" {
		t.Fatalf("token not adopted: %q", c.Token())
	}
	if !c.Authenticated() {
		t.Fatal("client should be authenticated after login")
	}
}

func TestLogoutClearsTokenEvenOnFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail": "Could not validate credentials"}`))
	}))
	defer srv.Close()

	c := New(Config{BaseURL: srv.URL, Token: "stale", Logger: zap.NewNop()})
	if err := c.Logout(context.Background()); err == nil {
		t.Fatal("expected the API error to surface")
	}
	if c.Authenticated() {
		t.Fatal("token must be dropped regardless of the API outcome")
	}
}

func TestClientSendsQueryParams(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode(models.Appointment{ID: "appt-1"})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	if _, err := c.GetBooking(context.Background(), "appt-1", "jane@example.com"); err != nil {
		t.Fatalf("get booking failed: %v", err)
	}
	if gotQuery != "customer_email=jane%40example.com" {
		t.Fatalf("unexpected query: %q", gotQuery)
	}
}

func TestFileTokenStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	store := NewFileTokenStore(path)

	tok, err := store.Load()
	if err != nil || tok != "" {
		t.Fatalf("missing file should load as empty, got %q, %v", tok, err)
	}

	if err := store.Save("persisted-token"); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	tok, err = store.Load()
	if err != nil || tok != "persisted-token" {
		t.Fatalf("load after save: %q, %v", tok, err)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	tok, _ = store.Load()
	if tok != "" {
		t.Fatalf("expected empty token after clear, got %q", tok)
	}
}

func TestClientLoadsStoredToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	store := NewFileTokenStore(path)
	if err := store.Save("stored-token"); err != nil {
		t.Fatalf("seed save failed: %v", err)
	}

	c := New(Config{BaseURL: "http://localhost:0", Tokens: store, Logger: zap.NewNop()})
	if c.Token() != "stored-token" {
		t.Fatalf("stored token not loaded: %q", c.Token())
	}

	c.ClearToken()
	if tok, _ := store.Load(); tok != "" {
		t.Fatalf("clear must purge the store, got %q", tok)
	}
}
