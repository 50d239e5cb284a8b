package gotrue

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"vetcare-portal/internal/ports/auth"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/user" {
			http.NotFound(w, r)
			return
		}
		if r.Header.Get("apikey") != "anon-key" {
			http.Error(w, "no api key", http.StatusUnauthorized)
			return
		}
		switch r.Header.Get("Authorization") {
		case "Bearer good":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"u-1","email":"ana@example.com","app_metadata":{"role":"admin"}}`))
		case "Bearer boom":
			http.Error(w, "boom", http.StatusInternalServerError)
		default:
			http.Error(w, "invalid token", http.StatusUnauthorized)
		}
	}))
}

func TestVerifier(t *testing.T) {
	ts := newServer(t)
	defer ts.Close()

	c, err := NewClient(Config{BaseURL: ts.URL, APIKey: "anon-key"})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	v := NewVerifier(c)

	claims, err := v.Verify(context.Background(), "good")
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.UserID != "u-1" || claims.Email != "ana@example.com" || claims.Role != auth.RoleAdmin {
		t.Fatalf("unexpected claims %#v", claims)
	}

	if _, err := v.Verify(context.Background(), "bad"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if _, err := v.Verify(context.Background(), "boom"); !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
	if _, err := v.Verify(context.Background(), " "); !errors.Is(err, ErrTokenEmpty) {
		t.Fatalf("expected ErrTokenEmpty, got %v", err)
	}
}

func TestVerifier_NotConfigured(t *testing.T) {
	c, _ := NewClient(Config{})
	if _, err := NewVerifier(c).Verify(context.Background(), "x"); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
