package enrich

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"cadence/internal/strategy"
	"cadence/pkg/logging"
)

func TestHTTPProvider_Enrich(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/profiles/alice-1" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer key-123" {
			t.Fatalf("missing auth header")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"identifier": "alice-1",
			"name": "Alice",
			"headline": "VP Security at Acme",
			"company": "Acme",
			"role_category": "security",
			"seniority": "vp",
			"skills": ["threat modeling", "vendor review"]
		}`))
	}))
	defer srv.Close()

	p := NewHTTPProvider(HTTPConfig{BaseURL: srv.URL, APIKey: "key-123", Logger: logging.NewLogger()})
	profile, err := p.Enrich(context.Background(), "alice-1")
	if err != nil {
		t.Fatalf("enrich failed: %v", err)
	}
	if profile.RoleCategory != strategy.RoleSecurity {
		t.Fatalf("expected security role, got %s", profile.RoleCategory)
	}
	if len(profile.Skills) != 2 {
		t.Fatalf("expected 2 skills, got %v", profile.Skills)
	}
}

func TestHTTPProvider_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"identifier": "bob-2", "role_category": "sales"}`))
	}))
	defer srv.Close()

	p := NewHTTPProvider(HTTPConfig{BaseURL: srv.URL, Logger: logging.NewLogger()})
	profile, err := p.Enrich(context.Background(), "bob-2")
	if err != nil {
		t.Fatalf("enrich failed after retry: %v", err)
	}
	if profile.RoleCategory != strategy.RoleSales {
		t.Fatalf("expected sales role, got %s", profile.RoleCategory)
	}
	if calls.Load() != 2 {
		t.Fatalf("expected 2 attempts, got %d", calls.Load())
	}
}

func TestHTTPProvider_UnknownRoleDefaultsToEngineering(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"identifier": "c-3", "role_category": "astronaut"}`))
	}))
	defer srv.Close()

	p := NewHTTPProvider(HTTPConfig{BaseURL: srv.URL, Logger: logging.NewLogger()})
	profile, err := p.Enrich(context.Background(), "c-3")
	if err != nil {
		t.Fatalf("enrich failed: %v", err)
	}
	if profile.RoleCategory != strategy.RoleEngineering {
		t.Fatalf("expected engineering default, got %s", profile.RoleCategory)
	}
}

func TestHTTPProvider_Unconfigured(t *testing.T) {
	p := NewHTTPProvider(HTTPConfig{})
	if _, err := p.Enrich(context.Background(), "x"); err == nil {
		t.Fatal("expected error from unconfigured provider")
	}
}
