package crm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewHubSpotGateway_MissingToken(t *testing.T) {
	if _, err := NewHubSpotGateway("", ""); !errors.Is(err, ErrMissingCRMAccessToken) {
		t.Fatalf("expected ErrMissingCRMAccessToken, got %v", err)
	}
}

func TestHubSpotGateway_FindContactByEmail(t *testing.T) {
	t.Run("hit", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/crm/v3/objects/contacts/search" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			if got := r.Header.Get("Authorization"); got != "Bearer token-1" {
				t.Errorf("unexpected auth header %q", got)
			}
			var body contactSearchRequest
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Errorf("invalid search body: %v", err)
			}
			f := body.FilterGroups[0].Filters[0]
			if f.PropertyName != "email" || f.Operator != "EQ" || f.Value != "owner@example.com" {
				t.Errorf("unexpected filter: %+v", f)
			}
			_ = json.NewEncoder(w).Encode(searchResponse{Total: 1, Results: []objectResult{{ID: "contact-7"}}})
		}))
		defer srv.Close()

		g, err := NewHubSpotGateway(srv.URL, "token-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		id, err := g.FindContactByEmail(context.Background(), "owner@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id != "contact-7" {
			t.Fatalf("expected contact-7, got %q", id)
		}
	})

	t.Run("miss returns empty id without error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode(searchResponse{Total: 0})
		}))
		defer srv.Close()

		g, _ := NewHubSpotGateway(srv.URL, "token-1")
		id, err := g.FindContactByEmail(context.Background(), "owner@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id != "" {
			t.Fatalf("expected empty id, got %q", id)
		}
	})
}

func TestHubSpotGateway_CreateContact(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/crm/v3/objects/contacts" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var body createObjectRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("invalid create body: %v", err)
		}
		if body.Properties["email"] != "owner@example.com" {
			t.Errorf("unexpected props: %+v", body.Properties)
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(objectResult{ID: "contact-9"})
	}))
	defer srv.Close()

	g, _ := NewHubSpotGateway(srv.URL, "token-1")
	id, err := g.CreateContact(context.Background(), map[string]string{"email": "owner@example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "contact-9" {
		t.Fatalf("expected contact-9, got %q", id)
	}
}

func TestHubSpotGateway_CreateTicket(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/crm/v3/objects/tickets" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(objectResult{ID: "ticket-3"})
	}))
	defer srv.Close()

	g, _ := NewHubSpotGateway(srv.URL, "token-1")
	id, err := g.CreateTicket(context.Background(), map[string]string{"subject": "Warranty claim #100001"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "ticket-3" {
		t.Fatalf("expected ticket-3, got %q", id)
	}
}

func TestHubSpotGateway_ErrorStatusSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"status":"error"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	g, _ := NewHubSpotGateway(srv.URL, "bad-token")
	if _, err := g.FindContactByEmail(context.Background(), "owner@example.com"); err == nil {
		t.Fatalf("expected error for 401 response")
	}
}
