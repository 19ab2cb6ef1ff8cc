package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newCORSRouter(policy CORSPolicy) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORS(policy))
	r.POST("/v1/claims", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestCORS_AllowedOriginIsEchoed(t *testing.T) {
	r := newCORSRouter(CORSPolicy{AllowedOrigins: []string{"https://portal.example.com"}})

	req := httptest.NewRequest(http.MethodPost, "/v1/claims", nil)
	req.Header.Set("Origin", "https://portal.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://portal.example.com" {
		t.Fatalf("expected exact origin echo, got %q", got)
	}
	if got := w.Header().Get("Vary"); got != "Origin" {
		t.Fatalf("expected Vary: Origin, got %q", got)
	}
}

func TestCORS_UnknownOriginGetsNoHeader(t *testing.T) {
	r := newCORSRouter(CORSPolicy{AllowedOrigins: []string{"https://portal.example.com"}})

	req := httptest.NewRequest(http.MethodPost, "/v1/claims", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected no allow-origin header, got %q", got)
	}
	if w.Code != http.StatusOK {
		t.Fatalf("request itself must still be served, got %d", w.Code)
	}
}

func TestCORS_RelaxedModeWildcards(t *testing.T) {
	r := newCORSRouter(CORSPolicy{AllowAll: true})

	req := httptest.NewRequest(http.MethodPost, "/v1/claims", nil)
	req.Header.Set("Origin", "https://anywhere.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected wildcard, got %q", got)
	}
}

func TestCORS_PreflightIsAnsweredInPlace(t *testing.T) {
	r := newCORSRouter(CORSPolicy{AllowedOrigins: []string{"https://portal.example.com"}})

	req := httptest.NewRequest(http.MethodOptions, "/v1/claims", nil)
	req.Header.Set("Origin", "https://portal.example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "Content-Type, X-Custom")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Fatalf("expected empty preflight body, got %q", w.Body.String())
	}
	if got := w.Header().Get("Access-Control-Allow-Methods"); got != "POST" {
		t.Fatalf("expected requested method echo, got %q", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Headers"); got != "Content-Type, X-Custom" {
		t.Fatalf("expected requested headers echo, got %q", got)
	}
}

func TestCORSPolicyFromEnv(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com ,")
	t.Setenv("CORS_ALLOW_ALL", "")

	p := CORSPolicyFromEnv()
	if len(p.AllowedOrigins) != 2 {
		t.Fatalf("expected two origins, got %v", p.AllowedOrigins)
	}
	if p.AllowAll {
		t.Fatalf("expected allow-all off")
	}

	t.Setenv("CORS_ALLOW_ALL", "true")
	if !CORSPolicyFromEnv().AllowAll {
		t.Fatalf("expected allow-all on")
	}
}
