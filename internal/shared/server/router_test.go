package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"jobfit-backend/internal/shared/config"
)

func testConfig() config.Config {
	return config.Config{
		Port:             "8080",
		CORSAllowOrigin:  []string{"http://localhost:3000"},
		OpenAIAPIKey:     "test-key",
		LLMModel:         "gpt-3.5-turbo",
		AssistantModel:   "gpt-4o",
		ExtractionMethod: "assistants",
		Env:              "dev",
	}
}

func TestRouterHealth(t *testing.T) {
	r, err := NewRouter(testConfig())
	if err != nil {
		t.Fatalf("new router: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"ok":true`) {
		t.Fatalf("unexpected health body: %s", w.Body.String())
	}
	if w.Header().Get("X-Request-Id") == "" {
		t.Fatal("expected request ID header")
	}
}

func TestRouterMetricsEndpoint(t *testing.T) {
	r, err := NewRouter(testConfig())
	if err != nil {
		t.Fatalf("new router: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "analysis_started_total") {
		t.Fatalf("expected metrics exposition, got: %s", w.Body.String())
	}
}

func TestRouterCORSPreflight(t *testing.T) {
	r, err := NewRouter(testConfig())
	if err != nil {
		t.Fatalf("new router: %v", err)
	}

	req := httptest.NewRequest(http.MethodOptions, "/api/analyze", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for preflight, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Fatalf("unexpected allow-origin %q", got)
	}
}

func TestAddr(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ":8080"},
		{"9090", ":9090"},
		{":7070", ":7070"},
	}
	for _, tt := range tests {
		if got := Addr(tt.in); got != tt.want {
			t.Fatalf("Addr(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
