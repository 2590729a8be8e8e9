package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestRateLimiterAllowRefill(t *testing.T) {
	current := time.Unix(1000, 0)
	limiter := NewRateLimiter(func() time.Time { return current })
	rule := RateLimitRule{Rate: 1, Burst: 2}

	if ok, _ := limiter.Allow("ip|LLM", rule); !ok {
		t.Fatal("first request should pass")
	}
	if ok, _ := limiter.Allow("ip|LLM", rule); !ok {
		t.Fatal("second request should drain the burst")
	}
	ok, retryAfter := limiter.Allow("ip|LLM", rule)
	if ok {
		t.Fatal("third request should be limited")
	}
	if retryAfter <= 0 {
		t.Fatalf("expected positive retry hint, got %v", retryAfter)
	}

	current = current.Add(1500 * time.Millisecond)
	if ok, _ := limiter.Allow("ip|LLM", rule); !ok {
		t.Fatal("request after refill should pass")
	}
}

func TestRateLimiterKeysAreIndependent(t *testing.T) {
	current := time.Unix(1000, 0)
	limiter := NewRateLimiter(func() time.Time { return current })
	rule := RateLimitRule{Rate: 1, Burst: 1}

	if ok, _ := limiter.Allow("a|LLM", rule); !ok {
		t.Fatal("first key should pass")
	}
	if ok, _ := limiter.Allow("b|LLM", rule); !ok {
		t.Fatal("second key has its own bucket")
	}
	if ok, _ := limiter.Allow("a|LLM", rule); ok {
		t.Fatal("first key should now be limited")
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	current := time.Unix(1000, 0)
	limiter := NewRateLimiter(func() time.Time { return current })

	r := gin.New()
	r.Use(RateLimit(RateLimitConfig{
		Limiter: limiter,
		GroupFor: func(c *gin.Context) string {
			if c.FullPath() == "/limited" {
				return "LLM"
			}
			return ""
		},
		Rules: map[string]RateLimitRule{
			"LLM": {Rate: 1, Burst: 1},
		},
	}))
	r.GET("/limited", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/open", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	do := func(path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	if w := do("/limited"); w.Code != http.StatusOK {
		t.Fatalf("first limited request: expected 200, got %d", w.Code)
	}
	w := do("/limited")
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("second limited request: expected 429, got %d", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Fatal("expected Retry-After header on 429")
	}

	// Routes without a matching rule are never throttled.
	for i := 0; i < 5; i++ {
		if w := do("/open"); w.Code != http.StatusOK {
			t.Fatalf("open route request %d: expected 200, got %d", i, w.Code)
		}
	}
}
