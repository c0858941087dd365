package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func newLimitedRouter(limiter *RateLimiter, rules map[string]RateLimitRule) *gin.Engine {
	r := gin.New()
	r.Use(RateLimit(RateLimitConfig{
		GroupFor: StudyRateLimitGroup,
		Limiter:  limiter,
		Rules:    rules,
	}))
	ok := func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) }
	r.POST("/api/v1/generate", ok)
	r.POST("/api/v1/export", ok)
	r.GET("/api/v1/studies", ok)
	return r
}

func TestRateLimitGroupsAreIndependent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(func() time.Time { return now })

	r := newLimitedRouter(limiter, map[string]RateLimitRule{
		RateLimitGenerate: {Rate: 5, Burst: 3},
		RateLimitExport:   {Rate: 1, Burst: 1},
	})

	do := func(method, path string) int {
		req := httptest.NewRequest(method, path, nil)
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)
		return resp.Code
	}

	for i := 0; i < 3; i++ {
		if code := do(http.MethodPost, "/api/v1/generate"); code != http.StatusOK {
			t.Fatalf("generate request %d expected 200, got %d", i+1, code)
		}
	}
	if code := do(http.MethodPost, "/api/v1/export"); code != http.StatusOK {
		t.Fatalf("export expected 200, got %d", code)
	}
	if code := do(http.MethodPost, "/api/v1/export"); code != http.StatusTooManyRequests {
		t.Fatalf("second export expected 429, got %d", code)
	}
	for i := 0; i < 5; i++ {
		if code := do(http.MethodGet, "/api/v1/studies"); code != http.StatusOK {
			t.Fatalf("unlimited read expected 200, got %d", code)
		}
	}
}

func TestRateLimit429IncludesRetryAfter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(func() time.Time { return now })

	r := newLimitedRouter(limiter, map[string]RateLimitRule{
		RateLimitGenerate: PerMinute(1),
	})

	req1 := httptest.NewRequest(http.MethodPost, "/api/v1/generate", nil)
	resp1 := httptest.NewRecorder()
	r.ServeHTTP(resp1, req1)
	if resp1.Code != http.StatusOK {
		t.Fatalf("expected first request 200, got %d", resp1.Code)
	}

	req2 := httptest.NewRequest(http.MethodPost, "/api/v1/generate", nil)
	resp2 := httptest.NewRecorder()
	r.ServeHTTP(resp2, req2)
	if resp2.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", resp2.Code)
	}
	if resp2.Header().Get("Retry-After") == "" {
		t.Fatalf("expected Retry-After header")
	}

	var payload struct {
		Error struct {
			Code    string         `json:"code"`
			Details map[string]any `json:"details"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp2.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Error.Code != "rate_limited" {
		t.Fatalf("expected code rate_limited, got %q", payload.Error.Code)
	}
	if _, ok := payload.Error.Details["retryAfterMs"]; !ok {
		t.Fatalf("expected retryAfterMs in details")
	}
}

func TestPerMinuteDisabled(t *testing.T) {
	if rule := PerMinute(0); rule.Rate != 0 || rule.Burst != 0 {
		t.Fatalf("expected zero rule, got %+v", rule)
	}
}
