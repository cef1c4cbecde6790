package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"library-catalog/config"
	"library-catalog/internal/middleware"
)

func newRateLimitEngine(cfg config.RateLimitConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := middleware.New(&mockLogger{}, config.AuthConfig{}, cfg)

	engine := gin.New()
	engine.GET("/limited", mw.RateLimit(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return engine
}

func hit(engine *gin.Engine, key string) int {
	req := httptest.NewRequest(http.MethodGet, "/limited", nil)
	if key != "" {
		req.Header.Set("X-API-Key", key)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimit(t *testing.T) {
	t.Run("Burst Then 429", func(t *testing.T) {
		engine := newRateLimitEngine(config.RateLimitConfig{RequestsPerSecond: 0.001, Burst: 2})

		if code := hit(engine, "key-a"); code != http.StatusOK {
			t.Fatalf("request 1: expected 200, got %d", code)
		}
		if code := hit(engine, "key-a"); code != http.StatusOK {
			t.Fatalf("request 2: expected 200, got %d", code)
		}
		if code := hit(engine, "key-a"); code != http.StatusTooManyRequests {
			t.Errorf("request 3: expected 429, got %d", code)
		}
	})

	t.Run("Keys Are Limited Independently", func(t *testing.T) {
		engine := newRateLimitEngine(config.RateLimitConfig{RequestsPerSecond: 0.001, Burst: 1})

		if code := hit(engine, "key-a"); code != http.StatusOK {
			t.Fatalf("key-a: expected 200, got %d", code)
		}
		if code := hit(engine, "key-a"); code != http.StatusTooManyRequests {
			t.Fatalf("key-a: expected 429, got %d", code)
		}
		if code := hit(engine, "key-b"); code != http.StatusOK {
			t.Errorf("key-b must have its own bucket, got %d", code)
		}
	})

	t.Run("Unconfigured Limit Never Throttles", func(t *testing.T) {
		engine := newRateLimitEngine(config.RateLimitConfig{})

		for i := 0; i < 50; i++ {
			if code := hit(engine, "key-a"); code != http.StatusOK {
				t.Fatalf("request %d: expected 200, got %d", i+1, code)
			}
		}
	})
}
