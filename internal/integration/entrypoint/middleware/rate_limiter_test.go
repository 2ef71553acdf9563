// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func newTestRateLimiter(t *testing.T, maxAttempts int) (*RateLimiter, *miniredis.Miniredis) {
	t.Helper()

	// The middleware skips enforcement in test environments, which is not
	// what these tests exercise.
	t.Setenv("ENV", "development")
	t.Setenv("E2E_MODE", "false")

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRateLimiterWithConfig(client, maxAttempts, 1*time.Minute), mr
}

func newTestRouter(rl *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/login", rl.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func doLogin(router *gin.Engine) int {
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = "203.0.113.7:51000"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiterBlocksAfterMaxAttempts(t *testing.T) {
	rl, _ := newTestRateLimiter(t, 3)
	router := newTestRouter(rl)

	for i := 0; i < 3; i++ {
		if code := doLogin(router); code != http.StatusOK {
			t.Fatalf("attempt %d: status = %d, want %d", i+1, code, http.StatusOK)
		}
	}

	if code := doLogin(router); code != http.StatusTooManyRequests {
		t.Errorf("attempt over budget: status = %d, want %d", code, http.StatusTooManyRequests)
	}
}

func TestRateLimiterWindowExpiry(t *testing.T) {
	rl, mr := newTestRateLimiter(t, 1)
	router := newTestRouter(rl)

	if code := doLogin(router); code != http.StatusOK {
		t.Fatalf("first attempt: status = %d, want %d", code, http.StatusOK)
	}
	if code := doLogin(router); code != http.StatusTooManyRequests {
		t.Fatalf("second attempt: status = %d, want %d", code, http.StatusTooManyRequests)
	}

	// Once the window elapses the counter key expires and attempts are
	// allowed again.
	mr.FastForward(2 * time.Minute)

	if code := doLogin(router); code != http.StatusOK {
		t.Errorf("attempt after window: status = %d, want %d", code, http.StatusOK)
	}
}

func TestRateLimiterFailsOpenWhenRedisDown(t *testing.T) {
	rl, mr := newTestRateLimiter(t, 1)
	router := newTestRouter(rl)

	mr.Close()

	for i := 0; i < 5; i++ {
		if code := doLogin(router); code != http.StatusOK {
			t.Fatalf("attempt %d with redis down: status = %d, want %d", i+1, code, http.StatusOK)
		}
	}
}

func TestRateLimiterReset(t *testing.T) {
	rl, _ := newTestRateLimiter(t, 1)
	router := newTestRouter(rl)

	if code := doLogin(router); code != http.StatusOK {
		t.Fatalf("first attempt: status = %d, want %d", code, http.StatusOK)
	}
	if code := doLogin(router); code != http.StatusTooManyRequests {
		t.Fatalf("second attempt: status = %d, want %d", code, http.StatusTooManyRequests)
	}

	if err := rl.Reset(context.Background()); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}

	if code := doLogin(router); code != http.StatusOK {
		t.Errorf("attempt after reset: status = %d, want %d", code, http.StatusOK)
	}
}
