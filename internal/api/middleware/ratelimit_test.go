package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type stubLimiter struct {
	allowed bool
	err     error
	lastKey string
}

func (l *stubLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.lastKey = key
	return l.allowed, l.err
}

func runRateLimit(t *testing.T, limiter *stubLimiter) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := RateLimit(limiter, zerolog.Nop())(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, called
}

func TestRateLimit_Allowed(t *testing.T) {
	rec, called := runRateLimit(t, &stubLimiter{allowed: true})
	if !called {
		t.Fatal("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRateLimit_Exceeded(t *testing.T) {
	rec, called := runRateLimit(t, &stubLimiter{allowed: false})
	if called {
		t.Fatal("next must not be called when limited")
	}
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
}

// The limiter failing (Redis down) must not take the API down with it.
func TestRateLimit_FailsOpen(t *testing.T) {
	rec, called := runRateLimit(t, &stubLimiter{err: errors.New("redis: connection refused")})
	if !called {
		t.Fatal("expected request to pass through on limiter failure")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRateLimit_KeyedByClientIP(t *testing.T) {
	limiter := &stubLimiter{allowed: true}
	_, _ = runRateLimit(t, limiter)
	if limiter.lastKey == "" {
		t.Fatal("expected limiter keyed by client IP")
	}
}
