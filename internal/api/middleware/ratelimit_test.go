package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type stubLimiter struct {
	count int64
	err   error
	keys  []string
}

func (l *stubLimiter) Hit(_ context.Context, key string, _ time.Duration) (int64, error) {
	l.keys = append(l.keys, key)
	return l.count, l.err
}

func TestRateLimit_UnderLimit(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	limiter := &stubLimiter{count: 5}
	tier := RateTier{Name: "short", Window: time.Minute, Limit: 10}

	called := false
	handler := RateLimit(limiter, zerolog.Nop(), tier)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if len(limiter.keys) != 1 {
		t.Fatalf("expected one limiter hit, got %d", len(limiter.keys))
	}
}

func TestRateLimit_OverLimit(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	limiter := &stubLimiter{count: 11}
	tier := RateTier{Name: "short", Window: time.Minute, Limit: 10}

	handler := RateLimit(limiter, zerolog.Nop(), tier)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	if err == nil {
		t.Fatalf("expected error")
	}
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %v", err)
	}
	if rec.Header().Get("Retry-After") != "60" {
		t.Fatalf("expected Retry-After 60, got %q", rec.Header().Get("Retry-After"))
	}
}

func TestRateLimit_FailsOpen(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	limiter := &stubLimiter{err: errors.New("redis down")}
	tier := RateTier{Name: "short", Window: time.Minute, Limit: 10}

	called := false
	handler := RateLimit(limiter, zerolog.Nop(), tier)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("limiter failure must not block the request")
	}
}

func TestRateLimit_TierKeysIncludeClient(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderXRealIP, "203.0.113.9")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	limiter := &stubLimiter{count: 1}
	handler := RateLimit(limiter, zerolog.Nop(),
		RateTier{Name: "short", Window: time.Minute, Limit: 10},
		RateTier{Name: "long", Window: time.Hour, Limit: 1000},
	)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	want := []string{"ratelimit:short:203.0.113.9", "ratelimit:long:203.0.113.9"}
	for i, k := range want {
		if limiter.keys[i] != k {
			t.Fatalf("key %d: got %q, want %q", i, limiter.keys[i], k)
		}
	}
}
