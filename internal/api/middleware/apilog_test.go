package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/taskgate/clickup-gateway/internal/core/domain"
)

type stubSink struct {
	entries []domain.APILogEntry
}

func (s *stubSink) Enqueue(entry domain.APILogEntry) {
	s.entries = append(s.entries, entry)
}

func TestAPILog_RecordsAuthenticatedRequest(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/tasks/abc123", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(IdentityKey, domain.Identity{UserID: 7, Email: "alice@example.com", Role: domain.RoleViewer})

	sink := &stubSink{}
	handler := APILog(sink)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if len(sink.entries) != 1 {
		t.Fatalf("expected one usage entry, got %d", len(sink.entries))
	}
	entry := sink.entries[0]
	if entry.UserID != 7 {
		t.Fatalf("unexpected user id: %d", entry.UserID)
	}
	if entry.Endpoint != "/api/tasks/abc123" {
		t.Fatalf("unexpected endpoint: %s", entry.Endpoint)
	}
	if entry.Method != http.MethodGet {
		t.Fatalf("unexpected method: %s", entry.Method)
	}
	if entry.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", entry.StatusCode)
	}
	if entry.CreatedAt.IsZero() {
		t.Fatalf("expected timestamp")
	}
}

func TestAPILog_SkipsAnonymousRequest(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	sink := &stubSink{}
	handler := APILog(sink)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if len(sink.entries) != 0 {
		t.Fatalf("expected no entries without an identity, got %d", len(sink.entries))
	}
}
