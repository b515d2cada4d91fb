package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/taskgate/clickup-gateway/internal/api"
	"github.com/taskgate/clickup-gateway/internal/api/handler"
	"github.com/taskgate/clickup-gateway/internal/core/domain"
	"github.com/taskgate/clickup-gateway/internal/core/ports"
)

type stubSpaceService struct {
	calls   int
	payload json.RawMessage
	err     error
}

func (s *stubSpaceService) reply() (json.RawMessage, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.payload, nil
}

func (s *stubSpaceService) ListByWorkspace(_ context.Context, _ string, _ *bool) (json.RawMessage, error) {
	return s.reply()
}

func (s *stubSpaceService) GetByID(_ context.Context, _ string) (json.RawMessage, error) {
	return s.reply()
}

func (s *stubSpaceService) Create(_ context.Context, _ string, _ ports.CreateSpaceInput) (json.RawMessage, error) {
	return s.reply()
}

func (s *stubSpaceService) Update(_ context.Context, _ string, _ ports.UpdateSpaceInput) (json.RawMessage, error) {
	return s.reply()
}

func (s *stubSpaceService) Delete(_ context.Context, _ string) (json.RawMessage, error) {
	return s.reply()
}

func newSpaceTestServer(stub *stubSpaceService) *echo.Echo {
	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(zerolog.Nop())

	h := handler.NewSpaceHandler(stub)
	e.GET("/api/spaces/workspace/:workspaceId", h.ListByWorkspace)
	e.GET("/api/spaces/:spaceId", h.GetByID)
	e.POST("/api/spaces/workspace/:workspaceId", h.Create)
	e.PUT("/api/spaces/:spaceId", h.Update)
	e.DELETE("/api/spaces/:spaceId", h.Delete)
	return e
}

func TestSpaceHandler_Reads_PassThrough(t *testing.T) {
	payload := `{"spaces":[{"id":"790","name":"Engineering"}]}`
	stub := &stubSpaceService{payload: json.RawMessage(payload)}
	e := newSpaceTestServer(stub)

	for _, target := range []string{"/api/spaces/workspace/900?archived=true", "/api/spaces/790"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", target, rec.Code)
		}
		if strings.TrimSpace(rec.Body.String()) != payload {
			t.Fatalf("%s: body altered in transit: %s", target, rec.Body.String())
		}
	}
}

func TestSpaceHandler_WritesDisabled(t *testing.T) {
	stub := &stubSpaceService{payload: json.RawMessage(`{}`)}
	e := newSpaceTestServer(stub)

	cases := []struct {
		method, target string
	}{
		{http.MethodPost, "/api/spaces/workspace/900"},
		{http.MethodPut, "/api/spaces/790"},
		{http.MethodDelete, "/api/spaces/790"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.target, strings.NewReader(`{"name":"x"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("%s %s: expected 503, got %d", tc.method, tc.target, rec.Code)
		}
	}
	if stub.calls != 0 {
		t.Fatalf("disabled writes must not call the service, got %d calls", stub.calls)
	}
}

func TestSpaceHandler_UpstreamErrorPassThrough(t *testing.T) {
	stub := &stubSpaceService{err: &domain.UpstreamError{Status: http.StatusNotFound, Message: "not found"}}
	e := newSpaceTestServer(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/spaces/missing", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["error"] != "not found" {
		t.Fatalf("unexpected message: %q", resp["error"])
	}
}
