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
	"github.com/taskgate/clickup-gateway/internal/core/ports"
)

type stubListService struct {
	calls   int
	payload json.RawMessage
}

func (s *stubListService) reply() (json.RawMessage, error) {
	s.calls++
	return s.payload, nil
}

func (s *stubListService) ListBySpace(_ context.Context, _ string, _ *bool) (json.RawMessage, error) {
	return s.reply()
}

func (s *stubListService) ListByFolder(_ context.Context, _ string, _ *bool) (json.RawMessage, error) {
	return s.reply()
}

func (s *stubListService) GetByID(_ context.Context, _ string) (json.RawMessage, error) {
	return s.reply()
}

func (s *stubListService) CreateInFolder(_ context.Context, _ string, _ ports.CreateListInput) (json.RawMessage, error) {
	return s.reply()
}

func (s *stubListService) CreateInSpace(_ context.Context, _ string, _ ports.CreateListInput) (json.RawMessage, error) {
	return s.reply()
}

func (s *stubListService) Update(_ context.Context, _ string, _ ports.UpdateListInput) (json.RawMessage, error) {
	return s.reply()
}

func (s *stubListService) Delete(_ context.Context, _ string) (json.RawMessage, error) {
	return s.reply()
}

func newListTestServer(stub *stubListService) *echo.Echo {
	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(zerolog.Nop())

	h := handler.NewListHandler(stub)
	e.GET("/api/lists/space/:spaceId", h.ListBySpace)
	e.GET("/api/lists/folder/:folderId", h.ListByFolder)
	e.GET("/api/lists/:listId", h.GetByID)
	e.POST("/api/lists/folder/:folderId", h.CreateInFolder)
	e.POST("/api/lists/space/:spaceId", h.CreateInSpace)
	e.PUT("/api/lists/:listId", h.Update)
	e.DELETE("/api/lists/:listId", h.Delete)
	return e
}

func TestListHandler_Reads_PassThrough(t *testing.T) {
	payload := `{"lists":[{"id":"124","name":"Backlog"}]}`
	stub := &stubListService{payload: json.RawMessage(payload)}
	e := newListTestServer(stub)

	targets := []string{
		"/api/lists/space/790",
		"/api/lists/folder/457?archived=false",
		"/api/lists/124",
	}
	for _, target := range targets {
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
	if stub.calls != len(targets) {
		t.Fatalf("expected %d service calls, got %d", len(targets), stub.calls)
	}
}

func TestListHandler_WritesDisabled(t *testing.T) {
	stub := &stubListService{payload: json.RawMessage(`{}`)}
	e := newListTestServer(stub)

	cases := []struct {
		method, target string
	}{
		{http.MethodPost, "/api/lists/folder/457"},
		{http.MethodPost, "/api/lists/space/790"},
		{http.MethodPut, "/api/lists/124"},
		{http.MethodDelete, "/api/lists/124"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.target, strings.NewReader(`{"name":"x"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("%s %s: expected 503, got %d", tc.method, tc.target, rec.Code)
		}
		var resp map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if resp["error"] != "This feature is currently disabled" {
			t.Fatalf("unexpected message: %q", resp["error"])
		}
	}
	if stub.calls != 0 {
		t.Fatalf("disabled writes must not call the service, got %d calls", stub.calls)
	}
}
