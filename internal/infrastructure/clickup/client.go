package clickup

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskgate/clickup-gateway/internal/api/metrics"
	"github.com/taskgate/clickup-gateway/internal/core/domain"
)

const defaultTimeout = 30 * time.Second

// genericMessage is returned when a failure yields no usable message.
const genericMessage = "Unexpected error occurred while calling ClickUp"

// errorFields are probed in order when extracting a human-readable message
// from an upstream error body. Only string-typed, non-blank values count.
var errorFields = []string{"message", "error", "err", "description"}

// Config captures the settings for reaching the ClickUp API.
type Config struct {
	BaseURL  string
	APIToken string
	Timeout  time.Duration
}

// Client issues authenticated requests against the ClickUp API and
// normalizes every failure into a *domain.UpstreamError. Each call is a
// single best-effort round trip: no retries, no backoff, no caching.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        zerolog.Logger
}

func New(cfg Config, log zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      cfg.APIToken,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

func (c *Client) Get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

func (c *Client) Post(ctx context.Context, path string, query url.Values, body any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, path, query, body)
}

func (c *Client) Put(ctx context.Context, path string, query url.Values, body any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPut, path, query, body)
}

func (c *Client) Delete(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	return c.do(ctx, http.MethodDelete, path, query, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (json.RawMessage, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, c.normalize(method, u, 0, nil, err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return nil, c.normalize(method, u, 0, nil, err)
	}
	// The upstream credential is a server-held personal token, forwarded
	// verbatim, not the caller's bearer JWT.
	req.Header.Set("Authorization", c.token)
	req.Header.Set("Content-Type", "application/json")

	c.log.Debug().Str("method", method).Str("url", u).Msg("upstream request")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.UpstreamRequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(method, "error").Inc()
		return nil, c.normalize(method, u, 0, nil, err)
	}
	defer resp.Body.Close()

	metrics.UpstreamRequestsTotal.WithLabelValues(method, strconv.Itoa(resp.StatusCode)).Inc()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.normalize(method, u, 0, nil, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, c.normalize(method, u, resp.StatusCode, data, nil)
	}

	if len(data) == 0 {
		return json.RawMessage(`{}`), nil
	}
	return json.RawMessage(data), nil
}

// normalize converts any failure into exactly one *domain.UpstreamError.
// Pre-normalized errors from nested calls pass through unchanged; upstream
// HTTP errors keep their status code and carry the first usable message
// field from the body; everything else becomes a 500.
func (c *Client) normalize(method, u string, status int, body []byte, err error) error {
	var ue *domain.UpstreamError
	if errors.As(err, &ue) {
		return ue
	}

	if status > 0 {
		msg := extractErrorMessage(body)
		if msg == "" {
			msg = http.StatusText(status)
		}
		c.log.Error().Str("method", method).Str("url", u).Int("status", status).Str("message", msg).Msg("upstream call failed")
		return &domain.UpstreamError{Status: status, Message: msg}
	}

	msg := genericMessage
	if err != nil {
		msg = err.Error()
	}
	c.log.Error().Str("method", method).Str("url", u).Err(err).Msg("upstream call failed")
	return &domain.UpstreamError{Status: http.StatusInternalServerError, Message: msg}
}

func extractErrorMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	var obj map[string]any
	if json.Unmarshal(body, &obj) == nil {
		for _, key := range errorFields {
			if v, ok := obj[key].(string); ok && strings.TrimSpace(v) != "" {
				return v
			}
		}
		return ""
	}

	var s string
	if json.Unmarshal(body, &s) == nil {
		return strings.TrimSpace(s)
	}

	// Plain-text error bodies pass through as-is.
	return strings.TrimSpace(string(body))
}
