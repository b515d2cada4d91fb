package ports

import (
	"context"
	"encoding/json"
	"net/url"
)

// UpstreamClient issues authenticated requests against the ClickUp API.
// Successful responses are returned as raw JSON so that proxy endpoints can
// pass bodies through unchanged; every failure is a *domain.UpstreamError.
type UpstreamClient interface {
	Get(ctx context.Context, path string, query url.Values) (json.RawMessage, error)
	Post(ctx context.Context, path string, query url.Values, body any) (json.RawMessage, error)
	Put(ctx context.Context, path string, query url.Values, body any) (json.RawMessage, error)
	Delete(ctx context.Context, path string, query url.Values) (json.RawMessage, error)
}
