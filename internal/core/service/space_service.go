package service

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/taskgate/clickup-gateway/internal/core/ports"
)

// SpaceService translates space operations into upstream API calls.
type SpaceService struct {
	client ports.UpstreamClient
}

func NewSpaceService(client ports.UpstreamClient) *SpaceService {
	return &SpaceService{client: client}
}

// ListByWorkspace fetches the spaces of a workspace: GET /team/{workspaceId}/space.
func (s *SpaceService) ListByWorkspace(ctx context.Context, workspaceID string, archived *bool) (json.RawMessage, error) {
	q := url.Values{}
	setBool(q, "archived", archived)
	return s.client.Get(ctx, "/team/"+workspaceID+"/space", q)
}

// GetByID fetches a single space: GET /space/{spaceId}.
func (s *SpaceService) GetByID(ctx context.Context, spaceID string) (json.RawMessage, error) {
	return s.client.Get(ctx, "/space/"+spaceID, nil)
}

// Create adds a space to a workspace: POST /team/{workspaceId}/space.
func (s *SpaceService) Create(ctx context.Context, workspaceID string, input ports.CreateSpaceInput) (json.RawMessage, error) {
	return s.client.Post(ctx, "/team/"+workspaceID+"/space", nil, input)
}

// Update modifies a space: PUT /space/{spaceId}.
func (s *SpaceService) Update(ctx context.Context, spaceID string, input ports.UpdateSpaceInput) (json.RawMessage, error) {
	return s.client.Put(ctx, "/space/"+spaceID, nil, input)
}

// Delete removes a space: DELETE /space/{spaceId}.
func (s *SpaceService) Delete(ctx context.Context, spaceID string) (json.RawMessage, error) {
	return s.client.Delete(ctx, "/space/"+spaceID, nil)
}
