package service

import (
	"context"
	"encoding/json"

	"github.com/taskgate/clickup-gateway/internal/core/ports"
)

// WorkspaceService translates user and workspace operations into upstream
// API calls. All of its writes are live, unlike the other proxies.
type WorkspaceService struct {
	client ports.UpstreamClient
}

func NewWorkspaceService(client ports.UpstreamClient) *WorkspaceService {
	return &WorkspaceService{client: client}
}

// Workspaces fetches the workspaces the upstream token can see: GET /team.
func (s *WorkspaceService) Workspaces(ctx context.Context) (json.RawMessage, error) {
	return s.client.Get(ctx, "/team", nil)
}

// CurrentUser fetches the upstream token's own user: GET /user.
func (s *WorkspaceService) CurrentUser(ctx context.Context) (json.RawMessage, error) {
	return s.client.Get(ctx, "/user", nil)
}

// Members fetches the members of a workspace: GET /team/{workspaceId}.
func (s *WorkspaceService) Members(ctx context.Context, workspaceID string) (json.RawMessage, error) {
	return s.client.Get(ctx, "/team/"+workspaceID, nil)
}

// Invite adds a user to a workspace: POST /team/{workspaceId}/user.
func (s *WorkspaceService) Invite(ctx context.Context, workspaceID string, input ports.InviteMemberInput) (json.RawMessage, error) {
	return s.client.Post(ctx, "/team/"+workspaceID+"/user", nil, input)
}

// Remove deletes a user from a workspace: DELETE /team/{workspaceId}/user/{userId}.
func (s *WorkspaceService) Remove(ctx context.Context, workspaceID, userID string) (json.RawMessage, error) {
	return s.client.Delete(ctx, "/team/"+workspaceID+"/user/"+userID, nil)
}

// UpdateMemberRole edits a user's workspace role: PUT /team/{workspaceId}/user/{userId}.
func (s *WorkspaceService) UpdateMemberRole(ctx context.Context, workspaceID, userID string, input ports.UpdateMemberRoleInput) (json.RawMessage, error) {
	return s.client.Put(ctx, "/team/"+workspaceID+"/user/"+userID, nil, input)
}
