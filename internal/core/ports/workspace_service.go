package ports

import (
	"context"
	"encoding/json"
)

// InviteMemberInput mirrors the ClickUp invite-user payload.
type InviteMemberInput struct {
	Email        string `json:"email" validate:"required,email"`
	Admin        *bool  `json:"admin,omitempty"`
	CustomRoleID *int   `json:"custom_role_id,omitempty"`
}

// UpdateMemberRoleInput mirrors the ClickUp edit-user payload.
type UpdateMemberRoleInput struct {
	Admin        *bool `json:"admin,omitempty"`
	CustomRoleID *int  `json:"custom_role_id,omitempty"`
}

// WorkspaceService proxies user and workspace operations to the upstream
// API. Unlike the other resource families, all of its writes are live.
type WorkspaceService interface {
	Workspaces(ctx context.Context) (json.RawMessage, error)
	CurrentUser(ctx context.Context) (json.RawMessage, error)
	Members(ctx context.Context, workspaceID string) (json.RawMessage, error)
	Invite(ctx context.Context, workspaceID string, input InviteMemberInput) (json.RawMessage, error)
	Remove(ctx context.Context, workspaceID, userID string) (json.RawMessage, error)
	UpdateMemberRole(ctx context.Context, workspaceID, userID string, input UpdateMemberRoleInput) (json.RawMessage, error)
}
