package ports

import (
	"context"
	"encoding/json"
)

// CreateSpaceInput mirrors the ClickUp create-space payload.
type CreateSpaceInput struct {
	Name              string `json:"name" validate:"required"`
	MultipleAssignees *bool  `json:"multiple_assignees,omitempty"`
	Features          any    `json:"features,omitempty"`
}

// UpdateSpaceInput mirrors the ClickUp update-space payload.
type UpdateSpaceInput struct {
	Name              string `json:"name,omitempty"`
	Color             string `json:"color,omitempty"`
	Private           *bool  `json:"private,omitempty"`
	AdminCanManage    *bool  `json:"admin_can_manage,omitempty"`
	MultipleAssignees *bool  `json:"multiple_assignees,omitempty"`
	Features          any    `json:"features,omitempty"`
}

// SpaceService proxies space reads and writes to the upstream API.
type SpaceService interface {
	ListByWorkspace(ctx context.Context, workspaceID string, archived *bool) (json.RawMessage, error)
	GetByID(ctx context.Context, spaceID string) (json.RawMessage, error)
	Create(ctx context.Context, workspaceID string, input CreateSpaceInput) (json.RawMessage, error)
	Update(ctx context.Context, spaceID string, input UpdateSpaceInput) (json.RawMessage, error)
	Delete(ctx context.Context, spaceID string) (json.RawMessage, error)
}
