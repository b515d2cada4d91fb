package ports

import (
	"context"
	"encoding/json"
)

// CreateListInput mirrors the ClickUp create-list payload.
type CreateListInput struct {
	Name        string `json:"name" validate:"required"`
	Content     string `json:"content,omitempty"`
	DueDate     *int64 `json:"due_date,omitempty"`
	DueDateTime *bool  `json:"due_date_time,omitempty"`
	Priority    *int   `json:"priority,omitempty"`
	Assignee    *int   `json:"assignee,omitempty"`
	Status      string `json:"status,omitempty"`
}

// UpdateListInput mirrors the ClickUp update-list payload.
type UpdateListInput struct {
	Name        string `json:"name,omitempty"`
	Content     string `json:"content,omitempty"`
	DueDate     *int64 `json:"due_date,omitempty"`
	Priority    *int   `json:"priority,omitempty"`
	Assignee    *int   `json:"assignee,omitempty"`
	UnsetStatus *bool  `json:"unset_status,omitempty"`
}

// ListService proxies list reads and writes to the upstream API.
type ListService interface {
	ListBySpace(ctx context.Context, spaceID string, archived *bool) (json.RawMessage, error)
	ListByFolder(ctx context.Context, folderID string, archived *bool) (json.RawMessage, error)
	GetByID(ctx context.Context, listID string) (json.RawMessage, error)
	CreateInFolder(ctx context.Context, folderID string, input CreateListInput) (json.RawMessage, error)
	CreateInSpace(ctx context.Context, spaceID string, input CreateListInput) (json.RawMessage, error)
	Update(ctx context.Context, listID string, input UpdateListInput) (json.RawMessage, error)
	Delete(ctx context.Context, listID string) (json.RawMessage, error)
}
