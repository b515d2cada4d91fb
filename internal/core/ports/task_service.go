package ports

import (
	"context"
	"encoding/json"
)

// TaskListFilters narrows a list-tasks call. Nil scalar fields and empty
// slices are omitted from the upstream query string; slice-valued filters
// are serialized as JSON text per the ClickUp API convention.
type TaskListFilters struct {
	Archived      *bool
	Page          *int
	OrderBy       *string
	Reverse       *bool
	Subtasks      *bool
	IncludeClosed *bool
	Statuses      []string
	Assignees     []int
	Tags          []string
	DueDateGT     *int64
	DueDateLT     *int64
}

// TaskGetOptions qualifies a get-task call.
type TaskGetOptions struct {
	CustomTaskIDs   *bool
	TeamID          *string
	IncludeSubtasks *bool
}

// TaskWriteOptions qualifies create/update/delete calls.
type TaskWriteOptions struct {
	CustomTaskIDs *bool
	TeamID        *string
}

// CreateTaskInput mirrors the ClickUp create-task payload.
type CreateTaskInput struct {
	Name         string   `json:"name" validate:"required"`
	Description  string   `json:"description,omitempty"`
	Status       string   `json:"status,omitempty"`
	Priority     *int     `json:"priority,omitempty"`
	DueDate      *int64   `json:"due_date,omitempty"`
	StartDate    *int64   `json:"start_date,omitempty"`
	TimeEstimate *int64   `json:"time_estimate,omitempty"`
	Assignees    []int    `json:"assignees,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	Parent       string   `json:"parent,omitempty"`
	Markdown     *bool    `json:"markdown,omitempty"`
}

// UpdateTaskInput mirrors the ClickUp update-task payload.
type UpdateTaskInput struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
	Priority    *int   `json:"priority,omitempty"`
	DueDate     *int64 `json:"due_date,omitempty"`
	Archived    *bool  `json:"archived,omitempty"`
}

// TaskService proxies task reads and writes to the upstream API.
type TaskService interface {
	ListByList(ctx context.Context, listID string, filters TaskListFilters) (json.RawMessage, error)
	GetByID(ctx context.Context, taskID string, opts TaskGetOptions) (json.RawMessage, error)
	Create(ctx context.Context, listID string, input CreateTaskInput, opts TaskWriteOptions) (json.RawMessage, error)
	Update(ctx context.Context, taskID string, input UpdateTaskInput, opts TaskWriteOptions) (json.RawMessage, error)
	Delete(ctx context.Context, taskID string, opts TaskWriteOptions) (json.RawMessage, error)
}
