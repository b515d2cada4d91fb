package service

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/taskgate/clickup-gateway/internal/core/ports"
)

// TaskService translates task operations into upstream API calls.
type TaskService struct {
	client ports.UpstreamClient
}

func NewTaskService(client ports.UpstreamClient) *TaskService {
	return &TaskService{client: client}
}

// ListByList fetches the tasks of a list: GET /list/{listId}/task.
func (s *TaskService) ListByList(ctx context.Context, listID string, filters ports.TaskListFilters) (json.RawMessage, error) {
	q := url.Values{}
	setBool(q, "archived", filters.Archived)
	setInt(q, "page", filters.Page)
	setString(q, "order_by", filters.OrderBy)
	setBool(q, "reverse", filters.Reverse)
	setBool(q, "subtasks", filters.Subtasks)
	setBool(q, "include_closed", filters.IncludeClosed)
	setJSONArray(q, "statuses", filters.Statuses)
	setJSONArray(q, "assignees", filters.Assignees)
	setJSONArray(q, "tags", filters.Tags)
	setInt64(q, "due_date_gt", filters.DueDateGT)
	setInt64(q, "due_date_lt", filters.DueDateLT)

	return s.client.Get(ctx, "/list/"+listID+"/task", q)
}

// GetByID fetches a single task: GET /task/{taskId}.
func (s *TaskService) GetByID(ctx context.Context, taskID string, opts ports.TaskGetOptions) (json.RawMessage, error) {
	q := url.Values{}
	setBool(q, "custom_task_ids", opts.CustomTaskIDs)
	setString(q, "team_id", opts.TeamID)
	setBool(q, "include_subtasks", opts.IncludeSubtasks)

	return s.client.Get(ctx, "/task/"+taskID, q)
}

// Create adds a task to a list: POST /list/{listId}/task.
func (s *TaskService) Create(ctx context.Context, listID string, input ports.CreateTaskInput, opts ports.TaskWriteOptions) (json.RawMessage, error) {
	return s.client.Post(ctx, "/list/"+listID+"/task", writeOptions(opts), input)
}

// Update modifies a task: PUT /task/{taskId}.
func (s *TaskService) Update(ctx context.Context, taskID string, input ports.UpdateTaskInput, opts ports.TaskWriteOptions) (json.RawMessage, error) {
	return s.client.Put(ctx, "/task/"+taskID, writeOptions(opts), input)
}

// Delete removes a task: DELETE /task/{taskId}.
func (s *TaskService) Delete(ctx context.Context, taskID string, opts ports.TaskWriteOptions) (json.RawMessage, error) {
	return s.client.Delete(ctx, "/task/"+taskID, writeOptions(opts))
}

func writeOptions(opts ports.TaskWriteOptions) url.Values {
	q := url.Values{}
	setBool(q, "custom_task_ids", opts.CustomTaskIDs)
	setString(q, "team_id", opts.TeamID)
	return q
}
