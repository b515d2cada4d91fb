package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskgate/clickup-gateway/internal/core/domain"
	"github.com/taskgate/clickup-gateway/internal/core/ports"
)

// TaskHandler proxies the /api/tasks family. Reads forward to the
// upstream; writes are disabled and answer 503 without contacting the
// upstream.
type TaskHandler struct {
	service ports.TaskService
}

func NewTaskHandler(service ports.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// ListByList handles GET /api/tasks/list/:listId.
//
// @Summary      Get tasks from a specific list
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        listId          path   string  true   "List ID"
// @Param        archived        query  bool    false  "Include archived tasks"
// @Param        page            query  int     false  "Page number"
// @Param        order_by        query  string  false  "created, updated or due_date"
// @Param        reverse         query  bool    false  "Reverse sort order"
// @Param        subtasks        query  bool    false  "Include subtasks"
// @Param        include_closed  query  bool    false  "Include closed tasks"
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  map[string]string
// @Router       /api/tasks/list/{listId} [get]
func (h *TaskHandler) ListByList(c echo.Context) error {
	filters := ports.TaskListFilters{
		Archived:      queryBool(c, "archived"),
		Page:          queryInt(c, "page"),
		OrderBy:       queryString(c, "order_by"),
		Reverse:       queryBool(c, "reverse"),
		Subtasks:      queryBool(c, "subtasks"),
		IncludeClosed: queryBool(c, "include_closed"),
	}

	payload, err := h.service.ListByList(c.Request().Context(), c.Param("listId"), filters)
	if err != nil {
		return err
	}
	return c.JSONBlob(http.StatusOK, payload)
}

// GetByID handles GET /api/tasks/:taskId.
//
// @Summary      Get a specific task by ID
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        taskId            path   string  true   "Task ID"
// @Param        custom_task_ids   query  bool    false  "Treat the ID as a custom task ID"
// @Param        team_id           query  string  false  "Workspace ID, required with custom_task_ids"
// @Param        include_subtasks  query  bool    false  "Include subtasks"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/tasks/{taskId} [get]
func (h *TaskHandler) GetByID(c echo.Context) error {
	opts := ports.TaskGetOptions{
		CustomTaskIDs:   queryBool(c, "custom_task_ids"),
		TeamID:          queryString(c, "team_id"),
		IncludeSubtasks: queryBool(c, "include_subtasks"),
	}

	payload, err := h.service.GetByID(c.Request().Context(), c.Param("taskId"), opts)
	if err != nil {
		return err
	}
	return c.JSONBlob(http.StatusOK, payload)
}

// Create handles POST /api/tasks/list/:listId.
//
// @Summary      Create a new task in a list
// @Tags         tasks
// @Security     BearerAuth
// @Param        listId  path  string  true  "List ID"
// @Failure      503  {object}  map[string]string
// @Router       /api/tasks/list/{listId} [post]
func (h *TaskHandler) Create(c echo.Context) error {
	return domain.ErrFeatureDisabled
}

// Update handles PUT /api/tasks/:taskId.
//
// @Summary      Update an existing task
// @Tags         tasks
// @Security     BearerAuth
// @Param        taskId  path  string  true  "Task ID"
// @Failure      503  {object}  map[string]string
// @Router       /api/tasks/{taskId} [put]
func (h *TaskHandler) Update(c echo.Context) error {
	return domain.ErrFeatureDisabled
}

// Delete handles DELETE /api/tasks/:taskId.
//
// @Summary      Delete a task
// @Tags         tasks
// @Security     BearerAuth
// @Param        taskId  path  string  true  "Task ID"
// @Failure      503  {object}  map[string]string
// @Router       /api/tasks/{taskId} [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
	return domain.ErrFeatureDisabled
}
