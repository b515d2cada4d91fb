package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskgate/clickup-gateway/internal/core/ports"
)

// WorkspaceHandler proxies the /api/users family. All of its operations
// are live, including writes.
type WorkspaceHandler struct {
	service ports.WorkspaceService
}

func NewWorkspaceHandler(service ports.WorkspaceService) *WorkspaceHandler {
	return &WorkspaceHandler{service: service}
}

// Workspaces handles GET /api/users/workspaces.
//
// @Summary      Get authorized workspaces
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  map[string]string
// @Router       /api/users/workspaces [get]
func (h *WorkspaceHandler) Workspaces(c echo.Context) error {
	payload, err := h.service.Workspaces(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSONBlob(http.StatusOK, payload)
}

// CurrentUser handles GET /api/users/me.
//
// @Summary      Get current upstream user info
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  map[string]string
// @Router       /api/users/me [get]
func (h *WorkspaceHandler) CurrentUser(c echo.Context) error {
	payload, err := h.service.CurrentUser(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSONBlob(http.StatusOK, payload)
}

// Members handles GET /api/users/workspace/:workspaceId/members.
//
// @Summary      Get workspace members
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        workspaceId  path  string  true  "Workspace ID"
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  map[string]string
// @Router       /api/users/workspace/{workspaceId}/members [get]
func (h *WorkspaceHandler) Members(c echo.Context) error {
	payload, err := h.service.Members(c.Request().Context(), c.Param("workspaceId"))
	if err != nil {
		return err
	}
	return c.JSONBlob(http.StatusOK, payload)
}

// Invite handles POST /api/users/workspace/:workspaceId/invite.
//
// @Summary      Invite user to workspace
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        workspaceId  path  string                   true  "Workspace ID"
// @Param        body         body  ports.InviteMemberInput  true  "Invitation details"
// @Success      201  {object}  map[string]any
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/users/workspace/{workspaceId}/invite [post]
func (h *WorkspaceHandler) Invite(c echo.Context) error {
	var req ports.InviteMemberInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	payload, err := h.service.Invite(c.Request().Context(), c.Param("workspaceId"), req)
	if err != nil {
		return err
	}
	return c.JSONBlob(http.StatusCreated, payload)
}

// Remove handles DELETE /api/users/workspace/:workspaceId/user/:userId.
//
// @Summary      Remove user from workspace
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        workspaceId  path  string  true  "Workspace ID"
// @Param        userId       path  string  true  "User ID to remove"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/users/workspace/{workspaceId}/user/{userId} [delete]
func (h *WorkspaceHandler) Remove(c echo.Context) error {
	payload, err := h.service.Remove(c.Request().Context(), c.Param("workspaceId"), c.Param("userId"))
	if err != nil {
		return err
	}
	return c.JSONBlob(http.StatusOK, payload)
}

// UpdateMemberRole handles PUT /api/users/workspace/:workspaceId/user/:userId/role.
//
// @Summary      Update user role in workspace
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        workspaceId  path  string                       true  "Workspace ID"
// @Param        userId       path  string                       true  "User ID to update"
// @Param        body         body  ports.UpdateMemberRoleInput  true  "Role details"
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/users/workspace/{workspaceId}/user/{userId}/role [put]
func (h *WorkspaceHandler) UpdateMemberRole(c echo.Context) error {
	var req ports.UpdateMemberRoleInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	payload, err := h.service.UpdateMemberRole(c.Request().Context(), c.Param("workspaceId"), c.Param("userId"), req)
	if err != nil {
		return err
	}
	return c.JSONBlob(http.StatusOK, payload)
}
