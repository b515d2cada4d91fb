package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// AppHandler serves the unauthenticated service description at the root.
type AppHandler struct{}

func NewAppHandler() *AppHandler {
	return &AppHandler{}
}

type appInfoResponse struct {
	Name          string            `json:"name"`
	Version       string            `json:"version"`
	Description   string            `json:"description"`
	Documentation string            `json:"documentation"`
	Security      appSecurityInfo   `json:"security"`
	Endpoints     map[string]string `json:"endpoints"`
}

type appSecurityInfo struct {
	Authentication string   `json:"authentication"`
	Roles          []string `json:"roles"`
	RateLimiting   string   `json:"rate_limiting"`
}

// Info handles GET /.
//
// @Summary      Get application info and available endpoints
// @Tags         app
// @Produce      json
// @Success      200  {object}  appInfoResponse
// @Router       / [get]
func (h *AppHandler) Info(c echo.Context) error {
	return c.JSON(http.StatusOK, appInfoResponse{
		Name:          "ClickUp API Gateway",
		Version:       "1.0.0",
		Description:   "REST gateway for the ClickUp API with JWT authentication and RBAC",
		Documentation: "/swagger/index.html",
		Security: appSecurityInfo{
			Authentication: "JWT Bearer Token",
			Roles:          []string{"ADMIN", "EDITOR", "VIEWER"},
			RateLimiting:   "10 requests/minute, 100 requests/10 minutes, 1000 requests/hour",
		},
		Endpoints: map[string]string{
			"login":    "POST /auth/login",
			"register": "POST /auth/register",
			"profile":  "POST /auth/profile",
			"tasks":    "GET /api/tasks/list/:listId, GET /api/tasks/:taskId",
			"spaces":   "GET /api/spaces/workspace/:workspaceId, GET /api/spaces/:spaceId",
			"lists":    "GET /api/lists/space/:spaceId, GET /api/lists/folder/:folderId, GET /api/lists/:listId",
			"users":    "GET /api/users/workspaces, GET /api/users/me, GET /api/users/workspace/:workspaceId/members",
		},
	})
}
