package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskgate/clickup-gateway/internal/core/domain"
	"github.com/taskgate/clickup-gateway/internal/core/ports"
)

// SpaceHandler proxies the /api/spaces family. Reads are live; writes are
// disabled and answer 503 without contacting the upstream.
type SpaceHandler struct {
	service ports.SpaceService
}

func NewSpaceHandler(service ports.SpaceService) *SpaceHandler {
	return &SpaceHandler{service: service}
}

// ListByWorkspace handles GET /api/spaces/workspace/:workspaceId.
//
// @Summary      Get spaces in a workspace
// @Tags         spaces
// @Produce      json
// @Security     BearerAuth
// @Param        workspaceId  path   string  true   "Workspace ID"
// @Param        archived     query  bool    false  "Include archived spaces"
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  map[string]string
// @Router       /api/spaces/workspace/{workspaceId} [get]
func (h *SpaceHandler) ListByWorkspace(c echo.Context) error {
	payload, err := h.service.ListByWorkspace(c.Request().Context(), c.Param("workspaceId"), queryBool(c, "archived"))
	if err != nil {
		return err
	}
	return c.JSONBlob(http.StatusOK, payload)
}

// GetByID handles GET /api/spaces/:spaceId.
//
// @Summary      Get a specific space by ID
// @Tags         spaces
// @Produce      json
// @Security     BearerAuth
// @Param        spaceId  path  string  true  "Space ID"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/spaces/{spaceId} [get]
func (h *SpaceHandler) GetByID(c echo.Context) error {
	payload, err := h.service.GetByID(c.Request().Context(), c.Param("spaceId"))
	if err != nil {
		return err
	}
	return c.JSONBlob(http.StatusOK, payload)
}

// Create handles POST /api/spaces/workspace/:workspaceId.
//
// @Summary      Create a new space
// @Tags         spaces
// @Security     BearerAuth
// @Param        workspaceId  path  string  true  "Workspace ID"
// @Failure      503  {object}  map[string]string
// @Router       /api/spaces/workspace/{workspaceId} [post]
func (h *SpaceHandler) Create(c echo.Context) error {
	return domain.ErrFeatureDisabled
}

// Update handles PUT /api/spaces/:spaceId.
//
// @Summary      Update a space
// @Tags         spaces
// @Security     BearerAuth
// @Param        spaceId  path  string  true  "Space ID"
// @Failure      503  {object}  map[string]string
// @Router       /api/spaces/{spaceId} [put]
func (h *SpaceHandler) Update(c echo.Context) error {
	return domain.ErrFeatureDisabled
}

// Delete handles DELETE /api/spaces/:spaceId.
//
// @Summary      Delete a space
// @Tags         spaces
// @Security     BearerAuth
// @Param        spaceId  path  string  true  "Space ID"
// @Failure      503  {object}  map[string]string
// @Router       /api/spaces/{spaceId} [delete]
func (h *SpaceHandler) Delete(c echo.Context) error {
	return domain.ErrFeatureDisabled
}
