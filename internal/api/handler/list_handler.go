package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskgate/clickup-gateway/internal/core/domain"
	"github.com/taskgate/clickup-gateway/internal/core/ports"
)

// ListHandler proxies the /api/lists family. Reads are live; writes are
// disabled and answer 503 without contacting the upstream.
type ListHandler struct {
	service ports.ListService
}

func NewListHandler(service ports.ListService) *ListHandler {
	return &ListHandler{service: service}
}

// ListBySpace handles GET /api/lists/space/:spaceId.
//
// @Summary      Get lists in a space
// @Tags         lists
// @Produce      json
// @Security     BearerAuth
// @Param        spaceId   path   string  true   "Space ID"
// @Param        archived  query  bool    false  "Include archived lists"
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  map[string]string
// @Router       /api/lists/space/{spaceId} [get]
func (h *ListHandler) ListBySpace(c echo.Context) error {
	payload, err := h.service.ListBySpace(c.Request().Context(), c.Param("spaceId"), queryBool(c, "archived"))
	if err != nil {
		return err
	}
	return c.JSONBlob(http.StatusOK, payload)
}

// ListByFolder handles GET /api/lists/folder/:folderId.
//
// @Summary      Get lists in a folder
// @Tags         lists
// @Produce      json
// @Security     BearerAuth
// @Param        folderId  path   string  true   "Folder ID"
// @Param        archived  query  bool    false  "Include archived lists"
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  map[string]string
// @Router       /api/lists/folder/{folderId} [get]
func (h *ListHandler) ListByFolder(c echo.Context) error {
	payload, err := h.service.ListByFolder(c.Request().Context(), c.Param("folderId"), queryBool(c, "archived"))
	if err != nil {
		return err
	}
	return c.JSONBlob(http.StatusOK, payload)
}

// GetByID handles GET /api/lists/:listId.
//
// @Summary      Get a specific list by ID
// @Tags         lists
// @Produce      json
// @Security     BearerAuth
// @Param        listId  path  string  true  "List ID"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/lists/{listId} [get]
func (h *ListHandler) GetByID(c echo.Context) error {
	payload, err := h.service.GetByID(c.Request().Context(), c.Param("listId"))
	if err != nil {
		return err
	}
	return c.JSONBlob(http.StatusOK, payload)
}

// CreateInFolder handles POST /api/lists/folder/:folderId.
//
// @Summary      Create a new list in a folder
// @Tags         lists
// @Security     BearerAuth
// @Param        folderId  path  string  true  "Folder ID"
// @Failure      503  {object}  map[string]string
// @Router       /api/lists/folder/{folderId} [post]
func (h *ListHandler) CreateInFolder(c echo.Context) error {
	return domain.ErrFeatureDisabled
}

// CreateInSpace handles POST /api/lists/space/:spaceId.
//
// @Summary      Create a new list in a space (folderless)
// @Tags         lists
// @Security     BearerAuth
// @Param        spaceId  path  string  true  "Space ID"
// @Failure      503  {object}  map[string]string
// @Router       /api/lists/space/{spaceId} [post]
func (h *ListHandler) CreateInSpace(c echo.Context) error {
	return domain.ErrFeatureDisabled
}

// Update handles PUT /api/lists/:listId.
//
// @Summary      Update a list
// @Tags         lists
// @Security     BearerAuth
// @Param        listId  path  string  true  "List ID"
// @Failure      503  {object}  map[string]string
// @Router       /api/lists/{listId} [put]
func (h *ListHandler) Update(c echo.Context) error {
	return domain.ErrFeatureDisabled
}

// Delete handles DELETE /api/lists/:listId.
//
// @Summary      Delete a list
// @Tags         lists
// @Security     BearerAuth
// @Param        listId  path  string  true  "List ID"
// @Failure      503  {object}  map[string]string
// @Router       /api/lists/{listId} [delete]
func (h *ListHandler) Delete(c echo.Context) error {
	return domain.ErrFeatureDisabled
}
