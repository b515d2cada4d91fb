package service

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/taskgate/clickup-gateway/internal/core/ports"
)

// ListService translates list operations into upstream API calls.
type ListService struct {
	client ports.UpstreamClient
}

func NewListService(client ports.UpstreamClient) *ListService {
	return &ListService{client: client}
}

// ListBySpace fetches the folderless lists of a space: GET /space/{spaceId}/list.
func (s *ListService) ListBySpace(ctx context.Context, spaceID string, archived *bool) (json.RawMessage, error) {
	q := url.Values{}
	setBool(q, "archived", archived)
	return s.client.Get(ctx, "/space/"+spaceID+"/list", q)
}

// ListByFolder fetches the lists of a folder: GET /folder/{folderId}/list.
func (s *ListService) ListByFolder(ctx context.Context, folderID string, archived *bool) (json.RawMessage, error) {
	q := url.Values{}
	setBool(q, "archived", archived)
	return s.client.Get(ctx, "/folder/"+folderID+"/list", q)
}

// GetByID fetches a single list: GET /list/{listId}.
func (s *ListService) GetByID(ctx context.Context, listID string) (json.RawMessage, error) {
	return s.client.Get(ctx, "/list/"+listID, nil)
}

// CreateInFolder adds a list to a folder: POST /folder/{folderId}/list.
func (s *ListService) CreateInFolder(ctx context.Context, folderID string, input ports.CreateListInput) (json.RawMessage, error) {
	return s.client.Post(ctx, "/folder/"+folderID+"/list", nil, input)
}

// CreateInSpace adds a folderless list to a space: POST /space/{spaceId}/list.
func (s *ListService) CreateInSpace(ctx context.Context, spaceID string, input ports.CreateListInput) (json.RawMessage, error) {
	return s.client.Post(ctx, "/space/"+spaceID+"/list", nil, input)
}

// Update modifies a list: PUT /list/{listId}.
func (s *ListService) Update(ctx context.Context, listID string, input ports.UpdateListInput) (json.RawMessage, error) {
	return s.client.Put(ctx, "/list/"+listID, nil, input)
}

// Delete removes a list: DELETE /list/{listId}.
func (s *ListService) Delete(ctx context.Context, listID string) (json.RawMessage, error) {
	return s.client.Delete(ctx, "/list/"+listID, nil)
}
