package service

import (
	"context"

	"github.com/scholarhub/backend/internal/qna/openalex"
	"github.com/scholarhub/backend/pkg/qnasdk"
)

// EntityService proxies scholarly-entity lookups to OpenAlex. It validates
// the entity type and required inputs locally, then passes the remote
// response body through untouched.
type EntityService struct {
	gateway *openalex.Client
}

func NewEntityService(gateway *openalex.Client) *EntityService {
	return &EntityService{gateway: gateway}
}

// Search runs a paginated search against one entity collection.
func (s *EntityService) Search(ctx context.Context, rawType string, req qnasdk.EntitySearchRequest) (any, error) {
	typ, ok := openalex.ParseEntityType(rawType)
	if !ok {
		return nil, ErrUnknownEntityType
	}
	return s.gateway.Search(ctx, typ, openalex.SearchQuery{
		Search:  req.Search,
		Filter:  req.Filter,
		Page:    req.Page,
		PerPage: req.PerPage,
	})
}

// Detail fetches a single entity. The id is required and checked before any
// network round trip.
func (s *EntityService) Detail(ctx context.Context, rawType, id string) (any, error) {
	typ, ok := openalex.ParseEntityType(rawType)
	if !ok {
		return nil, ErrUnknownEntityType
	}
	if id == "" {
		return nil, ErrEntityIDRequired
	}
	return s.gateway.Get(ctx, typ, id)
}
