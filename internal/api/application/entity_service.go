package application

import (
	"context"
	"fmt"

	entitydomain "condreq/internal/entity/domain"
	"condreq/internal/shared/validation"
)

// Representation is one version of the entity as sent on the wire. Body
// is the exact byte sequence ETag was computed from.
type Representation struct {
	Entity entitydomain.Entity
	Body   []byte
	ETag   entitydomain.ETag
}

// NotModified reports whether an If-None-Match header value names this version.
func (r *Representation) NotModified(ifNoneMatch string) bool {
	return r.ETag.Matches(ifNoneMatch)
}

// EntityService handles entity reads and conditional writes
type EntityService struct {
	repo   entitydomain.Repository
	schema validation.ObjectSchema
}

// NewEntityService creates a new entity service. allowAdditionalProperties
// controls whether POST bodies may carry keys other than name.
func NewEntityService(repo entitydomain.Repository, allowAdditionalProperties bool) *EntityService {
	return &EntityService{
		repo: repo,
		schema: validation.ObjectSchema{
			Required:                  []string{"name"},
			AllowAdditionalProperties: allowAdditionalProperties,
		},
	}
}

// GetEntity returns the current representation
func (s *EntityService) GetEntity(ctx context.Context) (*Representation, error) {
	entity, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	return NewRepresentation(entity)
}

// DecodeUpdate validates a raw POST body sent with the given Content-Type
func (s *EntityService) DecodeUpdate(contentType string, body []byte) (UpdateEntityRequest, error) {
	if MediaType(contentType) == MediaTypeText {
		return UpdateEntityRequest{}, s.schema.DecodeText(body)
	}

	values, err := s.schema.DecodeObject(body)
	if err != nil {
		return UpdateEntityRequest{}, err
	}
	return UpdateEntityRequest{Name: values["name"]}, nil
}

// UpdateEntity replaces the name if ifMatch is empty or names the current
// version. A stale ifMatch yields a *entitydomain.ConflictError.
func (s *EntityService) UpdateEntity(ctx context.Context, ifMatch string, req UpdateEntityRequest) (*Representation, error) {
	entity, err := s.repo.CompareAndReplace(ctx, ifMatch, req.Name)
	if err != nil {
		return nil, err
	}
	return NewRepresentation(entity)
}

// NewRepresentation serializes e and fingerprints the result
func NewRepresentation(e entitydomain.Entity) (*Representation, error) {
	body, err := e.Marshal()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize entity: %w", err)
	}
	return &Representation{
		Entity: e,
		Body:   body,
		ETag:   entitydomain.Fingerprint(body),
	}, nil
}
