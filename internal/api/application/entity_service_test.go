package application

import (
	"context"
	"errors"
	"testing"

	entitydomain "condreq/internal/entity/domain"
	entityinfra "condreq/internal/entity/infrastructure"
	"condreq/internal/shared/validation"
)

func newTestService(allowAdditional bool) (*EntityService, *entityinfra.MemoryStore) {
	store := entityinfra.NewMemoryStore(entitydomain.NewEntity("X", "Evil Buu"))
	return NewEntityService(store, allowAdditional), store
}

func TestEntityService_GetEntity(t *testing.T) {
	service, _ := newTestService(true)

	rep, err := service.GetEntity(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if string(rep.Body) != `{"id":"X","name":"Evil Buu"}` {
		t.Errorf("unexpected body %s", rep.Body)
	}
	if rep.ETag != entitydomain.Fingerprint(rep.Body) {
		t.Errorf("expected ETag to fingerprint the body, got %s", rep.ETag)
	}
	if !rep.NotModified(rep.ETag.String()) {
		t.Error("expected the current tag to match")
	}
	if rep.NotModified("") || rep.NotModified(`"other"`) {
		t.Error("expected empty and foreign tags not to match")
	}
}

func TestEntityService_DecodeUpdate(t *testing.T) {
	tests := []struct {
		name            string
		allowAdditional bool
		contentType     string
		body            string
		expectError     bool
	}{
		{name: "valid", allowAdditional: true, body: `{"name":"Goku"}`},
		{name: "json with charset", allowAdditional: true, contentType: "application/json; charset=utf-8", body: `{"name":"Goku"}`},
		{name: "plain text is never an object", allowAdditional: true, contentType: "text/plain", body: `{"name":"Goku"}`, expectError: true},
		{name: "extra allowed", allowAdditional: true, body: `{"name":"Goku","id":"Y"}`},
		{name: "extra rejected", allowAdditional: false, body: `{"name":"Goku","id":"Y"}`, expectError: true},
		{name: "missing name", allowAdditional: true, body: `{"nom":"Goku"}`, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newTestService(tt.allowAdditional)
			contentType := tt.contentType
			if contentType == "" {
				contentType = MediaTypeJSON
			}

			req, err := service.DecodeUpdate(contentType, []byte(tt.body))
			if tt.expectError {
				if !errors.Is(err, &validation.ValidationError{}) {
					t.Errorf("expected ValidationError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if req.Name != "Goku" {
				t.Errorf("expected name Goku, got %q", req.Name)
			}
		})
	}
}

func TestEntityService_UpdateEntity(t *testing.T) {
	service, store := newTestService(true)

	original, err := service.GetEntity(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := service.UpdateEntity(context.Background(), original.ETag.String(), UpdateEntityRequest{Name: "Goku"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Entity.ID != "X" || updated.Entity.Name != "Goku" {
		t.Errorf("unexpected entity %+v", updated.Entity)
	}
	if updated.ETag == original.ETag {
		t.Error("expected a new tag after the update")
	}

	_, err = service.UpdateEntity(context.Background(), original.ETag.String(), UpdateEntityRequest{Name: "Vegeta"})
	var conflict *entitydomain.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if conflict.ETag != updated.ETag {
		t.Errorf("expected conflict to report %s, got %s", updated.ETag, conflict.ETag)
	}

	stored, _ := store.Get(context.Background())
	if stored.Name != "Goku" {
		t.Errorf("expected stored name Goku, got %q", stored.Name)
	}
}

func TestEntityService_UpdateEntity_NoPrecondition(t *testing.T) {
	service, _ := newTestService(true)

	for _, name := range []string{"Goku", "Vegeta", "Gohan"} {
		rep, err := service.UpdateEntity(context.Background(), "", UpdateEntityRequest{Name: name})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rep.Entity.Name != name {
			t.Errorf("expected name %q, got %q", name, rep.Entity.Name)
		}
	}
}

func TestToEntityResponse(t *testing.T) {
	resp := ToEntityResponse(entitydomain.NewEntity("X", "Goku"))
	if resp.ID != "X" || resp.Name != "Goku" {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestMediaType(t *testing.T) {
	tests := []struct {
		contentType string
		want        string
		supported   bool
	}{
		{contentType: "application/json", want: MediaTypeJSON, supported: true},
		{contentType: "application/json; charset=utf-8", want: MediaTypeJSON, supported: true},
		{contentType: "text/plain", want: MediaTypeText, supported: true},
		{contentType: "application/xml", want: "application/xml"},
		{contentType: "", want: ""},
		{contentType: ";;", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			got := MediaType(tt.contentType)
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
			if SupportedMediaType(got) != tt.supported {
				t.Errorf("expected supported=%v for %q", tt.supported, got)
			}
		})
	}
}
