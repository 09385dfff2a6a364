package application

import (
	entitydomain "condreq/internal/entity/domain"
)

// EntityResponse represents the entity in API responses
type EntityResponse struct {
	ID   string `json:"id" example:"89d0b04f-41a1-4bd2-8bfb-6ee656843d8b"`
	Name string `json:"name" example:"Evil Buu"`
}

// UpdateEntityRequest represents the POST body
type UpdateEntityRequest struct {
	Name string `json:"name" example:"Goku"`
}

// ErrorResponse represents an error in API responses
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse represents a rejected request body
type ValidationErrorResponse struct {
	StatusCode int               `json:"statusCode" example:"400"`
	Error      string            `json:"error" example:"Bad Request"`
	Message    string            `json:"message" example:"body/name is required"`
	Problems   map[string]string `json:"problems,omitempty"`
}

// HealthResponse represents the health check payload
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// ToEntityResponse converts a domain entity to an API response
func ToEntityResponse(e entitydomain.Entity) EntityResponse {
	return EntityResponse{
		ID:   e.ID,
		Name: e.Name,
	}
}
