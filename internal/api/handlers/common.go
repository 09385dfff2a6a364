package handlers

import (
	"encoding/json"
	"net/http"

	api "condreq/internal/api/application"
	"condreq/internal/shared/validation"
)

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondJSONError sends a JSON error response
func respondJSONError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, api.ErrorResponse{Error: message})
}

// respondValidationError sends a 400 describing every problem with the body
func respondValidationError(w http.ResponseWriter, err *validation.ValidationError) {
	respondJSON(w, http.StatusBadRequest, api.ValidationErrorResponse{
		StatusCode: http.StatusBadRequest,
		Error:      http.StatusText(http.StatusBadRequest),
		Message:    err.Message(),
		Problems:   err.Problems,
	})
}

// respondRepresentation sends a version of the entity with its ETag.
// Without a body only the status and tag are sent.
func respondRepresentation(w http.ResponseWriter, status int, rep *api.Representation, withBody bool) {
	w.Header().Set("ETag", rep.ETag.String())
	if !withBody {
		w.WriteHeader(status)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	w.Write(rep.Body)
}
