package middleware

import (
	"encoding/json"
	"net/http"

	api "condreq/internal/api/application"
)

// RequireSupportedBody rejects requests whose body is neither JSON nor
// plain text. Requests without a body pass through untouched, whatever
// their headers.
func RequireSupportedBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !hasBody(r) {
			next.ServeHTTP(w, r)
			return
		}

		contentType := r.Header.Get("Content-Type")
		if !api.SupportedMediaType(api.MediaType(contentType)) {
			respondJSONError(w, http.StatusUnsupportedMediaType, "Unsupported Media Type: "+contentType)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// hasBody treats an unknown length (-1) as a body.
func hasBody(r *http.Request) bool {
	if len(r.TransferEncoding) > 0 {
		return true
	}
	return r.ContentLength != 0
}

// respondJSONError sends a JSON error response
func respondJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	response := api.ErrorResponse{Error: message}
	json.NewEncoder(w).Encode(response)
}
