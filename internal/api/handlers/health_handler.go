package handlers

import (
	"net/http"

	api "condreq/internal/api/application"
)

// Health handles GET /healthz
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  application.HealthResponse
// @Router       /healthz [get]
func Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, api.HealthResponse{Status: "ok"})
}
