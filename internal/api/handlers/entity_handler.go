package handlers

import (
	"errors"
	"io"
	"net/http"

	api "condreq/internal/api/application"
	entitydomain "condreq/internal/entity/domain"
	sharedlogger "condreq/internal/shared/logger"
	"condreq/internal/shared/validation"
)

// maxBodyBytes bounds POST bodies; the entity only carries a name.
const maxBodyBytes = 1 << 20

// EntityHandler serves the entity with conditional request support
type EntityHandler struct {
	service *api.EntityService
	logger  sharedlogger.Logger
}

// NewEntityHandler creates a new entity handler
func NewEntityHandler(service *api.EntityService, logger sharedlogger.Logger) *EntityHandler {
	return &EntityHandler{
		service: service,
		logger:  logger,
	}
}

// GetEntity handles GET /
// @Summary      Get the entity
// @Description  Returns the entity and its ETag. Answers 304 without a body when If-None-Match equals the current ETag.
// @Tags         entity
// @Produce      json
// @Param        If-None-Match  header    string  false  "ETag from a previous response"
// @Success      200  {object}  application.EntityResponse
// @Success      304  "Not Modified"
// @Failure      500  {object}  application.ErrorResponse
// @Header       200,304  {string}  ETag  "Entity tag of the current version"
// @Router       / [get]
func (h *EntityHandler) GetEntity(w http.ResponseWriter, r *http.Request) {
	rep, err := h.service.GetEntity(r.Context())
	if err != nil {
		h.logger.Error("Failed to get entity", "err", err)
		respondJSONError(w, http.StatusInternalServerError, "Failed to get entity: "+err.Error())
		return
	}

	if rep.NotModified(r.Header.Get("If-None-Match")) {
		h.logger.Debug("Entity not modified", "etag", rep.ETag.String())
		respondRepresentation(w, http.StatusNotModified, rep, false)
		return
	}

	h.logger.Debug("Retrieved entity", "id", rep.Entity.ID, "etag", rep.ETag.String())
	respondRepresentation(w, http.StatusOK, rep, true)
}

// UpdateEntity handles POST /
// @Summary      Rename the entity
// @Description  Replaces the entity's name. With If-Match, the write only happens if it equals the current ETag; otherwise 412 is returned with the current ETag and the entity is left untouched.
// @Tags         entity
// @Accept       json,plain
// @Produce      json
// @Param        If-Match  header    string                           false  "ETag the client last saw"
// @Param        entity    body      application.UpdateEntityRequest  true   "New name"
// @Success      200  {object}  application.EntityResponse
// @Failure      400  {object}  application.ValidationErrorResponse
// @Failure      412  "Precondition Failed"
// @Failure      413  {object}  application.ErrorResponse
// @Failure      415  {object}  application.ErrorResponse
// @Failure      500  {object}  application.ErrorResponse
// @Header       200,412  {string}  ETag  "Entity tag of the resulting or current version"
// @Router       / [post]
func (h *EntityHandler) UpdateEntity(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		h.logger.Warn("Request body too large", "limit", tooLarge.Limit)
		respondJSONError(w, http.StatusRequestEntityTooLarge, "Request body is too large")
		return
	} else if err != nil {
		h.logger.Warn("Failed to read request body", "err", err)
		respondJSONError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	req, err := h.service.DecodeUpdate(r.Header.Get("Content-Type"), body)
	var validationErr *validation.ValidationError
	if errors.As(err, &validationErr) {
		h.logger.Debug("Rejected request body", "problems", validationErr.Problems)
		respondValidationError(w, validationErr)
		return
	} else if err != nil {
		h.logger.Error("Failed to decode request body", "err", err)
		respondJSONError(w, http.StatusInternalServerError, "Failed to decode request body: "+err.Error())
		return
	}

	ifMatch := r.Header.Get("If-Match")
	rep, err := h.service.UpdateEntity(r.Context(), ifMatch, req)
	var conflict *entitydomain.ConflictError
	if errors.As(err, &conflict) {
		h.logger.Debug("Precondition failed", "if_match", ifMatch, "etag", conflict.ETag.String())
		w.Header().Set("ETag", conflict.ETag.String())
		w.WriteHeader(http.StatusPreconditionFailed)
		return
	} else if err != nil {
		h.logger.Error("Failed to update entity", "err", err)
		respondJSONError(w, http.StatusInternalServerError, "Failed to update entity: "+err.Error())
		return
	}

	h.logger.Info("Updated entity", "id", rep.Entity.ID, "name", rep.Entity.Name, "etag", rep.ETag.String())
	respondRepresentation(w, http.StatusOK, rep, true)
}
