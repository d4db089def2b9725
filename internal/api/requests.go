package api

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/hwfottawa/hwfadmin/internal/model"
	"github.com/hwfottawa/hwfadmin/internal/schema"
	"github.com/hwfottawa/hwfadmin/internal/store"
)

// RequestsHandler handles service request endpoints.
type RequestsHandler struct {
	DB *sql.DB
}

// List handles GET /api/requests. The optional q parameter filters by id,
// client name, type or team.
func (h *RequestsHandler) List(w http.ResponseWriter, r *http.Request) {
	requests, err := store.SearchRequests(r.Context(), h.DB, r.URL.Query().Get("q"))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list requests")
		return
	}
	if requests == nil {
		requests = []model.Request{}
	}
	jsonResponse(w, http.StatusOK, requests)
}

// Create handles POST /api/requests.
func (h *RequestsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in schema.RequestInput
	if err := decodeJSON(r, &in); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := schema.Validate(&in); err != nil {
		validationError(w, err)
		return
	}

	request, err := store.CreateRequest(r.Context(), h.DB, in.Record(), username(r.Context()))
	if errors.Is(err, store.ErrUnknownClient) {
		jsonError(w, http.StatusBadRequest, "unknown client")
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to create request")
		return
	}
	jsonResponse(w, http.StatusCreated, request)
}

// Get handles GET /api/requests/{id}.
func (h *RequestsHandler) Get(w http.ResponseWriter, r *http.Request) {
	request, err := store.GetRequest(r.Context(), h.DB, r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get request")
		return
	}
	if request == nil {
		jsonError(w, http.StatusNotFound, "request not found")
		return
	}
	jsonResponse(w, http.StatusOK, request)
}

// Update handles PUT /api/requests/{id}.
func (h *RequestsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	existing, err := store.GetRequest(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get request")
		return
	}
	if existing == nil || existing.DeletedAt != nil {
		jsonError(w, http.StatusNotFound, "request not found")
		return
	}

	var in schema.RequestInput
	if err := decodeJSON(r, &in); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := schema.Validate(&in); err != nil {
		validationError(w, err)
		return
	}

	err = store.UpdateRequest(r.Context(), h.DB, id, in.Record(), username(r.Context()))
	if errors.Is(err, store.ErrUnknownClient) {
		jsonError(w, http.StatusBadRequest, "unknown client")
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to update request")
		return
	}

	request, err := store.GetRequest(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get request")
		return
	}
	jsonResponse(w, http.StatusOK, request)
}

// Delete handles DELETE /api/requests/{id}.
func (h *RequestsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := store.DeleteRequest(r.Context(), h.DB, r.PathValue("id")); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to delete request")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "request deleted"})
}

// ToggleComplete handles POST /api/requests/{id}/complete. Completed requests
// reopen as pending; anything else completes.
func (h *RequestsHandler) ToggleComplete(w http.ResponseWriter, r *http.Request) {
	request, err := store.ToggleRequestCompletion(r.Context(), h.DB, r.PathValue("id"), username(r.Context()))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to toggle request completion")
		return
	}
	if request == nil {
		jsonError(w, http.StatusNotFound, "request not found")
		return
	}
	jsonResponse(w, http.StatusOK, request)
}

// Assign handles POST /api/requests/{id}/assign.
func (h *RequestsHandler) Assign(w http.ResponseWriter, r *http.Request) {
	var in schema.AssignInput
	if err := decodeJSON(r, &in); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := schema.Validate(&in); err != nil {
		validationError(w, err)
		return
	}

	request, err := store.AssignTeam(r.Context(), h.DB, r.PathValue("id"),
		in.Team, in.Member, username(r.Context()))
	if errors.Is(err, store.ErrUnknownTeam) {
		jsonError(w, http.StatusBadRequest, "unknown team")
		return
	}
	if errors.Is(err, store.ErrNotTeamMember) {
		jsonError(w, http.StatusBadRequest, "assignee is not on the selected team")
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to assign team")
		return
	}
	if request == nil {
		jsonError(w, http.StatusNotFound, "request not found")
		return
	}
	jsonResponse(w, http.StatusOK, request)
}

// GetHistory handles GET /api/requests/{id}/history.
func (h *RequestsHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	request, err := store.GetRequest(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get request")
		return
	}
	if request == nil {
		jsonError(w, http.StatusNotFound, "request not found")
		return
	}

	history, err := store.GetRequestHistory(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get request history")
		return
	}
	if history == nil {
		history = []model.RequestEvent{}
	}
	jsonResponse(w, http.StatusOK, history)
}
