package api

import (
	"database/sql"
	"net/http"

	"github.com/hwfottawa/hwfadmin/internal/model"
	"github.com/hwfottawa/hwfadmin/internal/schema"
	"github.com/hwfottawa/hwfadmin/internal/store"
)

// ClientsHandler handles client intake endpoints.
type ClientsHandler struct {
	DB *sql.DB
}

// List handles GET /api/clients. The optional q parameter filters by id,
// name, country of origin or spoken languages.
func (h *ClientsHandler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := store.SearchClients(r.Context(), h.DB, r.URL.Query().Get("q"))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list clients")
		return
	}
	if clients == nil {
		clients = []model.Client{}
	}
	jsonResponse(w, http.StatusOK, clients)
}

// Create handles POST /api/clients.
func (h *ClientsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in schema.ClientInput
	if err := decodeJSON(r, &in); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := schema.Validate(&in); err != nil {
		validationError(w, err)
		return
	}

	client, err := store.CreateClient(r.Context(), h.DB, in.Record())
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to create client")
		return
	}
	jsonResponse(w, http.StatusCreated, client)
}

// Get handles GET /api/clients/{id}.
func (h *ClientsHandler) Get(w http.ResponseWriter, r *http.Request) {
	client, err := store.GetClient(r.Context(), h.DB, r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get client")
		return
	}
	if client == nil {
		jsonError(w, http.StatusNotFound, "client not found")
		return
	}
	jsonResponse(w, http.StatusOK, client)
}

// Update handles PUT /api/clients/{id}.
func (h *ClientsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	existing, err := store.GetClient(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get client")
		return
	}
	if existing == nil || existing.DeletedAt != nil {
		jsonError(w, http.StatusNotFound, "client not found")
		return
	}

	var in schema.ClientInput
	if err := decodeJSON(r, &in); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := schema.Validate(&in); err != nil {
		validationError(w, err)
		return
	}

	if err := store.UpdateClient(r.Context(), h.DB, id, in.Record()); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to update client")
		return
	}

	client, err := store.GetClient(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get client")
		return
	}
	jsonResponse(w, http.StatusOK, client)
}

// Delete handles DELETE /api/clients/{id}.
func (h *ClientsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := store.DeleteClient(r.Context(), h.DB, r.PathValue("id")); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to delete client")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "client deleted"})
}
