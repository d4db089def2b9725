package api

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/hwfottawa/hwfadmin/internal/model"
	"github.com/hwfottawa/hwfadmin/internal/schema"
	"github.com/hwfottawa/hwfadmin/internal/store"
)

// VolunteersHandler handles volunteer roster endpoints.
type VolunteersHandler struct {
	DB *sql.DB
}

// List handles GET /api/volunteers. The optional q parameter filters by id,
// name, email or skills.
func (h *VolunteersHandler) List(w http.ResponseWriter, r *http.Request) {
	volunteers, err := store.SearchVolunteers(r.Context(), h.DB, r.URL.Query().Get("q"))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list volunteers")
		return
	}
	if volunteers == nil {
		volunteers = []model.Volunteer{}
	}
	jsonResponse(w, http.StatusOK, volunteers)
}

// Create handles POST /api/volunteers.
func (h *VolunteersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in schema.VolunteerInput
	if err := decodeJSON(r, &in); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := schema.Validate(&in); err != nil {
		validationError(w, err)
		return
	}

	volunteer, err := store.CreateVolunteer(r.Context(), h.DB, in.Record())
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to create volunteer")
		return
	}
	jsonResponse(w, http.StatusCreated, volunteer)
}

// Get handles GET /api/volunteers/{id}.
func (h *VolunteersHandler) Get(w http.ResponseWriter, r *http.Request) {
	volunteer, err := store.GetVolunteer(r.Context(), h.DB, r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get volunteer")
		return
	}
	if volunteer == nil {
		jsonError(w, http.StatusNotFound, "volunteer not found")
		return
	}
	jsonResponse(w, http.StatusOK, volunteer)
}

// Update handles PUT /api/volunteers/{id}.
func (h *VolunteersHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	existing, err := store.GetVolunteer(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get volunteer")
		return
	}
	if existing == nil || existing.DeletedAt != nil {
		jsonError(w, http.StatusNotFound, "volunteer not found")
		return
	}

	var in schema.VolunteerInput
	if err := decodeJSON(r, &in); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := schema.Validate(&in); err != nil {
		validationError(w, err)
		return
	}

	if err := store.UpdateVolunteer(r.Context(), h.DB, id, in.Record()); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to update volunteer")
		return
	}

	volunteer, err := store.GetVolunteer(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get volunteer")
		return
	}
	jsonResponse(w, http.StatusOK, volunteer)
}

// ToggleStatus handles POST /api/volunteers/{id}/status, flipping between
// active and inactive.
func (h *VolunteersHandler) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	volunteer, err := store.ToggleVolunteerStatus(r.Context(), h.DB, r.PathValue("id"))
	if errors.Is(err, store.ErrPendingToggle) {
		jsonError(w, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to toggle volunteer status")
		return
	}
	if volunteer == nil {
		jsonError(w, http.StatusNotFound, "volunteer not found")
		return
	}
	jsonResponse(w, http.StatusOK, volunteer)
}

// Delete handles DELETE /api/volunteers/{id}.
func (h *VolunteersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := store.DeleteVolunteer(r.Context(), h.DB, r.PathValue("id")); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to delete volunteer")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "volunteer deleted"})
}
