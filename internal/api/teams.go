package api

import (
	"database/sql"
	"net/http"

	"github.com/hwfottawa/hwfadmin/internal/model"
	"github.com/hwfottawa/hwfadmin/internal/store"
)

// TeamsHandler handles team endpoints. Teams are seeded at startup and
// read-only over the API.
type TeamsHandler struct {
	DB *sql.DB
}

// List handles GET /api/teams. The optional q parameter filters by id, name,
// lead or skills.
func (h *TeamsHandler) List(w http.ResponseWriter, r *http.Request) {
	teams, err := store.SearchTeams(r.Context(), h.DB, r.URL.Query().Get("q"))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list teams")
		return
	}
	if teams == nil {
		teams = []model.Team{}
	}
	jsonResponse(w, http.StatusOK, teams)
}

// Get handles GET /api/teams/{id}.
func (h *TeamsHandler) Get(w http.ResponseWriter, r *http.Request) {
	team, err := store.GetTeam(r.Context(), h.DB, r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get team")
		return
	}
	if team == nil {
		jsonError(w, http.StatusNotFound, "team not found")
		return
	}
	jsonResponse(w, http.StatusOK, team)
}
