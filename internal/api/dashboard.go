package api

import (
	"database/sql"
	"net/http"

	"github.com/hwfottawa/hwfadmin/internal/store"
)

// DashboardHandler serves the landing-page summary.
type DashboardHandler struct {
	DB *sql.DB
}

// Get handles GET /api/dashboard: stat-card counts and recent activity.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	d, err := store.GetDashboard(r.Context(), h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to load dashboard")
		return
	}
	jsonResponse(w, http.StatusOK, d)
}
