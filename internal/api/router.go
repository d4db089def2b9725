package api

import (
	"database/sql"
	"net/http"

	"github.com/hwfottawa/hwfadmin/internal/model"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sql.DB, jwtSecret string) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{DB: db, JWTSecret: jwtSecret}
	dashboardHandler := &DashboardHandler{DB: db}
	clientsHandler := &ClientsHandler{DB: db}
	volunteersHandler := &VolunteersHandler{DB: db}
	inventoryHandler := &InventoryHandler{DB: db}
	requestsHandler := &RequestsHandler{DB: db}
	teamsHandler := &TeamsHandler{DB: db}

	authMW := AuthMiddleware(jwtSecret, db)
	requireCoordinator := RequireRole(model.RoleCoordinator)

	// Public: login.
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)

	// Session management.
	mux.Handle("POST /api/auth/logout", authMW(http.HandlerFunc(authHandler.Logout)))
	mux.Handle("PUT /api/auth/password", authMW(http.HandlerFunc(authHandler.ChangePassword)))

	// Dashboard summary (all roles).
	mux.Handle("GET /api/dashboard", authMW(http.HandlerFunc(dashboardHandler.Get)))

	// Clients: read (all roles), write (coordinator+).
	mux.Handle("GET /api/clients", authMW(http.HandlerFunc(clientsHandler.List)))
	mux.Handle("POST /api/clients", authMW(requireCoordinator(http.HandlerFunc(clientsHandler.Create))))
	mux.Handle("GET /api/clients/{id}", authMW(http.HandlerFunc(clientsHandler.Get)))
	mux.Handle("PUT /api/clients/{id}", authMW(requireCoordinator(http.HandlerFunc(clientsHandler.Update))))
	mux.Handle("DELETE /api/clients/{id}", authMW(requireCoordinator(http.HandlerFunc(clientsHandler.Delete))))

	// Volunteers: read (all roles), write (coordinator+).
	mux.Handle("GET /api/volunteers", authMW(http.HandlerFunc(volunteersHandler.List)))
	mux.Handle("POST /api/volunteers", authMW(requireCoordinator(http.HandlerFunc(volunteersHandler.Create))))
	mux.Handle("GET /api/volunteers/{id}", authMW(http.HandlerFunc(volunteersHandler.Get)))
	mux.Handle("PUT /api/volunteers/{id}", authMW(requireCoordinator(http.HandlerFunc(volunteersHandler.Update))))
	mux.Handle("POST /api/volunteers/{id}/status", authMW(requireCoordinator(http.HandlerFunc(volunteersHandler.ToggleStatus))))
	mux.Handle("DELETE /api/volunteers/{id}", authMW(requireCoordinator(http.HandlerFunc(volunteersHandler.Delete))))

	// Inventory: read (all roles), write (coordinator+).
	mux.Handle("GET /api/inventory", authMW(http.HandlerFunc(inventoryHandler.List)))
	mux.Handle("POST /api/inventory", authMW(requireCoordinator(http.HandlerFunc(inventoryHandler.Create))))
	mux.Handle("GET /api/inventory/{id}", authMW(http.HandlerFunc(inventoryHandler.Get)))
	mux.Handle("PUT /api/inventory/{id}", authMW(requireCoordinator(http.HandlerFunc(inventoryHandler.Update))))
	mux.Handle("DELETE /api/inventory/{id}", authMW(requireCoordinator(http.HandlerFunc(inventoryHandler.Delete))))
	mux.Handle("POST /api/inventory/{id}/stock", authMW(requireCoordinator(http.HandlerFunc(inventoryHandler.AdjustStock))))
	mux.Handle("GET /api/inventory/{id}/history", authMW(http.HandlerFunc(inventoryHandler.GetHistory)))
	mux.Handle("PUT /api/inventory/{id}/image", authMW(requireCoordinator(http.HandlerFunc(inventoryHandler.UploadImage))))
	mux.Handle("GET /api/inventory/{id}/image", authMW(http.HandlerFunc(inventoryHandler.GetImage)))

	// Requests: read (all roles), write (coordinator+).
	mux.Handle("GET /api/requests", authMW(http.HandlerFunc(requestsHandler.List)))
	mux.Handle("POST /api/requests", authMW(requireCoordinator(http.HandlerFunc(requestsHandler.Create))))
	mux.Handle("GET /api/requests/{id}", authMW(http.HandlerFunc(requestsHandler.Get)))
	mux.Handle("PUT /api/requests/{id}", authMW(requireCoordinator(http.HandlerFunc(requestsHandler.Update))))
	mux.Handle("DELETE /api/requests/{id}", authMW(requireCoordinator(http.HandlerFunc(requestsHandler.Delete))))
	mux.Handle("POST /api/requests/{id}/complete", authMW(requireCoordinator(http.HandlerFunc(requestsHandler.ToggleComplete))))
	mux.Handle("POST /api/requests/{id}/assign", authMW(requireCoordinator(http.HandlerFunc(requestsHandler.Assign))))
	mux.Handle("GET /api/requests/{id}/history", authMW(http.HandlerFunc(requestsHandler.GetHistory)))

	// Teams (read-only, all roles).
	mux.Handle("GET /api/teams", authMW(http.HandlerFunc(teamsHandler.List)))
	mux.Handle("GET /api/teams/{id}", authMW(http.HandlerFunc(teamsHandler.Get)))

	return mux
}
