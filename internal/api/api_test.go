package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/hwfottawa/hwfadmin/internal/db"
	"github.com/hwfottawa/hwfadmin/internal/model"
	"github.com/hwfottawa/hwfadmin/internal/store"
)

const testJWTSecret = "test-secret"

func setupTestServer(t *testing.T) (*httptest.Server, string) {
	t.Helper()
	database := db.NewTestDB(t)
	server := httptest.NewServer(NewRouter(database, testJWTSecret))
	t.Cleanup(server.Close)

	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	require.NoError(t, err)
	_, err = store.CreateUser(ctx, database, "admin", string(hash), model.RoleAdmin)
	require.NoError(t, err)

	_, err = store.CreateTeam(ctx, database, &model.Team{
		Name: "IT",
		Lead: "Emma Davis",
		Members: []model.TeamMember{
			{ID: "VOL002", Name: "Emma Davis", Role: "Lead"},
		},
	})
	require.NoError(t, err)

	return server, login(t, server, "admin", "password")
}

func login(t *testing.T, server *httptest.Server, username, password string) string {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"username": username, "password": password})
	resp, err := http.Post(server.URL+"/api/auth/login", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var loginResp map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&loginResp))
	require.NotEmpty(t, loginResp["token"])
	return loginResp["token"]
}

func doJSON(t *testing.T, method, url, token string, body any) *http.Response {
	t.Helper()
	var reader io.Reader = bytes.NewReader(nil)
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, target any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(target))
}

func clientPayload() map[string]any {
	return map[string]any{
		"firstName":      "Maria",
		"lastName":       "Rodriguez",
		"statusInCanada": "refugee",
		"housingType":    "Apartment",
		"numberOfAdults": 2,
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	server, _ := setupTestServer(t)

	body, _ := json.Marshal(map[string]string{"username": "admin", "password": "wrong"})
	resp, err := http.Post(server.URL+"/api/auth/login", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogoutRevokesSession(t *testing.T) {
	server, token := setupTestServer(t)

	resp := doJSON(t, "POST", server.URL+"/api/auth/logout", token, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, "GET", server.URL+"/api/clients", token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestUnauthenticatedRequestsRejected(t *testing.T) {
	server, _ := setupTestServer(t)

	resp := doJSON(t, "GET", server.URL+"/api/clients", "", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestDashboardSummary(t *testing.T) {
	server, token := setupTestServer(t)

	resp := doJSON(t, "POST", server.URL+"/api/clients", token, clientPayload())
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, "POST", server.URL+"/api/requests", token, map[string]any{
		"client":      "Maria Rodriguez",
		"type":        "Furniture Delivery",
		"status":      "pending",
		"description": "Sofa delivery",
		"priority":    "medium",
	})
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var dashboard model.Dashboard
	resp = doJSON(t, "GET", server.URL+"/api/dashboard", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &dashboard)

	assert.Equal(t, 1, dashboard.TotalClients)
	assert.Equal(t, 1, dashboard.PendingRequests)
	assert.Zero(t, dashboard.ActiveVolunteers)
	require.NotEmpty(t, dashboard.RecentActivity)
	assert.Equal(t, "REQ001", dashboard.RecentActivity[0].Subject)
}

func TestStaffCannotWrite(t *testing.T) {
	database := db.NewTestDB(t)
	server := httptest.NewServer(NewRouter(database, testJWTSecret))
	t.Cleanup(server.Close)

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	require.NoError(t, err)
	_, err = store.CreateUser(context.Background(), database, "staff", string(hash), model.RoleStaff)
	require.NoError(t, err)
	token := login(t, server, "staff", "password")

	resp := doJSON(t, "POST", server.URL+"/api/clients", token, clientPayload())
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Reads still work.
	resp = doJSON(t, "GET", server.URL+"/api/clients", token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestClientFlow(t *testing.T) {
	server, token := setupTestServer(t)

	// Empty state is an empty list, not null.
	resp := doJSON(t, "GET", server.URL+"/api/clients", token, nil)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(raw))

	resp = doJSON(t, "POST", server.URL+"/api/clients", token, clientPayload())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created model.Client
	decodeBody(t, resp, &created)
	assert.Equal(t, "CLT001", created.ID)

	// Exact-id search returns exactly one client.
	resp = doJSON(t, "GET", server.URL+"/api/clients?q=CLT001", token, nil)
	var results []model.Client
	decodeBody(t, resp, &results)
	require.Len(t, results, 1)
	assert.Equal(t, "Maria Rodriguez", results[0].FirstName+" "+results[0].LastName)
}

func TestClientCountClampingOverAPI(t *testing.T) {
	server, token := setupTestServer(t)

	payload := clientPayload()
	payload["numberOfAdults"] = "abc"
	payload["numberOfChildren"] = -3

	resp := doJSON(t, "POST", server.URL+"/api/clients", token, payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created model.Client
	decodeBody(t, resp, &created)
	assert.Equal(t, 1, created.NumberOfAdults)
	assert.Equal(t, 0, created.NumberOfChildren)
}

func TestValidationErrorEnvelope(t *testing.T) {
	server, token := setupTestServer(t)

	payload := clientPayload()
	payload["firstName"] = "M"
	delete(payload, "housingType")

	resp := doJSON(t, "POST", server.URL+"/api/clients", token, payload)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var envelope struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	decodeBody(t, resp, &envelope)
	assert.Equal(t, "validation failed", envelope.Error)
	assert.Contains(t, envelope.Fields, "firstName")
	assert.Contains(t, envelope.Fields, "housingType")
}

func TestStockFlow(t *testing.T) {
	server, token := setupTestServer(t)

	resp := doJSON(t, "POST", server.URL+"/api/inventory", token, map[string]any{
		"name":      "Sofa",
		"category":  "Furniture",
		"condition": "Good",
		"quantity":  3,
		"location":  "Warehouse A",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var item model.InventoryItem
	decodeBody(t, resp, &item)
	require.Equal(t, 3, item.Quantity)

	resp = doJSON(t, "POST", server.URL+"/api/inventory/"+item.ID+"/stock", token, map[string]any{
		"action": "remove", "quantity": 2, "reason": "assigned",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &item)
	assert.Equal(t, 1, item.Quantity)

	resp = doJSON(t, "POST", server.URL+"/api/inventory/"+item.ID+"/stock", token, map[string]any{
		"action": "add", "quantity": 5, "reason": "donation",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &item)
	assert.Equal(t, 6, item.Quantity)

	// History leads with the latest event.
	resp = doJSON(t, "GET", server.URL+"/api/inventory/"+item.ID+"/history", token, nil)
	var history []model.ItemEvent
	decodeBody(t, resp, &history)
	require.GreaterOrEqual(t, len(history), 3)
	assert.Equal(t, "add", history[0].Type)
	assert.Equal(t, 5, history[0].Quantity)
	assert.Equal(t, "remove", history[1].Type)
	assert.Equal(t, 2, history[1].Quantity)
}

func TestStockAddFromInitialQuantity(t *testing.T) {
	server, token := setupTestServer(t)

	resp := doJSON(t, "POST", server.URL+"/api/inventory", token, map[string]any{
		"name":      "Dining Table",
		"category":  "Furniture",
		"condition": "Excellent",
		"quantity":  3,
		"location":  "Warehouse A",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var item model.InventoryItem
	decodeBody(t, resp, &item)

	resp = doJSON(t, "POST", server.URL+"/api/inventory/"+item.ID+"/stock", token, map[string]any{
		"action": "add", "quantity": 5, "reason": "purchase",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &item)
	assert.Equal(t, 8, item.Quantity)
}

func TestStockUnderflowRejected(t *testing.T) {
	server, token := setupTestServer(t)

	resp := doJSON(t, "POST", server.URL+"/api/inventory", token, map[string]any{
		"name":      "Microwave",
		"category":  "Appliances",
		"condition": "Excellent",
		"quantity":  1,
		"location":  "Warehouse B",
	})
	var item model.InventoryItem
	decodeBody(t, resp, &item)

	resp = doJSON(t, "POST", server.URL+"/api/inventory/"+item.ID+"/stock", token, map[string]any{
		"action": "remove", "quantity": 2, "reason": "damaged",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestStockReasonRejectedForWrongAction(t *testing.T) {
	server, token := setupTestServer(t)

	resp := doJSON(t, "POST", server.URL+"/api/inventory", token, map[string]any{
		"name":      "Sofa",
		"category":  "Furniture",
		"condition": "Good",
		"quantity":  3,
		"location":  "Warehouse A",
	})
	var item model.InventoryItem
	decodeBody(t, resp, &item)

	resp = doJSON(t, "POST", server.URL+"/api/inventory/"+item.ID+"/stock", token, map[string]any{
		"action": "add", "quantity": 1, "reason": "damaged",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var envelope struct {
		Fields map[string]string `json:"fields"`
	}
	decodeBody(t, resp, &envelope)
	assert.Contains(t, envelope.Fields, "reason")
}

func createRequestForClient(t *testing.T, server *httptest.Server, token string) model.Request {
	t.Helper()
	resp := doJSON(t, "POST", server.URL+"/api/clients", token, clientPayload())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, "POST", server.URL+"/api/requests", token, map[string]any{
		"client":      "Maria Rodriguez",
		"type":        "Furniture Delivery",
		"status":      "pending",
		"description": "Sofa delivery",
		"priority":    "medium",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var request model.Request
	decodeBody(t, resp, &request)
	return request
}

func TestRequestCompletionToggle(t *testing.T) {
	server, token := setupTestServer(t)
	request := createRequestForClient(t, server, token)

	resp := doJSON(t, "POST", server.URL+"/api/requests/"+request.ID+"/complete", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &request)
	assert.Equal(t, "completed", request.Status)

	resp = doJSON(t, "POST", server.URL+"/api/requests/"+request.ID+"/complete", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &request)
	assert.Equal(t, "pending", request.Status)
}

func TestAssignTeamNoSpecificPerson(t *testing.T) {
	server, token := setupTestServer(t)
	request := createRequestForClient(t, server, token)

	// Name a person first, then reassign without one: the stale assignee must
	// not carry over.
	resp := doJSON(t, "POST", server.URL+"/api/requests/"+request.ID+"/assign", token, map[string]any{
		"team": "IT", "assignedTo": "Emma Davis",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &request)
	assert.Equal(t, "Emma Davis", request.AssignedTo)

	resp = doJSON(t, "POST", server.URL+"/api/requests/"+request.ID+"/assign", token, map[string]any{
		"team": "IT",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &request)
	assert.Equal(t, "IT", request.Team)
	assert.Empty(t, request.AssignedTo)
}

func TestAssignTeamRejectsOutsiders(t *testing.T) {
	server, token := setupTestServer(t)
	request := createRequestForClient(t, server, token)

	resp := doJSON(t, "POST", server.URL+"/api/requests/"+request.ID+"/assign", token, map[string]any{
		"team": "IT", "assignedTo": "John Smith",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestTeamsAreReadOnly(t *testing.T) {
	server, token := setupTestServer(t)

	resp := doJSON(t, "GET", server.URL+"/api/teams", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var teams []model.Team
	decodeBody(t, resp, &teams)
	require.Len(t, teams, 1)
	assert.Equal(t, "IT", teams[0].Name)

	resp = doJSON(t, "POST", server.URL+"/api/teams", token, map[string]any{"name": "New Team"})
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestVolunteerStatusToggleEndpoint(t *testing.T) {
	server, token := setupTestServer(t)

	resp := doJSON(t, "POST", server.URL+"/api/volunteers", token, map[string]any{
		"name":             "John Smith",
		"email":            "john@example.com",
		"phone":            "+1 (613) 555-8765",
		"address":          "123 Main St, Ottawa",
		"skills":           []string{"driving"},
		"availability":     "Weekends",
		"status":           "active",
		"startDate":        "2023-06-15",
		"emergencyContact": "Jane Smith, +1 (613) 555-0000",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var volunteer model.Volunteer
	decodeBody(t, resp, &volunteer)
	assert.Equal(t, []string{"Driving"}, volunteer.Skills)

	resp = doJSON(t, "POST", server.URL+"/api/volunteers/"+volunteer.ID+"/status", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &volunteer)
	assert.Equal(t, "inactive", volunteer.Status)
}

func TestNotFoundResponses(t *testing.T) {
	server, token := setupTestServer(t)

	for _, path := range []string{
		"/api/clients/CLT999",
		"/api/volunteers/VOL999",
		"/api/inventory/INV999",
		"/api/requests/REQ999",
		"/api/teams/TEAM999",
	} {
		resp := doJSON(t, "GET", server.URL+path, token, nil)
		resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, path)
	}
}
