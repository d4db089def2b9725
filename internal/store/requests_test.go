package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hwfottawa/hwfadmin/internal/db"
	"github.com/hwfottawa/hwfadmin/internal/model"
)

func testRequest(client string) *model.Request {
	return &model.Request{
		Client:      client,
		Type:        "Furniture Delivery",
		Status:      model.RequestPending,
		Date:        "2024-02-01",
		Description: "Sofa and dining table delivery",
		Priority:    model.PriorityMedium,
	}
}

func TestCreateRequestDerivesClientID(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	client, err := CreateClient(ctx, database, testClient("Maria", "Rodriguez"))
	require.NoError(t, err)

	created, err := CreateRequest(ctx, database, testRequest("Maria Rodriguez"), "admin")
	require.NoError(t, err)
	assert.Equal(t, "REQ001", created.ID)
	assert.Equal(t, client.ID, created.ClientID)

	history, err := GetRequestHistory(ctx, database, created.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "Request created", history[0].Action)
}

func TestCreateRequestUnknownClient(t *testing.T) {
	database := db.NewTestDB(t)

	_, err := CreateRequest(context.Background(), database, testRequest("Nobody Here"), "admin")
	assert.ErrorIs(t, err, ErrUnknownClient)
}

func TestUpdateRequestRederivesClientID(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	_, err := CreateClient(ctx, database, testClient("Maria", "Rodriguez"))
	require.NoError(t, err)
	other, err := CreateClient(ctx, database, testClient("Omar", "Hassan"))
	require.NoError(t, err)

	created, err := CreateRequest(ctx, database, testRequest("Maria Rodriguez"), "admin")
	require.NoError(t, err)

	created.Client = "Omar Hassan"
	require.NoError(t, UpdateRequest(ctx, database, created.ID, created, "admin"))

	updated, err := GetRequest(ctx, database, created.ID)
	require.NoError(t, err)
	assert.Equal(t, other.ID, updated.ClientID)
}

func TestToggleRequestCompletion(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	_, err := CreateClient(ctx, database, testClient("Maria", "Rodriguez"))
	require.NoError(t, err)
	created, err := CreateRequest(ctx, database, testRequest("Maria Rodriguez"), "admin")
	require.NoError(t, err)

	toggled, err := ToggleRequestCompletion(ctx, database, created.ID, "admin")
	require.NoError(t, err)
	assert.Equal(t, model.RequestCompleted, toggled.Status)

	toggled, err = ToggleRequestCompletion(ctx, database, created.ID, "admin")
	require.NoError(t, err)
	assert.Equal(t, model.RequestPending, toggled.Status)

	history, err := GetRequestHistory(ctx, database, created.ID)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "Reopened as pending", history[0].Action)
	assert.Equal(t, "Marked as completed", history[1].Action)
}

func TestAssignTeamWithoutMember(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	_, err := CreateClient(ctx, database, testClient("Maria", "Rodriguez"))
	require.NoError(t, err)
	created, err := CreateRequest(ctx, database, testRequest("Maria Rodriguez"), "admin")
	require.NoError(t, err)

	created.AssignedTo = "John Smith"
	require.NoError(t, UpdateRequest(ctx, database, created.ID, created, "admin"))

	_, err = CreateTeam(ctx, database, &model.Team{
		Name: "IT",
		Lead: "Emma Davis",
		Members: []model.TeamMember{
			{ID: "VOL002", Name: "Emma Davis", Role: "Lead"},
		},
	})
	require.NoError(t, err)

	// Assigning a bare team clears the previously named person.
	assigned, err := AssignTeam(ctx, database, created.ID, "IT", "", "admin")
	require.NoError(t, err)
	assert.Equal(t, "IT", assigned.Team)
	assert.Empty(t, assigned.AssignedTo)
}

func TestAssignTeamMemberMustBeOnRoster(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	_, err := CreateClient(ctx, database, testClient("Maria", "Rodriguez"))
	require.NoError(t, err)
	created, err := CreateRequest(ctx, database, testRequest("Maria Rodriguez"), "admin")
	require.NoError(t, err)

	_, err = CreateTeam(ctx, database, &model.Team{
		Name: "Delivery",
		Lead: "John Smith",
		Members: []model.TeamMember{
			{ID: "VOL001", Name: "John Smith", Role: "Lead"},
		},
	})
	require.NoError(t, err)

	_, err = AssignTeam(ctx, database, created.ID, "Delivery", "Emma Davis", "admin")
	assert.ErrorIs(t, err, ErrNotTeamMember)

	assigned, err := AssignTeam(ctx, database, created.ID, "Delivery", "John Smith", "admin")
	require.NoError(t, err)
	assert.Equal(t, "John Smith", assigned.AssignedTo)
}

func TestAssignUnknownTeam(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	_, err := CreateClient(ctx, database, testClient("Maria", "Rodriguez"))
	require.NoError(t, err)
	created, err := CreateRequest(ctx, database, testRequest("Maria Rodriguez"), "admin")
	require.NoError(t, err)

	_, err = AssignTeam(ctx, database, created.ID, "Ghost Team", "", "admin")
	assert.ErrorIs(t, err, ErrUnknownTeam)
}

func TestSearchRequestsByExactID(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	_, err := CreateClient(ctx, database, testClient("Maria", "Rodriguez"))
	require.NoError(t, err)
	_, err = CreateRequest(ctx, database, testRequest("Maria Rodriguez"), "admin")
	require.NoError(t, err)
	_, err = CreateRequest(ctx, database, testRequest("Maria Rodriguez"), "admin")
	require.NoError(t, err)

	results, err := SearchRequests(ctx, database, "REQ002")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "REQ002", results[0].ID)
}
