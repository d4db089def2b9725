package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/hwfottawa/hwfadmin/internal/model"
)

const requestColumns = `id, client, client_id, type, team, assigned_to, status, date,
	description, priority, items, created_at, updated_at, deleted_at`

// CreateRequest creates a service request. The client identifier is derived
// from the selected client name, never taken from the caller.
func CreateRequest(ctx context.Context, db *sql.DB, r *model.Request, user string) (*model.Request, error) {
	client, err := GetClientByName(ctx, db, r.Client)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, ErrUnknownClient
	}

	id, err := nextID(ctx, db, "requests", "REQ")
	if err != nil {
		return nil, err
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO requests (id, client, client_id, type, team, assigned_to, status, date,
		                       description, priority, items)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, r.Client, client.ID, r.Type, r.Team, r.AssignedTo, r.Status, r.Date,
		r.Description, r.Priority, encodeList(r.Items),
	)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	if err := addRequestEvent(ctx, db, id, "Request created", user); err != nil {
		return nil, err
	}

	return GetRequest(ctx, db, id)
}

// GetRequest returns a request by ID.
func GetRequest(ctx context.Context, db *sql.DB, id string) (*model.Request, error) {
	r, err := scanRequest(db.QueryRowContext(ctx,
		`SELECT `+requestColumns+` FROM requests WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting request: %w", err)
	}
	return r, nil
}

// SearchRequests returns non-deleted requests whose id, client name, type or
// team contain the query (case-insensitive). An empty query returns all.
func SearchRequests(ctx context.Context, db *sql.DB, query string) ([]model.Request, error) {
	q := `SELECT ` + requestColumns + ` FROM requests WHERE deleted_at IS NULL`
	var args []any

	if query != "" {
		q += ` AND (lower(id) LIKE ? ESCAPE '\' OR lower(client) LIKE ? ESCAPE '\'
		        OR lower(type) LIKE ? ESCAPE '\' OR lower(coalesce(team, '')) LIKE ? ESCAPE '\')`
		p := likePattern(query)
		args = append(args, p, p, p, p)
	}
	q += ` ORDER BY id`

	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("searching requests: %w", err)
	}
	defer rows.Close()

	var requests []model.Request
	for rows.Next() {
		r, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning request: %w", err)
		}
		requests = append(requests, *r)
	}
	return requests, rows.Err()
}

// UpdateRequest replaces a request's editable fields, re-deriving the client
// identifier from the (possibly changed) client name.
func UpdateRequest(ctx context.Context, db *sql.DB, id string, r *model.Request, user string) error {
	client, err := GetClientByName(ctx, db, r.Client)
	if err != nil {
		return err
	}
	if client == nil {
		return ErrUnknownClient
	}

	_, err = db.ExecContext(ctx,
		`UPDATE requests SET client = ?, client_id = ?, type = ?, team = ?, assigned_to = ?,
		        status = ?, date = ?, description = ?, priority = ?, items = ?,
		        updated_at = CURRENT_TIMESTAMP
		 WHERE id = ? AND deleted_at IS NULL`,
		r.Client, client.ID, r.Type, r.Team, r.AssignedTo,
		r.Status, r.Date, r.Description, r.Priority, encodeList(r.Items), id,
	)
	if err != nil {
		return fmt.Errorf("updating request: %w", err)
	}

	return addRequestEvent(ctx, db, id, "Request updated", user)
}

// DeleteRequest soft-deletes a request. History rows are kept.
func DeleteRequest(ctx context.Context, db *sql.DB, id string) error {
	_, err := db.ExecContext(ctx,
		`UPDATE requests SET deleted_at = CURRENT_TIMESTAMP WHERE id = ? AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("deleting request: %w", err)
	}
	return nil
}

// ToggleRequestCompletion flips a request's completion: completed requests
// reopen as pending, any other status moves straight to completed.
func ToggleRequestCompletion(ctx context.Context, db *sql.DB, id, user string) (*model.Request, error) {
	r, err := GetRequest(ctx, db, id)
	if err != nil {
		return nil, err
	}
	if r == nil || r.DeletedAt != nil {
		return nil, nil
	}

	next := model.RequestCompleted
	action := "Marked as completed"
	if r.Status == model.RequestCompleted {
		next = model.RequestPending
		action = "Reopened as pending"
	}

	_, err = db.ExecContext(ctx,
		`UPDATE requests SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		next, id,
	)
	if err != nil {
		return nil, fmt.Errorf("toggling request completion: %w", err)
	}

	if err := addRequestEvent(ctx, db, id, action, user); err != nil {
		return nil, err
	}

	return GetRequest(ctx, db, id)
}

// AssignTeam assigns a request to a team, optionally naming a specific
// member. An empty member means no specific person and clears any previous
// assignee rather than carrying it over.
func AssignTeam(ctx context.Context, db *sql.DB, id, team, member, user string) (*model.Request, error) {
	r, err := GetRequest(ctx, db, id)
	if err != nil {
		return nil, err
	}
	if r == nil || r.DeletedAt != nil {
		return nil, nil
	}

	t, err := GetTeamByName(ctx, db, team)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrUnknownTeam
	}

	if member != "" {
		found := false
		for _, m := range t.Members {
			if m.Name == member {
				found = true
				break
			}
		}
		if !found {
			return nil, ErrNotTeamMember
		}
	}

	_, err = db.ExecContext(ctx,
		`UPDATE requests SET team = ?, assigned_to = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		team, member, id,
	)
	if err != nil {
		return nil, fmt.Errorf("assigning team: %w", err)
	}

	action := fmt.Sprintf("Assigned to %s team", team)
	if member != "" {
		action = fmt.Sprintf("Assigned to %s team (%s)", team, member)
	}
	if err := addRequestEvent(ctx, db, id, action, user); err != nil {
		return nil, err
	}

	return GetRequest(ctx, db, id)
}

// GetRequestHistory returns a request's history, newest first.
func GetRequestHistory(ctx context.Context, db *sql.DB, id string) ([]model.RequestEvent, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, request_id, date, action, user
		 FROM request_events WHERE request_id = ? ORDER BY date DESC, rowid DESC`, id)
	if err != nil {
		return nil, fmt.Errorf("getting request history: %w", err)
	}
	defer rows.Close()

	var events []model.RequestEvent
	for rows.Next() {
		var e model.RequestEvent
		var user sql.NullString
		if err := rows.Scan(&e.ID, &e.RequestID, &e.Date, &e.Action, &user); err != nil {
			return nil, fmt.Errorf("scanning request event: %w", err)
		}
		e.User = user.String
		events = append(events, e)
	}
	return events, rows.Err()
}

func addRequestEvent(ctx context.Context, db *sql.DB, requestID, action, user string) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO request_events (id, request_id, action, user) VALUES (?, ?, ?, ?)`,
		uuid.NewString(), requestID, action, user,
	)
	if err != nil {
		return fmt.Errorf("recording request event: %w", err)
	}
	return nil
}

func scanRequest(row scanner) (*model.Request, error) {
	r := &model.Request{}
	var team, assignedTo, date, items sql.NullString
	err := row.Scan(&r.ID, &r.Client, &r.ClientID, &r.Type, &team, &assignedTo, &r.Status, &date,
		&r.Description, &r.Priority, &items, &r.CreatedAt, &r.UpdatedAt, &r.DeletedAt)
	if err != nil {
		return nil, err
	}
	r.Team = team.String
	r.AssignedTo = assignedTo.String
	r.Date = date.String
	r.Items = decodeList(items.String)
	return r, nil
}
