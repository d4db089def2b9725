package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/hwfottawa/hwfadmin/internal/model"
)

// CreateTeam inserts a team. Teams are seeded at startup and read-only over
// the API, so there is no corresponding update or delete.
func CreateTeam(ctx context.Context, db *sql.DB, t *model.Team) (*model.Team, error) {
	id, err := nextID(ctx, db, "teams", "TEAM")
	if err != nil {
		return nil, err
	}

	schedule, err := json.Marshal(t.Schedule)
	if err != nil {
		return nil, fmt.Errorf("encoding team schedule: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO teams (id, name, lead, lead_id, description, skills, schedule)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, t.Name, t.Lead, t.LeadID, t.Description, encodeList(t.Skills), string(schedule),
	)
	if err != nil {
		return nil, fmt.Errorf("creating team: %w", err)
	}

	for _, m := range t.Members {
		if err := AddTeamMember(ctx, db, id, m); err != nil {
			return nil, err
		}
	}

	return GetTeam(ctx, db, id)
}

// AddTeamMember adds a volunteer to a team's roster.
func AddTeamMember(ctx context.Context, db *sql.DB, teamID string, m model.TeamMember) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO team_members (id, team_id, name, role, join_date, skills)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		m.ID, teamID, m.Name, m.Role, m.JoinDate, encodeList(m.Skills),
	)
	if err != nil {
		return fmt.Errorf("adding team member: %w", err)
	}
	return nil
}

// GetTeam returns a team by ID with its roster and request workload.
func GetTeam(ctx context.Context, db *sql.DB, id string) (*model.Team, error) {
	return getTeam(ctx, db, `id = ?`, id)
}

// GetTeamByName returns a team by its unique name.
func GetTeamByName(ctx context.Context, db *sql.DB, name string) (*model.Team, error) {
	return getTeam(ctx, db, `name = ?`, name)
}

func getTeam(ctx context.Context, db *sql.DB, where string, arg any) (*model.Team, error) {
	t, err := scanTeam(db.QueryRowContext(ctx,
		`SELECT id, name, lead, lead_id, description, skills, schedule, created_at
		 FROM teams WHERE `+where, arg))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting team: %w", err)
	}

	if t.Members, err = getTeamMembers(ctx, db, t.ID); err != nil {
		return nil, err
	}
	if t.ActiveRequests, t.CompletedRequests, err = getTeamWorkload(ctx, db, t.Name); err != nil {
		return nil, err
	}
	return t, nil
}

// SearchTeams returns teams whose id, name, lead or skills contain the query
// (case-insensitive), with rosters attached. An empty query returns all.
func SearchTeams(ctx context.Context, db *sql.DB, query string) ([]model.Team, error) {
	q := `SELECT id, name, lead, lead_id, description, skills, schedule, created_at FROM teams`
	var args []any

	if query != "" {
		q += ` WHERE lower(id) LIKE ? ESCAPE '\' OR lower(name) LIKE ? ESCAPE '\'
		        OR lower(lead) LIKE ? ESCAPE '\' OR lower(skills) LIKE ? ESCAPE '\'`
		p := likePattern(query)
		args = append(args, p, p, p, p)
	}
	q += ` ORDER BY id`

	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("searching teams: %w", err)
	}
	defer rows.Close()

	var teams []model.Team
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning team: %w", err)
		}
		teams = append(teams, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range teams {
		if teams[i].Members, err = getTeamMembers(ctx, db, teams[i].ID); err != nil {
			return nil, err
		}
		if teams[i].ActiveRequests, teams[i].CompletedRequests, err = getTeamWorkload(ctx, db, teams[i].Name); err != nil {
			return nil, err
		}
	}
	return teams, nil
}

func getTeamMembers(ctx context.Context, db *sql.DB, teamID string) ([]model.TeamMember, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, name, role, join_date, skills FROM team_members WHERE team_id = ? ORDER BY id`,
		teamID)
	if err != nil {
		return nil, fmt.Errorf("getting team members: %w", err)
	}
	defer rows.Close()

	var members []model.TeamMember
	for rows.Next() {
		var m model.TeamMember
		var joinDate, skills sql.NullString
		if err := rows.Scan(&m.ID, &m.Name, &m.Role, &joinDate, &skills); err != nil {
			return nil, fmt.Errorf("scanning team member: %w", err)
		}
		m.JoinDate = joinDate.String
		m.Skills = decodeList(skills.String)
		members = append(members, m)
	}
	return members, rows.Err()
}

// getTeamWorkload splits the team's assigned requests into active and
// completed summaries.
func getTeamWorkload(ctx context.Context, db *sql.DB, teamName string) (active, completed []model.RequestSummary, err error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, client, type, date, status FROM requests
		 WHERE team = ? AND deleted_at IS NULL ORDER BY id`, teamName)
	if err != nil {
		return nil, nil, fmt.Errorf("getting team workload: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var s model.RequestSummary
		var date sql.NullString
		if err := rows.Scan(&s.ID, &s.Client, &s.Type, &date, &s.Status); err != nil {
			return nil, nil, fmt.Errorf("scanning team request: %w", err)
		}
		s.Date = date.String
		if s.Status == model.RequestCompleted {
			completed = append(completed, s)
		} else {
			active = append(active, s)
		}
	}
	return active, completed, rows.Err()
}

func scanTeam(row scanner) (*model.Team, error) {
	t := &model.Team{}
	var leadID, description, skills, schedule sql.NullString
	err := row.Scan(&t.ID, &t.Name, &t.Lead, &leadID, &description, &skills, &schedule, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	t.LeadID = leadID.String
	t.Description = description.String
	t.Skills = decodeList(skills.String)
	if schedule.String != "" {
		if err := json.Unmarshal([]byte(schedule.String), &t.Schedule); err != nil {
			return nil, fmt.Errorf("decoding team schedule: %w", err)
		}
	}
	return t, nil
}
