package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hwfottawa/hwfadmin/internal/model"
)

const volunteerColumns = `id, name, email, phone, address, skills, availability, status,
	start_date, emergency_contact, notes, created_at, updated_at, deleted_at`

// CreateVolunteer creates a new volunteer record and allocates its token.
func CreateVolunteer(ctx context.Context, db *sql.DB, v *model.Volunteer) (*model.Volunteer, error) {
	id, err := nextID(ctx, db, "volunteers", "VOL")
	if err != nil {
		return nil, err
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO volunteers (id, name, email, phone, address, skills, availability, status,
		                         start_date, emergency_contact, notes)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, v.Name, v.Email, v.Phone, v.Address, encodeList(v.Skills), v.Availability, v.Status,
		v.StartDate, v.EmergencyContact, v.Notes,
	)
	if err != nil {
		return nil, fmt.Errorf("creating volunteer: %w", err)
	}

	return GetVolunteer(ctx, db, id)
}

// GetVolunteer returns a volunteer by ID.
func GetVolunteer(ctx context.Context, db *sql.DB, id string) (*model.Volunteer, error) {
	v, err := scanVolunteer(db.QueryRowContext(ctx,
		`SELECT `+volunteerColumns+` FROM volunteers WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting volunteer: %w", err)
	}
	return v, nil
}

// SearchVolunteers returns non-deleted volunteers whose id, name, email or
// skills contain the query (case-insensitive). An empty query returns the
// full roster.
func SearchVolunteers(ctx context.Context, db *sql.DB, query string) ([]model.Volunteer, error) {
	q := `SELECT ` + volunteerColumns + ` FROM volunteers WHERE deleted_at IS NULL`
	var args []any

	if query != "" {
		q += ` AND (lower(id) LIKE ? ESCAPE '\' OR lower(name) LIKE ? ESCAPE '\'
		        OR lower(email) LIKE ? ESCAPE '\' OR lower(skills) LIKE ? ESCAPE '\')`
		p := likePattern(query)
		args = append(args, p, p, p, p)
	}
	q += ` ORDER BY id`

	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("searching volunteers: %w", err)
	}
	defer rows.Close()

	var volunteers []model.Volunteer
	for rows.Next() {
		v, err := scanVolunteer(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning volunteer: %w", err)
		}
		volunteers = append(volunteers, *v)
	}
	return volunteers, rows.Err()
}

// UpdateVolunteer replaces a volunteer's editable fields.
func UpdateVolunteer(ctx context.Context, db *sql.DB, id string, v *model.Volunteer) error {
	_, err := db.ExecContext(ctx,
		`UPDATE volunteers SET name = ?, email = ?, phone = ?, address = ?, skills = ?,
		        availability = ?, status = ?, start_date = ?, emergency_contact = ?, notes = ?,
		        updated_at = CURRENT_TIMESTAMP
		 WHERE id = ? AND deleted_at IS NULL`,
		v.Name, v.Email, v.Phone, v.Address, encodeList(v.Skills),
		v.Availability, v.Status, v.StartDate, v.EmergencyContact, v.Notes, id,
	)
	if err != nil {
		return fmt.Errorf("updating volunteer: %w", err)
	}
	return nil
}

// ToggleVolunteerStatus flips a volunteer between active and inactive.
// Pending is an onboarding state and is not togglable from the roster.
func ToggleVolunteerStatus(ctx context.Context, db *sql.DB, id string) (*model.Volunteer, error) {
	v, err := GetVolunteer(ctx, db, id)
	if err != nil {
		return nil, err
	}
	if v == nil || v.DeletedAt != nil {
		return nil, nil
	}

	var next string
	switch v.Status {
	case model.VolunteerActive:
		next = model.VolunteerInactive
	case model.VolunteerInactive:
		next = model.VolunteerActive
	default:
		return nil, ErrPendingToggle
	}

	_, err = db.ExecContext(ctx,
		`UPDATE volunteers SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		next, id,
	)
	if err != nil {
		return nil, fmt.Errorf("toggling volunteer status: %w", err)
	}

	return GetVolunteer(ctx, db, id)
}

// DeleteVolunteer soft-deletes a volunteer.
func DeleteVolunteer(ctx context.Context, db *sql.DB, id string) error {
	_, err := db.ExecContext(ctx,
		`UPDATE volunteers SET deleted_at = CURRENT_TIMESTAMP WHERE id = ? AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("deleting volunteer: %w", err)
	}
	return nil
}

func scanVolunteer(row scanner) (*model.Volunteer, error) {
	v := &model.Volunteer{}
	var skills string
	var notes sql.NullString
	err := row.Scan(&v.ID, &v.Name, &v.Email, &v.Phone, &v.Address, &skills, &v.Availability,
		&v.Status, &v.StartDate, &v.EmergencyContact, &notes,
		&v.CreatedAt, &v.UpdatedAt, &v.DeletedAt)
	if err != nil {
		return nil, err
	}
	v.Skills = decodeList(skills)
	v.Notes = notes.String
	return v, nil
}
