package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hwfottawa/hwfadmin/internal/model"
)

const clientColumns = `id, first_name, last_name, email, phone, address, city, postal_code,
	languages_spoken, country_of_origin, status_in_canada, housing_type,
	has_transportation, number_of_adults, number_of_children, children_ages,
	created_at, updated_at, deleted_at`

// CreateClient creates a new client record and allocates its token.
func CreateClient(ctx context.Context, db *sql.DB, c *model.Client) (*model.Client, error) {
	id, err := nextID(ctx, db, "clients", "CLT")
	if err != nil {
		return nil, err
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO clients (id, first_name, last_name, email, phone, address, city, postal_code,
		                      languages_spoken, country_of_origin, status_in_canada, housing_type,
		                      has_transportation, number_of_adults, number_of_children, children_ages)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, c.FirstName, c.LastName, c.Email, c.Phone, c.Address, c.City, c.PostalCode,
		c.LanguagesSpoken, c.CountryOfOrigin, c.StatusInCanada, c.HousingType,
		c.HasTransportation, c.NumberOfAdults, c.NumberOfChildren, c.ChildrenAges,
	)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return GetClient(ctx, db, id)
}

// GetClient returns a client by ID.
func GetClient(ctx context.Context, db *sql.DB, id string) (*model.Client, error) {
	c, err := scanClient(db.QueryRowContext(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting client: %w", err)
	}
	return c, nil
}

// GetClientByName returns a non-deleted client by display name. Request forms
// select clients by name; the identifier is derived through this lookup.
func GetClientByName(ctx context.Context, db *sql.DB, name string) (*model.Client, error) {
	c, err := scanClient(db.QueryRowContext(ctx,
		`SELECT `+clientColumns+` FROM clients
		 WHERE first_name || ' ' || last_name = ? AND deleted_at IS NULL`, name))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting client by name: %w", err)
	}
	return c, nil
}

// SearchClients returns non-deleted clients whose id, name, country of origin
// or spoken languages contain the query (case-insensitive). An empty query
// returns the full collection.
func SearchClients(ctx context.Context, db *sql.DB, query string) ([]model.Client, error) {
	q := `SELECT ` + clientColumns + ` FROM clients WHERE deleted_at IS NULL`
	var args []any

	if query != "" {
		q += ` AND (lower(id) LIKE ? ESCAPE '\'
		        OR lower(first_name || ' ' || last_name) LIKE ? ESCAPE '\'
		        OR lower(country_of_origin) LIKE ? ESCAPE '\'
		        OR lower(languages_spoken) LIKE ? ESCAPE '\')`
		p := likePattern(query)
		args = append(args, p, p, p, p)
	}
	q += ` ORDER BY id`

	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("searching clients: %w", err)
	}
	defer rows.Close()

	var clients []model.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning client: %w", err)
		}
		clients = append(clients, *c)
	}
	return clients, rows.Err()
}

// UpdateClient replaces a client's editable fields (full-replace edit form).
func UpdateClient(ctx context.Context, db *sql.DB, id string, c *model.Client) error {
	_, err := db.ExecContext(ctx,
		`UPDATE clients SET first_name = ?, last_name = ?, email = ?, phone = ?, address = ?,
		        city = ?, postal_code = ?, languages_spoken = ?, country_of_origin = ?,
		        status_in_canada = ?, housing_type = ?, has_transportation = ?,
		        number_of_adults = ?, number_of_children = ?, children_ages = ?,
		        updated_at = CURRENT_TIMESTAMP
		 WHERE id = ? AND deleted_at IS NULL`,
		c.FirstName, c.LastName, c.Email, c.Phone, c.Address,
		c.City, c.PostalCode, c.LanguagesSpoken, c.CountryOfOrigin,
		c.StatusInCanada, c.HousingType, c.HasTransportation,
		c.NumberOfAdults, c.NumberOfChildren, c.ChildrenAges, id,
	)
	if err != nil {
		return fmt.Errorf("updating client: %w", err)
	}
	return nil
}

// DeleteClient soft-deletes a client.
func DeleteClient(ctx context.Context, db *sql.DB, id string) error {
	_, err := db.ExecContext(ctx,
		`UPDATE clients SET deleted_at = CURRENT_TIMESTAMP WHERE id = ? AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("deleting client: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanClient(row scanner) (*model.Client, error) {
	c := &model.Client{}
	var email, phone, address, city, postal, langs, country, ages sql.NullString
	err := row.Scan(&c.ID, &c.FirstName, &c.LastName, &email, &phone, &address, &city, &postal,
		&langs, &country, &c.StatusInCanada, &c.HousingType,
		&c.HasTransportation, &c.NumberOfAdults, &c.NumberOfChildren, &ages,
		&c.CreatedAt, &c.UpdatedAt, &c.DeletedAt)
	if err != nil {
		return nil, err
	}
	c.Email = email.String
	c.Phone = phone.String
	c.Address = address.String
	c.City = city.String
	c.PostalCode = postal.String
	c.LanguagesSpoken = langs.String
	c.CountryOfOrigin = country.String
	c.ChildrenAges = ages.String
	return c, nil
}
