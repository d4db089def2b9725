package db

import (
	"database/sql"
	"fmt"
)

// migrations is a list of SQL statements applied in order after schema
// creation. Each migration must be idempotent. Append new migrations at the
// end.
var migrations = []string{
	// Team pages and history views filter on these columns.
	`CREATE INDEX IF NOT EXISTS idx_requests_team ON requests(team) WHERE deleted_at IS NULL`,
	`CREATE INDEX IF NOT EXISTS idx_item_events_item ON item_events(item_id)`,
	`CREATE INDEX IF NOT EXISTS idx_request_events_request ON request_events(request_id)`,
}

// Migrate runs the database schema migrations.
func Migrate(db *sql.DB) error {
	if err := EnsureSchema(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	for i, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("running migration %d: %w", i+1, err)
		}
	}

	return nil
}
