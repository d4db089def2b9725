package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hwfottawa/hwfadmin/internal/model"
)

// GetDashboard derives the landing-page stat cards and the ten most recent
// history events across requests and inventory.
func GetDashboard(ctx context.Context, db *sql.DB) (*model.Dashboard, error) {
	d := &model.Dashboard{RecentActivity: []model.Activity{}}

	counts := []struct {
		dest  *int
		query string
	}{
		{&d.TotalClients, `SELECT COUNT(*) FROM clients WHERE deleted_at IS NULL`},
		{&d.ActiveVolunteers, `SELECT COUNT(*) FROM volunteers WHERE status = 'active' AND deleted_at IS NULL`},
		{&d.InventoryItems, `SELECT COUNT(*) FROM inventory_items WHERE deleted_at IS NULL`},
		{&d.PendingRequests, `SELECT COUNT(*) FROM requests WHERE status = 'pending' AND deleted_at IS NULL`},
	}
	for _, c := range counts {
		if err := db.QueryRowContext(ctx, c.query).Scan(c.dest); err != nil {
			return nil, fmt.Errorf("counting dashboard stats: %w", err)
		}
	}

	rows, err := db.QueryContext(ctx,
		`SELECT request_id, action, coalesce(user, ''), date FROM request_events
		 UNION ALL
		 SELECT item_id,
		        CASE type
		          WHEN 'add' THEN 'Added ' || quantity || ' (' || coalesce(reason, '') || ')'
		          WHEN 'remove' THEN 'Removed ' || quantity || ' (' || coalesce(reason, '') || ')'
		          ELSE coalesce(action, '')
		        END,
		        coalesce(user, ''), date
		 FROM item_events
		 ORDER BY date DESC LIMIT 10`)
	if err != nil {
		return nil, fmt.Errorf("getting recent activity: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var a model.Activity
		if err := rows.Scan(&a.Subject, &a.Action, &a.User, &a.Date); err != nil {
			return nil, fmt.Errorf("scanning activity: %w", err)
		}
		d.RecentActivity = append(d.RecentActivity, a)
	}
	return d, rows.Err()
}
