package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/hwfottawa/hwfadmin/internal/model"
)

const itemColumns = `id, name, category, condition, status, quantity, location, date_added,
	description, image_mime, created_at, updated_at, deleted_at`

// CreateItem creates an inventory item and records its arrival in the
// item's history.
func CreateItem(ctx context.Context, db *sql.DB, item *model.InventoryItem, user string) (*model.InventoryItem, error) {
	id, err := nextID(ctx, db, "inventory_items", "INV")
	if err != nil {
		return nil, err
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO inventory_items (id, name, category, condition, status, quantity, location,
		                              date_added, description)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, item.Name, item.Category, item.Condition, item.Status, item.Quantity, item.Location,
		item.DateAdded, item.Description,
	)
	if err != nil {
		return nil, fmt.Errorf("creating inventory item: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO item_events (id, item_id, type, quantity, action, user)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), id, model.StockNote, 0, "Item added to inventory", user,
	)
	if err != nil {
		return nil, fmt.Errorf("recording item creation: %w", err)
	}

	return GetItem(ctx, db, id)
}

// GetItem returns an inventory item by ID. The image blob is fetched
// separately through GetItemImage.
func GetItem(ctx context.Context, db *sql.DB, id string) (*model.InventoryItem, error) {
	item, err := scanItem(db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM inventory_items WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting inventory item: %w", err)
	}
	return item, nil
}

// SearchItems returns non-deleted items whose id, name, category or location
// contain the query (case-insensitive). An empty query returns everything.
func SearchItems(ctx context.Context, db *sql.DB, query string) ([]model.InventoryItem, error) {
	q := `SELECT ` + itemColumns + ` FROM inventory_items WHERE deleted_at IS NULL`
	var args []any

	if query != "" {
		q += ` AND (lower(id) LIKE ? ESCAPE '\' OR lower(name) LIKE ? ESCAPE '\'
		        OR lower(category) LIKE ? ESCAPE '\' OR lower(location) LIKE ? ESCAPE '\')`
		p := likePattern(query)
		args = append(args, p, p, p, p)
	}
	q += ` ORDER BY id`

	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("searching inventory: %w", err)
	}
	defer rows.Close()

	var items []model.InventoryItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning inventory item: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

// UpdateItem replaces an item's editable fields. Status and quantity are
// mutated through AdjustStock, not edits.
func UpdateItem(ctx context.Context, db *sql.DB, id string, item *model.InventoryItem) error {
	_, err := db.ExecContext(ctx,
		`UPDATE inventory_items SET name = ?, category = ?, condition = ?, location = ?,
		        date_added = ?, description = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ? AND deleted_at IS NULL`,
		item.Name, item.Category, item.Condition, item.Location,
		item.DateAdded, item.Description, id,
	)
	if err != nil {
		return fmt.Errorf("updating inventory item: %w", err)
	}
	return nil
}

// DeleteItem soft-deletes an inventory item. History rows are kept.
func DeleteItem(ctx context.Context, db *sql.DB, id string) error {
	_, err := db.ExecContext(ctx,
		`UPDATE inventory_items SET deleted_at = CURRENT_TIMESTAMP WHERE id = ? AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("deleting inventory item: %w", err)
	}
	return nil
}

// AdjustStock applies a stock action to an item inside a transaction and
// appends the matching history event. A removal larger than the current
// quantity fails with ErrInsufficient; nothing is clamped.
func AdjustStock(ctx context.Context, db *sql.DB, id, action string, quantity int, reason, user string) (*model.InventoryItem, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("starting stock transaction: %w", err)
	}
	defer tx.Rollback()

	var current int
	err = tx.QueryRowContext(ctx,
		`SELECT quantity FROM inventory_items WHERE id = ? AND deleted_at IS NULL`, id).Scan(&current)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading stock level: %w", err)
	}

	var next int
	switch action {
	case model.StockAdd:
		next = current + quantity
	case model.StockRemove:
		if quantity > current {
			return nil, ErrInsufficient
		}
		next = current - quantity
	default:
		return nil, ErrUnknownAction
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE inventory_items SET quantity = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		next, id,
	)
	if err != nil {
		return nil, fmt.Errorf("adjusting stock: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO item_events (id, item_id, type, quantity, reason, user)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), id, action, quantity, reason, user,
	)
	if err != nil {
		return nil, fmt.Errorf("recording stock event: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing stock transaction: %w", err)
	}

	return GetItem(ctx, db, id)
}

// AddItemNote appends a free-form note to an item's history.
func AddItemNote(ctx context.Context, db *sql.DB, id, note, user string) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO item_events (id, item_id, type, quantity, action, user)
		 VALUES (?, ?, ?, 0, ?, ?)`,
		uuid.NewString(), id, model.StockNote, note, user,
	)
	if err != nil {
		return fmt.Errorf("adding item note: %w", err)
	}
	return nil
}

// GetItemHistory returns an item's history, newest first.
func GetItemHistory(ctx context.Context, db *sql.DB, id string) ([]model.ItemEvent, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, item_id, date, type, quantity, reason, action, user
		 FROM item_events WHERE item_id = ? ORDER BY date DESC, rowid DESC`, id)
	if err != nil {
		return nil, fmt.Errorf("getting item history: %w", err)
	}
	defer rows.Close()

	var events []model.ItemEvent
	for rows.Next() {
		var e model.ItemEvent
		var reason, action, user sql.NullString
		err := rows.Scan(&e.ID, &e.ItemID, &e.Date, &e.Type, &e.Quantity, &reason, &action, &user)
		if err != nil {
			return nil, fmt.Errorf("scanning item event: %w", err)
		}
		e.Reason = reason.String
		e.Action = action.String
		e.User = user.String
		events = append(events, e)
	}
	return events, rows.Err()
}

// SetItemImage stores a processed item photo.
func SetItemImage(ctx context.Context, db *sql.DB, id string, image []byte, mime string) error {
	_, err := db.ExecContext(ctx,
		`UPDATE inventory_items SET image = ?, image_mime = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ? AND deleted_at IS NULL`,
		image, mime, id,
	)
	if err != nil {
		return fmt.Errorf("setting item image: %w", err)
	}
	return nil
}

// GetItemImage returns an item's photo and its MIME type, or nil when the
// item has no photo.
func GetItemImage(ctx context.Context, db *sql.DB, id string) ([]byte, string, error) {
	var image []byte
	var mime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT image, image_mime FROM inventory_items WHERE id = ?`, id).Scan(&image, &mime)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("getting item image: %w", err)
	}
	return image, mime.String, nil
}

func scanItem(row scanner) (*model.InventoryItem, error) {
	item := &model.InventoryItem{}
	var dateAdded, description, imageMime sql.NullString
	err := row.Scan(&item.ID, &item.Name, &item.Category, &item.Condition, &item.Status,
		&item.Quantity, &item.Location, &dateAdded, &description, &imageMime,
		&item.CreatedAt, &item.UpdatedAt, &item.DeletedAt)
	if err != nil {
		return nil, err
	}
	item.DateAdded = dateAdded.String
	item.Description = description.String
	item.ImageMime = imageMime.String
	return item, nil
}
