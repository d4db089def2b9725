package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema. Entity IDs are prefixed string tokens
// (CLT001, VOL001, INV001, REQ001, TEAM001) allocated by the store.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id            INTEGER PRIMARY KEY,
    username      TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    role          TEXT NOT NULL DEFAULT 'staff' CHECK (role IN ('admin', 'coordinator', 'staff')),
    created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    deleted_at    DATETIME
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_users_username_active
    ON users(username) WHERE deleted_at IS NULL;

CREATE TABLE IF NOT EXISTS clients (
    id                 TEXT PRIMARY KEY,
    first_name         TEXT NOT NULL,
    last_name          TEXT NOT NULL,
    email              TEXT,
    phone              TEXT,
    address            TEXT,
    city               TEXT,
    postal_code        TEXT,
    languages_spoken   TEXT,
    country_of_origin  TEXT,
    status_in_canada   TEXT NOT NULL CHECK (status_in_canada IN ('refugee', 'recent-arrival', 'low-income')),
    housing_type       TEXT NOT NULL CHECK (housing_type IN ('Apartment', 'House', 'Townhouse', 'Shelter', 'Temporary')),
    has_transportation INTEGER NOT NULL DEFAULT 0,
    number_of_adults   INTEGER NOT NULL DEFAULT 1 CHECK (number_of_adults >= 1),
    number_of_children INTEGER NOT NULL DEFAULT 0 CHECK (number_of_children >= 0),
    children_ages      TEXT,
    created_at         DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at         DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    deleted_at         DATETIME
);

CREATE TABLE IF NOT EXISTS volunteers (
    id                TEXT PRIMARY KEY,
    name              TEXT NOT NULL,
    email             TEXT NOT NULL,
    phone             TEXT NOT NULL,
    address           TEXT NOT NULL,
    skills            TEXT NOT NULL,
    availability      TEXT NOT NULL,
    status            TEXT NOT NULL DEFAULT 'active' CHECK (status IN ('active', 'inactive', 'pending')),
    start_date        TEXT NOT NULL,
    emergency_contact TEXT NOT NULL,
    notes             TEXT,
    created_at        DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at        DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    deleted_at        DATETIME
);

CREATE TABLE IF NOT EXISTS inventory_items (
    id          TEXT PRIMARY KEY,
    name        TEXT NOT NULL,
    category    TEXT NOT NULL,
    condition   TEXT NOT NULL,
    status      TEXT NOT NULL DEFAULT 'available' CHECK (status IN ('available', 'reserved', 'assigned')),
    quantity    INTEGER NOT NULL DEFAULT 0 CHECK (quantity >= 0),
    location    TEXT NOT NULL,
    date_added  TEXT,
    description TEXT,
    image       BLOB,
    image_mime  TEXT,
    created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    deleted_at  DATETIME
);

CREATE TABLE IF NOT EXISTS item_events (
    id       TEXT PRIMARY KEY,
    item_id  TEXT NOT NULL REFERENCES inventory_items(id),
    date     DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    type     TEXT NOT NULL CHECK (type IN ('add', 'remove', 'note')),
    quantity INTEGER NOT NULL DEFAULT 0,
    reason   TEXT,
    action   TEXT,
    user     TEXT
);

CREATE TABLE IF NOT EXISTS requests (
    id          TEXT PRIMARY KEY,
    client      TEXT NOT NULL,
    client_id   TEXT NOT NULL REFERENCES clients(id),
    type        TEXT NOT NULL,
    team        TEXT,
    assigned_to TEXT,
    status      TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'processing', 'scheduled', 'completed')),
    date        TEXT,
    description TEXT NOT NULL,
    priority    TEXT NOT NULL DEFAULT 'medium' CHECK (priority IN ('low', 'medium', 'high', 'urgent')),
    items       TEXT,
    created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    deleted_at  DATETIME
);

CREATE TABLE IF NOT EXISTS request_events (
    id         TEXT PRIMARY KEY,
    request_id TEXT NOT NULL REFERENCES requests(id),
    date       DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    action     TEXT NOT NULL,
    user       TEXT
);

CREATE TABLE IF NOT EXISTS teams (
    id          TEXT PRIMARY KEY,
    name        TEXT NOT NULL UNIQUE,
    lead        TEXT NOT NULL,
    lead_id     TEXT,
    description TEXT,
    skills      TEXT,
    schedule    TEXT,
    created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS team_members (
    id        TEXT NOT NULL,
    team_id   TEXT NOT NULL REFERENCES teams(id),
    name      TEXT NOT NULL,
    role      TEXT NOT NULL,
    join_date TEXT,
    skills    TEXT,
    PRIMARY KEY (team_id, id)
);

CREATE TABLE IF NOT EXISTS settings (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS revoked_tokens (
    jti        TEXT PRIMARY KEY,
    expires_at DATETIME NOT NULL
);
`

// EnsureSchema creates all tables and indexes if they don't already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
