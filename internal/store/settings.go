package store

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"fmt"
)

// The signing secret lives in the settings table so sessions survive server
// restarts. secretBytes is the entropy of a freshly generated secret.
const (
	secretKey   = "jwt_secret"
	secretBytes = 32
)

// GetJWTSecret returns the token signing secret, generating and storing one
// the first time the server starts. INSERT OR IGNORE followed by a re-read
// keeps two instances racing on a fresh database agreeing on one secret.
func GetJWTSecret(ctx context.Context, db *sql.DB) (string, error) {
	buf := make([]byte, secretBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating signing secret: %w", err)
	}
	candidate := hex.EncodeToString(buf)

	_, err := db.ExecContext(ctx,
		`INSERT OR IGNORE INTO settings (key, value) VALUES (?, ?)`,
		secretKey, candidate,
	)
	if err != nil {
		return "", fmt.Errorf("storing signing secret: %w", err)
	}

	var secret string
	err = db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = ?`, secretKey,
	).Scan(&secret)
	if err != nil {
		return "", fmt.Errorf("reading signing secret: %w", err)
	}

	return secret, nil
}
