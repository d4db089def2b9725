// Package store is the single source of truth for all dashboard entities,
// backed by SQLite. Every list, detail, form and dialog reads and mutates
// entity state through this package.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors surfaced to handlers as user-correctable failures.
var (
	ErrUnknownClient = errors.New("unknown client")
	ErrUnknownTeam   = errors.New("unknown team")
	ErrNotTeamMember = errors.New("not a member of the selected team")
	ErrInsufficient  = errors.New("insufficient stock")
	ErrPendingToggle = errors.New("pending volunteers are activated through the edit form")
	ErrUnknownAction = errors.New("unknown stock action")
)

type rowQuerier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// nextID allocates the next prefixed entity token (e.g. CLT004) by
// incrementing the highest existing numeric suffix. Suffixes are zero-padded
// to three digits but keep growing past 999, so the maximum is picked by
// length before text order (CLT1000 > CLT999).
func nextID(ctx context.Context, q rowQuerier, table, prefix string) (string, error) {
	var last string
	err := q.QueryRowContext(ctx,
		`SELECT id FROM `+table+` WHERE id LIKE ? ORDER BY length(id) DESC, id DESC LIMIT 1`,
		prefix+"%",
	).Scan(&last)
	if err == sql.ErrNoRows {
		return fmt.Sprintf("%s%03d", prefix, 1), nil
	}
	if err != nil {
		return "", fmt.Errorf("allocating id for %s: %w", table, err)
	}

	n, err := strconv.Atoi(strings.TrimPrefix(last, prefix))
	if err != nil {
		return "", fmt.Errorf("parsing id %q: %w", last, err)
	}
	return fmt.Sprintf("%s%03d", prefix, n+1), nil
}

// encodeList stores a string list as a JSON text column.
func encodeList(v []string) string {
	if len(v) == 0 {
		return "[]"
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// decodeList reads a JSON text column back into a string list.
func decodeList(s string) []string {
	if s == "" {
		return nil
	}
	var v []string
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil
	}
	return v
}

// likeEscaper makes LIKE metacharacters in user queries match literally.
// Search queries pair the pattern with ESCAPE '\'.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern builds a case-insensitive substring match argument.
func likePattern(query string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(query)) + "%"
}
