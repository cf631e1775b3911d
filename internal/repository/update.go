package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

// ErrNoFields is returned when an update payload contains none of the
// columns the endpoint is allowed to modify.
var ErrNoFields = errors.New("no valid fields to update")

// buildUpdate assembles a partial UPDATE from the allow-listed columns
// present in payload. Clauses are appended in allowed-field order and the
// argument slice mirrors that order exactly, with the row identifier bound
// last. Payload keys outside the allow-list are ignored; column names are
// never taken from the payload.
func buildUpdate(table, idColumn string, idValue any, payload map[string]any, allowed []string) (string, []any, error) {
	set := make([]string, 0, len(allowed))
	args := make([]any, 0, len(allowed)+1)

	for _, field := range allowed {
		value, ok := payload[field]
		if !ok {
			continue
		}
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", field, len(args)))
	}

	if len(set) == 0 {
		return "", nil, ErrNoFields
	}

	args = append(args, idValue)
	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE %s = $%d",
		table, strings.Join(set, ", "), idColumn, len(args),
	)
	return query, args, nil
}

// execUpdate runs a built partial update and maps an untouched row set to
// pgx.ErrNoRows so callers report it as not-found rather than success.
func execUpdate(ctx context.Context, db DBTX, table, idColumn string, idValue any, payload map[string]any, allowed []string) error {
	query, args, err := buildUpdate(table, idColumn, idValue, payload, allowed)
	if err != nil {
		return err
	}

	tag, err := db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
