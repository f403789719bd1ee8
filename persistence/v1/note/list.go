package note

import (
	"context"
	"fmt"
	"github.com/ribgsilva/note-crud/sys"
)

// List returns at most limit notes ordered by id, skipping the first offset ones
func List(ctx context.Context, limit, offset int) ([]Note, error) {
	db := sys.R.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, query("SELECT "+columns+" FROM notes ORDER BY id LIMIT ? OFFSET ?"))
	if err != nil {
		return nil, fmt.Errorf("failed to prepare list stmt: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.QueryContext(dbCtx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query list stmt: %w", err)
	}
	defer rows.Close()

	notes := make([]Note, 0)
	for rows.Next() {
		n, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("error parsing db data: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate list stmt: %w", err)
	}

	return notes, nil
}
