package note

import (
	"context"
	"fmt"
	"github.com/google/uuid"
	"github.com/ribgsilva/note-crud/sys"
)

// Delete removes the note with the id and returns how many rows went away
func Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	db := sys.R.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, query("DELETE FROM notes WHERE id = ?"))
	if err != nil {
		return 0, fmt.Errorf("failed to prepare delete stmt: %w", err)
	}
	defer stmt.Close()

	res, err := stmt.ExecContext(dbCtx, id.String())
	if err != nil {
		return 0, fmt.Errorf("failed to exec delete stmt: %w", err)
	}
	cacheDel(ctx, id)

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read delete result: %w", err)
	}
	return affected, nil
}
