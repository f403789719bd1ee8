package note

import (
	"context"
	"fmt"
	"github.com/ribgsilva/note-crud/sys"
	"time"
)

// Update writes every mutable column of n and stamps updated_at with the current time.
// ErrNotFound is returned when the note vanished before the write.
func Update(ctx context.Context, n Note) (Note, error) {
	db := sys.R.Database

	now := time.Now().UTC().Truncate(time.Microsecond)

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, query("UPDATE notes SET title = ?, content = ?, category = ?, published = ?, updated_at = ? WHERE id = ?"))
	if err != nil {
		return Note{}, fmt.Errorf("failed to prepare update stmt: %w", err)
	}
	defer stmt.Close()

	if _, err := stmt.ExecContext(dbCtx, n.Title, n.Content, n.Category, n.Published, now, n.Id.String()); err != nil {
		return Note{}, fmt.Errorf("failed to exec update stmt: %w", err)
	}
	cacheDel(ctx, n.Id)

	// rows affected is not portable here, mysql only counts changed rows
	return selectByID(ctx, n.Id.String())
}
