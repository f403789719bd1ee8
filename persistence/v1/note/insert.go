package note

import (
	"context"
	"fmt"
	"github.com/google/uuid"
	"github.com/ribgsilva/note-crud/platform/database"
	"github.com/ribgsilva/note-crud/sys"
	"time"
)

// Insert stores a new note and returns it as stored.
// ErrDuplicateTitle is returned when the title is taken.
func Insert(ctx context.Context, newN NewNote) (Note, error) {
	db := sys.R.Database

	id, err := uuid.NewV7()
	if err != nil {
		return Note{}, fmt.Errorf("failed to generate id: %w", err)
	}
	n := time.Now().UTC().Truncate(time.Microsecond)

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, query("INSERT INTO notes ("+columns+") VALUES (?, ?, ?, ?, ?, ?, ?)"))
	if err != nil {
		return Note{}, fmt.Errorf("failed to prepare insert stmt: %w", err)
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(dbCtx, id.String(), newN.Title, newN.Content, newN.Category, false, n, n)
	switch {
	case database.IsUniqueViolation(err):
		return Note{}, fmt.Errorf("failed to exec insert stmt: %w", ErrDuplicateTitle)
	case err != nil:
		return Note{}, fmt.Errorf("failed to exec insert stmt: %w", err)
	}

	return selectByID(ctx, id.String())
}
