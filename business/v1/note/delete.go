package note

import (
	"context"
	"github.com/google/uuid"
	"github.com/ribgsilva/note-crud/persistence/v1/note"
)

// Delete removes the note, ErrNotFound is returned when nothing was removed
func Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := note.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
