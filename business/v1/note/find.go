package note

import (
	"context"
	"github.com/google/uuid"
	"github.com/ribgsilva/note-crud/persistence/v1/note"
)

func Find(ctx context.Context, id uuid.UUID) (Note, error) {
	find, err := note.Find(ctx, id)
	if err != nil {
		return Note{}, err
	}
	return Note(find), nil
}
