package note

import (
	"context"
	"fmt"
	"github.com/ribgsilva/note-crud/persistence/v1/note"
)

// Create stores a new unpublished note
func Create(ctx context.Context, newN NewNote) (Note, error) {
	if newN.Title == "" || newN.Content == "" {
		return Note{}, fmt.Errorf("title and content are required: %w", ErrInvalid)
	}

	created, err := note.Insert(ctx, note.NewNote(newN))
	if err != nil {
		return Note{}, err
	}
	return Note(created), nil
}
