package note

import (
	"context"
	"github.com/google/uuid"
	"github.com/ribgsilva/note-crud/persistence/v1/note"
)

// Update merges the supplied fields over the stored note and writes it back.
// The read and the write are not atomic, the last writer wins.
func Update(ctx context.Context, id uuid.UUID, upd UpdateNote) (Note, error) {
	existing, err := note.Find(ctx, id)
	if err != nil {
		return Note{}, err
	}

	updated, err := note.Update(ctx, upd.merge(existing))
	if err != nil {
		return Note{}, err
	}
	return Note(updated), nil
}

func (u UpdateNote) merge(n note.Note) note.Note {
	if u.Title != nil {
		n.Title = *u.Title
	}
	if u.Content != nil {
		n.Content = *u.Content
	}
	if u.Category != nil {
		n.Category = *u.Category
	}
	if u.Published != nil {
		n.Published = *u.Published
	}
	return n
}
