package note

import (
	"context"
	"github.com/google/uuid"
)

// Find returns the note with the id, looking into the cache before the database.
// ErrNotFound is returned when there is no such note.
func Find(ctx context.Context, id uuid.UUID) (Note, error) {
	if n, ok := cacheGet(ctx, id); ok {
		return n, nil
	}

	n, err := selectByID(ctx, id.String())
	if err != nil {
		return Note{}, err
	}

	cacheSet(ctx, n)
	return n, nil
}
