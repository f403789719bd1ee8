package note

import (
	"context"
	"fmt"
	"github.com/ribgsilva/note-crud/persistence/v1/note"
	"math"
)

// Window turns the filter into a limit and an offset
func (f Filter) Window() (limit, offset int, err error) {
	page, limit := DefaultPage, DefaultLimit
	if f.Page != nil {
		page = *f.Page
	}
	if f.Limit != nil {
		limit = *f.Limit
	}
	if page < 1 || limit < 1 {
		return 0, 0, fmt.Errorf("page %d limit %d: %w", page, limit, ErrInvalid)
	}
	if page-1 > math.MaxInt/limit {
		return 0, 0, fmt.Errorf("page %d limit %d: offset out of range: %w", page, limit, ErrInvalid)
	}
	return limit, (page - 1) * limit, nil
}

// List returns one page of notes ordered by id
func List(ctx context.Context, f Filter) ([]Note, error) {
	limit, offset, err := f.Window()
	if err != nil {
		return nil, err
	}

	found, err := note.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	notes := make([]Note, len(found))
	for i, n := range found {
		notes[i] = Note(n)
	}
	return notes, nil
}
