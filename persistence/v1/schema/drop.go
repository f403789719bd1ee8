package schema

import (
	"context"
	"fmt"
	"github.com/ribgsilva/note-crud/sys"
)

// Drop removes the notes table and every note in it
func Drop(ctx context.Context) error {
	db := sys.R.Database

	if _, err := db.ExecContext(ctx, dropSchema); err != nil {
		return fmt.Errorf("drop schema: %w", err)
	}

	return nil
}
