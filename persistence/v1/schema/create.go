package schema

import (
	"context"
	"fmt"
	"github.com/ribgsilva/note-crud/sys"
)

// Create creates the notes table when it does not exist yet
func Create(ctx context.Context) error {
	db := sys.R.Database

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	return nil
}
