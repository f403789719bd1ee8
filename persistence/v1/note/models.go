package note

import (
	"errors"
	"github.com/google/uuid"
	"time"
)

const noteKey = "notes.%s"

const columns = "id, title, content, category, published, created_at, updated_at"

var (
	// ErrNotFound is returned when no row matches the id
	ErrNotFound = errors.New("note not found")
	// ErrDuplicateTitle is returned when the title is already taken by another note
	ErrDuplicateTitle = errors.New("note title already exists")
)

type Note struct {
	Id        uuid.UUID
	Title     string
	Content   string
	Category  string
	Published bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type NewNote struct {
	Title    string
	Content  string
	Category string
}
