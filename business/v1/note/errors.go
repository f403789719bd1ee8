package note

import (
	"errors"
	"github.com/ribgsilva/note-crud/persistence/v1/note"
)

var (
	// ErrNotFound is returned when there is no note with the id
	ErrNotFound = note.ErrNotFound
	// ErrConflict is returned when another note already has the title
	ErrConflict = note.ErrDuplicateTitle
	// ErrInvalid is returned when the input breaks a required field or a bound
	ErrInvalid = errors.New("invalid note input")
)
