// Package apperror holds the closed set of failure kinds the API can answer with.
// Every kind is bound to one HTTP status and one fixed message.
package apperror

import (
	"github.com/ribgsilva/note-crud/platform/web/handler"
	"net/http"
)

// Kind is one member of the failure taxonomy
type Kind int

const (
	DatabaseError Kind = iota
	NotFound
	BadRequest
	InternalServerError
	Conflict
)

type binding struct {
	name    string
	status  int
	message string
}

var kinds = map[Kind]binding{
	DatabaseError:       {"DatabaseError", http.StatusInternalServerError, "Failed to action on database"},
	NotFound:            {"NotFound", http.StatusNotFound, "Resource not found"},
	BadRequest:          {"BadRequest", http.StatusBadRequest, "Bad request"},
	InternalServerError: {"InternalServerError", http.StatusInternalServerError, "Internal server error"},
	Conflict:            {"Conflict", http.StatusConflict, "Note with that title already exists"},
}

// lookup falls back to InternalServerError for values outside the set
func (k Kind) lookup() binding {
	if b, ok := kinds[k]; ok {
		return b
	}
	return kinds[InternalServerError]
}

// Status returns the HTTP status code of the kind
func (k Kind) Status() int {
	return k.lookup().status
}

// Message returns the fixed human-readable message of the kind
func (k Kind) Message() string {
	return k.lookup().message
}

func (k Kind) String() string {
	return k.lookup().name
}

// Error lets a Kind travel as an error value
func (k Kind) Error() string {
	return k.Message()
}

// Envelope returns the failure body of the kind
func (k Kind) Envelope() handler.Error {
	return handler.Error{Status: handler.StatusError, Message: k.Message()}
}

// Result returns the complete failure response of the kind
func (k Kind) Result() handler.Result {
	return handler.Result{Status: k.Status(), Body: k.Envelope()}
}
