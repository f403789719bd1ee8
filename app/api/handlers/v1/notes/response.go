package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ribgsilva/note-crud/business/v1/note"
	"github.com/ribgsilva/note-crud/platform/web/apperror"
	"github.com/ribgsilva/note-crud/platform/web/handler"
)

// NoteData wraps a single note
type NoteData struct {
	Note note.Note `json:"note"`
}

// NoteResponse is the success envelope of create, get and update
type NoteResponse struct {
	Status string   `json:"status" example:"success"`
	Data   NoteData `json:"data"`
}

// ListResponse is the success envelope of list.
// Results is the size of the returned page, not the size of the table.
type ListResponse struct {
	Status  string      `json:"status" example:"success"`
	Results int         `json:"results" example:"1"`
	Notes   []note.Note `json:"notes"`
}

func noteResult(status int, n note.Note) handler.Result {
	return handler.Result{
		Status: status,
		Body:   NoteResponse{Status: handler.StatusSuccess, Data: NoteData{Note: n}},
	}
}

// pathID parses the :id path param, failing with a BadRequest result
func pathID(ctx *gin.Context) (uuid.UUID, *handler.Result) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		r := apperror.BadRequest.Result()
		return uuid.Nil, &r
	}
	return id, nil
}
