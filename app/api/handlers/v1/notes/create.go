package notes

import (
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-crud/business/v1/note"
	"github.com/ribgsilva/note-crud/platform/web/apperror"
	"github.com/ribgsilva/note-crud/platform/web/handler"
	"github.com/ribgsilva/note-crud/sys"
	"net/http"
)

// Create godoc
// @Summary Create a note
// @Description Create a note, the title must not be in use
// @Tags Note
// @Accept json
// @Produce json
// @Param note body note.NewNote true "Note to create"
// @Success 201 {object} notes.NoteResponse
// @Failure 400 {object} handler.Error
// @Failure 409 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /api/notes/ [post]
func Create(ctx *gin.Context) handler.Result {
	var newN note.NewNote
	if err := ctx.ShouldBindJSON(&newN); err != nil {
		return apperror.BadRequest.Result()
	}

	created, err := note.Create(ctx, newN)
	switch {
	case errors.Is(err, note.ErrConflict):
		return apperror.Conflict.Result()
	case errors.Is(err, note.ErrInvalid):
		return apperror.BadRequest.Result()
	case err != nil:
		sys.R.Log.Errorw("create note", "title", newN.Title, "ERROR", err)
		return apperror.DatabaseError.Result()
	}

	return noteResult(http.StatusCreated, created)
}
