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

// Get godoc
// @Summary Find a note
// @Description Find a note using its id
// @Tags Note
// @Produce json
// @Param id path string true "Note id"
// @Success 200 {object} notes.NoteResponse
// @Failure 400 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /api/notes/{id} [get]
func Get(ctx *gin.Context) handler.Result {
	id, bad := pathID(ctx)
	if bad != nil {
		return *bad
	}

	get, err := note.Find(ctx, id)
	switch {
	case errors.Is(err, note.ErrNotFound):
		return apperror.NotFound.Result()
	case err != nil:
		sys.R.Log.Errorw("find note", "id", id, "ERROR", err)
		return apperror.DatabaseError.Result()
	}

	return noteResult(http.StatusOK, get)
}
