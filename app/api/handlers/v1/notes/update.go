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

// Update godoc
// @Summary Update a note
// @Description Update the supplied fields of a note, omitted fields keep their value
// @Tags Note
// @Accept json
// @Produce json
// @Param id path string true "Note id"
// @Param note body note.UpdateNote true "Fields to change"
// @Success 200 {object} notes.NoteResponse
// @Failure 400 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /api/notes/{id} [put]
// @Router /api/notes/{id} [patch]
func Update(ctx *gin.Context) handler.Result {
	id, bad := pathID(ctx)
	if bad != nil {
		return *bad
	}

	var upd note.UpdateNote
	if err := ctx.ShouldBindJSON(&upd); err != nil {
		return apperror.BadRequest.Result()
	}

	updated, err := note.Update(ctx, id, upd)
	switch {
	case errors.Is(err, note.ErrNotFound):
		return apperror.NotFound.Result()
	case err != nil:
		sys.R.Log.Errorw("update note", "id", id, "ERROR", err)
		return apperror.DatabaseError.Result()
	}

	return noteResult(http.StatusOK, updated)
}
