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

// Delete godoc
// @Summary Delete a note
// @Description Delete a note using its id
// @Tags Note
// @Param id path string true "Note id"
// @Success 204
// @Failure 400 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /api/notes/{id} [delete]
func Delete(ctx *gin.Context) handler.Result {
	id, bad := pathID(ctx)
	if bad != nil {
		return *bad
	}

	err := note.Delete(ctx, id)
	switch {
	case errors.Is(err, note.ErrNotFound):
		return apperror.NotFound.Result()
	case err != nil:
		sys.R.Log.Errorw("delete note", "id", id, "ERROR", err)
		return apperror.DatabaseError.Result()
	}

	return handler.Result{Status: http.StatusNoContent}
}
