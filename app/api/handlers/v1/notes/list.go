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

// List godoc
// @Summary List notes
// @Description List one page of notes ordered by id
// @Tags Note
// @Produce json
// @Param page query int false "Page, starting at 1" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} notes.ListResponse
// @Failure 400 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /api/notes [get]
func List(ctx *gin.Context) handler.Result {
	var f note.Filter
	if err := ctx.ShouldBindQuery(&f); err != nil {
		return apperror.BadRequest.Result()
	}

	found, err := note.List(ctx, f)
	switch {
	case errors.Is(err, note.ErrInvalid):
		return apperror.BadRequest.Result()
	case err != nil:
		sys.R.Log.Errorw("list notes", "ERROR", err)
		return apperror.DatabaseError.Result()
	}

	return handler.Result{
		Status: http.StatusOK,
		Body: ListResponse{
			Status:  handler.StatusSuccess,
			Results: len(found),
			Notes:   found,
		},
	}
}
