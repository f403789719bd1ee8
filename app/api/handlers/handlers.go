package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-crud/app/api/handlers/v1/healthcheck"
	"github.com/ribgsilva/note-crud/app/api/handlers/v1/notes"
	"github.com/ribgsilva/note-crud/platform/web/apperror"
	"github.com/ribgsilva/note-crud/platform/web/handler"
	"github.com/ribgsilva/note-crud/sys"
)

const HealthPath = "/api/healthchecker"

func MapDefaults(r *gin.Engine) {
	r.GET(HealthPath, handler.Wrapper(healthcheck.Get))
}

func MapApi(r *gin.Engine) {
	api := r.Group("/api/notes")
	api.GET("", handler.Wrapper(notes.List))
	api.POST("/", handler.Wrapper(notes.Create))
	api.GET("/:id", handler.Wrapper(notes.Get))
	api.PUT("/:id", handler.Wrapper(notes.Update))
	api.PATCH("/:id", handler.Wrapper(notes.Update))
	api.DELETE("/:id", handler.Wrapper(notes.Delete))
}

// MapFallbacks answers unknown routes and recovered panics with the error envelope
func MapFallbacks(r *gin.Engine) {
	r.NoRoute(func(ctx *gin.Context) {
		ctx.JSON(apperror.NotFound.Status(), apperror.NotFound.Envelope())
	})
}

// Recovery turns a panic into an InternalServerError response
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(ctx *gin.Context, recovered interface{}) {
		sys.R.Log.Errorw("panic", "path", ctx.Request.URL.Path, "ERROR", recovered)
		ctx.AbortWithStatusJSON(apperror.InternalServerError.Status(), apperror.InternalServerError.Envelope())
	})
}
