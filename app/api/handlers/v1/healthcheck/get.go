package healthcheck

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-crud/platform/web/handler"
	"net/http"
)

const message = "Simple health checker service is running!"

// Health is the health check response
type Health struct {
	Status  string `json:"status" example:"success"`
	Message string `json:"message" example:"Simple health checker service is running!"`
}

// Get godoc
// @Summary Health check
// @Description Answers as long as the process serves requests
// @Tags Health
// @Produce json
// @Success 200 {object} healthcheck.Health
// @Router /api/healthchecker [get]
func Get(_ *gin.Context) handler.Result {
	return handler.Result{
		Status: http.StatusOK,
		Body:   Health{Status: handler.StatusSuccess, Message: message},
	}
}
