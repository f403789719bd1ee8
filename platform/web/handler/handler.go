package handler

import (
	"github.com/gin-gonic/gin"
)

const (
	// StatusSuccess is the envelope status of every 2xx response with a body
	StatusSuccess = "success"
	// StatusError is the envelope status of every failure response
	StatusError = "Error"
)

// Result is what a handler produces, the Wrapper writes it to the response
type Result struct {
	Status int
	Body   any
}

// Error is the failure envelope
type Error struct {
	Status  string `json:"status" example:"Error"`
	Message string `json:"error_message" example:"Resource not found"`
}

// Wrapper adapts a Result producing func into a gin.HandlerFunc.
// A nil Body writes the status with an empty body.
func Wrapper(h func(ctx *gin.Context) Result) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		r := h(ctx)
		if r.Body == nil {
			ctx.Status(r.Status)
			ctx.Writer.WriteHeaderNow()
			return
		}
		ctx.JSON(r.Status, r.Body)
	}
}
