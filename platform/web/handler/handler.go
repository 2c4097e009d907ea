package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Result is what every handler returns, the Wrapper writes it as json
type Result struct {
	Status int
	Body   any
}

// Error is the body returned on failures
type Error struct {
	Message string `json:"message" example:"invalid id"`
}

// Func is a gin handler that returns its response instead of writing it
type Func func(ctx *gin.Context) Result

// Wrapper adapts a Func into a gin.HandlerFunc
func Wrapper(f Func) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		r := f(ctx)
		switch {
		case r.Status == 0:
			ctx.Status(http.StatusOK)
		case r.Body == nil:
			ctx.Status(r.Status)
		default:
			ctx.JSON(r.Status, r.Body)
		}
	}
}

// Fail is a shortcut for an error Result
func Fail(status int, message string) Result {
	return Result{Status: status, Body: Error{Message: message}}
}
