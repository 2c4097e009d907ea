package todos

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-keeper/business/v1/todo"
	"github.com/ribgsilva/note-keeper/platform/web/handler"
	"github.com/ribgsilva/note-keeper/sys"
)

// Handlers exposes the remote table notes are mirrored into
type Handlers struct {
	Table todo.Table
}

// List godoc
// @Summary List mirrored notes
// @Description List the rows of the remote table created notes are copied into
// @Tags Todo
// @Produce json
// @Success 200 {array} todo.Todo
// @Failure 502 {object} handler.Error
// @Router /v1/todos [get]
func (h Handlers) List(ctx *gin.Context) handler.Result {
	found, err := h.Table.FindAll(ctx)
	if err != nil {
		sys.R.Log.Errorw("list todos", "ERROR", err)
		return handler.Fail(http.StatusBadGateway, err.Error())
	}
	return handler.Result{
		Status: http.StatusOK,
		Body:   found,
	}
}

// Delete godoc
// @Summary Delete a mirrored note
// @Tags Todo
// @Param id path int true "Todo id"
// @Success 204
// @Failure 400 {object} handler.Error
// @Failure 502 {object} handler.Error
// @Router /v1/todos/{id} [delete]
func (h Handlers) Delete(ctx *gin.Context) handler.Result {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return handler.Fail(http.StatusBadRequest, "invalid id")
	}
	if err := h.Table.Delete(ctx, id); err != nil {
		sys.R.Log.Errorw("delete todo", "ERROR", err)
		return handler.Fail(http.StatusBadGateway, err.Error())
	}
	return handler.Result{Status: http.StatusNoContent}
}
