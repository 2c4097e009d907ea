package notes

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-keeper/platform/web/handler"
)

// Delete godoc
// @Summary Move a note to the trash
// @Tags Note
// @Param id path string true "Note id"
// @Success 204
// @Router /v1/notes/{id} [delete]
func (h Handlers) Delete(ctx *gin.Context) handler.Result {
	return done(h.Store.SoftDelete(ctx, ctx.Param("id")))
}

// DeletePermanently godoc
// @Summary Delete a note forever
// @Description Remove a note from the collection, this can not be undone and must be confirmed
// @Tags Note
// @Param id path string true "Note id"
// @Param confirm query bool true "must be true"
// @Success 204
// @Failure 412 {object} handler.Error
// @Router /v1/notes/{id}/permanent [delete]
func (h Handlers) DeletePermanently(ctx *gin.Context) handler.Result {
	if confirm, _ := strconv.ParseBool(ctx.Query("confirm")); !confirm {
		return handler.Fail(http.StatusPreconditionFailed, "permanent delete must be confirmed")
	}
	return done(h.Store.PermanentlyDelete(ctx, ctx.Param("id")))
}
