package notes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-keeper/business/v1/note"
	"github.com/ribgsilva/note-keeper/platform/web/handler"
)

type ColorRequest struct {
	Color note.Color `json:"color" example:"blue"`
}

// Update godoc
// @Summary Edit a note
// @Description Merge the given fields into the note
// @Tags Note
// @Accept json
// @Param id path string true "Note id"
// @Param patch body note.Patch true "Fields to change"
// @Success 204
// @Failure 400 {object} handler.Error
// @Router /v1/notes/{id} [patch]
func (h Handlers) Update(ctx *gin.Context) handler.Result {
	var p note.Patch
	if err := ctx.ShouldBindJSON(&p); err != nil {
		return handler.Fail(http.StatusBadRequest, "invalid body")
	}
	return done(h.Store.Update(ctx, ctx.Param("id"), p))
}

// Color godoc
// @Summary Change the color of a note
// @Tags Note
// @Accept json
// @Param id path string true "Note id"
// @Param color body notes.ColorRequest true "Color"
// @Success 204
// @Failure 400 {object} handler.Error
// @Router /v1/notes/{id}/color [put]
func (h Handlers) Color(ctx *gin.Context) handler.Result {
	var r ColorRequest
	if err := ctx.ShouldBindJSON(&r); err != nil {
		return handler.Fail(http.StatusBadRequest, "invalid body")
	}
	return done(h.Store.ChangeColor(ctx, ctx.Param("id"), r.Color))
}

// Pin godoc
// @Summary Pin or unpin a note
// @Tags Note
// @Param id path string true "Note id"
// @Success 204
// @Router /v1/notes/{id}/pin [post]
func (h Handlers) Pin(ctx *gin.Context) handler.Result {
	return done(h.Store.TogglePin(ctx, ctx.Param("id")))
}

// Archive godoc
// @Summary Archive a note
// @Description Archive a note, archived notes are unpinned
// @Tags Note
// @Param id path string true "Note id"
// @Success 204
// @Router /v1/notes/{id}/archive [post]
func (h Handlers) Archive(ctx *gin.Context) handler.Result {
	return done(h.Store.Archive(ctx, ctx.Param("id")))
}

// Restore godoc
// @Summary Restore a note
// @Description Bring a note back from the archive and the trash
// @Tags Note
// @Param id path string true "Note id"
// @Success 204
// @Router /v1/notes/{id}/restore [post]
func (h Handlers) Restore(ctx *gin.Context) handler.Result {
	return done(h.Store.Restore(ctx, ctx.Param("id")))
}
