package notes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-keeper/business/v1/note"
	"github.com/ribgsilva/note-keeper/platform/web/handler"
)

// List godoc
// @Summary List notes
// @Description List the notes of a view, optionally filtered by a search text. Pinned notes are only split out in the notes view
// @Tags Note
// @Produce json
// @Param view query string false "notes, labels, archive or trash" default(notes)
// @Param q query string false "case insensitive text searched in title and content"
// @Success 200 {object} note.Visible
// @Failure 400 {object} handler.Error
// @Router /v1/notes [get]
func (h Handlers) List(ctx *gin.Context) handler.Result {
	view, err := note.ParseView(ctx.Query("view"))
	if err != nil {
		return handler.Fail(http.StatusBadRequest, err.Error())
	}

	return handler.Result{
		Status: http.StatusOK,
		Body:   h.Store.Visible(view, ctx.Query("q")),
	}
}

// Get godoc
// @Summary Find a note
// @Description Find a note using its id
// @Tags Note
// @Produce json
// @Param id path string true "Note id"
// @Success 200 {object} note.Note
// @Failure 404 {object} handler.Error
// @Router /v1/notes/{id} [get]
func (h Handlers) Get(ctx *gin.Context) handler.Result {
	n, found := h.Store.Find(ctx.Param("id"))
	if !found {
		return handler.Fail(http.StatusNotFound, "note not found")
	}

	return handler.Result{
		Status: http.StatusOK,
		Body:   n,
	}
}
