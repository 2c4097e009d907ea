package notes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-keeper/business/v1/note"
	"github.com/ribgsilva/note-keeper/platform/web/handler"
	"github.com/ribgsilva/note-keeper/sys"
)

// Create godoc
// @Summary Create a note
// @Description Create a note at the top of the collection. Nothing is created when title and content are blank
// @Tags Note
// @Accept json
// @Produce json
// @Param note body note.NewNote true "Note"
// @Success 201 {object} note.Note
// @Success 204
// @Failure 400 {object} handler.Error
// @Router /v1/notes [post]
func (h Handlers) Create(ctx *gin.Context) handler.Result {
	var newN note.NewNote
	if err := ctx.ShouldBindJSON(&newN); err != nil {
		return handler.Fail(http.StatusBadRequest, "invalid body")
	}

	n, created, err := h.Store.Add(ctx, newN.Title, newN.Content)
	switch {
	case err != nil:
		sys.R.Log.Errorw("create note", "ERROR", err)
		return handler.Fail(http.StatusInternalServerError, err.Error())
	case !created:
		return handler.Result{Status: http.StatusNoContent}
	default:
		return handler.Result{
			Status: http.StatusCreated,
			Body:   n,
		}
	}
}

// Replace godoc
// @Summary Replace every note
// @Description Replace the whole collection, used to import notes. Notes without color get the default one
// @Tags Note
// @Accept json
// @Param notes body []note.Note true "Notes"
// @Success 204
// @Failure 400 {object} handler.Error
// @Router /v1/notes [put]
func (h Handlers) Replace(ctx *gin.Context) handler.Result {
	var notes []note.Note
	if err := ctx.ShouldBindJSON(&notes); err != nil {
		return handler.Fail(http.StatusBadRequest, "invalid body")
	}
	if err := note.Prepare(notes); err != nil {
		return handler.Fail(http.StatusBadRequest, err.Error())
	}

	return done(h.Store.Replace(ctx, notes))
}

// Refresh godoc
// @Summary Reload notes
// @Description Reload the collection from storage, picking up changes made by other processes
// @Tags Note
// @Success 204
// @Router /v1/refresh [post]
func (h Handlers) Refresh(ctx *gin.Context) handler.Result {
	return done(h.Store.Refresh(ctx))
}
