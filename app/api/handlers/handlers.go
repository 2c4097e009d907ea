package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-keeper/app/api/handlers/v1/healthcheck"
	"github.com/ribgsilva/note-keeper/app/api/handlers/v1/notes"
	"github.com/ribgsilva/note-keeper/app/api/handlers/v1/todos"
	"github.com/ribgsilva/note-keeper/business/v1/note"
	"github.com/ribgsilva/note-keeper/business/v1/todo"
	"github.com/ribgsilva/note-keeper/platform/web/handler"
)

func MapDefaults(r *gin.Engine) {
	r.GET("/v1/healthcheck", handler.Wrapper(healthcheck.Get))
}

// MapApi maps the note routes, and the todo routes when a table is given
func MapApi(r *gin.Engine, store *note.Store, table todo.Table) {
	n := notes.Handlers{Store: store}
	r.GET("/v1/notes", handler.Wrapper(n.List))
	r.POST("/v1/notes", handler.Wrapper(n.Create))
	r.PUT("/v1/notes", handler.Wrapper(n.Replace))
	r.POST("/v1/refresh", handler.Wrapper(n.Refresh))
	r.GET("/v1/notes/:id", handler.Wrapper(n.Get))
	r.PATCH("/v1/notes/:id", handler.Wrapper(n.Update))
	r.DELETE("/v1/notes/:id", handler.Wrapper(n.Delete))
	r.DELETE("/v1/notes/:id/permanent", handler.Wrapper(n.DeletePermanently))
	r.PUT("/v1/notes/:id/color", handler.Wrapper(n.Color))
	r.POST("/v1/notes/:id/pin", handler.Wrapper(n.Pin))
	r.POST("/v1/notes/:id/archive", handler.Wrapper(n.Archive))
	r.POST("/v1/notes/:id/restore", handler.Wrapper(n.Restore))

	if table != nil {
		t := todos.Handlers{Table: table}
		r.GET("/v1/todos", handler.Wrapper(t.List))
		r.DELETE("/v1/todos/:id", handler.Wrapper(t.Delete))
	}
}
