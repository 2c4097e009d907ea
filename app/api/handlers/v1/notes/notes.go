package notes

import (
	"errors"
	"net/http"

	"github.com/ribgsilva/note-keeper/business/v1/note"
	"github.com/ribgsilva/note-keeper/platform/web/handler"
	"github.com/ribgsilva/note-keeper/sys"
)

// Handlers exposes a note.Store over http
type Handlers struct {
	Store *note.Store
}

// done answers a mutation, unknown ids are answered the same as known ones
func done(err error) handler.Result {
	switch {
	case err == nil:
		return handler.Result{Status: http.StatusNoContent}
	case errors.Is(err, note.ErrInvalidColor):
		return handler.Fail(http.StatusBadRequest, err.Error())
	default:
		sys.R.Log.Errorw("note mutation", "ERROR", err)
		return handler.Fail(http.StatusInternalServerError, err.Error())
	}
}
