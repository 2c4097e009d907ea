package healthcheck

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-keeper/platform/web/handler"
)

type Status struct {
	Status string `json:"status" example:"ok"`
}

// Get godoc
// @Summary Healthcheck
// @Tags Healthcheck
// @Produce json
// @Success 200 {object} healthcheck.Status
// @Router /v1/healthcheck [get]
func Get(*gin.Context) handler.Result {
	return handler.Result{
		Status: http.StatusOK,
		Body:   Status{Status: "ok"},
	}
}
