package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chronos/internal/state"
)

type StateHandler struct {
	container *state.Container
}

func NewStateHandler(container *state.Container) *StateHandler {
	return &StateHandler{container: container}
}

// @Summary      Full state snapshot
// @Description  Read-only snapshot the rendering layer re-renders from
// @Tags         State
// @Produce      json
// @Success      200  {object}  models.AppState
// @Router       /state [get]
func (h *StateHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.container.Snapshot())
}
