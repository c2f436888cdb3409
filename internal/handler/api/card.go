package api

import (
	"context"
	"net/http"

	resdto "netcard-manager/internal/handler/dto/response"
	"netcard-manager/internal/usecase/commands"
	"netcard-manager/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// CardHandler serves the redemption screens. Knowing a serial number is
// enough to use the card.
type CardHandler struct {
	cmds commands.CardCommands
	q    queries.CardQueries
}

func NewCardHandler(cmds commands.CardCommands, q queries.CardQueries) *CardHandler {
	return &CardHandler{cmds: cmds, q: q}
}

// @Summary Get card
// @Description Look up a card by serial number, with its remaining time
// @Tags cards
// @Produce json
// @Param serial path string true "Serial number"
// @Success 200 {object} resdto.CardResponse
// @Failure 404 {object} httperr.Response
// @Router /api/cards/{serial} [get]
func (h *CardHandler) Get(c *gin.Context) {
	rm, err := h.q.GetCard(c.Request.Context(), c.Param("serial"))
	if err != nil {
		abortWithCardError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.CardResponse{Card: rm})
}

// @Summary Activate card
// @Description Start the access window of a fresh card, or resume a suspended one
// @Tags cards
// @Produce json
// @Param serial path string true "Serial number"
// @Success 200 {object} resdto.CardResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/cards/{serial}/activate [post]
func (h *CardHandler) Activate(c *gin.Context) {
	h.respond(c, h.cmds.ActivateCard)
}

// @Summary Suspend card
// @Description Close the access window and bank the remaining time
// @Tags cards
// @Produce json
// @Param serial path string true "Serial number"
// @Success 200 {object} resdto.CardResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/cards/{serial}/suspend [post]
func (h *CardHandler) Suspend(c *gin.Context) {
	h.respond(c, h.cmds.SuspendCard)
}

// @Summary Reactivate card
// @Description Resume a suspended card with its banked time
// @Tags cards
// @Produce json
// @Param serial path string true "Serial number"
// @Success 200 {object} resdto.CardResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/cards/{serial}/reactivate [post]
func (h *CardHandler) Reactivate(c *gin.Context) {
	h.respond(c, h.cmds.ReactivateCard)
}

func (h *CardHandler) respond(c *gin.Context, fn func(context.Context, string) (*commands.CardResult, error)) {
	result, err := fn(c.Request.Context(), c.Param("serial"))
	if err != nil {
		abortWithCardError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.CardResponse{Card: result.Card, Warning: result.Warning})
}
