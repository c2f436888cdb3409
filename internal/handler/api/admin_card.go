package api

import (
	"net/http"

	reqdto "netcard-manager/internal/handler/dto/request"
	resdto "netcard-manager/internal/handler/dto/response"
	"netcard-manager/internal/handler/httperr"
	"netcard-manager/internal/usecase/commands"
	"netcard-manager/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// AdminCardHandler serves the management screens. Routes are gated to the
// admin role by the router.
type AdminCardHandler struct {
	cmds commands.CardCommands
	q    queries.CardQueries
}

func NewAdminCardHandler(cmds commands.CardCommands, q queries.CardQueries) *AdminCardHandler {
	return &AdminCardHandler{cmds: cmds, q: q}
}

// @Summary Create cards
// @Description Mint a batch of fresh cards of one face value
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCardsRequest true "Create cards request"
// @Success 201 {object} resdto.CardListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/admin/cards [post]
func (h *AdminCardHandler) Create(c *gin.Context) {
	var req reqdto.CreateCardsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.CreateCards(c.Request.Context(), req.Value, req.Count)
	if err != nil {
		abortWithCardError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.NewCardList(result.Cards, result.Warning))
}

// @Summary List cards
// @Description All cards in creation order
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CardListResponse
// @Router /api/admin/cards [get]
func (h *AdminCardHandler) List(c *gin.Context) {
	rms, err := h.q.ListCards(c.Request.Context())
	if err != nil {
		abortWithCardError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewCardList(rms, ""))
}

// @Summary Search cards
// @Description Cards whose serial number or face value contains q
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param q query string false "Search text"
// @Success 200 {object} resdto.CardListResponse
// @Router /api/admin/cards/search [get]
func (h *AdminCardHandler) Search(c *gin.Context) {
	var query reqdto.SearchCardsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	rms, err := h.q.SearchCards(c.Request.Context(), query.Q)
	if err != nil {
		abortWithCardError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewCardList(rms, ""))
}

// @Summary Card statistics
// @Description Totals by state and by face value
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CardStatsResponse
// @Router /api/admin/cards/stats [get]
func (h *AdminCardHandler) Stats(c *gin.Context) {
	st, err := h.q.GetStats(c.Request.Context())
	if err != nil {
		abortWithCardError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.CardStatsResponse{Stats: st})
}

// @Summary Recent cards
// @Description Newest cards first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Number of cards (default 5)"
// @Success 200 {object} resdto.CardListResponse
// @Failure 400 {object} httperr.Response
// @Router /api/admin/cards/recent [get]
func (h *AdminCardHandler) Recent(c *gin.Context) {
	var query reqdto.RecentCardsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
		return
	}
	rms, err := h.q.RecentCards(c.Request.Context(), query.Limit)
	if err != nil {
		abortWithCardError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewCardList(rms, ""))
}
