package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/funfungun/1-seven-0/internal/services"
)

type RankHandler struct{ svc services.RankingService }

func NewRankHandler(svc services.RankingService) *RankHandler { return &RankHandler{svc: svc} }

// GetRanking handles GET /groups/:id/rank?period=weekly|monthly&page&limit.
func (h *RankHandler) GetRanking(c *gin.Context) {
	id, err := paramUUID(c, "id", "group")
	if err != nil {
		respondError(c, err)
		return
	}
	page, err := parsePage(c)
	if err != nil {
		respondError(c, err)
		return
	}
	period := services.RankPeriod(c.DefaultQuery("period", string(services.PeriodWeekly)))

	entries, total, err := h.svc.ComputeRanking(c.Request.Context(), id, period, page)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ListResponse[services.RankEntry]{Data: formatRanking(entries), Total: total})
}
