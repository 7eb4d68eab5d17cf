package handlers

import (
	"net/http"

	"lye_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	*BaseHandler
	statsService services.StatsService
}

func NewStatsHandler(base *BaseHandler, statsService services.StatsService) *StatsHandler {
	return &StatsHandler{
		BaseHandler:  base,
		statsService: statsService,
	}
}

func (h *StatsHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/stats", h.PlatformStats)
}

func (h *StatsHandler) PlatformStats(c *gin.Context) {
	stats, err := h.statsService.PlatformStats()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, "", stats)
}
