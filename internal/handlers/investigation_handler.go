package handlers

import (
	"net/http"

	"lye_backend/internal/services"
	"lye_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// InvestigationHandler is the filtered search surface.
type InvestigationHandler struct {
	*BaseHandler
	investigationService services.InvestigationService
}

func NewInvestigationHandler(base *BaseHandler, investigationService services.InvestigationService) *InvestigationHandler {
	return &InvestigationHandler{
		BaseHandler:          base,
		investigationService: investigationService,
	}
}

func (h *InvestigationHandler) RegisterRoutes(r *gin.RouterGroup) {
	investigaciones := r.Group("/investigaciones")
	{
		investigaciones.GET("", h.Search)
		investigaciones.GET("/:id", h.Get)
	}
}

func (h *InvestigationHandler) Search(c *gin.Context) {
	var query dto.InvestigationQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	investigations, err := h.investigationService.Search(&query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, "", investigations)
}

func (h *InvestigationHandler) Get(c *gin.Context) {
	inv, err := h.investigationService.Get(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, "", inv)
}
