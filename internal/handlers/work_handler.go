package handlers

import (
	"net/http"

	"lye_backend/internal/services"
	"lye_backend/internal/services/dto"
	"lye_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// WorkHandler is the trabajos surface: PDF upload and plain listing.
type WorkHandler struct {
	*BaseHandler
	investigationService services.InvestigationService
}

func NewWorkHandler(base *BaseHandler, investigationService services.InvestigationService) *WorkHandler {
	return &WorkHandler{
		BaseHandler:          base,
		investigationService: investigationService,
	}
}

func (h *WorkHandler) RegisterRoutes(r *gin.RouterGroup) {
	trabajos := r.Group("/trabajos")
	{
		trabajos.POST("/subir", h.Upload)
		trabajos.GET("/listar", h.List)
	}
}

func (h *WorkHandler) Upload(c *gin.Context) {
	var req dto.UploadWorkRequest
	if !h.BindAndValidateForm(c, &req) {
		return
	}

	file, err := c.FormFile("archivoPDF")
	if err != nil {
		h.HandleServiceError(c, apperrors.ErrFileMissing)
		return
	}

	inv, err := h.investigationService.UploadWork(c.Request.Context(), &req, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusCreated, "Trabajo subido exitosamente", inv)
}

func (h *WorkHandler) List(c *gin.Context) {
	materia := c.Query("materia")

	works, err := h.investigationService.ListWorks(materia)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, "", works)
}
