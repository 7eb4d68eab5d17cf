package handlers

import (
	"net/http"
	"strings"

	"lye_backend/internal/middleware"
	"lye_backend/internal/models"
	"lye_backend/internal/services"
	"lye_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// CategoryHandler is the /imagenes gallery surface. Creation is gated to
// researcher and root, mirroring the observed legacy policy.
type CategoryHandler struct {
	*BaseHandler
	categoryService services.CategoryService
	authGuard       gin.HandlerFunc
}

func NewCategoryHandler(base *BaseHandler, categoryService services.CategoryService, authGuard gin.HandlerFunc) *CategoryHandler {
	return &CategoryHandler{
		BaseHandler:     base,
		categoryService: categoryService,
		authGuard:       authGuard,
	}
}

func (h *CategoryHandler) RegisterRoutes(r *gin.RouterGroup) {
	imagenes := r.Group("/imagenes")
	{
		imagenes.GET("", h.List)
		imagenes.GET("/:id", h.Get)
		imagenes.POST("",
			h.authGuard,
			middleware.RequireRoles(models.UserRoleResearcher, models.UserRoleRoot),
			h.Create,
		)
	}
}

// Create accepts either a JSON body or a multipart form with an "imagen"
// file attachment.
func (h *CategoryHandler) Create(c *gin.Context) {
	contentType := c.ContentType()

	if strings.HasPrefix(contentType, "multipart/form-data") {
		var req dto.CreateCategoryRequest
		req.Title = c.PostForm("title")
		req.Tags = c.PostFormArray("tags")
		if ok := h.runValidation(c, &req); !ok {
			return
		}

		image, err := c.FormFile("imagen")
		if err != nil {
			// No file attached: fall through to a plain record.
			image = nil
		}

		var (
			category *models.Category
			svcErr   error
		)
		if image != nil {
			category, svcErr = h.categoryService.CreateWithImage(c.Request.Context(), &req, image)
		} else {
			category, svcErr = h.categoryService.Create(&req)
		}
		if svcErr != nil {
			h.HandleServiceError(c, svcErr)
			return
		}

		h.Respond(c, http.StatusCreated, "Categoría creada", category)
		return
	}

	var req dto.CreateCategoryRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	category, err := h.categoryService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusCreated, "Categoría creada", category)
}

func (h *CategoryHandler) Get(c *gin.Context) {
	category, err := h.categoryService.Get(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, "", category)
}

func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.List()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, "", categories)
}
