package handlers

import (
	"net/http"

	"lye_backend/internal/services"
	"lye_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	authService services.AuthService
	userService services.UserService
	authGuard   gin.HandlerFunc
}

func NewUserHandler(base *BaseHandler, authService services.AuthService, userService services.UserService, authGuard gin.HandlerFunc) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		authService: authService,
		userService: userService,
		authGuard:   authGuard,
	}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/users")
	{
		users.POST("/register", h.Register)
		users.POST("/login", h.Login)

		authed := users.Group("")
		authed.Use(h.authGuard)
		{
			authed.POST("/logout", h.Logout)
			authed.GET("/me", h.Me)
			authed.PUT("/me", h.UpdateProfile)
			authed.DELETE("/me", h.Deactivate)
		}
	}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.authService.Register(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusCreated, "Usuario registrado exitosamente", user)
}

func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, "Login ok", resp)
}

// Logout acknowledges the sign-out. Tokens are stateless and carry their
// own expiry; there is no server-side session to clear.
func (h *UserHandler) Logout(c *gin.Context) {
	h.Respond(c, http.StatusOK, "Sesión cerrada", nil)
}

func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	user, err := h.authService.CurrentUser(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, "", user)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.userService.UpdateProfile(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, "Perfil actualizado", user)
}

func (h *UserHandler) Deactivate(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.userService.Deactivate(userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, "Cuenta desactivada", nil)
}
