package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lye_backend/internal/services/dto"
	"lye_backend/internal/validator"
	"lye_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubAuthService scripts the service layer so the tests exercise only
// binding, validation and the response envelope.
type stubAuthService struct {
	registerResp *dto.UserResponse
	registerErr  error
	loginResp    *dto.LoginResponse
	loginErr     error
	currentResp  *dto.UserResponse
	currentErr   error
}

func (s *stubAuthService) Register(req *dto.RegisterRequest) (*dto.UserResponse, error) {
	return s.registerResp, s.registerErr
}

func (s *stubAuthService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	return s.loginResp, s.loginErr
}

func (s *stubAuthService) CurrentUser(userID string) (*dto.UserResponse, error) {
	return s.currentResp, s.currentErr
}

func newUserRouter(authSvc *stubAuthService) *gin.Engine {
	base := NewBaseHandler(validator.New())
	passGuard := func(c *gin.Context) {
		c.Set("userID", "u1")
		c.Next()
	}
	h := NewUserHandler(base, authSvc, nil, passGuard)

	r := gin.New()
	h.RegisterRoutes(r.Group(""))
	return r
}

func postJSON(r *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validRegisterPayload() map[string]interface{} {
	return map[string]interface{}{
		"full_name":    "Ana Morales",
		"email":        "ana@example.com",
		"username":     "anamorales",
		"password":     "secret123",
		"school_grade": "11° Año",
		"description":  "Investigadora",
	}
}

func TestUserHandler_Register(t *testing.T) {
	t.Run("valid payload returns 201 with the envelope", func(t *testing.T) {
		svc := &stubAuthService{registerResp: &dto.UserResponse{ID: "u1", Email: "ana@example.com"}}
		r := newUserRouter(svc)

		w := postJSON(r, "/users/register", validRegisterPayload())

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"success":true`)
		assert.Contains(t, w.Body.String(), "Usuario registrado exitosamente")
		assert.Contains(t, w.Body.String(), `"id":"u1"`)
	})

	t.Run("validation failures never reach the service", func(t *testing.T) {
		svc := &stubAuthService{registerErr: assert.AnError}
		r := newUserRouter(svc)

		payload := validRegisterPayload()
		payload["email"] = "not-an-email"
		w := postJSON(r, "/users/register", payload)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"success":false`)
		assert.Contains(t, w.Body.String(), "VALIDATION_FAILED")
		assert.Contains(t, w.Body.String(), "email")
	})

	t.Run("service conflict maps to 409", func(t *testing.T) {
		svc := &stubAuthService{registerErr: apperrors.ErrConflict(nil, "auth", "Email or username is already registered")}
		r := newUserRouter(svc)

		w := postJSON(r, "/users/register", validRegisterPayload())

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "CONFLICT")
	})

	t.Run("malformed body is a 400", func(t *testing.T) {
		r := newUserRouter(&stubAuthService{})

		req := httptest.NewRequest(http.MethodPost, "/users/register", bytes.NewBufferString("{broken"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUserHandler_Login(t *testing.T) {
	t.Run("success carries token and user", func(t *testing.T) {
		svc := &stubAuthService{loginResp: &dto.LoginResponse{
			Token: "tok",
			User:  &dto.UserResponse{ID: "u1"},
		}}
		r := newUserRouter(svc)

		w := postJSON(r, "/users/login", map[string]string{"email": "ana@example.com", "password": "secret123"})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"token":"tok"`)
	})

	t.Run("unknown user stays a 404, wrong password a 401", func(t *testing.T) {
		payload := map[string]string{"email": "ana@example.com", "password": "secret123"}

		r := newUserRouter(&stubAuthService{loginErr: apperrors.ErrNotFound(assert.AnError)})
		w := postJSON(r, "/users/login", payload)
		assert.Equal(t, http.StatusNotFound, w.Code)

		r = newUserRouter(&stubAuthService{loginErr: apperrors.ErrInvalidCredentials})
		w = postJSON(r, "/users/login", payload)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestUserHandler_Me(t *testing.T) {
	svc := &stubAuthService{currentResp: &dto.UserResponse{ID: "u1", Username: "anamorales"}}
	r := newUserRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"anamorales"`)
}

func TestUserHandler_Logout(t *testing.T) {
	r := newUserRouter(&stubAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/users/logout", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Sesión cerrada")
}
