package services

import (
	"net/http"
	"testing"
	"time"

	"lye_backend/internal/auth"
	"lye_backend/internal/models"
	"lye_backend/internal/services/dto"
	"lye_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegisterRequest() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		FullName:    "Ana Morales",
		Email:       "ana@example.com",
		Username:    "anamorales",
		Password:    "secret123",
		SchoolGrade: "11° Año",
		Description: "Investigadora de ciencias",
	}
}

func newAuthServiceForTest() (AuthService, *fakeUserRepo, *fakeEmailProvider) {
	users := newFakeUserRepo()
	emails := &fakeEmailProvider{}
	tokens := auth.NewTokenIssuer("test-secret", time.Hour)
	return NewAuthService(users, tokens, emails), users, emails
}

func requireAppError(t *testing.T, err error) *apperrors.AppError {
	t.Helper()
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr), "expected *apperrors.AppError, got %v", err)
	return appErr
}

func TestAuthService_Register(t *testing.T) {
	t.Parallel()

	t.Run("creates researcher by default", func(t *testing.T) {
		svc, users, emails := newAuthServiceForTest()

		resp, err := svc.Register(validRegisterRequest())
		require.NoError(t, err)

		assert.Equal(t, models.UserRoleResearcher, resp.Role)
		assert.True(t, resp.IsActive)
		assert.NotEmpty(t, resp.ID)

		stored, err := users.FindByEmail("ana@example.com")
		require.NoError(t, err)
		assert.NotEqual(t, "secret123", stored.PasswordHash)
		assert.True(t, auth.CheckPasswordHash("secret123", stored.PasswordHash))
		assert.Equal(t, []string{"ana@example.com"}, emails.welcomes)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		svc, _, _ := newAuthServiceForTest()

		_, err := svc.Register(validRegisterRequest())
		require.NoError(t, err)

		req := validRegisterRequest()
		req.Username = "otheruser"
		_, err = svc.Register(req)

		appErr := requireAppError(t, err)
		assert.Equal(t, http.StatusConflict, appErr.HTTPCode)
		assert.Equal(t, apperrors.CodeConflict, appErr.Code)
	})

	t.Run("duplicate username is a conflict", func(t *testing.T) {
		svc, _, _ := newAuthServiceForTest()

		_, err := svc.Register(validRegisterRequest())
		require.NoError(t, err)

		req := validRegisterRequest()
		req.Email = "other@example.com"
		_, err = svc.Register(req)

		appErr := requireAppError(t, err)
		assert.Equal(t, http.StatusConflict, appErr.HTTPCode)
	})

	t.Run("weak password is rejected before persistence", func(t *testing.T) {
		svc, users, _ := newAuthServiceForTest()

		req := validRegisterRequest()
		req.Password = "12345"
		_, err := svc.Register(req)

		appErr := requireAppError(t, err)
		assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
		assert.Empty(t, users.users)
	})

	t.Run("invalid role is rejected", func(t *testing.T) {
		svc, users, _ := newAuthServiceForTest()

		req := validRegisterRequest()
		req.Role = "superuser"
		_, err := svc.Register(req)

		appErr := requireAppError(t, err)
		assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
		assert.Empty(t, users.users)
	})

	t.Run("explicit valid role is honored", func(t *testing.T) {
		svc, _, _ := newAuthServiceForTest()

		req := validRegisterRequest()
		req.Role = "root"
		resp, err := svc.Register(req)
		require.NoError(t, err)
		assert.Equal(t, models.UserRoleRoot, resp.Role)
	})

	t.Run("invalid school grade is rejected", func(t *testing.T) {
		svc, _, _ := newAuthServiceForTest()

		req := validRegisterRequest()
		req.SchoolGrade = "13° Año"
		_, err := svc.Register(req)

		appErr := requireAppError(t, err)
		assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
	})

	t.Run("mail failure never fails the registration", func(t *testing.T) {
		users := newFakeUserRepo()
		emails := &fakeEmailProvider{fail: true}
		tokens := auth.NewTokenIssuer("test-secret", time.Hour)
		svc := NewAuthService(users, tokens, emails)

		_, err := svc.Register(validRegisterRequest())
		assert.NoError(t, err)
	})
}

func TestAuthService_Login(t *testing.T) {
	t.Parallel()

	setup := func(t *testing.T) (AuthService, *fakeUserRepo) {
		svc, users, _ := newAuthServiceForTest()
		_, err := svc.Register(validRegisterRequest())
		require.NoError(t, err)
		return svc, users
	}

	t.Run("valid credentials return a token", func(t *testing.T) {
		svc, _ := setup(t)

		resp, err := svc.Login(&dto.LoginRequest{Email: "ana@example.com", Password: "secret123"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "ana@example.com", resp.User.Email)
	})

	t.Run("unknown email is not found", func(t *testing.T) {
		svc, _ := setup(t)

		_, err := svc.Login(&dto.LoginRequest{Email: "nobody@example.com", Password: "secret123"})
		appErr := requireAppError(t, err)
		assert.Equal(t, http.StatusNotFound, appErr.HTTPCode)
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		svc, _ := setup(t)

		_, err := svc.Login(&dto.LoginRequest{Email: "ana@example.com", Password: "wrongpass"})
		appErr := requireAppError(t, err)
		assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode)
		assert.Equal(t, apperrors.CodeInvalidCredentials, appErr.Code)
	})

	t.Run("inactive account is unauthorized even with the right password", func(t *testing.T) {
		svc, users := setup(t)

		u, err := users.FindByEmail("ana@example.com")
		require.NoError(t, err)
		u.IsActive = false

		_, err = svc.Login(&dto.LoginRequest{Email: "ana@example.com", Password: "secret123"})
		appErr := requireAppError(t, err)
		assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode)
	})
}

func TestAuthService_CurrentUser(t *testing.T) {
	t.Parallel()

	svc, users, _ := newAuthServiceForTest()
	created, err := svc.Register(validRegisterRequest())
	require.NoError(t, err)

	t.Run("resolves an active user", func(t *testing.T) {
		resp, err := svc.CurrentUser(created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.Email, resp.Email)
	})

	t.Run("vanished user is unauthorized", func(t *testing.T) {
		_, err := svc.CurrentUser("user-999")
		appErr := requireAppError(t, err)
		assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode)
	})

	t.Run("deactivated user is unauthorized", func(t *testing.T) {
		u, err := users.FindByID(created.ID)
		require.NoError(t, err)
		u.IsActive = false

		_, err = svc.CurrentUser(created.ID)
		appErr := requireAppError(t, err)
		assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode)
	})
}
