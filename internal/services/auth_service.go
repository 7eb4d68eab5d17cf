package services

import (
	"lye_backend/internal/auth"
	"lye_backend/internal/email"
	"lye_backend/internal/logger"
	"lye_backend/internal/models"
	"lye_backend/internal/repositories"
	"lye_backend/internal/services/dto"
	"lye_backend/pkg/apperrors"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
	CurrentUser(userID string) (*dto.UserResponse, error)
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	tokens        *auth.TokenIssuer
	emailProvider email.Provider
}

func NewAuthService(
	userRepo repositories.UserRepository,
	tokens *auth.TokenIssuer,
	emailProvider email.Provider,
) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		tokens:        tokens,
		emailProvider: emailProvider,
	}
}

// Register creates a new user. Uniqueness of email and username is left to
// the storage layer; a duplicate surfaces as a Conflict, never as a second
// record.
func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*dto.UserResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ValidationError(map[string]string{"password": err.Error()})
	}

	// Role validation runs before persistence, independent of any gate.
	role := models.UserRoleResearcher
	if req.Role != "" {
		if err := auth.ValidateRole(req.Role); err != nil {
			return nil, apperrors.ErrInvalidUserRole
		}
		role = models.UserRole(req.Role)
	}

	if !models.IsValidSchoolGrade(req.SchoolGrade) {
		return nil, apperrors.ValidationError(map[string]string{"school_grade": "Grado escolar no válido"})
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		FullName:     req.FullName,
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: hashedPassword,
		Role:         role,
		SchoolGrade:  req.SchoolGrade,
		Description:  req.Description,
		IsActive:     true,
	}
	if req.Photo != "" {
		user.Photo = req.Photo
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrConflict(err, "auth", "Email or username is already registered")
		}
		return nil, apperrors.InternalError(err)
	}

	// Best effort only: a mail failure never fails the registration.
	if err := s.emailProvider.SendWelcome(user.Email, user.FullName); err != nil {
		logger.Warn("Failed to send welcome email", "email", user.Email, "error", err)
	}

	return dto.NewUserResponse(user), nil
}

// Login authenticates by email. An unknown user is reported as NotFound,
// a wrong password as InvalidCredentials; the two stay distinguishable.
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountInactive
	}

	token, err := s.tokens.Generate(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		Token: token,
		User:  dto.NewUserResponse(user),
	}, nil
}

// CurrentUser re-resolves a verified identity against the credential
// store. A token for a vanished or deactivated user fails here.
func (s *AuthServiceImpl) CurrentUser(userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewUnauthorizedError("User no longer exists")
		}
		return nil, apperrors.InternalError(err)
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountInactive
	}

	return dto.NewUserResponse(user), nil
}
