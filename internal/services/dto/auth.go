package dto

import (
	"time"

	"lye_backend/internal/models"
)

// RegisterRequest is the signup payload.
type RegisterRequest struct {
	FullName    string `json:"full_name" validate:"required,min=2,max=100"`
	Email       string `json:"email" validate:"required,email"`
	Username    string `json:"username" validate:"required,min=3,max=30"`
	Password    string `json:"password" validate:"required,min=6"`
	Role        string `json:"role" validate:"omitempty,is-user-role"`
	SchoolGrade string `json:"school_grade" validate:"required,is-school-grade"`
	Description string `json:"description" validate:"required,max=500"`
	Photo       string `json:"photo" validate:"omitempty,url"`
}

// LoginRequest is the signin payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is the user as serialized to clients. The secret is never
// present.
type UserResponse struct {
	ID          string          `json:"id"`
	FullName    string          `json:"full_name"`
	Email       string          `json:"email"`
	Username    string          `json:"username"`
	Role        models.UserRole `json:"role"`
	SchoolGrade string          `json:"school_grade"`
	Description string          `json:"description"`
	Photo       string          `json:"photo"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
}

// LoginResponse carries the bearer token and a user summary.
type LoginResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// NewUserResponse maps a model to its client representation.
func NewUserResponse(u *models.User) *UserResponse {
	return &UserResponse{
		ID:          u.ID,
		FullName:    u.FullName,
		Email:       u.Email,
		Username:    u.Username,
		Role:        u.Role,
		SchoolGrade: u.SchoolGrade,
		Description: u.Description,
		Photo:       u.Photo,
		IsActive:    u.IsActive,
		CreatedAt:   u.CreatedAt,
	}
}
