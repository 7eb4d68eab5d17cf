package services

import (
	"lye_backend/internal/repositories"
	"lye_backend/internal/services/dto"
	"lye_backend/pkg/apperrors"
)

type UserService interface {
	UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
	Deactivate(userID string) error
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

// UpdateProfile applies the non-empty fields to the caller's own record.
func (s *UserServiceImpl) UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.SchoolGrade != "" {
		user.SchoolGrade = req.SchoolGrade
	}
	if req.Description != "" {
		user.Description = req.Description
	}
	if req.Photo != "" {
		user.Photo = req.Photo
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return dto.NewUserResponse(user), nil
}

// Deactivate flips the caller's active flag; accounts are never deleted.
func (s *UserServiceImpl) Deactivate(userID string) error {
	if err := s.userRepo.Deactivate(userID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}
