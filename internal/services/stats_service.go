package services

import (
	"lye_backend/internal/repositories"
	"lye_backend/internal/services/dto"
	"lye_backend/pkg/apperrors"
)

type StatsService interface {
	PlatformStats() (*dto.PlatformStats, error)
}

type StatsServiceImpl struct {
	userRepo          repositories.UserRepository
	investigationRepo repositories.InvestigationRepository
	reviewRepo        repositories.ReviewRepository
}

func NewStatsService(
	userRepo repositories.UserRepository,
	investigationRepo repositories.InvestigationRepository,
	reviewRepo repositories.ReviewRepository,
) StatsService {
	return &StatsServiceImpl{
		userRepo:          userRepo,
		investigationRepo: investigationRepo,
		reviewRepo:        reviewRepo,
	}
}

// PlatformStats assembles the public aggregate counters.
func (s *StatsServiceImpl) PlatformStats() (*dto.PlatformStats, error) {
	totalInvestigations, err := s.investigationRepo.CountAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	totalUsers, err := s.userRepo.CountActive()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	totalReviews, err := s.reviewRepo.CountAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	porMateria, err := s.investigationRepo.CountByMateria()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	porGrado, err := s.userRepo.CountActiveByGrade()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	ratings, err := s.reviewRepo.RatingDistribution()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.PlatformStats{
		TotalInvestigations:      totalInvestigations,
		TotalActiveUsers:         totalUsers,
		TotalReviews:             totalReviews,
		InvestigationsPorMateria: porMateria,
		UsersPorGrado:            porGrado,
		RatingDistribution:       ratings,
	}, nil
}
