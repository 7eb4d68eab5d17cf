package services

import (
	"lye_backend/internal/models"
	"lye_backend/internal/repositories"
	"lye_backend/internal/services/dto"
	"lye_backend/pkg/apperrors"
)

type ReviewService interface {
	Create(req *dto.CreateReviewRequest) (*models.Review, error)
	GetByInvestigation(investigationID string) ([]models.Review, error)
}

type ReviewServiceImpl struct {
	reviewRepo        repositories.ReviewRepository
	investigationRepo repositories.InvestigationRepository
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	investigationRepo repositories.InvestigationRepository,
) ReviewService {
	return &ReviewServiceImpl{
		reviewRepo:        reviewRepo,
		investigationRepo: investigationRepo,
	}
}

// Create stores a review. The rating is bounded to [1,5] inclusive, and
// the referenced investigation must exist at write time.
func (s *ReviewServiceImpl) Create(req *dto.CreateReviewRequest) (*models.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, apperrors.ValidationError(map[string]string{"rating": "Rating must be between 1 and 5"})
	}

	if _, err := s.investigationRepo.FindByID(req.InvestigationID); err != nil {
		if apperrors.Is(err, repositories.ErrInvestigationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	review := &models.Review{
		InvestigationID: req.InvestigationID,
		ExplorerName:    req.ExplorerName,
		Rating:          req.Rating,
		Comment:         req.Comment,
	}

	if err := s.reviewRepo.Create(review); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return review, nil
}

func (s *ReviewServiceImpl) GetByInvestigation(investigationID string) ([]models.Review, error) {
	reviews, err := s.reviewRepo.FindByInvestigation(investigationID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return reviews, nil
}
