package repositories

import (
	"lye_backend/internal/models"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(review *models.Review) error
	FindByInvestigation(investigationID string) ([]models.Review, error)
	CountAll() (int64, error)
	RatingDistribution() (map[int]int64, error)
}

type ReviewRepositoryImpl struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &ReviewRepositoryImpl{db: db}
}

func (r *ReviewRepositoryImpl) Create(review *models.Review) error {
	return r.db.Create(review).Error
}

func (r *ReviewRepositoryImpl) FindByInvestigation(investigationID string) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Where("investigation_id = ?", investigationID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *ReviewRepositoryImpl) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.Review{}).Count(&count).Error
	return count, err
}

func (r *ReviewRepositoryImpl) RatingDistribution() (map[int]int64, error) {
	type row struct {
		Rating int
		Count  int64
	}
	var rows []row
	err := r.db.Model(&models.Review{}).
		Select("rating, count(*) as count").
		Group("rating").
		Order("rating").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make(map[int]int64, len(rows))
	for _, rw := range rows {
		out[rw.Rating] = rw.Count
	}
	return out, nil
}
