package services

import (
	"context"
	"mime/multipart"

	"lye_backend/internal/models"
	"lye_backend/internal/repositories"
	"lye_backend/internal/services/dto"
	"lye_backend/internal/storage"
	"lye_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

type CategoryService interface {
	Create(req *dto.CreateCategoryRequest) (*models.Category, error)
	CreateWithImage(ctx context.Context, req *dto.CreateCategoryRequest, image *multipart.FileHeader) (*models.Category, error)
	Get(id string) (*models.Category, error)
	List() ([]models.Category, error)
}

type CategoryServiceImpl struct {
	categoryRepo  repositories.CategoryRepository
	uploadService UploadService
	storage       storage.Storage
}

func NewCategoryService(
	categoryRepo repositories.CategoryRepository,
	uploadService UploadService,
	st storage.Storage,
) CategoryService {
	return &CategoryServiceImpl{
		categoryRepo:  categoryRepo,
		uploadService: uploadService,
		storage:       st,
	}
}

func (s *CategoryServiceImpl) Create(req *dto.CreateCategoryRequest) (*models.Category, error) {
	category := &models.Category{
		Title:    req.Title,
		ImageURL: req.ImageURL,
		Tags:     datatypes.NewJSONSlice(req.Tags),
	}

	if err := s.categoryRepo.Create(category); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return category, nil
}

// CreateWithImage stores the image attachment first, then the record
// pointing at its public URL.
func (s *CategoryServiceImpl) CreateWithImage(ctx context.Context, req *dto.CreateCategoryRequest, image *multipart.FileHeader) (*models.Category, error) {
	storedName, err := s.uploadService.StoreImage(ctx, image)
	if err != nil {
		return nil, err
	}

	imageURL, err := s.storage.GetURL(ctx, storedName)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	category := &models.Category{
		Title:    req.Title,
		ImageURL: imageURL,
		Tags:     datatypes.NewJSONSlice(req.Tags),
	}

	if err := s.categoryRepo.Create(category); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return category, nil
}

func (s *CategoryServiceImpl) Get(id string) (*models.Category, error) {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return category, nil
}

func (s *CategoryServiceImpl) List() ([]models.Category, error) {
	categories, err := s.categoryRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return categories, nil
}
