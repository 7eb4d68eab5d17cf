package services

import (
	"context"
	"mime/multipart"

	"lye_backend/internal/models"
	"lye_backend/internal/repositories"
	"lye_backend/internal/services/dto"
	"lye_backend/pkg/apperrors"
)

type InvestigationService interface {
	UploadWork(ctx context.Context, req *dto.UploadWorkRequest, file *multipart.FileHeader) (*models.Investigation, error)
	ListWorks(materia string) ([]models.Investigation, error)
	Search(query *dto.InvestigationQuery) ([]models.Investigation, error)
	Get(id string) (*models.Investigation, error)
}

type InvestigationServiceImpl struct {
	investigationRepo repositories.InvestigationRepository
	uploadService     UploadService
}

func NewInvestigationService(
	investigationRepo repositories.InvestigationRepository,
	uploadService UploadService,
) InvestigationService {
	return &InvestigationServiceImpl{
		investigationRepo: investigationRepo,
		uploadService:     uploadService,
	}
}

// UploadWork persists the PDF first, then the record referencing it. An
// orphaned file on a failed insert is accepted; a record pointing at a
// missing file is not.
func (s *InvestigationServiceImpl) UploadWork(ctx context.Context, req *dto.UploadWorkRequest, file *multipart.FileHeader) (*models.Investigation, error) {
	if !models.IsValidMateria(req.Materia) {
		return nil, apperrors.ValidationError(map[string]string{"materia": "Materia no válida"})
	}

	storedName, err := s.uploadService.StorePDF(ctx, file)
	if err != nil {
		return nil, err
	}

	inv := &models.Investigation{
		Titulo:      req.Titulo,
		Descripcion: req.Descripcion,
		Materia:     req.Materia,
		AutorNombre: req.Autor,
		AutorGrado:  req.AutorGrado,
		ArchivoPDF:  storedName,
	}

	if err := s.investigationRepo.Create(inv); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return inv, nil
}

// ListWorks lists every work, optionally narrowed to one materia by plain
// equality.
func (s *InvestigationServiceImpl) ListWorks(materia string) ([]models.Investigation, error) {
	var (
		investigations []models.Investigation
		err            error
	)
	if materia != "" {
		investigations, err = s.investigationRepo.FindByMateria(materia)
	} else {
		investigations, err = s.investigationRepo.FindAll()
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return investigations, nil
}

// Search compiles the query parameters into a retrieval filter and returns
// every record satisfying the AND of the supplied constraints.
func (s *InvestigationServiceImpl) Search(query *dto.InvestigationQuery) ([]models.Investigation, error) {
	filter := repositories.BuildInvestigationFilter(query.MateriaParam(), query.Grado, query.Exact)

	investigations, err := s.investigationRepo.Find(filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return investigations, nil
}

func (s *InvestigationServiceImpl) Get(id string) (*models.Investigation, error) {
	inv, err := s.investigationRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrInvestigationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return inv, nil
}
