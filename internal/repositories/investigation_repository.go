package repositories

import (
	"errors"

	"lye_backend/internal/models"

	"gorm.io/gorm"
)

var ErrInvestigationNotFound = errors.New("investigation not found")

type InvestigationRepository interface {
	Create(inv *models.Investigation) error
	FindByID(id string) (*models.Investigation, error)
	Find(filter InvestigationFilter) ([]models.Investigation, error)
	FindByMateria(materia string) ([]models.Investigation, error)
	FindAll() ([]models.Investigation, error)
	CountAll() (int64, error)
	CountByMateria() (map[string]int64, error)
}

type InvestigationRepositoryImpl struct {
	db *gorm.DB
}

func NewInvestigationRepository(db *gorm.DB) InvestigationRepository {
	return &InvestigationRepositoryImpl{db: db}
}

func (r *InvestigationRepositoryImpl) Create(inv *models.Investigation) error {
	return r.db.Create(inv).Error
}

func (r *InvestigationRepositoryImpl) FindByID(id string) (*models.Investigation, error) {
	var inv models.Investigation
	err := r.db.First(&inv, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvestigationNotFound
		}
		return nil, err
	}
	return &inv, nil
}

// Find retrieves the records satisfying the AND of the supplied filters.
// Materia patterns are OR-ed against each other, grado is a separate AND
// clause; both use Postgres case-insensitive regex (~*).
func (r *InvestigationRepositoryImpl) Find(filter InvestigationFilter) ([]models.Investigation, error) {
	q := r.db.Model(&models.Investigation{})

	if len(filter.MateriaPatterns) > 0 {
		materiaQ := r.db.Where("materia ~* ?", filter.MateriaPatterns[0])
		for _, p := range filter.MateriaPatterns[1:] {
			materiaQ = materiaQ.Or("materia ~* ?", p)
		}
		q = q.Where(materiaQ)
	}

	if filter.GradoPattern != "" {
		q = q.Where("autor_grado ~* ?", filter.GradoPattern)
	}

	var investigations []models.Investigation
	if err := q.Order("created_at DESC").Find(&investigations).Error; err != nil {
		return nil, err
	}
	return investigations, nil
}

// FindByMateria is the trabajos listing: plain equality, no patterns.
func (r *InvestigationRepositoryImpl) FindByMateria(materia string) ([]models.Investigation, error) {
	var investigations []models.Investigation
	err := r.db.Where("materia = ?", materia).Order("created_at DESC").Find(&investigations).Error
	if err != nil {
		return nil, err
	}
	return investigations, nil
}

func (r *InvestigationRepositoryImpl) FindAll() ([]models.Investigation, error) {
	var investigations []models.Investigation
	err := r.db.Order("created_at DESC").Find(&investigations).Error
	if err != nil {
		return nil, err
	}
	return investigations, nil
}

func (r *InvestigationRepositoryImpl) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.Investigation{}).Count(&count).Error
	return count, err
}

func (r *InvestigationRepositoryImpl) CountByMateria() (map[string]int64, error) {
	type row struct {
		Materia string
		Count   int64
	}
	var rows []row
	err := r.db.Model(&models.Investigation{}).
		Select("materia, count(*) as count").
		Group("materia").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make(map[string]int64, len(rows))
	for _, rw := range rows {
		out[rw.Materia] = rw.Count
	}
	return out, nil
}
