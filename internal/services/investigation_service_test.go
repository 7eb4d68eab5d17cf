package services

import (
	"context"
	"net/http"
	"testing"

	"lye_backend/internal/models"
	"lye_backend/internal/services/dto"
	"lye_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInvestigationServiceForTest() (InvestigationService, *fakeInvestigationRepo, *fakeStorage) {
	repo := newFakeInvestigationRepo()
	st := newFakeStorage()
	return NewInvestigationService(repo, NewUploadService(st, 1024)), repo, st
}

func TestInvestigationService_UploadWork(t *testing.T) {
	t.Parallel()

	req := &dto.UploadWorkRequest{
		Titulo:     "El ciclo del agua",
		Materia:    "ciencias",
		Autor:      "Luis",
		AutorGrado: "8° Año",
	}

	t.Run("stores the file before the record", func(t *testing.T) {
		svc, repo, st := newInvestigationServiceForTest()
		fh := makeFileHeader(t, "archivoPDF", "agua.pdf", "application/pdf", []byte("%PDF-1.4"))

		inv, err := svc.UploadWork(context.Background(), req, fh)
		require.NoError(t, err)
		assert.Equal(t, "El ciclo del agua", inv.Titulo)
		assert.NotEmpty(t, inv.ArchivoPDF)
		assert.Contains(t, st.saved, inv.ArchivoPDF)
		assert.Len(t, repo.investigations, 1)
	})

	t.Run("rejects an unknown materia before touching storage", func(t *testing.T) {
		svc, repo, st := newInvestigationServiceForTest()
		fh := makeFileHeader(t, "archivoPDF", "agua.pdf", "application/pdf", []byte("%PDF-1.4"))

		bad := *req
		bad.Materia = "astrologia"
		_, err := svc.UploadWork(context.Background(), &bad, fh)

		appErr := requireAppError(t, err)
		assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
		assert.Empty(t, st.saved)
		assert.Empty(t, repo.investigations)
	})

	t.Run("rejects a non-PDF file", func(t *testing.T) {
		svc, repo, _ := newInvestigationServiceForTest()
		fh := makeFileHeader(t, "archivoPDF", "agua.png", "image/png", []byte("img"))

		_, err := svc.UploadWork(context.Background(), req, fh)
		assert.ErrorIs(t, err, apperrors.ErrUnsupportedMediaType)
		assert.Empty(t, repo.investigations)
	})
}

func TestInvestigationService_Search(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newInvestigationServiceForTest()

	t.Run("compiles the query into the repository filter", func(t *testing.T) {
		_, err := svc.Search(&dto.InvestigationQuery{Materia: "sociales,ciencias", Grado: "9° Año"})
		require.NoError(t, err)

		require.NotNil(t, repo.lastFilter)
		assert.Equal(t, []string{"^sociales$", "^ciencias$"}, repo.lastFilter.MateriaPatterns)
		assert.Equal(t, "^9° Año$", repo.lastFilter.GradoPattern)
	})

	t.Run("area is honored as the legacy alias", func(t *testing.T) {
		_, err := svc.Search(&dto.InvestigationQuery{Area: "sociales"})
		require.NoError(t, err)
		assert.Equal(t, []string{"^sociales$"}, repo.lastFilter.MateriaPatterns)
	})

	t.Run("materia wins over area", func(t *testing.T) {
		_, err := svc.Search(&dto.InvestigationQuery{Materia: "ciencias", Area: "sociales"})
		require.NoError(t, err)
		assert.Equal(t, []string{"^ciencias$"}, repo.lastFilter.MateriaPatterns)
	})

	t.Run("exact=false switches to substring patterns", func(t *testing.T) {
		_, err := svc.Search(&dto.InvestigationQuery{Materia: "soci", Exact: "false"})
		require.NoError(t, err)
		assert.Equal(t, []string{"soci"}, repo.lastFilter.MateriaPatterns)
	})
}

func TestInvestigationService_ListWorks(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newInvestigationServiceForTest()
	require.NoError(t, repo.Create(&models.Investigation{Titulo: "A", Materia: "ciencias"}))
	require.NoError(t, repo.Create(&models.Investigation{Titulo: "B", Materia: "sociales"}))

	all, err := svc.ListWorks("")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// Plain equality, not the regex surface.
	ciencias, err := svc.ListWorks("ciencias")
	require.NoError(t, err)
	require.Len(t, ciencias, 1)
	assert.Equal(t, "A", ciencias[0].Titulo)
}

func TestInvestigationService_Get(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newInvestigationServiceForTest()
	inv := &models.Investigation{Titulo: "A", Materia: "ciencias"}
	require.NoError(t, repo.Create(inv))

	found, err := svc.Get(inv.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", found.Titulo)

	_, err = svc.Get("inv-missing")
	appErr := requireAppError(t, err)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode)
}
