package services

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"lye_backend/internal/email"
	"lye_backend/internal/models"
	"lye_backend/internal/repositories"
)

// In-memory doubles for the repository and provider interfaces. They keep
// the same error contracts as the real implementations, including the
// storage-level uniqueness behavior.

type fakeUserRepo struct {
	users   map[string]*models.User
	nextID  int
	lastErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (f *fakeUserRepo) FindByID(id string) (*models.User, error) {
	if f.lastErr != nil {
		return nil, f.lastErr
	}
	u, ok := f.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	if f.lastErr != nil {
		return nil, f.lastErr
	}
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) FindByUsername(username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) Create(user *models.User) error {
	if f.lastErr != nil {
		return f.lastErr
	}
	for _, u := range f.users {
		if u.Email == user.Email || u.Username == user.Username {
			return repositories.ErrUserAlreadyExists
		}
	}
	f.nextID++
	user.ID = fmt.Sprintf("user-%d", f.nextID)
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) Update(user *models.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) Deactivate(userID string) error {
	u, ok := f.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.IsActive = false
	return nil
}

func (f *fakeUserRepo) CountActive() (int64, error) {
	var n int64
	for _, u := range f.users {
		if u.IsActive {
			n++
		}
	}
	return n, nil
}

func (f *fakeUserRepo) CountActiveByGrade() (map[string]int64, error) {
	out := map[string]int64{}
	for _, u := range f.users {
		if u.IsActive {
			out[u.SchoolGrade]++
		}
	}
	return out, nil
}

type fakeInvestigationRepo struct {
	investigations map[string]*models.Investigation
	nextID         int
	lastFilter     *repositories.InvestigationFilter
}

func newFakeInvestigationRepo() *fakeInvestigationRepo {
	return &fakeInvestigationRepo{investigations: map[string]*models.Investigation{}}
}

func (f *fakeInvestigationRepo) Create(inv *models.Investigation) error {
	f.nextID++
	inv.ID = fmt.Sprintf("inv-%d", f.nextID)
	f.investigations[inv.ID] = inv
	return nil
}

func (f *fakeInvestigationRepo) FindByID(id string) (*models.Investigation, error) {
	inv, ok := f.investigations[id]
	if !ok {
		return nil, repositories.ErrInvestigationNotFound
	}
	return inv, nil
}

func (f *fakeInvestigationRepo) Find(filter repositories.InvestigationFilter) ([]models.Investigation, error) {
	f.lastFilter = &filter
	out := make([]models.Investigation, 0, len(f.investigations))
	for _, inv := range f.investigations {
		out = append(out, *inv)
	}
	return out, nil
}

func (f *fakeInvestigationRepo) FindByMateria(materia string) ([]models.Investigation, error) {
	var out []models.Investigation
	for _, inv := range f.investigations {
		if inv.Materia == materia {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (f *fakeInvestigationRepo) FindAll() ([]models.Investigation, error) {
	out := make([]models.Investigation, 0, len(f.investigations))
	for _, inv := range f.investigations {
		out = append(out, *inv)
	}
	return out, nil
}

func (f *fakeInvestigationRepo) CountAll() (int64, error) {
	return int64(len(f.investigations)), nil
}

func (f *fakeInvestigationRepo) CountByMateria() (map[string]int64, error) {
	out := map[string]int64{}
	for _, inv := range f.investigations {
		out[inv.Materia]++
	}
	return out, nil
}

type fakeReviewRepo struct {
	reviews []models.Review
	nextID  int
}

func (f *fakeReviewRepo) Create(review *models.Review) error {
	f.nextID++
	review.ID = fmt.Sprintf("rev-%d", f.nextID)
	f.reviews = append(f.reviews, *review)
	return nil
}

func (f *fakeReviewRepo) FindByInvestigation(investigationID string) ([]models.Review, error) {
	var out []models.Review
	for _, r := range f.reviews {
		if r.InvestigationID == investigationID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) CountAll() (int64, error) {
	return int64(len(f.reviews)), nil
}

func (f *fakeReviewRepo) RatingDistribution() (map[int]int64, error) {
	out := map[int]int64{}
	for _, r := range f.reviews {
		out[r.Rating]++
	}
	return out, nil
}

type fakeCategoryRepo struct {
	categories map[string]*models.Category
	nextID     int
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: map[string]*models.Category{}}
}

func (f *fakeCategoryRepo) Create(category *models.Category) error {
	f.nextID++
	category.ID = fmt.Sprintf("cat-%d", f.nextID)
	f.categories[category.ID] = category
	return nil
}

func (f *fakeCategoryRepo) FindByID(id string) (*models.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, repositories.ErrCategoryNotFound
	}
	return c, nil
}

func (f *fakeCategoryRepo) FindAll() ([]models.Category, error) {
	out := make([]models.Category, 0, len(f.categories))
	for _, c := range f.categories {
		out = append(out, *c)
	}
	return out, nil
}

type fakeEmailProvider struct {
	welcomes []string
	fail     bool
}

func (f *fakeEmailProvider) Send(e *email.Email) error { return nil }

func (f *fakeEmailProvider) SendWithTemplate(templateName string, data email.TemplateData, e *email.Email) error {
	return nil
}

func (f *fakeEmailProvider) SendWelcome(to string, fullName string) error {
	if f.fail {
		return fmt.Errorf("smtp unavailable")
	}
	f.welcomes = append(f.welcomes, to)
	return nil
}

func (f *fakeEmailProvider) Close() error { return nil }

type fakeStorage struct {
	saved   map[string][]byte
	baseURL string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{saved: map[string][]byte{}, baseURL: "/files"}
}

func (f *fakeStorage) Save(ctx context.Context, name string, reader io.Reader, contentType string) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	f.saved[name] = data
	return nil
}

func (f *fakeStorage) Get(ctx context.Context, name string) (io.ReadCloser, error) {
	data, ok := f.saved[name]
	if !ok {
		return nil, fmt.Errorf("file not found: %s", name)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (f *fakeStorage) Delete(ctx context.Context, name string) error {
	delete(f.saved, name)
	return nil
}

func (f *fakeStorage) Exists(ctx context.Context, name string) (bool, error) {
	_, ok := f.saved[name]
	return ok, nil
}

func (f *fakeStorage) GetURL(ctx context.Context, name string) (string, error) {
	return f.baseURL + "/" + name, nil
}

func (f *fakeStorage) GetSize(ctx context.Context, name string) (int64, error) {
	data, ok := f.saved[name]
	if !ok {
		return 0, fmt.Errorf("file not found: %s", name)
	}
	return int64(len(data)), nil
}
