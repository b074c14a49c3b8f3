package gateway

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"

	"github.com/harborview/realestate/backend/shared/go-models"
)

type fakePropertyRepo struct {
	featured []*models.Property
	byID     map[uuid.UUID]*models.Property
	search   []*models.Property
	err      error

	gotLimit  int
	gotFilter models.FilterSpec
}

func (f *fakePropertyRepo) Create(context.Context, *models.Property) error { return f.err }
func (f *fakePropertyRepo) AddImage(context.Context, uuid.UUID, models.PropertyImage, int) error {
	return f.err
}
func (f *fakePropertyRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Property, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.byID[id]
	if !ok {
		return nil, errNoRows
	}
	return p, nil
}
func (f *fakePropertyRepo) ListImages(context.Context, uuid.UUID) ([]models.PropertyImage, error) {
	return nil, f.err
}
func (f *fakePropertyRepo) ListFeatured(_ context.Context, limit int) ([]*models.Property, error) {
	f.gotLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	if limit < len(f.featured) {
		return f.featured[:limit], nil
	}
	return f.featured, nil
}
func (f *fakePropertyRepo) Search(_ context.Context, filter models.FilterSpec) ([]*models.Property, error) {
	f.gotFilter = filter
	return f.search, f.err
}

type fakeProfileRepo struct {
	profile   *models.UserProfile
	err       error
	updateErr error
}

func (f *fakeProfileRepo) Create(context.Context, *models.UserProfile) error { return f.err }
func (f *fakeProfileRepo) GetByID(context.Context, uuid.UUID) (*models.UserProfile, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.profile == nil {
		return nil, errNoRows
	}
	cp := *f.profile
	return &cp, nil
}
func (f *fakeProfileRepo) UpdateIfVersion(context.Context, *models.UserProfile, int64) (pgconn.CommandTag, error) {
	return pgconn.CommandTag("UPDATE 1"), nil
}
func (f *fakeProfileRepo) UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.UserProfile) error) (*models.UserProfile, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	p, err := f.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := mutate(p); err != nil {
		return nil, err
	}
	p.RowVersion++
	f.profile = p
	return p, nil
}

// fakeSavedRepo keeps the set in memory; toggle semantics mirror the SQL.
type fakeSavedRepo struct {
	set map[[2]uuid.UUID]bool
	err error
}

func (f *fakeSavedRepo) Toggle(_ context.Context, u, p uuid.UUID) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if f.set == nil {
		f.set = map[[2]uuid.UUID]bool{}
	}
	k := [2]uuid.UUID{u, p}
	if f.set[k] {
		delete(f.set, k)
		return false, nil
	}
	f.set[k] = true
	return true, nil
}
func (f *fakeSavedRepo) IsSaved(_ context.Context, u, p uuid.UUID) (bool, error) {
	return f.set[[2]uuid.UUID{u, p}], f.err
}
func (f *fakeSavedRepo) ListSavedIDs(context.Context, uuid.UUID) ([]uuid.UUID, error) {
	return nil, f.err
}
func (f *fakeSavedRepo) ListProperties(context.Context, uuid.UUID) ([]*models.Property, error) {
	return []*models.Property{}, f.err
}

type fakeInquiryRepo struct {
	err error
}

func (f *fakeInquiryRepo) Create(_ context.Context, in models.NewInquiry) (*models.Inquiry, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.Inquiry{ID: uuid.New(), UserID: in.UserID, PropertyID: in.PropertyID, Name: in.Name, Email: in.Email, Message: in.Message}, nil
}
func (f *fakeInquiryRepo) ListByUser(context.Context, uuid.UUID) ([]*models.InquiryWithProperty, error) {
	return []*models.InquiryWithProperty{}, f.err
}
