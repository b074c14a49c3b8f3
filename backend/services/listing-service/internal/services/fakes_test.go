package services

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/harborview/realestate/backend/services/listing-service/internal/gateway"
	"github.com/harborview/realestate/backend/shared/go-models"
	"github.com/harborview/realestate/backend/shared/go-utils"
)

// fakeGateway is an in-memory gateway.Gateway.
type fakeGateway struct {
	mu sync.Mutex

	properties map[uuid.UUID]*models.Property
	featured   []*models.Property
	profiles   map[uuid.UUID]*models.UserProfile
	saved      map[[2]uuid.UUID]bool
	inquiries  []*models.Inquiry

	featuredErr error
	isSavedErr  error
	createErr   error
}

var _ gateway.Gateway = (*fakeGateway)(nil)

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		properties: map[uuid.UUID]*models.Property{},
		profiles:   map[uuid.UUID]*models.UserProfile{},
		saved:      map[[2]uuid.UUID]bool{},
	}
}

func (f *fakeGateway) addProperty(title string) *models.Property {
	p := &models.Property{ID: uuid.New(), Title: title}
	f.properties[p.ID] = p
	return p
}

func (f *fakeGateway) FetchFeatured(_ context.Context, limit int) ([]*models.Property, error) {
	if f.featuredErr != nil {
		return nil, f.featuredErr
	}
	if limit < len(f.featured) {
		return f.featured[:limit], nil
	}
	return f.featured, nil
}

func (f *fakeGateway) FetchByID(_ context.Context, id uuid.UUID) (*models.Property, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.properties[id]
	if !ok {
		return nil, utils.NewNotFoundError("Property not found")
	}
	return p, nil
}

func (f *fakeGateway) Search(context.Context, models.FilterSpec) ([]*models.Property, error) {
	return nil, nil
}

func (f *fakeGateway) GetUserProfile(_ context.Context, id uuid.UUID) (*models.UserProfile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return nil, utils.NewNotFoundError("User profile not found")
	}
	return p, nil
}

func (f *fakeGateway) UpdateUserProfile(ctx context.Context, id uuid.UUID, upd models.ProfileUpdate) (*models.UserProfile, error) {
	p, err := f.GetUserProfile(ctx, id)
	if err != nil {
		return nil, err
	}
	upd.Apply(p)
	return p, nil
}

func (f *fakeGateway) GetSavedProperties(context.Context, uuid.UUID) ([]*models.Property, error) {
	return []*models.Property{}, nil
}

func (f *fakeGateway) ListSavedIDs(context.Context, uuid.UUID) ([]uuid.UUID, error) {
	return nil, nil
}

func (f *fakeGateway) ToggleSavedProperty(_ context.Context, u, p uuid.UUID) (bool, error) {
	k := [2]uuid.UUID{u, p}
	f.saved[k] = !f.saved[k]
	return f.saved[k], nil
}

func (f *fakeGateway) IsSaved(_ context.Context, u, p uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.isSavedErr != nil {
		return false, f.isSavedErr
	}
	return f.saved[[2]uuid.UUID{u, p}], nil
}

func (f *fakeGateway) CreateInquiry(_ context.Context, in models.NewInquiry) (*models.Inquiry, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	inq := &models.Inquiry{
		ID: uuid.New(), UserID: in.UserID, PropertyID: in.PropertyID,
		Name: in.Name, Email: in.Email, Phone: in.Phone, Message: in.Message,
	}
	f.inquiries = append(f.inquiries, inq)
	return inq, nil
}

func (f *fakeGateway) GetUserInquiries(context.Context, uuid.UUID) ([]*models.InquiryWithProperty, error) {
	return []*models.InquiryWithProperty{}, nil
}

type recordingNotifier struct {
	calls []*models.Inquiry
}

func (r *recordingNotifier) InquiryCreated(_ context.Context, inq *models.Inquiry, _ *models.Property) {
	r.calls = append(r.calls, inq)
}

type fakeEmail struct {
	sent []*mail.SGMailV3
	err  error
}

func (f *fakeEmail) SendEmail(msg *mail.SGMailV3) error {
	f.sent = append(f.sent, msg)
	return f.err
}

type fakeSMS struct {
	to   []string
	body []string
	err  error
}

func (f *fakeSMS) SendSMS(to, body string) error {
	f.to = append(f.to, to)
	f.body = append(f.body, body)
	return f.err
}
