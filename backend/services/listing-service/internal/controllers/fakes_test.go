package controllers

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/harborview/realestate/backend/services/listing-service/internal/gateway"
	"github.com/harborview/realestate/backend/shared/go-models"
	"github.com/harborview/realestate/backend/shared/go-utils"
)

// memGateway is an in-memory gateway.Gateway safe for the concurrent
// lookups of the session loader and the detail service.
type memGateway struct {
	mu sync.Mutex

	properties []*models.Property
	profiles   map[uuid.UUID]*models.UserProfile
	saved      map[[2]uuid.UUID]bool
	inquiries  []*models.Inquiry

	storeDown bool
}

var _ gateway.Gateway = (*memGateway)(nil)

var errStoreDown = utils.WrapInternal("Failed to search properties", errors.New("connection refused"))

func newMemGateway() *memGateway {
	return &memGateway{
		profiles: map[uuid.UUID]*models.UserProfile{},
		saved:    map[[2]uuid.UUID]bool{},
	}
}

func (g *memGateway) add(title string, price int64) *models.Property {
	g.mu.Lock()
	defer g.mu.Unlock()
	p := &models.Property{
		ID:           uuid.New(),
		Title:        title,
		Price:        price,
		PropertyType: models.PropertyTypeResidential,
		City:         "Austin",
		State:        "TX",
		Status:       models.PropertyStatusAvailable,
		CreatedAt:    time.Now(),
	}
	g.properties = append([]*models.Property{p}, g.properties...)
	return p
}

func (g *memGateway) FetchFeatured(_ context.Context, limit int) ([]*models.Property, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.storeDown {
		return nil, errStoreDown
	}
	if limit < len(g.properties) {
		return g.properties[:limit], nil
	}
	return g.properties, nil
}

func (g *memGateway) FetchByID(_ context.Context, id uuid.UUID) (*models.Property, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, p := range g.properties {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, utils.NewNotFoundError("Property not found")
}

func (g *memGateway) Search(context.Context, models.FilterSpec) ([]*models.Property, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.storeDown {
		return nil, errStoreDown
	}
	return append([]*models.Property(nil), g.properties...), nil
}

func (g *memGateway) GetUserProfile(_ context.Context, id uuid.UUID) (*models.UserProfile, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	p, ok := g.profiles[id]
	if !ok {
		return nil, utils.NewNotFoundError("User profile not found")
	}
	return p, nil
}

func (g *memGateway) UpdateUserProfile(ctx context.Context, id uuid.UUID, upd models.ProfileUpdate) (*models.UserProfile, error) {
	p, err := g.GetUserProfile(ctx, id)
	if err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	upd.Apply(p)
	return p, nil
}

func (g *memGateway) GetSavedProperties(_ context.Context, userID uuid.UUID) ([]*models.Property, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := []*models.Property{}
	for _, p := range g.properties {
		if g.saved[[2]uuid.UUID{userID, p.ID}] {
			out = append(out, p)
		}
	}
	return out, nil
}

func (g *memGateway) ListSavedIDs(_ context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	var ids []uuid.UUID
	for k, v := range g.saved {
		if v && k[0] == userID {
			ids = append(ids, k[1])
		}
	}
	return ids, nil
}

func (g *memGateway) ToggleSavedProperty(_ context.Context, userID, propertyID uuid.UUID) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	k := [2]uuid.UUID{userID, propertyID}
	g.saved[k] = !g.saved[k]
	return g.saved[k], nil
}

func (g *memGateway) IsSaved(_ context.Context, userID, propertyID uuid.UUID) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.saved[[2]uuid.UUID{userID, propertyID}], nil
}

func (g *memGateway) CreateInquiry(_ context.Context, in models.NewInquiry) (*models.Inquiry, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	inq := &models.Inquiry{
		ID: uuid.New(), UserID: in.UserID, PropertyID: in.PropertyID,
		Name: in.Name, Email: in.Email, Phone: in.Phone, Message: in.Message,
		CreatedAt: time.Now(),
	}
	g.inquiries = append(g.inquiries, inq)
	return inq, nil
}

func (g *memGateway) GetUserInquiries(_ context.Context, userID uuid.UUID) ([]*models.InquiryWithProperty, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := []*models.InquiryWithProperty{}
	for _, inq := range g.inquiries {
		if inq.UserID == userID {
			out = append(out, &models.InquiryWithProperty{Inquiry: *inq})
		}
	}
	return out, nil
}

type fakePinger struct {
	err error
}

func (p fakePinger) Ping(context.Context) error { return p.err }
