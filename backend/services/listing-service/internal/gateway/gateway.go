package gateway

import (
	"context"

	"github.com/google/uuid"

	"github.com/harborview/realestate/backend/shared/go-models"
	"github.com/harborview/realestate/backend/shared/go-repositories"
	"github.com/harborview/realestate/backend/shared/go-utils"
)

// Gateway is the only way the service reaches the store. Every error it
// returns is a *utils.AppError.
type Gateway interface {
	FetchFeatured(ctx context.Context, limit int) ([]*models.Property, error)
	FetchByID(ctx context.Context, id uuid.UUID) (*models.Property, error)
	Search(ctx context.Context, f models.FilterSpec) ([]*models.Property, error)

	GetUserProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error)
	UpdateUserProfile(ctx context.Context, userID uuid.UUID, upd models.ProfileUpdate) (*models.UserProfile, error)

	GetSavedProperties(ctx context.Context, userID uuid.UUID) ([]*models.Property, error)
	ListSavedIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	ToggleSavedProperty(ctx context.Context, userID, propertyID uuid.UUID) (bool, error)
	IsSaved(ctx context.Context, userID, propertyID uuid.UUID) (bool, error)

	CreateInquiry(ctx context.Context, in models.NewInquiry) (*models.Inquiry, error)
	GetUserInquiries(ctx context.Context, userID uuid.UUID) ([]*models.InquiryWithProperty, error)
}

var (
	msgFeatured  = messages{failed: "Failed to fetch featured properties"}
	msgProperty  = messages{failed: "Failed to fetch property", notFound: "Property not found"}
	msgSearch    = messages{failed: "Failed to search properties"}
	msgProfile   = messages{failed: "Failed to fetch user profile", notFound: "User profile not found"}
	msgUpdate    = messages{failed: "Failed to update user profile", notFound: "User profile not found", invalid: "Invalid profile data"}
	msgSavedList = messages{failed: "Failed to fetch saved properties"}
	msgToggle    = messages{failed: "Failed to update saved property", invalid: "Property does not exist"}
	msgIsSaved   = messages{failed: "Failed to check saved property"}
	msgInquiry   = messages{failed: "Failed to submit inquiry", invalid: "Invalid inquiry"}
	msgInquiries = messages{failed: "Failed to fetch inquiries"}
)

type storeGateway struct {
	properties repositories.PropertyRepository
	profiles   repositories.UserProfileRepository
	saved      repositories.SavedPropertyRepository
	inquiries  repositories.InquiryRepository
}

func New(
	properties repositories.PropertyRepository,
	profiles repositories.UserProfileRepository,
	saved repositories.SavedPropertyRepository,
	inquiries repositories.InquiryRepository,
) Gateway {
	return &storeGateway{
		properties: properties,
		profiles:   profiles,
		saved:      saved,
		inquiries:  inquiries,
	}
}

// NewFromDB wires the gateway over the standard repositories.
func NewFromDB(db repositories.DB) Gateway {
	return New(
		repositories.NewPropertyRepository(db),
		repositories.NewUserProfileRepository(db),
		repositories.NewSavedPropertyRepository(db),
		repositories.NewInquiryRepository(db),
	)
}

func requireUser(userID uuid.UUID) error {
	if userID == uuid.Nil {
		return utils.NewErrorOfKind(utils.KindAuthentication, "Authentication required", utils.ErrMissingUserID)
	}
	return nil
}

/* ---------- Properties ---------- */

func (g *storeGateway) FetchFeatured(ctx context.Context, limit int) ([]*models.Property, error) {
	if limit < 1 {
		return []*models.Property{}, nil
	}
	props, err := g.properties.ListFeatured(ctx, limit)
	if err != nil {
		return nil, wrapAll(err, msgFeatured)
	}
	return props, nil
}

func (g *storeGateway) FetchByID(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	if id == uuid.Nil {
		return nil, utils.NewErrorOfKind(utils.KindNotFound, msgProperty.notFound, utils.ErrInvalidPropertyID)
	}
	p, err := g.properties.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, msgProperty)
	}
	return p, nil
}

func (g *storeGateway) Search(ctx context.Context, f models.FilterSpec) ([]*models.Property, error) {
	props, err := g.properties.Search(ctx, f)
	if err != nil {
		return nil, wrapAll(err, msgSearch)
	}
	return props, nil
}

/* ---------- Profiles ---------- */

func (g *storeGateway) GetUserProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	p, err := g.profiles.GetByID(ctx, userID)
	if err != nil {
		return nil, translate(err, msgProfile)
	}
	return p, nil
}

func (g *storeGateway) UpdateUserProfile(ctx context.Context, userID uuid.UUID, upd models.ProfileUpdate) (*models.UserProfile, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	if upd.IsEmpty() {
		p, err := g.profiles.GetByID(ctx, userID)
		return p, translate(err, msgUpdate)
	}

	p, err := g.profiles.UpdateWithRetry(ctx, userID, func(stored *models.UserProfile) error {
		upd.Apply(stored)
		return nil
	})
	if err != nil {
		return nil, translate(err, msgUpdate)
	}
	return p, nil
}

/* ---------- Saved properties ---------- */

func (g *storeGateway) GetSavedProperties(ctx context.Context, userID uuid.UUID) ([]*models.Property, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	props, err := g.saved.ListProperties(ctx, userID)
	if err != nil {
		return nil, translate(err, msgSavedList)
	}
	return props, nil
}

func (g *storeGateway) ListSavedIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	ids, err := g.saved.ListSavedIDs(ctx, userID)
	if err != nil {
		return nil, translate(err, msgSavedList)
	}
	return ids, nil
}

func (g *storeGateway) ToggleSavedProperty(ctx context.Context, userID, propertyID uuid.UUID) (bool, error) {
	if err := requireUser(userID); err != nil {
		return false, err
	}
	saved, err := g.saved.Toggle(ctx, userID, propertyID)
	if err != nil {
		return false, translate(err, msgToggle)
	}
	return saved, nil
}

func (g *storeGateway) IsSaved(ctx context.Context, userID, propertyID uuid.UUID) (bool, error) {
	if userID == uuid.Nil {
		return false, nil
	}
	saved, err := g.saved.IsSaved(ctx, userID, propertyID)
	if err != nil {
		return false, translate(err, msgIsSaved)
	}
	return saved, nil
}

/* ---------- Inquiries ---------- */

func (g *storeGateway) CreateInquiry(ctx context.Context, in models.NewInquiry) (*models.Inquiry, error) {
	if err := requireUser(in.UserID); err != nil {
		return nil, err
	}
	inq, err := g.inquiries.Create(ctx, in)
	if err != nil {
		return nil, translate(err, msgInquiry)
	}
	return inq, nil
}

func (g *storeGateway) GetUserInquiries(ctx context.Context, userID uuid.UUID) ([]*models.InquiryWithProperty, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	list, err := g.inquiries.ListByUser(ctx, userID)
	if err != nil {
		return nil, translate(err, msgInquiries)
	}
	return list, nil
}
