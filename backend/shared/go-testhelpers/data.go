// backend/shared/go-testhelpers/data.go

package testhelpers

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/harborview/realestate/backend/shared/go-models"
	"github.com/harborview/realestate/backend/shared/go-utils"
)

// UniquePhone generates a unique phone number for testing.
func UniquePhone() string {
	return fmt.Sprintf("+1555%07d", rand.New(rand.NewSource(time.Now().UnixNano())).Int31n(1e7))
}

// UniqueEmail generates a unique email for testing.
func UniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%d@harborview.test", prefix, time.Now().UnixNano())
}

// PropertyFixture describes a test listing. Zero values get sensible
// defaults; Age backdates created_at.
type PropertyFixture struct {
	Title        string
	Description  string
	Price        int64
	PropertyType models.PropertyType
	Bedrooms     *int
	Bathrooms    *float64
	Status       models.PropertyStatus
	Age          time.Duration
	NoImage      bool
}

// CreateTestProperty persists a listing with one primary image (unless
// NoImage) and returns it as stored.
func (h *TestHelper) CreateTestProperty(ctx context.Context, f PropertyFixture) *models.Property {
	if f.Title == "" {
		f.Title = "Test Property " + uuid.NewString()[:8]
	}
	if f.PropertyType == "" {
		f.PropertyType = models.PropertyTypeResidential
	}
	if f.Status == "" {
		f.Status = models.PropertyStatusAvailable
	}

	p := &models.Property{
		ID:           uuid.New(),
		Title:        f.Title,
		Description:  f.Description,
		Price:        f.Price,
		PropertyType: f.PropertyType,
		Bedrooms:     f.Bedrooms,
		Bathrooms:    f.Bathrooms,
		City:         "Testville",
		State:        "TS",
		Status:       f.Status,
		CreatedAt:    time.Now().Add(-f.Age),
	}
	if !f.NoImage {
		p.Images = []models.PropertyImage{{URL: "https://img.test/" + p.ID.String() + ".jpg", IsPrimary: true}}
	}
	require.NoError(h.T, h.PropertyRepo.Create(ctx, p), "Failed to create test property")

	stored, err := h.PropertyRepo.GetByID(ctx, p.ID)
	require.NoError(h.T, err)
	return stored
}

// CreateTestProfile persists a user profile for a fresh identity.
func (h *TestHelper) CreateTestProfile(ctx context.Context, emailPrefix string) *models.UserProfile {
	p := &models.UserProfile{
		ID:       uuid.New(),
		Email:    UniqueEmail(emailPrefix),
		FullName: "Test " + emailPrefix,
		Phone:    utils.Ptr(UniquePhone()),
	}
	require.NoError(h.T, h.ProfileRepo.Create(ctx, p), "Failed to create test profile")
	return p
}
