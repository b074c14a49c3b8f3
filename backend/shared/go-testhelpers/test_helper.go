package testhelpers

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/harborview/realestate/backend/shared/go-repositories"
	"github.com/harborview/realestate/backend/shared/go-utils"
)

// TestHelper encapsulates all necessary components for running integration
// tests against a live store.
type TestHelper struct {
	T         *testing.T
	Ctx       context.Context
	BaseURL   string
	DB        *pgxpool.Pool
	JWTSecret []byte

	AppName string

	// Repositories
	PropertyRepo repositories.PropertyRepository
	ProfileRepo  repositories.UserProfileRepository
	SavedRepo    repositories.SavedPropertyRepository
	InquiryRepo  repositories.InquiryRepository
}

// NewTestHelper connects to the store named by STORE_URL / STORE_KEY and
// initializes repositories. It's designed to be called once per test or from
// a shared setup function.
func NewTestHelper(t *testing.T, appName string) *TestHelper {
	// 1. Load environment
	storeURL := os.Getenv("STORE_URL")
	if storeURL == "" {
		log.Fatal("STORE_URL env var is missing")
	}
	storeKey := os.Getenv("STORE_KEY")
	if storeKey == "" {
		log.Fatal("STORE_KEY env var is missing")
	}
	secret := os.Getenv("AUTH_JWT_SECRET")
	if secret == "" {
		secret = "integration-test-secret"
	}

	// 2. Connect to DB
	effectiveURL, err := utils.WithCredential(storeURL, storeKey)
	require.NoError(t, err)

	ctx := context.Background()
	dbPool, err := pgxpool.Connect(ctx, effectiveURL)
	require.NoError(t, err)
	t.Cleanup(func() { dbPool.Close() })

	// 3. Initialize all repositories and the helper
	return &TestHelper{
		T:            t,
		Ctx:          ctx,
		BaseURL:      os.Getenv("APP_URL_FROM_ANYWHERE"),
		DB:           dbPool,
		JWTSecret:    []byte(secret),
		AppName:      appName,
		PropertyRepo: repositories.NewPropertyRepository(dbPool),
		ProfileRepo:  repositories.NewUserProfileRepository(dbPool),
		SavedRepo:    repositories.NewSavedPropertyRepository(dbPool),
		InquiryRepo:  repositories.NewInquiryRepository(dbPool),
	}
}

// ResetListings empties every listing table so a scenario sees only its own
// fixtures. Tests that call it must not run in parallel.
func (h *TestHelper) ResetListings() {
	_, err := h.DB.Exec(h.Ctx, `
        TRUNCATE property_inquiries, saved_properties, property_images, properties, user_profiles
    `)
	require.NoError(h.T, err, "Failed to reset listing tables")
}
