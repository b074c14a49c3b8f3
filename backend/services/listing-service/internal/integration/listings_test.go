//go:build integration

package integration

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborview/realestate/backend/shared/go-models"
	"github.com/harborview/realestate/backend/shared/go-testhelpers"
	"github.com/harborview/realestate/backend/shared/go-utils"
)

func titles(props []*models.Property) []string {
	out := make([]string, len(props))
	for i, p := range props {
		out[i] = p.Title
	}
	return out
}

func TestSearch_TypeAndPriceRange(t *testing.T) {
	h.T = t
	h.ResetListings()
	ctx := h.Ctx

	h.CreateTestProperty(ctx, testhelpers.PropertyFixture{Title: "Cheap Cottage", Price: 150000, Age: 3 * time.Hour})
	h.CreateTestProperty(ctx, testhelpers.PropertyFixture{Title: "Family Home", Price: 250000, Age: 1 * time.Hour})
	h.CreateTestProperty(ctx, testhelpers.PropertyFixture{Title: "Corner Lot House", Price: 300000, Age: 2 * time.Hour})
	h.CreateTestProperty(ctx, testhelpers.PropertyFixture{Title: "Hilltop Estate", Price: 350000, Age: 30 * time.Minute})
	h.CreateTestProperty(ctx, testhelpers.PropertyFixture{
		Title: "Main Street Shop", Price: 200000, PropertyType: models.PropertyTypeCommercial, Age: 10 * time.Minute,
	})

	got, err := gw.Search(ctx, models.FilterSpec{
		Type:     string(models.PropertyTypeResidential),
		MinPrice: utils.Ptr[int64](100000),
		MaxPrice: utils.Ptr[int64](300000),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Family Home", "Corner Lot House", "Cheap Cottage"}, titles(got))
	for _, p := range got {
		require.Len(t, p.Images, 1)
		assert.True(t, p.Images[0].IsPrimary)
	}

	all, err := gw.Search(ctx, models.FilterSpec{})
	require.NoError(t, err)
	assert.Len(t, all, 5)

	none, err := gw.Search(ctx, models.FilterSpec{Type: "castle"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSearch_KeywordAndRooms(t *testing.T) {
	h.T = t
	h.ResetListings()
	ctx := h.Ctx

	h.CreateTestProperty(ctx, testhelpers.PropertyFixture{
		Title: "Downtown Loft", Description: "Exposed brick", Price: 400000,
		Bedrooms: utils.Ptr(2), Bathrooms: utils.Ptr(1.5),
	})
	h.CreateTestProperty(ctx, testhelpers.PropertyFixture{
		Title: "Suburban Ranch", Description: "Big yard, 100% fenced", Price: 380000,
		Bedrooms: utils.Ptr(4), Bathrooms: utils.Ptr(2.5),
	})

	got, err := gw.Search(ctx, models.FilterSpec{Query: "BRICK"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Downtown Loft"}, titles(got))

	got, err = gw.Search(ctx, models.FilterSpec{Query: "100%"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Suburban Ranch"}, titles(got))

	got, err = gw.Search(ctx, models.FilterSpec{Bedrooms: utils.Ptr(4), Bathrooms: utils.Ptr(2.5)})
	require.NoError(t, err)
	assert.Equal(t, []string{"Suburban Ranch"}, titles(got))
	require.NotNil(t, got[0].Bathrooms)
	assert.InDelta(t, 2.5, *got[0].Bathrooms, 1e-9)
}

func TestFetchFeatured(t *testing.T) {
	h.T = t
	h.ResetListings()
	ctx := h.Ctx

	h.CreateTestProperty(ctx, testhelpers.PropertyFixture{Title: "Lone", Age: time.Hour})
	h.CreateTestProperty(ctx, testhelpers.PropertyFixture{
		Title: "Pending Sale", Status: models.PropertyStatusUnderContract,
	})
	got, err := gw.FetchFeatured(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"Lone"}, titles(got))

	h.ResetListings()
	for i := 1; i <= 10; i++ {
		h.CreateTestProperty(ctx, testhelpers.PropertyFixture{
			Title: "Listing " + string(rune('A'+i-1)),
			Age:   time.Duration(i) * time.Hour,
		})
	}
	got, err = gw.FetchFeatured(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"Listing A", "Listing B", "Listing C"}, titles(got))
}

func TestFetchByID(t *testing.T) {
	h.T = t
	ctx := h.Ctx

	created := h.CreateTestProperty(ctx, testhelpers.PropertyFixture{Title: "Detail Me", Price: 123000})
	got, err := gw.FetchByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Detail Me", got.Title)
	assert.Len(t, got.Images, 1)

	_, err = gw.FetchByID(ctx, uuid.New())
	require.Error(t, err)
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))
	assert.Equal(t, 404, utils.NormalizeError(err, false).StatusCode)
}
