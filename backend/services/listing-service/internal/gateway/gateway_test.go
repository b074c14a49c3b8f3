package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborview/realestate/backend/shared/go-models"
	"github.com/harborview/realestate/backend/shared/go-utils"
)

var errNoRows = pgx.ErrNoRows

type fixture struct {
	props     *fakePropertyRepo
	profiles  *fakeProfileRepo
	saved     *fakeSavedRepo
	inquiries *fakeInquiryRepo
	gw        Gateway
}

func newFixture() *fixture {
	f := &fixture{
		props:     &fakePropertyRepo{byID: map[uuid.UUID]*models.Property{}},
		profiles:  &fakeProfileRepo{},
		saved:     &fakeSavedRepo{},
		inquiries: &fakeInquiryRepo{},
	}
	f.gw = New(f.props, f.profiles, f.saved, f.inquiries)
	return f
}

func requireKind(t *testing.T, err error, kind utils.ErrorKind) *utils.AppError {
	t.Helper()
	require.Error(t, err)
	appErr, ok := utils.AsAppError(err)
	require.True(t, ok, "expected *AppError, got %T", err)
	assert.Equal(t, kind, appErr.Kind, appErr.Message)
	return appErr
}

func TestTranslate_MappingTable(t *testing.T) {
	cases := []struct {
		name string
		err  error
		kind utils.ErrorKind
	}{
		{"no rows", pgx.ErrNoRows, utils.KindNotFound},
		{"wrapped no rows", fmt.Errorf("scan: %w", pgx.ErrNoRows), utils.KindNotFound},
		{"invalid auth spec", &pgconn.PgError{Code: "28000"}, utils.KindAuthentication},
		{"invalid password", &pgconn.PgError{Code: "28P01"}, utils.KindAuthentication},
		{"rls", &pgconn.PgError{Code: "42501"}, utils.KindAuthorization},
		{"bad text", &pgconn.PgError{Code: "22P02"}, utils.KindValidation},
		{"not null", &pgconn.PgError{Code: "23502"}, utils.KindValidation},
		{"fk", &pgconn.PgError{Code: "23503"}, utils.KindValidation},
		{"check", &pgconn.PgError{Code: "23514"}, utils.KindValidation},
		{"unique is not mapped", &pgconn.PgError{Code: "23505"}, utils.KindInternal},
		{"foreign error", errors.New("connection reset"), utils.KindInternal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := translate(tc.err, messages{failed: "op failed"})
			appErr := requireKind(t, got, tc.kind)
			assert.Equal(t, tc.kind.StatusCode(), appErr.StatusCode)
			assert.ErrorIs(t, got, tc.err, "cause must be preserved")
		})
	}
}

func TestTranslate_TypedErrorsPassThrough(t *testing.T) {
	typed := utils.NewAuthorizationError("nope")
	assert.Same(t, typed, translate(typed, messages{failed: "x"}))
	assert.NoError(t, translate(nil, messages{}))
}

func TestTranslate_EveryTableCodeIsReachable(t *testing.T) {
	for code, kind := range storeCodeKinds {
		var err error = &pgconn.PgError{Code: code}
		if code == codeNoRows {
			err = pgx.ErrNoRows
		}
		assert.Equal(t, code, storeCode(err))
		requireKind(t, translate(err, messages{failed: "x"}), kind)
	}
}

func TestFetchFeatured(t *testing.T) {
	f := newFixture()
	for i := 0; i < 5; i++ {
		f.props.featured = append(f.props.featured, &models.Property{ID: uuid.New()})
	}

	got, err := f.gw.FetchFeatured(context.Background(), 3)
	require.NoError(t, err)
	assert.Len(t, got, 3)
	assert.Equal(t, 3, f.props.gotLimit)

	got, err = f.gw.FetchFeatured(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, got)

	f.props.err = &pgconn.PgError{Code: "42501"}
	_, err = f.gw.FetchFeatured(context.Background(), 3)
	appErr := requireKind(t, err, utils.KindInternal)
	assert.Equal(t, "Failed to fetch featured properties", appErr.Message)
	assert.Equal(t, http.StatusInternalServerError, appErr.StatusCode)
	assert.Error(t, appErr.Err)
}

func TestFetchByID(t *testing.T) {
	f := newFixture()
	id := uuid.New()
	f.props.byID[id] = &models.Property{ID: id, Title: "Loft"}

	p, err := f.gw.FetchByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Loft", p.Title)

	_, err = f.gw.FetchByID(context.Background(), uuid.New())
	appErr := requireKind(t, err, utils.KindNotFound)
	assert.Equal(t, "Property not found", appErr.Message)
	assert.Equal(t, http.StatusNotFound, appErr.StatusCode)

	_, err = f.gw.FetchByID(context.Background(), uuid.Nil)
	requireKind(t, err, utils.KindNotFound)

	f.props.err = errors.New("boom")
	_, err = f.gw.FetchByID(context.Background(), id)
	appErr = requireKind(t, err, utils.KindInternal)
	assert.Equal(t, "Failed to fetch property", appErr.Message)
}

func TestSearch_PassesFilterAndWrapsFailure(t *testing.T) {
	f := newFixture()
	filter := models.FilterSpec{Type: "land", Bedrooms: utils.Ptr(0)}

	_, err := f.gw.Search(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, filter, f.props.gotFilter)

	f.props.err = &pgconn.PgError{Code: "57P01"}
	_, err = f.gw.Search(context.Background(), filter)
	appErr := requireKind(t, err, utils.KindInternal)
	assert.Equal(t, "Failed to search properties", appErr.Message)
}

func TestUserProfile(t *testing.T) {
	f := newFixture()
	uid := uuid.New()
	ctx := context.Background()

	_, err := f.gw.GetUserProfile(ctx, uid)
	appErr := requireKind(t, err, utils.KindNotFound)
	assert.Equal(t, "User profile not found", appErr.Message)

	_, err = f.gw.UpdateUserProfile(ctx, uid, models.ProfileUpdate{FullName: utils.Ptr("A")})
	requireKind(t, err, utils.KindNotFound)

	f.profiles.profile = &models.UserProfile{ID: uid, FullName: "Old", Phone: utils.Ptr("1")}
	updated, err := f.gw.UpdateUserProfile(ctx, uid, models.ProfileUpdate{FullName: utils.Ptr("New")})
	require.NoError(t, err)
	assert.Equal(t, "New", updated.FullName)
	assert.Equal(t, "1", *updated.Phone, "nil fields are untouched")

	same, err := f.gw.UpdateUserProfile(ctx, uid, models.ProfileUpdate{})
	require.NoError(t, err)
	assert.Equal(t, "New", same.FullName)

	f.profiles.updateErr = fmt.Errorf("contention: %w", utils.ErrRowVersionConflict)
	_, err = f.gw.UpdateUserProfile(ctx, uid, models.ProfileUpdate{FullName: utils.Ptr("X")})
	appErr = requireKind(t, err, utils.KindInternal)
	assert.Equal(t, "Failed to update user profile", appErr.Message)
	assert.ErrorIs(t, err, utils.ErrRowVersionConflict)

	_, err = f.gw.GetUserProfile(ctx, uuid.Nil)
	requireKind(t, err, utils.KindAuthentication)
}

func TestToggleSavedProperty_IsAnInvolution(t *testing.T) {
	f := newFixture()
	uid, pid := uuid.New(), uuid.New()
	ctx := context.Background()

	before, err := f.gw.IsSaved(ctx, uid, pid)
	require.NoError(t, err)

	first, err := f.gw.ToggleSavedProperty(ctx, uid, pid)
	require.NoError(t, err)
	assert.Equal(t, !before, first)

	second, err := f.gw.ToggleSavedProperty(ctx, uid, pid)
	require.NoError(t, err)
	assert.Equal(t, before, second)

	after, err := f.gw.IsSaved(ctx, uid, pid)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestToggleSavedProperty_UnknownProperty(t *testing.T) {
	f := newFixture()
	f.saved.err = &pgconn.PgError{Code: "23503", ConstraintName: "saved_properties_property_id_fkey"}

	_, err := f.gw.ToggleSavedProperty(context.Background(), uuid.New(), uuid.New())
	appErr := requireKind(t, err, utils.KindValidation)
	assert.Equal(t, "Property does not exist", appErr.Message)
	assert.Equal(t, map[string]string{"constraint": "saved_properties_property_id_fkey"}, appErr.Details)

	_, err = f.gw.ToggleSavedProperty(context.Background(), uuid.Nil, uuid.New())
	requireKind(t, err, utils.KindAuthentication)
}

func TestIsSaved_AnonymousIsNeverSaved(t *testing.T) {
	f := newFixture()
	f.saved.err = errors.New("must not be called")
	saved, err := f.gw.IsSaved(context.Background(), uuid.Nil, uuid.New())
	require.NoError(t, err)
	assert.False(t, saved)
}

func TestInquiries(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	in := models.NewInquiry{UserID: uuid.New(), PropertyID: uuid.New(), Name: "N", Email: "e@x.io", Message: "Hi"}

	created, err := f.gw.CreateInquiry(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, in.PropertyID, created.PropertyID)

	f.inquiries.err = &pgconn.PgError{Code: "23503"}
	_, err = f.gw.CreateInquiry(ctx, in)
	requireKind(t, err, utils.KindValidation)

	f.inquiries.err = errors.New("down")
	_, err = f.gw.GetUserInquiries(ctx, in.UserID)
	appErr := requireKind(t, err, utils.KindInternal)
	assert.Equal(t, "Failed to fetch inquiries", appErr.Message)
}
