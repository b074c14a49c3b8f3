package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"

	"github.com/harborview/realestate/backend/shared/go-models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type UserProfileRepository interface {
	Create(ctx context.Context, p *models.UserProfile) error

	// GetByID returns pgx.ErrNoRows when no profile exists for id.
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserProfile, error)

	// Optimistic‑lock helpers
	UpdateIfVersion(ctx context.Context, p *models.UserProfile, expected int64) (pgconn.CommandTag, error)
	UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.UserProfile) error) (*models.UserProfile, error)
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type userProfileRepo struct {
	*BaseVersionedRepo[*models.UserProfile]
	db DB
}

func NewUserProfileRepository(db DB) UserProfileRepository {
	r := &userProfileRepo{db: db}
	r.BaseVersionedRepo = NewBaseRepo(db, baseSelectUserProfile()+" WHERE id=$1", r.scanUserProfile)
	return r
}

func (r *userProfileRepo) Create(ctx context.Context, p *models.UserProfile) error {
	return r.db.QueryRow(ctx, `
        INSERT INTO user_profiles (
            id, email, full_name, phone, avatar_url,
            created_at, updated_at, row_version
        ) VALUES ($1,$2,$3,$4,$5, NOW(), NOW(), 1)
        RETURNING created_at, updated_at, row_version
    `,
		p.ID, p.Email, p.FullName, p.Phone, p.AvatarURL,
	).Scan(&p.CreatedAt, &p.UpdatedAt, &p.RowVersion)
}

func (r *userProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.UserProfile, error) {
	return r.BaseVersionedRepo.GetByID(ctx, id.String())
}

func (r *userProfileRepo) UpdateIfVersion(ctx context.Context, p *models.UserProfile, expected int64) (pgconn.CommandTag, error) {
	return r.db.Exec(ctx, `
        UPDATE user_profiles SET
            full_name=$1,
            phone=$2,
            avatar_url=$3,
            updated_at=NOW(),
            row_version=row_version+1
        WHERE id=$4 AND row_version=$5
    `,
		p.FullName, p.Phone, p.AvatarURL, p.ID, expected,
	)
}

func (r *userProfileRepo) UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.UserProfile) error) (*models.UserProfile, error) {
	return r.BaseVersionedRepo.UpdateWithRetry(ctx, id.String(), mutate, r.UpdateIfVersion)
}

func baseSelectUserProfile() string {
	return `
        SELECT
            id, email, full_name, phone, avatar_url,
            created_at, updated_at, row_version
        FROM user_profiles
    `
}

func (r *userProfileRepo) scanUserProfile(row pgx.Row) (*models.UserProfile, error) {
	var (
		p         models.UserProfile
		phone     pgtype.Text
		avatarURL pgtype.Text
	)
	err := row.Scan(
		&p.ID,
		&p.Email,
		&p.FullName,
		&phone,
		&avatarURL,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.RowVersion,
	)
	if err != nil {
		return nil, err
	}
	if phone.Status == pgtype.Present {
		p.Phone = &phone.String
	}
	if avatarURL.Status == pgtype.Present {
		p.AvatarURL = &avatarURL.String
	}
	return &p, nil
}
