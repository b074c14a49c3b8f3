package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/harborview/realestate/backend/shared/go-models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type SavedPropertyRepository interface {
	// Toggle flips the saved state in one statement and reports whether the
	// pair is saved afterwards.
	Toggle(ctx context.Context, userID, propertyID uuid.UUID) (bool, error)
	IsSaved(ctx context.Context, userID, propertyID uuid.UUID) (bool, error)
	ListSavedIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)

	// ListProperties returns the saved listings themselves, most recently
	// saved first.
	ListProperties(ctx context.Context, userID uuid.UUID) ([]*models.Property, error)
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type savedPropertyRepo struct {
	db DB
}

func NewSavedPropertyRepository(db DB) SavedPropertyRepository {
	return &savedPropertyRepo{db: db}
}

// The delete and the conditional insert share one snapshot: when a row was
// removed nothing is inserted, otherwise the insert leans on
// UNIQUE(user_id, property_id) so a concurrent twin cannot duplicate it.
const toggleSavedSQL = `
    WITH removed AS (
        DELETE FROM saved_properties
        WHERE user_id=$1 AND property_id=$2
        RETURNING id
    ), added AS (
        INSERT INTO saved_properties (id, user_id, property_id, created_at)
        SELECT $3, $1, $2, NOW()
        WHERE NOT EXISTS (SELECT 1 FROM removed)
        ON CONFLICT (user_id, property_id) DO NOTHING
        RETURNING id
    )
    SELECT EXISTS (SELECT 1 FROM added)
`

func (r *savedPropertyRepo) Toggle(ctx context.Context, userID, propertyID uuid.UUID) (bool, error) {
	var saved bool
	err := r.db.QueryRow(ctx, toggleSavedSQL, userID, propertyID, uuid.New()).Scan(&saved)
	return saved, err
}

func (r *savedPropertyRepo) IsSaved(ctx context.Context, userID, propertyID uuid.UUID) (bool, error) {
	var saved bool
	err := r.db.QueryRow(ctx, `
        SELECT EXISTS (
            SELECT 1 FROM saved_properties WHERE user_id=$1 AND property_id=$2
        )
    `, userID, propertyID).Scan(&saved)
	return saved, err
}

func (r *savedPropertyRepo) ListSavedIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, `
        SELECT property_id FROM saved_properties
        WHERE user_id=$1
        ORDER BY created_at DESC
    `, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []uuid.UUID{}
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *savedPropertyRepo) ListProperties(ctx context.Context, userID uuid.UUID) ([]*models.Property, error) {
	rows, err := r.db.Query(ctx,
		baseSelectCard()+`
        JOIN saved_properties sp ON sp.property_id = p.id
        WHERE sp.user_id=$1
        ORDER BY sp.created_at DESC
    `, userID)
	if err != nil {
		return nil, err
	}
	return collectCards(rows)
}

func collectCards(rows pgx.Rows) ([]*models.Property, error) {
	defer rows.Close()

	out := []*models.Property{}
	for rows.Next() {
		p, err := scanPropertyCard(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
