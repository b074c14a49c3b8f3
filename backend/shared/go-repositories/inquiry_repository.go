package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"

	"github.com/harborview/realestate/backend/shared/go-models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type InquiryRepository interface {
	// Create inserts the inquiry; there is no update or delete.
	Create(ctx context.Context, in models.NewInquiry) (*models.Inquiry, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.InquiryWithProperty, error)
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type inquiryRepo struct {
	db DB
}

func NewInquiryRepository(db DB) InquiryRepository {
	return &inquiryRepo{db: db}
}

func (r *inquiryRepo) Create(ctx context.Context, in models.NewInquiry) (*models.Inquiry, error) {
	row := r.db.QueryRow(ctx, `
        INSERT INTO property_inquiries (
            id, user_id, property_id, name, email, phone, message, created_at
        ) VALUES ($1,$2,$3,$4,$5,$6,$7, NOW())
        RETURNING `+inquiryColumns("")+`
    `,
		uuid.New(), in.UserID, in.PropertyID, in.Name, in.Email, in.Phone, in.Message,
	)
	return scanInquiry(row)
}

func (r *inquiryRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.InquiryWithProperty, error) {
	rows, err := r.db.Query(ctx, `
        SELECT `+inquiryColumns("i.")+`,
            p.title, p.price
        FROM property_inquiries i
        JOIN properties p ON p.id = i.property_id
        WHERE i.user_id=$1
        ORDER BY i.created_at DESC
    `, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*models.InquiryWithProperty{}
	for rows.Next() {
		var (
			iw    models.InquiryWithProperty
			phone pgtype.Text
		)
		err := rows.Scan(
			&iw.ID, &iw.UserID, &iw.PropertyID, &iw.Name, &iw.Email,
			&phone, &iw.Message, &iw.CreatedAt,
			&iw.PropertyTitle, &iw.PropertyPrice,
		)
		if err != nil {
			return nil, err
		}
		if phone.Status == pgtype.Present {
			iw.Phone = &phone.String
		}
		out = append(out, &iw)
	}
	return out, rows.Err()
}

func inquiryColumns(alias string) string {
	cols := ""
	for i, c := range []string{"id", "user_id", "property_id", "name", "email", "phone", "message", "created_at"} {
		if i > 0 {
			cols += ", "
		}
		cols += alias + c
	}
	return cols
}

func scanInquiry(row pgx.Row) (*models.Inquiry, error) {
	var (
		in    models.Inquiry
		phone pgtype.Text
	)
	err := row.Scan(
		&in.ID, &in.UserID, &in.PropertyID, &in.Name, &in.Email,
		&phone, &in.Message, &in.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if phone.Status == pgtype.Present {
		in.Phone = &phone.String
	}
	return &in, nil
}
