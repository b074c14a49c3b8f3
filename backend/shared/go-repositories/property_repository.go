package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"

	"github.com/harborview/realestate/backend/shared/go-models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type PropertyRepository interface {
	Create(ctx context.Context, p *models.Property) error
	AddImage(ctx context.Context, propertyID uuid.UUID, img models.PropertyImage, sortOrder int) error

	// GetByID returns pgx.ErrNoRows when the id matches nothing.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Property, error)
	ListImages(ctx context.Context, propertyID uuid.UUID) ([]models.PropertyImage, error)

	ListFeatured(ctx context.Context, limit int) ([]*models.Property, error)
	Search(ctx context.Context, f models.FilterSpec) ([]*models.Property, error)
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type propertyRepo struct {
	db DB
}

func NewPropertyRepository(db DB) PropertyRepository {
	return &propertyRepo{db: db}
}

func (r *propertyRepo) Create(ctx context.Context, p *models.Property) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	status := p.Status
	if status == "" {
		status = models.PropertyStatusAvailable
	}
	err := r.db.QueryRow(ctx, `
        INSERT INTO properties (
            id, title, description, price, property_type,
            bedrooms, bathrooms, city, state, status, created_at
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10, COALESCE($11, NOW()))
        RETURNING created_at
    `,
		p.ID,
		p.Title,
		p.Description,
		p.Price,
		string(p.PropertyType),
		p.Bedrooms,
		p.Bathrooms,
		p.City,
		p.State,
		string(status),
		nullableTime(p.CreatedAt),
	).Scan(&p.CreatedAt)
	if err != nil {
		return err
	}
	p.Status = status

	for i, img := range p.Images {
		if err := r.AddImage(ctx, p.ID, img, i); err != nil {
			return err
		}
	}
	return nil
}

func (r *propertyRepo) AddImage(ctx context.Context, propertyID uuid.UUID, img models.PropertyImage, sortOrder int) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO property_images (id, property_id, url, is_primary, sort_order, created_at)
        VALUES ($1,$2,$3,$4,$5, NOW())
    `, uuid.New(), propertyID, img.URL, img.IsPrimary, sortOrder)
	return err
}

func (r *propertyRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	row := r.db.QueryRow(ctx, baseSelectProperty()+" WHERE p.id=$1", id)
	p, err := scanProperty(row)
	if err != nil {
		return nil, err
	}
	images, err := r.ListImages(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Images = images
	return p, nil
}

func (r *propertyRepo) ListImages(ctx context.Context, propertyID uuid.UUID) ([]models.PropertyImage, error) {
	rows, err := r.db.Query(ctx, `
        SELECT url, is_primary
        FROM property_images
        WHERE property_id=$1
        ORDER BY sort_order, created_at
    `, propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.PropertyImage{}
	for rows.Next() {
		var img models.PropertyImage
		if err := rows.Scan(&img.URL, &img.IsPrimary); err != nil {
			return nil, err
		}
		out = append(out, img)
	}
	return out, rows.Err()
}

func (r *propertyRepo) ListFeatured(ctx context.Context, limit int) ([]*models.Property, error) {
	return r.listWithPrimaryImage(ctx,
		baseSelectCard()+" WHERE p.status=$1 ORDER BY p.created_at DESC LIMIT $2",
		string(models.PropertyStatusAvailable), limit,
	)
}

func (r *propertyRepo) Search(ctx context.Context, f models.FilterSpec) ([]*models.Property, error) {
	sql, args := BuildSearchQuery(f)
	return r.listWithPrimaryImage(ctx, sql, args...)
}

func (r *propertyRepo) listWithPrimaryImage(ctx context.Context, sql string, args ...any) ([]*models.Property, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return collectCards(rows)
}

/* ------------------------------------------------------------------
   Query building
------------------------------------------------------------------ */

// BuildSearchQuery turns a FilterSpec into one conjunctive query over
// available properties with their primary image, newest first. Every unset
// criterion is simply left out.
func BuildSearchQuery(f models.FilterSpec) (string, []any) {
	var (
		sb   strings.Builder
		args = []any{string(models.PropertyStatusAvailable)}
	)
	sb.WriteString(baseSelectCard())
	sb.WriteString(" WHERE p.status=$1")

	add := func(clause string, v any) {
		args = append(args, v)
		sb.WriteString(" AND ")
		sb.WriteString(fmt.Sprintf(clause, len(args)))
	}

	if f.Type != "" {
		add("p.property_type=$%d", f.Type)
	}
	if f.MinPrice != nil {
		add("p.price>=$%d", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		add("p.price<=$%d", *f.MaxPrice)
	}
	if f.Bedrooms != nil {
		add("p.bedrooms=$%d", *f.Bedrooms)
	}
	if f.Bathrooms != nil {
		add("p.bathrooms=$%d", *f.Bathrooms)
	}
	if f.Query != "" {
		args = append(args, "%"+EscapeLike(f.Query)+"%")
		n := len(args)
		sb.WriteString(fmt.Sprintf(" AND (p.title ILIKE $%d OR p.description ILIKE $%d)", n, n))
	}

	sb.WriteString(" ORDER BY p.created_at DESC")
	return sb.String(), args
}

// EscapeLike neutralizes LIKE metacharacters so user text matches literally.
func EscapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

const propertyColumns = `
            p.id, p.title, p.description, p.price, p.property_type,
            p.bedrooms, p.bathrooms, p.city, p.state, p.status, p.created_at`

func baseSelectProperty() string {
	return `
        SELECT` + propertyColumns + `
        FROM properties p
    `
}

// baseSelectCard joins exactly one primary image; properties without one
// are not listed.
func baseSelectCard() string {
	return `
        SELECT` + propertyColumns + `,
            pi.url
        FROM properties p
        JOIN LATERAL (
            SELECT url FROM property_images
            WHERE property_id = p.id AND is_primary
            ORDER BY sort_order, created_at
            LIMIT 1
        ) pi ON TRUE
    `
}

func scanProperty(row pgx.Row) (*models.Property, error) {
	var (
		p         models.Property
		propType  string
		status    string
		bathrooms pgtype.Numeric
	)
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.Price,
		&propType,
		&p.Bedrooms,
		&bathrooms,
		&p.City,
		&p.State,
		&status,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.PropertyType = models.PropertyType(propType)
	p.Status = models.PropertyStatus(status)
	p.Bathrooms, err = numericToFloat(bathrooms)
	if err != nil {
		return nil, err
	}
	p.Images = []models.PropertyImage{}
	return &p, nil
}

func scanPropertyCard(row pgx.Row) (*models.Property, error) {
	var (
		p         models.Property
		propType  string
		status    string
		bathrooms pgtype.Numeric
		imageURL  string
	)
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.Price,
		&propType,
		&p.Bedrooms,
		&bathrooms,
		&p.City,
		&p.State,
		&status,
		&p.CreatedAt,
		&imageURL,
	)
	if err != nil {
		return nil, err
	}
	p.PropertyType = models.PropertyType(propType)
	p.Status = models.PropertyStatus(status)
	p.Bathrooms, err = numericToFloat(bathrooms)
	if err != nil {
		return nil, err
	}
	p.Images = []models.PropertyImage{{URL: imageURL, IsPrimary: true}}
	return &p, nil
}

func numericToFloat(n pgtype.Numeric) (*float64, error) {
	if n.Status != pgtype.Present {
		return nil, nil
	}
	var f float64
	if err := n.AssignTo(&f); err != nil {
		return nil, err
	}
	return &f, nil
}
