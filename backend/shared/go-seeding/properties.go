package seeding

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/harborview/realestate/backend/shared/go-models"
	"github.com/harborview/realestate/backend/shared/go-repositories"
	"github.com/harborview/realestate/backend/shared/go-utils"
)

//go:embed demo_properties.yaml
var demoPropertiesYAML []byte

// DemoProperty is one entry of the demo fixture. IDs are fixed so reseeding
// is a no-op.
type DemoProperty struct {
	ID           string   `yaml:"id"`
	Title        string   `yaml:"title"`
	Description  string   `yaml:"description"`
	Price        int64    `yaml:"price"`
	PropertyType string   `yaml:"type"`
	Bedrooms     *int     `yaml:"bedrooms"`
	Bathrooms    *float64 `yaml:"bathrooms"`
	City         string   `yaml:"city"`
	State        string   `yaml:"state"`
	Status       string   `yaml:"status"`
	AgeDays      int      `yaml:"age_days"`
	Images       []string `yaml:"images"`
}

// LoadDemoProperties parses the embedded fixture into models. The first
// image of every entry is the primary one.
func LoadDemoProperties(now time.Time) ([]*models.Property, error) {
	return parseDemoProperties(demoPropertiesYAML, now)
}

func parseDemoProperties(raw []byte, now time.Time) ([]*models.Property, error) {
	var doc struct {
		Properties []DemoProperty `yaml:"properties"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse demo properties: %w", err)
	}

	out := make([]*models.Property, 0, len(doc.Properties))
	for _, d := range doc.Properties {
		id, err := uuid.Parse(d.ID)
		if err != nil {
			return nil, fmt.Errorf("demo property %q: %w", d.Title, err)
		}
		pt := models.PropertyType(d.PropertyType)
		if !pt.Valid() {
			return nil, fmt.Errorf("demo property %q: unknown type %q", d.Title, d.PropertyType)
		}
		status := models.PropertyStatus(d.Status)
		if status == "" {
			status = models.PropertyStatusAvailable
		}

		p := &models.Property{
			ID:           id,
			Title:        d.Title,
			Description:  d.Description,
			Price:        d.Price,
			PropertyType: pt,
			Bedrooms:     d.Bedrooms,
			Bathrooms:    d.Bathrooms,
			City:         d.City,
			State:        d.State,
			Status:       status,
			CreatedAt:    now.Add(-time.Duration(d.AgeDays) * 24 * time.Hour),
		}
		for i, url := range d.Images {
			p.Images = append(p.Images, models.PropertyImage{URL: url, IsPrimary: i == 0})
		}
		out = append(out, p)
	}
	return out, nil
}

// SeedDemoProperties inserts the demo listings that are not present yet.
func SeedDemoProperties(ctx context.Context, repo repositories.PropertyRepository) error {
	props, err := LoadDemoProperties(time.Now())
	if err != nil {
		return err
	}

	created := 0
	for _, p := range props {
		if err := repo.Create(ctx, p); err != nil {
			if repositories.IsUniqueViolation(err) {
				utils.Logger.Debugf("seeding: property (id=%s) already exists; skipping", p.ID)
				continue
			}
			return fmt.Errorf("create demo property %s: %w", p.ID, err)
		}
		created++
	}

	utils.Logger.Infof("seeding: created %d of %d demo properties", created, len(props))
	return nil
}
