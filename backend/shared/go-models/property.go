package models

import (
	"time"

	"github.com/google/uuid"
)

type PropertyType string

const (
	PropertyTypeResidential PropertyType = "residential"
	PropertyTypeCommercial  PropertyType = "commercial"
	PropertyTypeDevelopment PropertyType = "development"
	PropertyTypeLand        PropertyType = "land"
)

// PropertyTypes lists the selectable types in display order.
var PropertyTypes = []PropertyType{
	PropertyTypeResidential,
	PropertyTypeCommercial,
	PropertyTypeDevelopment,
	PropertyTypeLand,
}

func (t PropertyType) Valid() bool {
	switch t {
	case PropertyTypeResidential, PropertyTypeCommercial, PropertyTypeDevelopment, PropertyTypeLand:
		return true
	}
	return false
}

type PropertyStatus string

const (
	PropertyStatusAvailable     PropertyStatus = "available"
	PropertyStatusUnderContract PropertyStatus = "under_contract"
	PropertyStatusSold          PropertyStatus = "sold"
)

type PropertyImage struct {
	URL       string `json:"url"`
	IsPrimary bool   `json:"is_primary"`
}

type Property struct {
	ID           uuid.UUID       `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Price        int64           `json:"price"`
	PropertyType PropertyType    `json:"property_type"`
	Bedrooms     *int            `json:"bedrooms,omitempty"`
	Bathrooms    *float64        `json:"bathrooms,omitempty"`
	City         string          `json:"city"`
	State        string          `json:"state"`
	Status       PropertyStatus  `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	Images       []PropertyImage `json:"property_images"`
}

// PrimaryImage returns the image flagged for card display, falling back to
// the first image. ok is false when the property has no images at all.
func (p *Property) PrimaryImage() (PropertyImage, bool) {
	for _, img := range p.Images {
		if img.IsPrimary {
			return img, true
		}
	}
	if len(p.Images) > 0 {
		return p.Images[0], true
	}
	return PropertyImage{}, false
}

// FilterSpec is the normalized set of listing search criteria. Nil pointers
// and empty strings are unset and never narrow a search.
type FilterSpec struct {
	Type      string   `json:"type,omitempty"`
	MinPrice  *int64   `json:"minPrice,omitempty"`
	MaxPrice  *int64   `json:"maxPrice,omitempty"`
	Bedrooms  *int     `json:"bedrooms,omitempty"`
	Bathrooms *float64 `json:"bathrooms,omitempty"`
	Query     string   `json:"query,omitempty"`
}

func (f FilterSpec) IsEmpty() bool {
	return f.Type == "" && f.MinPrice == nil && f.MaxPrice == nil &&
		f.Bedrooms == nil && f.Bathrooms == nil && f.Query == ""
}
