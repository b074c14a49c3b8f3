package dtos

import (
	"github.com/harborview/realestate/backend/shared/go-models"
	"github.com/harborview/realestate/backend/shared/go-utils"
)

type FeaturedPropertiesResponse struct {
	Properties []*models.Property `json:"properties"`
}

// ListingResponse mirrors the listings page: one page of results plus the
// echoed filters. Degraded is true when the search failed and the page is
// the empty fallback.
type ListingResponse struct {
	utils.Page[*models.Property]
	Filters  any  `json:"filters"`
	Degraded bool `json:"degraded"`
}

type PropertyDetailResponse struct {
	*models.Property
	IsSaved bool `json:"is_saved"`
}

type SavedPropertiesResponse struct {
	Properties []*models.Property `json:"properties"`
}

type ToggleSavedResponse struct {
	PropertyID string `json:"property_id"`
	Saved      bool   `json:"saved"`
}
