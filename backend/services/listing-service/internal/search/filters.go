package search

import (
	"net/url"
	"strings"

	"github.com/harborview/realestate/backend/shared/go-models"
	"github.com/harborview/realestate/backend/shared/go-utils"
)

// Query parameter names of the listings page.
const (
	ParamPage      = "page"
	ParamType      = "type"
	ParamMinPrice  = "minPrice"
	ParamMaxPrice  = "maxPrice"
	ParamBedrooms  = "bedrooms"
	ParamBathrooms = "bathrooms"
	ParamQuery     = "query"
)

// RawFilters echoes the filter inputs exactly as submitted so the search
// form can be re-populated.
type RawFilters struct {
	Type      string `json:"type,omitempty"`
	MinPrice  string `json:"minPrice,omitempty"`
	MaxPrice  string `json:"maxPrice,omitempty"`
	Bedrooms  string `json:"bedrooms,omitempty"`
	Bathrooms string `json:"bathrooms,omitempty"`
	Query     string `json:"query,omitempty"`
}

func ReadRawFilters(q url.Values) RawFilters {
	return RawFilters{
		Type:      strings.TrimSpace(q.Get(ParamType)),
		MinPrice:  strings.TrimSpace(q.Get(ParamMinPrice)),
		MaxPrice:  strings.TrimSpace(q.Get(ParamMaxPrice)),
		Bedrooms:  strings.TrimSpace(q.Get(ParamBedrooms)),
		Bathrooms: strings.TrimSpace(q.Get(ParamBathrooms)),
		Query:     strings.TrimSpace(q.Get(ParamQuery)),
	}
}

// Spec converts the raw inputs. Numbers that are absent, empty or not
// numeric are unset; so are blank text fields.
func (r RawFilters) Spec() models.FilterSpec {
	return models.FilterSpec{
		Type:      r.Type,
		MinPrice:  utils.ParseOptionalInt64(r.MinPrice),
		MaxPrice:  utils.ParseOptionalInt64(r.MaxPrice),
		Bedrooms:  utils.ParseOptionalInt(r.Bedrooms),
		Bathrooms: utils.ParseOptionalFloat(r.Bathrooms),
		Query:     r.Query,
	}
}

// Values encodes the non-empty filters as query parameters.
func (r RawFilters) Values() url.Values {
	v := url.Values{}
	for _, kv := range [][2]string{
		{ParamType, r.Type},
		{ParamMinPrice, r.MinPrice},
		{ParamMaxPrice, r.MaxPrice},
		{ParamBedrooms, r.Bedrooms},
		{ParamBathrooms, r.Bathrooms},
		{ParamQuery, r.Query},
	} {
		if kv[1] != "" {
			v.Set(kv[0], kv[1])
		}
	}
	return v
}

// ParseFilters turns listing query parameters into a FilterSpec.
func ParseFilters(q url.Values) models.FilterSpec {
	return ReadRawFilters(q).Spec()
}
