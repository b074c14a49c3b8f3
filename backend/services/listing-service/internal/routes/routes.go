package routes

const (
	Health = "/health"
	Static = "/static/"

	// HTML pages
	Home              = "/"
	Properties        = "/properties"
	PropertyDetail    = "/properties/{id}"
	PropertySave      = "/properties/{id}/save"
	PropertyInquiries = "/properties/{id}/inquiries"
	Saved             = "/saved"
	Theme             = "/theme"

	// JSON API
	APIPrefix      = "/api/"
	APIFeatured    = "/api/v1/properties/featured"
	APIProperties  = "/api/v1/properties"
	APIProperty    = "/api/v1/properties/{id}"
	APISaved       = "/api/v1/saved"
	APISavedToggle = "/api/v1/saved/{propertyId}/toggle"
	APIProfile     = "/api/v1/profile"
	APIInquiries   = "/api/v1/inquiries"
)

// PropertyPath is the detail page URL of a property.
func PropertyPath(id string) string {
	return Properties + "/" + id
}
