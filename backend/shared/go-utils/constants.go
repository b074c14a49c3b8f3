package utils

const (
	OrganizationName = "Harborview Realty"

	DefaultSiteName = "Real Estate Investment Platform"
	DefaultSiteURL  = "http://localhost:3000"

	CORSLowSecurityAllowedOriginLocalhost = "http://localhost:*"

	// Page size of the public listings grid unless overridden by flag.
	DefaultListingsPageSize = 9
	// Number of cards in the home page "featured" section.
	DefaultFeaturedLimit = 3
)
