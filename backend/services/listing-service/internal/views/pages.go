package views

import (
	"github.com/harborview/realestate/backend/services/listing-service/internal/dtos"
	"github.com/harborview/realestate/backend/services/listing-service/internal/search"
	"github.com/harborview/realestate/backend/services/listing-service/internal/session"
	"github.com/harborview/realestate/backend/shared/go-models"
	"github.com/harborview/realestate/backend/shared/go-utils"
)

// Layout carries the fields every page's chrome uses.
type Layout struct {
	Title   string
	Path    string
	Session *session.State

	SiteName         string
	SiteURL          string
	OrganizationName string
	Year             int
}

func (l *Layout) layout() *Layout { return l }

func (l *Layout) ensureSession() {
	if l.Session == nil {
		l.Session = session.Anonymous("")
	}
}

// PageData is implemented by every page struct through its embedded Layout.
type PageData interface {
	layout() *Layout
}

type HomePage struct {
	Layout
	Featured []*models.Property
}

type ListingsPage struct {
	Layout
	Result          search.ListingResult
	PropertyTypes   []models.PropertyType
	BedroomOptions  []string
	BathroomOptions []string
}

// NewListingsPage fills in the filter form choices.
func NewListingsPage(l Layout, res search.ListingResult) *ListingsPage {
	return &ListingsPage{
		Layout:          l,
		Result:          res,
		PropertyTypes:   models.PropertyTypes,
		BedroomOptions:  []string{"1", "2", "3", "4", "5"},
		BathroomOptions: []string{"1", "1.5", "2", "2.5", "3", "4"},
	}
}

type DetailPage struct {
	Layout
	Property    *models.Property
	IsSaved     bool
	Form        dtos.CreateInquiryRequest
	FormError   string
	InquirySent bool
}

type SavedPage struct {
	Layout
	Properties []*models.Property
}

type NotFoundPage struct {
	Layout
	Message string
}

type ErrorPage struct {
	Layout
	Report utils.ErrorReport
}
