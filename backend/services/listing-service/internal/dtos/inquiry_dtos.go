package dtos

import "github.com/harborview/realestate/backend/shared/go-models"

// CreateInquiryRequest is the body of POST /api/v1/inquiries and the fields
// of the inquiry form. PropertyID comes from the URL on the HTML route.
type CreateInquiryRequest struct {
	PropertyID string  `json:"property_id" validate:"required,uuid"`
	Name       string  `json:"name" validate:"required,max=200"`
	Email      string  `json:"email" validate:"required,email,max=320"`
	Phone      *string `json:"phone,omitempty" validate:"omitempty,max=32"`
	Message    string  `json:"message" validate:"required,max=5000"`
}

type InquiriesResponse struct {
	Inquiries []*models.InquiryWithProperty `json:"inquiries"`
}
