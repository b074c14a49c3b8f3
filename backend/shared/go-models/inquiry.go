package models

import (
	"time"

	"github.com/google/uuid"
)

// Inquiry is immutable once stored.
type Inquiry struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	PropertyID uuid.UUID `json:"property_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      *string   `json:"phone,omitempty"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}

type NewInquiry struct {
	UserID     uuid.UUID
	PropertyID uuid.UUID
	Name       string
	Email      string
	Phone      *string
	Message    string
}

// InquiryWithProperty annotates an inquiry with the listing it refers to.
type InquiryWithProperty struct {
	Inquiry
	PropertyTitle string `json:"property_title"`
	PropertyPrice int64  `json:"property_price"`
}
