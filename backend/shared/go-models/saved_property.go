package models

import (
	"time"

	"github.com/google/uuid"
)

// SavedProperty links a user to a favorite listing. At most one row exists
// per (UserID, PropertyID).
type SavedProperty struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	PropertyID uuid.UUID `json:"property_id"`
	CreatedAt  time.Time `json:"created_at"`
}
