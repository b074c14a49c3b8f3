package models

import (
	"time"

	"github.com/google/uuid"
)

// UserProfile mirrors an account of the external identity provider; ID is
// the provider's subject.
type UserProfile struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Phone     *string   `json:"phone,omitempty"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Versioned
}

func (u *UserProfile) GetID() string { return u.ID.String() }

// ProfileUpdate is a partial update; nil fields are left untouched.
type ProfileUpdate struct {
	FullName  *string
	Phone     *string
	AvatarURL *string
}

func (u ProfileUpdate) IsEmpty() bool {
	return u.FullName == nil && u.Phone == nil && u.AvatarURL == nil
}

// Apply copies every set field onto p.
func (u ProfileUpdate) Apply(p *UserProfile) {
	if u.FullName != nil {
		p.FullName = *u.FullName
	}
	if u.Phone != nil {
		p.Phone = u.Phone
	}
	if u.AvatarURL != nil {
		p.AvatarURL = u.AvatarURL
	}
}
