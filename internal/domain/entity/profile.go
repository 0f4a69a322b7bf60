package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the marketplace-side record of a Supabase auth user.
// Its ID is the auth user's ID, so tokens map onto profiles without a lookup table.
type Profile struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	FullName    string    `json:"full_name"`
	Phone       string    `json:"phone,omitempty"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	Bio         string    `json:"bio,omitempty"`
	City        string    `json:"city,omitempty"`
	Role        Role      `json:"role"`
	DealerName  string    `json:"dealer_name,omitempty"`
	IsVerified  bool      `json:"is_verified"`
	IsSuspended bool      `json:"is_suspended"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DisplayName prefers the dealer name, then the full name, then the email.
func (p *Profile) DisplayName() string {
	switch {
	case p.DealerName != "":
		return p.DealerName
	case p.FullName != "":
		return p.FullName
	default:
		return p.Email
	}
}

// PublicProfile is what other users see about a seller.
type PublicProfile struct {
	ID             uuid.UUID `json:"id"`
	FullName       string    `json:"full_name"`
	AvatarURL      string    `json:"avatar_url,omitempty"`
	Bio            string    `json:"bio,omitempty"`
	City           string    `json:"city,omitempty"`
	Role           Role      `json:"role"`
	DealerName     string    `json:"dealer_name,omitempty"`
	IsVerified     bool      `json:"is_verified"`
	ActiveListings int64     `json:"active_listings"`
	MemberSince    time.Time `json:"member_since"`
}

// ProfileUpdate carries optional profile changes; nil fields are left untouched.
type ProfileUpdate struct {
	FullName   *string
	Phone      *string
	AvatarURL  *string
	Bio        *string
	City       *string
	DealerName *string
}

// ProfileFilter narrows admin user listings.
type ProfileFilter struct {
	Query     string
	Role      Role
	Suspended *bool
	Page      PageRequest
}
