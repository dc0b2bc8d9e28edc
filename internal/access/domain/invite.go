package domain

import "time"

// InviteStatus is derived from an invite's row at a point in time; it is
// never stored. All non-active states are terminal for redemption.
type InviteStatus string

const (
	InviteActive  InviteStatus = "active"
	InviteExpired InviteStatus = "expired"
	InviteUsedUp  InviteStatus = "used_up"
	InviteRevoked InviteStatus = "revoked"
)

// Invite is a single invitation: an opaque code bound to one recipient
// email, with an expiry and a use budget. The code text is stored in its
// canonical uppercase dash-grouped form and is unique.
type Invite struct {
	ID            string
	Code          string
	IntendedEmail string // normalized, immutable after creation
	CreatedBy     string
	ExpiresAt     time.Time
	MaxUses       int
	CurrentUses   int
	IsActive      bool // false once revoked
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Status derives the invite's state at the given instant. Revocation wins
// over everything else, then exhaustion, then expiry.
func (i Invite) Status(now time.Time) InviteStatus {
	switch {
	case !i.IsActive:
		return InviteRevoked
	case i.CurrentUses >= i.MaxUses:
		return InviteUsedUp
	case !now.Before(i.ExpiresAt):
		return InviteExpired
	default:
		return InviteActive
	}
}

// InviteFilter narrows a listing. Zero values mean "any".
type InviteFilter struct {
	Status        InviteStatus
	IntendedEmail string
	CreatedBy     string
	Limit         int
}
