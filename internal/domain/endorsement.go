package domain

import "time"

// Endorsement is a signed, time-bounded authorization record.
type Endorsement struct {
	ID        string
	Type      EndorsementType
	IssuedAt  time.Time
	ExpiresAt *time.Time
	CreatedAt time.Time
}

// AuthorizesSoloAt reports whether this endorsement permits solo flight at
// the given instant: its type must be in the solo-authorizing set and its
// expiry, when present, must be strictly in the future.
func (e Endorsement) AuthorizesSoloAt(now time.Time) bool {
	if !SoloEndorsementTypes[e.Type] {
		return false
	}
	return e.ExpiresAt == nil || e.ExpiresAt.After(now)
}
