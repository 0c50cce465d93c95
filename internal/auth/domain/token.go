package domain

import "time"

const (
	// SessionTokenName labels every session token issued at login.
	SessionTokenName = "Pahiram-Token"
	// AbilityAll grants every ability.
	AbilityAll = "*"
)

// SessionToken is a locally issued bearer credential. Only the fingerprint
// of the secret is stored.
type SessionToken struct {
	ID         string
	UserID     string
	Name       string
	Abilities  []string
	TokenHash  string
	ExpiresAt  time.Time
	LastUsedAt *time.Time
	CreatedAt  time.Time
}

// Expired reports whether the token is no longer valid at now.
func (t SessionToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

// RemoteToken is our record of an APCIS access token. The token itself is
// kept sealed at rest.
type RemoteToken struct {
	ID          string
	UserID      string
	SealedToken []byte
	ExpiresAt   time.Time
	CreatedAt   time.Time
}
