package entity

import "time"

// Session represents the active login session for a user.
// Exactly one session exists per issued token; logging out deletes the
// session without touching the account or profile data.
type Session struct {
	ID        string    // Session ID (UUID), carried in the JWT "sid" claim
	UserID    uint      // Associated user ID
	CreatedAt time.Time // Session creation time
	ExpiresAt time.Time // Session expiration time
}

// IsExpired returns true if the session has passed its expiration time.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}
