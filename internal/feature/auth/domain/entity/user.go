// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// Campus values accepted for a user profile.
const (
	CampusGweruMain  = "Gweru Main"
	CampusHarare     = "Harare"
	CampusZvishavane = "Zvishavane"
)

// User represents a registered portal user in the system.
// It contains authentication credentials and the profile data shown in the portal.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey" json:"id"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null" json:"email"`

	// Password is the hashed password for the user.
	// This should never store plaintext passwords.
	Password string `gorm:"size:255;not null" json:"-"`

	FirstName string `gorm:"size:100;not null" json:"firstName"`
	LastName  string `gorm:"size:100;not null" json:"lastName"`

	// Campus is one of the Campus* constants, or empty until the user picks one.
	Campus         string `gorm:"size:50" json:"campus,omitempty"`
	Major          string `gorm:"size:255" json:"major,omitempty"`
	GraduationYear string `gorm:"size:10" json:"graduationYear,omitempty"`
	PhoneNumber    string `gorm:"size:30" json:"phoneNumber,omitempty"`
	Bio            string `gorm:"size:1000" json:"bio,omitempty"`

	// ProfileComplete is derived from the profile fields and recomputed on
	// every update. It is persisted for convenience but never trusted as an
	// independent input.
	ProfileComplete bool `gorm:"not null;default:false" json:"profileComplete"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time `json:"-"`
}

// RecomputeProfileComplete rederives ProfileComplete from its inputs:
// first name, last name, email and campus must all be non-empty.
func (u *User) RecomputeProfileComplete() {
	u.ProfileComplete = u.FirstName != "" && u.LastName != "" && u.Email != "" && u.Campus != ""
}
