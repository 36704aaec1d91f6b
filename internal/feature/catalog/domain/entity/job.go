package entity

import "time"

// Job represents a job or internship opportunity listing.
// AlumniName/AlumniRole identify the alumni contact shown for listings with
// the help badge; both are empty when no contact is attached.
type Job struct {
	ID           string    `gorm:"primaryKey;size:20" json:"id"`
	Title        string    `gorm:"size:255;not null" json:"title"`
	Company      string    `gorm:"size:255;not null" json:"company"`
	Location     string    `gorm:"size:255" json:"location"`
	HasHelpBadge bool      `gorm:"not null;default:false" json:"hasHelpBadge"`
	AlumniName   string    `gorm:"size:255" json:"alumniName,omitempty"`
	AlumniRole   string    `gorm:"size:255" json:"alumniRole,omitempty"`
	Description  string    `gorm:"size:2000" json:"description"`
	IsActive     bool      `gorm:"not null;default:true" json:"-"`
	SortKey      int       `gorm:"not null;default:0" json:"-"`
	UpdatedAt    time.Time `json:"-"`
}
