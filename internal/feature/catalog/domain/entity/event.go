package entity

import "time"

// Event represents a campus or alumni event listing.
type Event struct {
	ID          string    `gorm:"primaryKey;size:20" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Date        string    `gorm:"size:50;not null" json:"date"`
	Time        string    `gorm:"size:50" json:"time"`
	Location    string    `gorm:"size:255" json:"location"`
	Category    string    `gorm:"size:50;not null" json:"category"`
	Description string    `gorm:"size:2000" json:"description"`
	Image       string    `gorm:"size:500" json:"image"`
	IsActive    bool      `gorm:"not null;default:true" json:"-"`
	SortKey     int       `gorm:"not null;default:0" json:"-"`
	UpdatedAt   time.Time `json:"-"`
}
