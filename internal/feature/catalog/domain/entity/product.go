// Package entity defines the domain models for the catalog feature.
package entity

import "time"

// Product categories offered in the merch store.
const (
	CategoryApparel    = "Apparel"
	CategoryStationery = "Stationery"
	CategoryTech       = "Tech"
)

// Product represents a merch store item. The catalog is read-only to the
// rest of the system; carts and orders keep their own price snapshots.
type Product struct {
	ID          string    `gorm:"primaryKey;size:20" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Price       float64   `gorm:"not null" json:"price"`
	Category    string    `gorm:"size:50;not null" json:"category"`
	Description string    `gorm:"size:2000" json:"description"`
	Image       string    `gorm:"size:500" json:"image"`
	IsExclusive bool      `gorm:"not null;default:false" json:"isExclusive,omitempty"`
	IsActive    bool      `gorm:"not null;default:true" json:"-"`
	SortKey     int       `gorm:"not null;default:0" json:"-"`
	UpdatedAt   time.Time `json:"-"`
}
