// Package entity defines the domain models for the symbollist feature.
package entity

import "time"

// Symbol is an entry of the symbol registry. Only active entries count as
// known symbols when chart queries are checked against the registry.
type Symbol struct {
	ID        uint      `gorm:"primaryKey"`
	Code      string    `gorm:"size:16;not null;uniqueIndex"` // Ticker symbol (e.g., "AAPL")
	Name      string    `gorm:"size:255;not null"`
	Market    string    `gorm:"size:100;not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	SortKey   int       `gorm:"not null;default:0"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
