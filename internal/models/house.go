package models

import (
	"time"
)

// House is a lodging listing. The review pages only read it; the catalog
// side of the app owns creation and editing.
type House struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Address     string    `json:"address"`
	PricePerDay int       `gorm:"default:0" json:"price_per_day"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
