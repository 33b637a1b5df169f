package models

import (
	"time"
)

// Review holds one user's score and comment for one house. The composite
// unique index keeps it to one review per (house, user) even when two
// requests race past the application-level duplicate check.
type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	HouseID   uint      `gorm:"not null;index;uniqueIndex:idx_house_user" json:"house_id"`
	House     House     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"house"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_house_user" json:"user_id"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Score     int       `gorm:"not null" json:"score"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
