package models

import (
	"time"
)

// Vote holds one user's vote on one post. The composite primary key keeps
// at most one row per (user, post); re-casting overwrites Value in place.
type Vote struct {
	UserID    string    `gorm:"primaryKey;size:36" json:"user_id"`
	PostID    string    `gorm:"primaryKey;size:36;index" json:"post_id"`
	Value     int       `gorm:"not null" json:"value"` // 1 or -1
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
