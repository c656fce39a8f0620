package models

import (
	"time"
)

type Post struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	AuthorID  string    `gorm:"not null;index;size:36" json:"author_id"`
	Author    User      `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 非数据库字段，读取时由投票汇总填充
	Score int `gorm:"-" json:"score"`
}
