package models

import (
	"time"

	"gorm.io/gorm"
)

type Article struct {
	ID            uint             `json:"id" gorm:"primarykey"`
	AuthorID      uint             `json:"author_id" gorm:"not null"`
	Author        User             `json:"author" gorm:"foreignKey:AuthorID"`
	Title         string           `json:"title" gorm:"not null"`
	Content       string           `json:"content" gorm:"type:text"`
	Image         string           `json:"image"`
	Status        ModerationStatus `json:"status" gorm:"default:'pending'"`
	AdminComments string           `json:"admin_comments"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
	DeletedAt     gorm.DeletedAt   `json:"-" gorm:"index"`
}
