package models

import (
	"time"

	"gorm.io/gorm"
)

type ForumReply struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	TopicID   uint           `json:"topic_id" gorm:"not null"`
	UserID    uint           `json:"user_id" gorm:"not null"`
	User      User           `json:"user" gorm:"foreignKey:UserID"`
	Content   string         `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
