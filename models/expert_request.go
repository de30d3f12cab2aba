package models

import (
	"time"

	"gorm.io/gorm"
)

// ExpertRequest is a user's application for the expert role. Approval also
// promotes the owning user, so the two writes happen in one transaction.
type ExpertRequest struct {
	ID            uint             `json:"id" gorm:"primarykey"`
	UserID        uint             `json:"user_id" gorm:"not null"`
	User          User             `json:"user" gorm:"foreignKey:UserID"`
	Expertise     string           `json:"expertise" gorm:"not null"`
	Reason        string           `json:"reason" gorm:"type:text"`
	Status        ModerationStatus `json:"status" gorm:"default:'pending'"`
	AdminComments string           `json:"admin_comments"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
	DeletedAt     gorm.DeletedAt   `json:"-" gorm:"index"`
}
