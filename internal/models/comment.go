package models

import "time"

// Comment is a user's reply on a review. Deleting the review removes its
// comments.
type Comment struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Text      string    `json:"text" gorm:"type:text;not null"`
	UserID    string    `json:"user_id" gorm:"type:varchar(36);not null;index"`
	ReviewID  string    `json:"review_id" gorm:"type:varchar(36);not null;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User   *User   `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT;"`
	Review *Review `json:"-" gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE;"`
}
