package models

import "time"

// Review is a user's rating and text for an item. A user reviews a given item
// at most once (idx_reviews_user_item).
type Review struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Text      string    `json:"text" gorm:"type:text;not null"`
	Rating    float64   `json:"rating" gorm:"type:float;not null"`
	UserID    string    `json:"user_id" gorm:"type:varchar(36);not null;uniqueIndex:idx_reviews_user_item"`
	ItemID    string    `json:"item_id" gorm:"type:varchar(36);not null;uniqueIndex:idx_reviews_user_item;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User *User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT;"`
	Item *Item `json:"-" gorm:"foreignKey:ItemID;constraint:OnDelete:RESTRICT;"`
}
