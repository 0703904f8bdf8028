package models

import "time"

// Item is a catalog entry that users review. It has no owner.
type Item struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name        string    `json:"name" gorm:"type:varchar(50);not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	CreatedAt   time.Time `json:"created_at"`
}

// ItemDetails is an item together with the mean rating of its reviews.
// AverageRating is nil when the item has not been reviewed yet.
type ItemDetails struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	AverageRating *float64 `json:"average_rating"`
}
