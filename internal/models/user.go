package models

import "time"

// User is a registered account. Password holds the bcrypt hash, never the
// plaintext.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Username  string    `json:"username" gorm:"uniqueIndex;type:varchar(20);not null"`
	Password  string    `json:"-" gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `json:"created_at"`
}

// Identity is the public projection of a User returned to authenticated
// callers.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Identity projects the user without its password hash.
func (u *User) Identity() *Identity {
	return &Identity{ID: u.ID, Username: u.Username}
}
