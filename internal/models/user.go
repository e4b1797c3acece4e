package models

import "time"

// User represents a registered account.
type User struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"not null;size:255" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null;size:255" json:"email"`
	Password  string    `gorm:"not null" json:"-"` // bcrypt hash, never exposed
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// TableName returns the table name for User.
func (User) TableName() string {
	return "users"
}

// PublicUser is the response projection of a User. Constructed field by
// field so the password hash cannot leak through a new call site.
type PublicUser struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Public returns the client-safe projection of the user.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// Author is the {id, name} projection attached to posts.
type Author struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
