package models

import "time"

// Post represents a blog entry belonging to a user.
type Post struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Title     string    `gorm:"not null;size:255" json:"title"`
	Body      string    `gorm:"not null" json:"body"`
	UserID    string    `gorm:"index;not null;size:36" json:"userId"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName returns the table name for Post.
func (Post) TableName() string {
	return "posts"
}

// PostWithAuthor is the response projection of a Post with its author
// reduced to {id, name}.
type PostWithAuthor struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Author    Author    `json:"author"`
}

// WithAuthor returns the post projection. The User association must be
// loaded for the author fields to be populated.
func (p *Post) WithAuthor() PostWithAuthor {
	return PostWithAuthor{
		ID:        p.ID,
		Title:     p.Title,
		Body:      p.Body,
		UserID:    p.UserID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
		Author:    Author{ID: p.User.ID, Name: p.User.Name},
	}
}
