package models

import "time"

// Session is a server-side login session, correlated to a client by the
// opaque token carried in the session cookie. It holds a denormalized
// copy of the principal so status checks never touch the users table,
// and by construction never contains the password hash.
type Session struct {
	Token     string    `gorm:"primaryKey;size:36" json:"-"`
	UserID    string    `gorm:"index;not null;size:36" json:"id"`
	Name      string    `gorm:"not null;size:255" json:"name"`
	Email     string    `gorm:"not null;size:255" json:"email"`
	ExpiresAt time.Time `gorm:"index;not null" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
}

// TableName returns the table name for Session.
func (Session) TableName() string {
	return "sessions"
}

// SessionUser is the principal attached to an authenticated request: the
// user minus password and creation timestamp.
type SessionUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Principal returns the authenticated user view of the session.
func (s *Session) Principal() SessionUser {
	return SessionUser{
		ID:    s.UserID,
		Name:  s.Name,
		Email: s.Email,
	}
}

// Expired reports whether the session is past its time-to-live.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
