package services

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/inkwell/inkwell-be/internal/database"
	"github.com/inkwell/inkwell-be/internal/models"
)

// SessionServiceProvider defines the interface for the server-side
// session store. Only this component creates or destroys session rows.
type SessionServiceProvider interface {
	Create(user models.User) (models.Session, error)
	Get(token string) (models.Session, error)
	Delete(token string) error
	PurgeExpired() (int64, error)
}

// SessionService manages login sessions in the database. Sessions carry
// a denormalized principal (id, name, email) so they can be served
// without touching the users table, and never hold the password hash.
type SessionService struct {
	db     *gorm.DB
	maxAge time.Duration
	now    func() time.Time
}

// NewSessionService creates a new SessionService with the given
// time-to-live for new sessions.
func NewSessionService(db *gorm.DB, maxAge time.Duration) *SessionService {
	return &SessionService{db: db, maxAge: maxAge, now: time.Now}
}

// Create persists a new session for the user and returns it. The token
// is an opaque random identifier; the session is visible to other
// requests only once the insert has committed.
func (s *SessionService) Create(user models.User) (models.Session, error) {
	now := s.now()
	session := models.Session{
		Token:     uuid.New().String(),
		UserID:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
		ExpiresAt: now.Add(s.maxAge),
		CreatedAt: now,
	}

	if err := s.db.Create(&session).Error; err != nil {
		return models.Session{}, err
	}
	return session, nil
}

// Get looks up a session by token. Expired sessions are treated as
// absent; the sweeper removes their rows later.
func (s *SessionService) Get(token string) (models.Session, error) {
	var session models.Session
	if err := s.db.Where("token = ?", token).First(&session).Error; err != nil {
		return models.Session{}, database.ConvertNotFoundError(err, models.ErrSessionNotFound)
	}
	if session.Expired(s.now()) {
		return models.Session{}, models.ErrSessionNotFound
	}
	return session, nil
}

// Delete destroys the session with the given token. Returns
// models.ErrSessionNotFound if no row was deleted.
func (s *SessionService) Delete(token string) error {
	result := s.db.Where("token = ?", token).Delete(&models.Session{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.ErrSessionNotFound
	}
	return nil
}

// PurgeExpired deletes all sessions past their expiry and reports how
// many rows were removed.
func (s *SessionService) PurgeExpired() (int64, error) {
	result := s.db.Where("expires_at <= ?", s.now()).Delete(&models.Session{})
	return result.RowsAffected, result.Error
}
