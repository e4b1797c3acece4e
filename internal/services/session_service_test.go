package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/inkwell/inkwell-be/internal/models"
)

func TestSessionLifecycle(t *testing.T) {
	db := newTestDB(t)
	svc := NewSessionService(db, 72*time.Hour)

	user := models.User{ID: "u-1", Name: "Alice", Email: "alice@example.com", Password: "hash"}

	t.Run("create and get", func(t *testing.T) {
		session, err := svc.Create(user)
		require.NoError(t, err)
		require.NotEmpty(t, session.Token)

		got, err := svc.Get(session.Token)
		require.NoError(t, err)
		require.Equal(t, "u-1", got.UserID)
		require.Equal(t, "Alice", got.Name)
		require.Equal(t, "alice@example.com", got.Email)
	})

	t.Run("principal is the user minus password and creation time", func(t *testing.T) {
		session, err := svc.Create(user)
		require.NoError(t, err)

		principal := session.Principal()
		require.Equal(t, models.SessionUser{ID: "u-1", Name: "Alice", Email: "alice@example.com"}, principal)
	})

	t.Run("delete destroys the session", func(t *testing.T) {
		session, err := svc.Create(user)
		require.NoError(t, err)

		require.NoError(t, svc.Delete(session.Token))
		_, err = svc.Get(session.Token)
		require.ErrorIs(t, err, models.ErrSessionNotFound)
	})

	t.Run("delete of an unknown token is not found", func(t *testing.T) {
		require.ErrorIs(t, svc.Delete("no-such-token"), models.ErrSessionNotFound)
	})

	t.Run("unknown token is not found", func(t *testing.T) {
		_, err := svc.Get("bogus")
		require.ErrorIs(t, err, models.ErrSessionNotFound)
	})
}

func TestSessionExpiry(t *testing.T) {
	db := newTestDB(t)
	svc := NewSessionService(db, time.Hour)

	base := time.Now()
	svc.now = func() time.Time { return base }

	session, err := svc.Create(models.User{ID: "u-2", Name: "Bob", Email: "bob@example.com"})
	require.NoError(t, err)

	// Still valid just before the deadline.
	svc.now = func() time.Time { return base.Add(59 * time.Minute) }
	_, err = svc.Get(session.Token)
	require.NoError(t, err)

	// Past the deadline the session is gone, even though the row remains.
	svc.now = func() time.Time { return base.Add(61 * time.Minute) }
	_, err = svc.Get(session.Token)
	require.ErrorIs(t, err, models.ErrSessionNotFound)
}

func TestPurgeExpired(t *testing.T) {
	db := newTestDB(t)
	svc := NewSessionService(db, time.Hour)

	base := time.Now()
	svc.now = func() time.Time { return base }

	expired1, err := svc.Create(models.User{ID: "u-3", Name: "Carol", Email: "carol@example.com"})
	require.NoError(t, err)
	expired2, err := svc.Create(models.User{ID: "u-3", Name: "Carol", Email: "carol@example.com"})
	require.NoError(t, err)

	svc.now = func() time.Time { return base.Add(30 * time.Minute) }
	live, err := svc.Create(models.User{ID: "u-3", Name: "Carol", Email: "carol@example.com"})
	require.NoError(t, err)

	// Advance past the first two sessions' expiry but not the third's.
	svc.now = func() time.Time { return base.Add(80 * time.Minute) }
	purged, err := svc.PurgeExpired()
	require.NoError(t, err)
	require.Equal(t, int64(2), purged)

	var count int64
	require.NoError(t, db.Model(&models.Session{}).Count(&count).Error)
	require.Equal(t, int64(1), count)

	_, err = svc.Get(live.Token)
	require.NoError(t, err)
	_, err = svc.Get(expired1.Token)
	require.ErrorIs(t, err, models.ErrSessionNotFound)
	_, err = svc.Get(expired2.Token)
	require.ErrorIs(t, err, models.ErrSessionNotFound)
}
