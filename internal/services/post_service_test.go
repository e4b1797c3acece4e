package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/inkwell/inkwell-be/internal/models"
)

func TestPostCRUD(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	posts := NewPostService(db)

	author, err := users.Register("Alice", "alice@example.com", "pw")
	require.NoError(t, err)

	t.Run("create", func(t *testing.T) {
		post, err := posts.Create("First", "hello world", author.ID)
		require.NoError(t, err)
		require.NotEmpty(t, post.ID)
		require.Equal(t, author.ID, post.UserID)
	})

	t.Run("get by id includes author projection", func(t *testing.T) {
		created, err := posts.Create("Second", "more words", author.ID)
		require.NoError(t, err)

		got, err := posts.GetByID(created.ID)
		require.NoError(t, err)
		require.Equal(t, "Second", got.Title)
		require.Equal(t, models.Author{ID: author.ID, Name: "Alice"}, got.Author)
	})

	t.Run("get of unknown id is not found", func(t *testing.T) {
		_, err := posts.GetByID("missing")
		require.ErrorIs(t, err, models.ErrPostNotFound)
	})

	t.Run("update replaces title and body", func(t *testing.T) {
		created, err := posts.Create("Draft", "wip", author.ID)
		require.NoError(t, err)

		updated, err := posts.Update(created.ID, "Final", "done", author.ID)
		require.NoError(t, err)
		require.Equal(t, "Final", updated.Title)
		require.Equal(t, "done", updated.Body)

		_, err = posts.Update("missing", "x", "y", author.ID)
		require.ErrorIs(t, err, models.ErrPostNotFound)
	})

	t.Run("delete echoes the removed post", func(t *testing.T) {
		created, err := posts.Create("Doomed", "bye", author.ID)
		require.NoError(t, err)

		deleted, err := posts.Delete(created.ID)
		require.NoError(t, err)
		require.Equal(t, "Doomed", deleted.Title)

		_, err = posts.GetByID(created.ID)
		require.ErrorIs(t, err, models.ErrPostNotFound)

		_, err = posts.Delete(created.ID)
		require.ErrorIs(t, err, models.ErrPostNotFound)
	})
}

func TestGetAllOrdersNewestFirst(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	posts := NewPostService(db)

	author, err := users.Register("Bob", "bob@example.com", "pw")
	require.NoError(t, err)

	older, err := posts.Create("Older", "first", author.ID)
	require.NoError(t, err)
	newer, err := posts.Create("Newer", "second", author.ID)
	require.NoError(t, err)

	// Force distinct timestamps; back-to-back inserts can land in the
	// same instant on a fast machine.
	require.NoError(t, db.Model(&models.Post{}).Where("id = ?", older.ID).
		Update("created_at", time.Now().Add(-time.Minute)).Error)

	all, err := posts.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, newer.ID, all[0].ID)
	require.Equal(t, older.ID, all[1].ID)
	require.Equal(t, "Bob", all[0].Author.Name)
}
