package entities_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rvenkateswarreddy/notes-backend/internal/domain/entities"
)

func TestNewNote(t *testing.T) {
	t.Run("applies defaults for tags and color", func(t *testing.T) {
		note := entities.NewNote("user-1", "Title", "content", nil, "")

		assert.Equal(t, "user-1", note.OwnerID)
		assert.NotNil(t, note.Tags)
		assert.Empty(t, note.Tags)
		assert.Equal(t, entities.DefaultColor, note.Color)
		assert.False(t, note.Archived)
		assert.Nil(t, note.DeletedAt)
	})

	t.Run("keeps explicit tags and color", func(t *testing.T) {
		note := entities.NewNote("user-1", "Title", "content", []string{"work"}, "#ff0000")

		assert.Equal(t, []string{"work"}, note.Tags)
		assert.Equal(t, "#ff0000", note.Color)
	})
}

func TestNoteTrashed(t *testing.T) {
	t.Run("note without deleted_at is not trashed", func(t *testing.T) {
		note := entities.NewNote("user-1", "Title", "content", nil, "")

		assert.False(t, note.Trashed())
	})

	t.Run("note with deleted_at is trashed", func(t *testing.T) {
		note := entities.NewNote("user-1", "Title", "content", nil, "")
		deletedAt := time.Now()
		note.DeletedAt = &deletedAt

		assert.True(t, note.Trashed())
	})
}
