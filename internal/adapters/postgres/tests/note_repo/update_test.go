package noterepo_test

import (
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rvenkateswarreddy/notes-backend/internal/adapters/postgres"
	"github.com/rvenkateswarreddy/notes-backend/internal/domain/entities"
	"github.com/rvenkateswarreddy/notes-backend/internal/ports/repositories"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestNoteRepository_Update(t *testing.T) {
	ctx := testContext(t)

	noteID := "note-1"
	ownerID := "user-123"
	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("Успешное частичное обновление", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		update := repositories.NoteUpdate{
			Title:    strPtr("New title"),
			Archived: boolPtr(true),
		}

		mock.ExpectQuery("UPDATE notes .+").
			WithArgs(update.Title, update.Content, update.Tags, update.Color, update.Archived, noteID, ownerID).
			WillReturnRows(
				pgxmock.NewRows(noteColumns).
					AddRow(noteID, ownerID, "New title", "old content",
						[]string{"home"}, "#ff0000", true, nil, now, now),
			)

		repo := postgres.NewNoteRepository(mock)
		updated, err := repo.Update(ctx, noteID, ownerID, update)

		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "New title", updated.Title)
		assert.Equal(t, "old content", updated.Content)
		assert.True(t, updated.Archived)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Заметка не найдена или принадлежит другому пользователю", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		update := repositories.NoteUpdate{Title: strPtr("New title")}

		mock.ExpectQuery("UPDATE notes .+").
			WithArgs(update.Title, update.Content, update.Tags, update.Color, update.Archived, noteID, "other-user").
			WillReturnRows(pgxmock.NewRows(noteColumns))

		repo := postgres.NewNoteRepository(mock)
		updated, err := repo.Update(ctx, noteID, "other-user", update)

		assert.Nil(t, updated)
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrNoteNotFound)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ошибка при обновлении - ошибка БД", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		update := repositories.NoteUpdate{Content: strPtr("new content")}
		dbError := errors.New("database connection error")

		mock.ExpectQuery("UPDATE notes .+").
			WithArgs(update.Title, update.Content, update.Tags, update.Color, update.Archived, noteID, ownerID).
			WillReturnError(dbError)

		repo := postgres.NewNoteRepository(mock)
		updated, err := repo.Update(ctx, noteID, ownerID, update)

		assert.Nil(t, updated)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error updating note")

		require.NoError(t, mock.ExpectationsWereMet())
	})
}
