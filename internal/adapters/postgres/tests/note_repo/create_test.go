package noterepo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rvenkateswarreddy/notes-backend/internal/adapters/postgres"
	"github.com/rvenkateswarreddy/notes-backend/internal/domain/entities"
	"github.com/rvenkateswarreddy/notes-backend/pkg/logger"
)

var noteColumns = []string{"id", "user_id", "title", "content", "tags", "color", "archived", "deleted_at", "created_at", "updated_at"}

func testContext(t *testing.T) context.Context {
	t.Helper()
	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)
	return logger.NewContext(context.Background(), testLogger)
}

func TestNoteRepository_Create(t *testing.T) {
	ctx := testContext(t)

	inputNote := entities.NewNote("user-123", "Shopping list", "milk, eggs", []string{"home"}, "#ff0000")
	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("Успешное создание заметки", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("INSERT INTO notes .+").
			WithArgs(inputNote.OwnerID, inputNote.Title, inputNote.Content, inputNote.Tags, inputNote.Color).
			WillReturnRows(
				pgxmock.NewRows(noteColumns).
					AddRow("note-1", inputNote.OwnerID, inputNote.Title, inputNote.Content,
						inputNote.Tags, inputNote.Color, false, nil, now, now),
			)

		repo := postgres.NewNoteRepository(mock)
		created, err := repo.Create(ctx, inputNote)

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, "note-1", created.ID)
		assert.Equal(t, inputNote.OwnerID, created.OwnerID)
		assert.Equal(t, inputNote.Title, created.Title)
		assert.Equal(t, inputNote.Tags, created.Tags)
		assert.False(t, created.Archived)
		assert.Nil(t, created.DeletedAt)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Теги NULL нормализуются в пустой срез", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		bare := entities.NewNote("user-123", "Bare", "no tags", nil, "")

		mock.ExpectQuery("INSERT INTO notes .+").
			WithArgs(bare.OwnerID, bare.Title, bare.Content, bare.Tags, bare.Color).
			WillReturnRows(
				pgxmock.NewRows(noteColumns).
					AddRow("note-2", bare.OwnerID, bare.Title, bare.Content,
						nil, entities.DefaultColor, false, nil, now, now),
			)

		repo := postgres.NewNoteRepository(mock)
		created, err := repo.Create(ctx, bare)

		require.NoError(t, err)
		assert.NotNil(t, created.Tags)
		assert.Empty(t, created.Tags)
		assert.Equal(t, entities.DefaultColor, created.Color)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ошибка при создании заметки - ошибка БД", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		dbError := errors.New("database connection error")
		mock.ExpectQuery("INSERT INTO notes .+").
			WithArgs(inputNote.OwnerID, inputNote.Title, inputNote.Content, inputNote.Tags, inputNote.Color).
			WillReturnError(dbError)

		repo := postgres.NewNoteRepository(mock)
		created, err := repo.Create(ctx, inputNote)

		assert.Nil(t, created)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error creating note")

		require.NoError(t, mock.ExpectationsWereMet())
	})
}
