package userrepo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rvenkateswarreddy/notes-backend/internal/adapters/postgres"
	"github.com/rvenkateswarreddy/notes-backend/internal/domain/entities"
	"github.com/rvenkateswarreddy/notes-backend/internal/domain/services"
	"github.com/rvenkateswarreddy/notes-backend/pkg/logger"
)

var userColumns = []string{"id", "email", "password_hash", "created_at", "updated_at"}

func testContext(t *testing.T) context.Context {
	t.Helper()
	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)
	return logger.NewContext(context.Background(), testLogger)
}

func TestUserRepository_Create(t *testing.T) {
	ctx := testContext(t)

	inputUser := &entities.User{
		Email:        "new@example.com",
		PasswordHash: "hashed_password",
	}
	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("Успешное создание пользователя", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("INSERT INTO users .+").
			WithArgs(inputUser.Email, inputUser.PasswordHash).
			WillReturnRows(
				pgxmock.NewRows(userColumns).
					AddRow("user-1", inputUser.Email, inputUser.PasswordHash, now, now),
			)

		repo := postgres.NewUserRepository(mock)
		created, err := repo.Create(ctx, inputUser)

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, "user-1", created.ID)
		assert.Equal(t, inputUser.Email, created.Email)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Дублирующийся email - нарушение уникальности", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		pgErr := &pgconn.PgError{Code: "23505"}
		mock.ExpectQuery("INSERT INTO users .+").
			WithArgs(inputUser.Email, inputUser.PasswordHash).
			WillReturnError(pgErr)

		repo := postgres.NewUserRepository(mock)
		created, err := repo.Create(ctx, inputUser)

		assert.Nil(t, created)
		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrEmailAlreadyExists)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ошибка при создании пользователя - общая ошибка БД", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("INSERT INTO users .+").
			WithArgs(inputUser.Email, inputUser.PasswordHash).
			WillReturnError(errors.New("database connection error"))

		repo := postgres.NewUserRepository(mock)
		created, err := repo.Create(ctx, inputUser)

		assert.Nil(t, created)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error creating user")

		require.NoError(t, mock.ExpectationsWereMet())
	})
}
