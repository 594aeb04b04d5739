package repositories

import (
	"context"

	"github.com/rvenkateswarreddy/notes-backend/internal/domain/entities"
)

// UserRepository определяет интерфейс для работы с репозиторием пользователей.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	FindByID(ctx context.Context, id string) (*entities.User, error)
}
