package api

import (
	"context"

	"github.com/rvenkateswarreddy/notes-backend/internal/domain/services"
)

// AuthUseCase определяет контракт регистрации и входа пользователей.
type AuthUseCase interface {
	Register(ctx context.Context, email, password string) (*services.AccessToken, error)
	Login(ctx context.Context, email, password string) (*services.AccessToken, error)
}
