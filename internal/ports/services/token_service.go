// Package services defines service interfaces for the notes backend.
package services

import (
	"context"
	"time"
)

// TokenService определяет интерфейс для работы с токенами доступа.
type TokenService interface {
	GenerateAccessToken(ctx context.Context, userID string) (string, time.Time, error)
	ValidateAccessToken(ctx context.Context, token string) (string, error)
}
