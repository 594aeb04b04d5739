package entities

import (
	"errors"
	"time"
)

// Ошибки уровня сущностей пользователей.
var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmptyEmail   = errors.New("email is required")
)

// User представляет собой пользователя сервиса.
// Заметки пользователя хранятся отдельно и связаны через Note.OwnerID.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
