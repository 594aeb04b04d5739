// Package services defines domain-level types and errors for authentication.
package services

import (
	"errors"
	"time"
)

// MinPasswordLength - минимально допустимая длина пароля.
const MinPasswordLength = 8

// Ошибки доменного уровня аутентификации.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailAlreadyExists = errors.New("user with this email already exists")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrHashingFailed      = errors.New("password hashing failed")
	ErrGeneratingJWTToken = errors.New("failed to generate jwt token")
	ErrInvalidJWTToken    = errors.New("invalid jwt token")
	ErrExpiredJWTToken    = errors.New("jwt token has expired")
)

// JWTClaims представляет доменную модель claims токена доступа.
type JWTClaims struct {
	UserID    string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// JWTConfig содержит параметры подписи токенов.
type JWTConfig struct {
	SecretKey      []byte
	AccessTokenTTL time.Duration
}

// AccessToken содержит выданный токен доступа.
type AccessToken struct {
	UserID      string    `json:"user_id"`
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}
