package services

import (
	"time"

	svc "github.com/rvenkateswarreddy/notes-backend/internal/ports/services"
)

// ServiceFactory создает сервисы аутентификации.
type ServiceFactory struct {
	jwtSecretKey   string
	accessTokenTTL time.Duration
	bcryptCost     int
}

// NewServiceFactory создает новую фабрику сервисов.
func NewServiceFactory(jwtSecretKey string, accessTokenTTL time.Duration, bcryptCost int) *ServiceFactory {
	return &ServiceFactory{
		jwtSecretKey:   jwtSecretKey,
		accessTokenTTL: accessTokenTTL,
		bcryptCost:     bcryptCost,
	}
}

// TokenService возвращает сервис для работы с токенами.
func (f *ServiceFactory) TokenService() svc.TokenService {
	return NewJWT(f.jwtSecretKey, f.accessTokenTTL)
}

// PasswordService возвращает сервис для работы с паролями.
func (f *ServiceFactory) PasswordService() svc.PasswordService {
	return NewBcrypt(f.bcryptCost)
}
