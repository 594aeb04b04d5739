// Package auth содержит HTTP обработчики регистрации и входа пользователей.
package auth

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"github.com/rvenkateswarreddy/notes-backend/internal/adapters/http/middleware"
	"github.com/rvenkateswarreddy/notes-backend/internal/app/dto"
	"github.com/rvenkateswarreddy/notes-backend/internal/domain/services"
	"github.com/rvenkateswarreddy/notes-backend/internal/ports/api"
	"github.com/rvenkateswarreddy/notes-backend/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerRegister = "auth handler: register"
	LogHandlerLogin    = "auth handler: login"

	ErrorInvalidRequest       = "invalid request"
	ErrorRequiredCredentials  = "email and password are required"
	ErrorFailedToServeRequest = "failed to serve request"
)

// Handler содержит HTTP обработчики для авторизации.
type Handler struct {
	authUseCase api.AuthUseCase
}

// NewHandler создает новый экземпляр обработчика авторизации.
func NewHandler(authUseCase api.AuthUseCase) *Handler {
	return &Handler{authUseCase: authUseCase}
}

// Register обрабатывает запрос на регистрацию нового пользователя.
func (h *Handler) Register(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerRegister)

	var req dto.RegisterRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, fiber.StatusBadRequest, ErrorInvalidRequest)
	}

	if req.Email == "" || req.Password == "" {
		return sendErrorResponse(ctx, fiber.StatusBadRequest, ErrorRequiredCredentials)
	}

	token, err := h.authUseCase.Register(requestCtx, req.Email, req.Password)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendAuthError(ctx, err)
	}

	return sendToken(ctx, fiber.StatusCreated, token)
}

// Login обрабатывает запрос на вход пользователя.
func (h *Handler) Login(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerLogin)

	var req dto.LoginRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, fiber.StatusBadRequest, ErrorInvalidRequest)
	}

	if req.Email == "" || req.Password == "" {
		return sendErrorResponse(ctx, fiber.StatusBadRequest, ErrorRequiredCredentials)
	}

	token, err := h.authUseCase.Login(requestCtx, req.Email, req.Password)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendAuthError(ctx, err)
	}

	return sendToken(ctx, fiber.StatusOK, token)
}

func sendToken(ctx fiber.Ctx, status int, token *services.AccessToken) error {
	response := dto.TokenResponse{
		UserID:      token.UserID,
		AccessToken: token.AccessToken,
		ExpiresAt:   token.ExpiresAt,
	}
	if err := ctx.Status(status).JSON(response); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

func sendAuthError(ctx fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrEmailAlreadyExists):
		return sendErrorResponse(ctx, fiber.StatusConflict, services.ErrEmailAlreadyExists.Error())
	case errors.Is(err, services.ErrInvalidEmail),
		errors.Is(err, services.ErrInvalidPassword):
		return sendErrorResponse(ctx, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		return sendErrorResponse(ctx, fiber.StatusUnauthorized, services.ErrInvalidCredentials.Error())
	default:
		return sendErrorResponse(ctx, fiber.StatusInternalServerError, "Internal server error")
	}
}

// Вспомогательная функция для обработки ошибок HTTP.
func sendErrorResponse(ctx fiber.Ctx, statusCode int, message string) error {
	if err := ctx.Status(statusCode).JSON(fiber.Map{
		"error": message,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}
