package notes

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/rvenkateswarreddy/notes-backend/internal/app"
	"github.com/rvenkateswarreddy/notes-backend/internal/domain/entities"
)

// Сообщения ответов для операций удаления.
const (
	MsgNoteTrashed = "Note moved to trash successfully"
	MsgNotePurged  = "Note deleted permanently"
	MsgNotFound    = "Note not found"
)

// handleError транслирует ошибку бизнес-логики в HTTP-статус.
// Слой маршрутов не делает повторов и ничего не восстанавливает.
func handleError(ctx fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, entities.ErrNoteNotFound):
		return sendJSON(ctx, fiber.StatusNotFound, fiber.Map{"message": MsgNotFound})
	case errors.Is(err, entities.ErrEmptyTitle),
		errors.Is(err, entities.ErrEmptyContent),
		errors.Is(err, app.ErrInvalidParams):
		return sendJSON(ctx, fiber.StatusBadRequest, fiber.Map{"error": err.Error()})
	default:
		return sendJSON(ctx, fiber.StatusInternalServerError, fiber.Map{"error": "Internal server error"})
	}
}

func sendJSON(ctx fiber.Ctx, status int, body interface{}) error {
	if err := ctx.Status(status).JSON(body); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}
