// Package notes содержит HTTP-обработчики для управления заметками.
package notes

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"github.com/rvenkateswarreddy/notes-backend/internal/adapters/http/middleware"
	"github.com/rvenkateswarreddy/notes-backend/internal/app/dto"
	"github.com/rvenkateswarreddy/notes-backend/internal/ports/api"
	"github.com/rvenkateswarreddy/notes-backend/internal/ports/repositories"
	"github.com/rvenkateswarreddy/notes-backend/pkg/logger"
)

// Константы ошибок и сообщений для логирования.
const (
	LogHandlerCreateNote    = "handling create note request"
	LogHandlerListNotes     = "handling list notes request"
	LogHandlerUpdateNote    = "handling update note request"
	LogHandlerTrashNote     = "handling trash note request"
	LogHandlerPurgeNote     = "handling purge note request"
	LogHandlerListArchive   = "handling list archived notes request"
	LogHandlerUnarchiveNote = "handling unarchive note request"
	LogHandlerListTrash     = "handling list trashed notes request"
	LogHandlerSearchNotes   = "handling search notes request"
	LogHandlerListByTagSet  = "handling list notes by tag set request"
	LogHandlerListByTag     = "handling list notes by tag request"

	ErrMsgInvalidNoteID      = "invalid note id"
	ErrMsgInvalidRequestBody = "invalid request body"
	ErrMsgMissingQuery       = "query parameter is required"
	ErrMsgMissingTags        = "tags parameter is required"
	ErrMsgUnauthenticated    = "unauthenticated request"
)

// Handler обработчик HTTP-запросов для работы с заметками.
type Handler struct {
	noteUseCase api.NoteUseCase
}

// NewHandler создает новый экземпляр обработчика заметок.
func NewHandler(noteUseCase api.NoteUseCase) *Handler {
	return &Handler{noteUseCase: noteUseCase}
}

// CreateNote обрабатывает запрос на создание новой заметки.
func (h *Handler) CreateNote(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.CreateNote"))
	log.Debug(requestCtx, LogHandlerCreateNote)

	ownerID, ok := middleware.AuthenticatedUserID(ctx)
	if !ok {
		return sendJSON(ctx, fiber.StatusUnauthorized, fiber.Map{"error": ErrMsgUnauthenticated})
	}

	var req dto.CreateNoteRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Error(requestCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return sendJSON(ctx, fiber.StatusBadRequest, fiber.Map{"error": ErrMsgInvalidRequestBody})
	}

	note, err := h.noteUseCase.CreateNote(requestCtx, ownerID, req.Title, req.Content, req.Tags, req.Color)
	if err != nil {
		log.Error(requestCtx, "failed to create note", zap.Error(err))
		return handleError(ctx, err)
	}

	return sendJSON(ctx, fiber.StatusCreated, note)
}

// ListNotes возвращает все заметки пользователя вне корзины.
func (h *Handler) ListNotes(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.ListNotes"))
	log.Debug(requestCtx, LogHandlerListNotes)

	ownerID, ok := middleware.AuthenticatedUserID(ctx)
	if !ok {
		return sendJSON(ctx, fiber.StatusUnauthorized, fiber.Map{"error": ErrMsgUnauthenticated})
	}

	notes, err := h.noteUseCase.ListActiveNotes(requestCtx, ownerID)
	if err != nil {
		log.Error(requestCtx, "failed to list notes", zap.Error(err))
		return handleError(ctx, err)
	}

	return sendJSON(ctx, fiber.StatusOK, notes)
}

// UpdateNote обрабатывает частичное обновление заметки, включая архивирование.
func (h *Handler) UpdateNote(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.UpdateNote"))
	log.Debug(requestCtx, LogHandlerUpdateNote)

	ownerID, ok := middleware.AuthenticatedUserID(ctx)
	if !ok {
		return sendJSON(ctx, fiber.StatusUnauthorized, fiber.Map{"error": ErrMsgUnauthenticated})
	}

	noteID := ctx.Params("id")
	if noteID == "" {
		log.Error(requestCtx, ErrMsgInvalidNoteID)
		return sendJSON(ctx, fiber.StatusBadRequest, fiber.Map{"error": ErrMsgInvalidNoteID})
	}

	var req dto.UpdateNoteRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Error(requestCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return sendJSON(ctx, fiber.StatusBadRequest, fiber.Map{"error": ErrMsgInvalidRequestBody})
	}

	note, err := h.noteUseCase.UpdateNote(requestCtx, ownerID, noteID, repositories.NoteUpdate{
		Title:    req.Title,
		Content:  req.Content,
		Tags:     req.Tags,
		Color:    req.Color,
		Archived: req.Archived,
	})
	if err != nil {
		log.Error(requestCtx, "failed to update note", zap.Error(err))
		return handleError(ctx, err)
	}

	return sendJSON(ctx, fiber.StatusOK, note)
}

// TrashNote перемещает заметку в корзину.
func (h *Handler) TrashNote(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.TrashNote"))
	log.Debug(requestCtx, LogHandlerTrashNote)

	ownerID, ok := middleware.AuthenticatedUserID(ctx)
	if !ok {
		return sendJSON(ctx, fiber.StatusUnauthorized, fiber.Map{"error": ErrMsgUnauthenticated})
	}

	noteID := ctx.Params("id")
	if noteID == "" {
		log.Error(requestCtx, ErrMsgInvalidNoteID)
		return sendJSON(ctx, fiber.StatusBadRequest, fiber.Map{"error": ErrMsgInvalidNoteID})
	}

	if err := h.noteUseCase.SoftDeleteNote(requestCtx, ownerID, noteID); err != nil {
		log.Error(requestCtx, "failed to trash note", zap.Error(err))
		return handleError(ctx, err)
	}

	return sendJSON(ctx, fiber.StatusOK, dto.StatusResponse{Message: MsgNoteTrashed})
}

// PurgeNote безвозвратно удаляет заметку; отсутствие заметки - 404.
func (h *Handler) PurgeNote(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.PurgeNote"))
	log.Debug(requestCtx, LogHandlerPurgeNote)

	ownerID, ok := middleware.AuthenticatedUserID(ctx)
	if !ok {
		return sendJSON(ctx, fiber.StatusUnauthorized, fiber.Map{"error": ErrMsgUnauthenticated})
	}

	noteID := ctx.Params("id")
	if noteID == "" {
		log.Error(requestCtx, ErrMsgInvalidNoteID)
		return sendJSON(ctx, fiber.StatusBadRequest, fiber.Map{"error": ErrMsgInvalidNoteID})
	}

	if err := h.noteUseCase.PurgeNote(requestCtx, ownerID, noteID); err != nil {
		log.Error(requestCtx, "failed to purge note", zap.Error(err))
		return handleError(ctx, err)
	}

	return sendJSON(ctx, fiber.StatusOK, dto.StatusResponse{Message: MsgNotePurged})
}

// ListArchivedNotes возвращает архивные заметки пользователя.
func (h *Handler) ListArchivedNotes(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.ListArchivedNotes"))
	log.Debug(requestCtx, LogHandlerListArchive)

	ownerID, ok := middleware.AuthenticatedUserID(ctx)
	if !ok {
		return sendJSON(ctx, fiber.StatusUnauthorized, fiber.Map{"error": ErrMsgUnauthenticated})
	}

	notes, err := h.noteUseCase.ListArchivedNotes(requestCtx, ownerID)
	if err != nil {
		log.Error(requestCtx, "failed to list archived notes", zap.Error(err))
		return handleError(ctx, err)
	}

	return sendJSON(ctx, fiber.StatusOK, notes)
}

// UnarchiveNote снимает флаг архива с заметки.
func (h *Handler) UnarchiveNote(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.UnarchiveNote"))
	log.Debug(requestCtx, LogHandlerUnarchiveNote)

	ownerID, ok := middleware.AuthenticatedUserID(ctx)
	if !ok {
		return sendJSON(ctx, fiber.StatusUnauthorized, fiber.Map{"error": ErrMsgUnauthenticated})
	}

	noteID := ctx.Params("id")
	if noteID == "" {
		log.Error(requestCtx, ErrMsgInvalidNoteID)
		return sendJSON(ctx, fiber.StatusBadRequest, fiber.Map{"error": ErrMsgInvalidNoteID})
	}

	note, err := h.noteUseCase.UnarchiveNote(requestCtx, ownerID, noteID)
	if err != nil {
		log.Error(requestCtx, "failed to unarchive note", zap.Error(err))
		return handleError(ctx, err)
	}

	return sendJSON(ctx, fiber.StatusOK, note)
}

// ListTrashedNotes возвращает заметки пользователя из корзины.
func (h *Handler) ListTrashedNotes(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.ListTrashedNotes"))
	log.Debug(requestCtx, LogHandlerListTrash)

	ownerID, ok := middleware.AuthenticatedUserID(ctx)
	if !ok {
		return sendJSON(ctx, fiber.StatusUnauthorized, fiber.Map{"error": ErrMsgUnauthenticated})
	}

	notes, err := h.noteUseCase.ListTrashedNotes(requestCtx, ownerID)
	if err != nil {
		log.Error(requestCtx, "failed to list trashed notes", zap.Error(err))
		return handleError(ctx, err)
	}

	return sendJSON(ctx, fiber.StatusOK, notes)
}

// SearchNotes выполняет публичный поиск по подстроке заголовка или содержимого.
func (h *Handler) SearchNotes(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.SearchNotes"))
	log.Debug(requestCtx, LogHandlerSearchNotes)

	query := ctx.Query("query")
	if query == "" {
		return sendJSON(ctx, fiber.StatusBadRequest, fiber.Map{"error": ErrMsgMissingQuery})
	}

	notes, err := h.noteUseCase.SearchNotes(requestCtx, query)
	if err != nil {
		log.Error(requestCtx, "failed to search notes", zap.Error(err))
		return handleError(ctx, err)
	}

	return sendJSON(ctx, fiber.StatusOK, notes)
}

// ListNotesByTagSet выполняет публичную выборку заметок, содержащих все
// теги из списка, переданного через запятую.
func (h *Handler) ListNotesByTagSet(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.ListNotesByTagSet"))
	log.Debug(requestCtx, LogHandlerListByTagSet)

	tagsParam := ctx.Query("tags")
	if tagsParam == "" {
		return sendJSON(ctx, fiber.StatusBadRequest, fiber.Map{"error": ErrMsgMissingTags})
	}

	notes, err := h.noteUseCase.ListNotesByTagSet(requestCtx, strings.Split(tagsParam, ","))
	if err != nil {
		log.Error(requestCtx, "failed to list notes by tag set", zap.Error(err))
		return handleError(ctx, err)
	}

	return sendJSON(ctx, fiber.StatusOK, notes)
}

// ListNotesByTag возвращает активные заметки пользователя с указанным тегом.
func (h *Handler) ListNotesByTag(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.ListNotesByTag"))
	log.Debug(requestCtx, LogHandlerListByTag)

	ownerID, ok := middleware.AuthenticatedUserID(ctx)
	if !ok {
		return sendJSON(ctx, fiber.StatusUnauthorized, fiber.Map{"error": ErrMsgUnauthenticated})
	}

	tag := ctx.Params("tag")

	notes, err := h.noteUseCase.ListNotesByTag(requestCtx, ownerID, tag)
	if err != nil {
		log.Error(requestCtx, "failed to list notes by tag", zap.Error(err))
		return handleError(ctx, err)
	}

	return sendJSON(ctx, fiber.StatusOK, notes)
}
