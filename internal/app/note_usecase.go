// Package app implements application business logic for the notes backend.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/rvenkateswarreddy/notes-backend/internal/domain/entities"
	"github.com/rvenkateswarreddy/notes-backend/internal/ports/api"
	"github.com/rvenkateswarreddy/notes-backend/internal/ports/repositories"
	"github.com/rvenkateswarreddy/notes-backend/pkg/logger"
)

// Ошибки уровня бизнес-логики.
var (
	ErrInvalidParams = errors.New("invalid parameters")
)

const (
	methodCreateNote     = "CreateNote"
	methodUpdateNote     = "UpdateNote"
	methodSoftDeleteNote = "SoftDeleteNote"
	methodUnarchiveNote  = "UnarchiveNote"
	methodPurgeNote      = "PurgeNote"
	methodListActive     = "ListActiveNotes"
	methodListArchived   = "ListArchivedNotes"
	methodListTrashed    = "ListTrashedNotes"
	methodListByTag      = "ListNotesByTag"
	methodSearchNotes    = "SearchNotes"
	methodListByTagSet   = "ListNotesByTagSet"

	msgCreatingNote   = "creating note"
	msgNoteCreated    = "note created"
	msgUpdatingNote   = "updating note"
	msgTrashingNote   = "moving note to trash"
	msgUnarchiving    = "unarchiving note"
	msgPurgingNote    = "permanently deleting note"
	msgNotePurged     = "note permanently deleted"
	msgEmptyTitle     = "empty title provided"
	msgEmptyContent   = "empty content provided"
	msgEmptyQuery     = "empty search query provided"
	msgEmptyTagFilter = "empty tag filter provided"

	errCtxCreatingNote   = "creating note"
	errCtxUpdatingNote   = "updating note"
	errCtxTrashingNote   = "trashing note"
	errCtxUnarchiving    = "unarchiving note"
	errCtxPurgingNote    = "purging note"
	errCtxListingActive  = "listing active notes"
	errCtxListingArchive = "listing archived notes"
	errCtxListingTrash   = "listing trashed notes"
	errCtxListingByTag   = "listing notes by tag"
	errCtxSearchingNotes = "searching notes"
	errCtxListingTagSet  = "listing notes by tag set"
	errCtxValidating     = "validating note"
)

// NoteUseCaseImpl реализует интерфейс api.NoteUseCase.
type NoteUseCaseImpl struct {
	noteRepo repositories.NoteRepository
}

// NewNoteUseCase создает новый экземпляр NoteUseCase.
func NewNoteUseCase(noteRepo repositories.NoteRepository) api.NoteUseCase {
	return &NoteUseCaseImpl{noteRepo: noteRepo}
}

// CreateNote создает новую активную заметку для пользователя.
func (uc *NoteUseCaseImpl) CreateNote(ctx context.Context, ownerID, title, content string, tags []string, color string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", methodCreateNote), zap.String("ownerID", ownerID))
	log.Debug(ctx, msgCreatingNote)

	if strings.TrimSpace(title) == "" {
		log.Debug(ctx, msgEmptyTitle)
		return nil, fmt.Errorf("%s: %w", errCtxValidating, entities.ErrEmptyTitle)
	}
	if strings.TrimSpace(content) == "" {
		log.Debug(ctx, msgEmptyContent)
		return nil, fmt.Errorf("%s: %w", errCtxValidating, entities.ErrEmptyContent)
	}

	note := entities.NewNote(ownerID, title, content, tags, color)
	created, err := uc.noteRepo.Create(ctx, note)
	if err != nil {
		log.Error(ctx, "failed to create note", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreatingNote, err)
	}

	log.Info(ctx, msgNoteCreated, zap.String("noteID", created.ID))
	return created, nil
}

// UpdateNote применяет частичное обновление к заметке пользователя.
// Архивирование выполняется этой же операцией через update.Archived.
func (uc *NoteUseCaseImpl) UpdateNote(ctx context.Context, ownerID, noteID string, update repositories.NoteUpdate) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", methodUpdateNote), zap.String("noteID", noteID))
	log.Debug(ctx, msgUpdatingNote)

	if update.Title != nil && strings.TrimSpace(*update.Title) == "" {
		log.Debug(ctx, msgEmptyTitle)
		return nil, fmt.Errorf("%s: %w", errCtxValidating, entities.ErrEmptyTitle)
	}
	if update.Content != nil && strings.TrimSpace(*update.Content) == "" {
		log.Debug(ctx, msgEmptyContent)
		return nil, fmt.Errorf("%s: %w", errCtxValidating, entities.ErrEmptyContent)
	}

	note, err := uc.noteRepo.Update(ctx, noteID, ownerID, update)
	if err != nil {
		if errors.Is(err, entities.ErrNoteNotFound) {
			return nil, err
		}
		log.Error(ctx, "failed to update note", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingNote, err)
	}

	return note, nil
}

// SoftDeleteNote перемещает заметку пользователя в корзину, проставляя deleted_at.
// Флаг archived не изменяется; повторный вызов лишь обновляет отметку времени.
func (uc *NoteUseCaseImpl) SoftDeleteNote(ctx context.Context, ownerID, noteID string) error {
	log := logger.Log(ctx).With(zap.String("method", methodSoftDeleteNote), zap.String("noteID", noteID))
	log.Debug(ctx, msgTrashingNote)

	if err := uc.noteRepo.SoftDelete(ctx, noteID, ownerID); err != nil {
		if errors.Is(err, entities.ErrNoteNotFound) {
			return err
		}
		log.Error(ctx, "failed to trash note", zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxTrashingNote, err)
	}

	return nil
}

// UnarchiveNote снимает флаг архива с заметки пользователя.
func (uc *NoteUseCaseImpl) UnarchiveNote(ctx context.Context, ownerID, noteID string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", methodUnarchiveNote), zap.String("noteID", noteID))
	log.Debug(ctx, msgUnarchiving)

	note, err := uc.noteRepo.Unarchive(ctx, noteID, ownerID)
	if err != nil {
		if errors.Is(err, entities.ErrNoteNotFound) {
			return nil, err
		}
		log.Error(ctx, "failed to unarchive note", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxUnarchiving, err)
	}

	return note, nil
}

// PurgeNote безвозвратно удаляет заметку пользователя из хранилища.
func (uc *NoteUseCaseImpl) PurgeNote(ctx context.Context, ownerID, noteID string) error {
	log := logger.Log(ctx).With(zap.String("method", methodPurgeNote), zap.String("noteID", noteID))
	log.Debug(ctx, msgPurgingNote)

	if err := uc.noteRepo.Purge(ctx, noteID, ownerID); err != nil {
		if errors.Is(err, entities.ErrNoteNotFound) {
			return err
		}
		log.Error(ctx, "failed to purge note", zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxPurgingNote, err)
	}

	log.Info(ctx, msgNotePurged)
	return nil
}

// ListActiveNotes возвращает все заметки пользователя вне корзины,
// включая архивные.
func (uc *NoteUseCaseImpl) ListActiveNotes(ctx context.Context, ownerID string) ([]*entities.Note, error) {
	notes, err := uc.noteRepo.ListActive(ctx, ownerID)
	if err != nil {
		logger.Log(ctx).Error(ctx, "failed to list active notes", zap.Error(err), zap.String("method", methodListActive))
		return nil, fmt.Errorf("%s: %w", errCtxListingActive, err)
	}
	return notes, nil
}

// ListArchivedNotes возвращает архивные заметки пользователя вне корзины.
func (uc *NoteUseCaseImpl) ListArchivedNotes(ctx context.Context, ownerID string) ([]*entities.Note, error) {
	notes, err := uc.noteRepo.ListArchived(ctx, ownerID)
	if err != nil {
		logger.Log(ctx).Error(ctx, "failed to list archived notes", zap.Error(err), zap.String("method", methodListArchived))
		return nil, fmt.Errorf("%s: %w", errCtxListingArchive, err)
	}
	return notes, nil
}

// ListTrashedNotes возвращает заметки пользователя, находящиеся в корзине.
func (uc *NoteUseCaseImpl) ListTrashedNotes(ctx context.Context, ownerID string) ([]*entities.Note, error) {
	notes, err := uc.noteRepo.ListTrashed(ctx, ownerID)
	if err != nil {
		logger.Log(ctx).Error(ctx, "failed to list trashed notes", zap.Error(err), zap.String("method", methodListTrashed))
		return nil, fmt.Errorf("%s: %w", errCtxListingTrash, err)
	}
	return notes, nil
}

// ListNotesByTag возвращает активные заметки пользователя с указанным тегом.
func (uc *NoteUseCaseImpl) ListNotesByTag(ctx context.Context, ownerID, tag string) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", methodListByTag), zap.String("tag", tag))

	if strings.TrimSpace(tag) == "" {
		log.Debug(ctx, msgEmptyTagFilter)
		return nil, fmt.Errorf("%s: %w", errCtxListingByTag, ErrInvalidParams)
	}

	notes, err := uc.noteRepo.ListByTag(ctx, ownerID, tag)
	if err != nil {
		log.Error(ctx, "failed to list notes by tag", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxListingByTag, err)
	}
	return notes, nil
}

// SearchNotes ищет заметки по подстроке в заголовке или содержимом
// без учета регистра. Поиск не ограничен владельцем: так ведет себя
// исходный сервис, и это поведение сохранено сознательно.
func (uc *NoteUseCaseImpl) SearchNotes(ctx context.Context, query string) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", methodSearchNotes))

	if strings.TrimSpace(query) == "" {
		log.Debug(ctx, msgEmptyQuery)
		return nil, fmt.Errorf("%s: %w", errCtxSearchingNotes, ErrInvalidParams)
	}

	notes, err := uc.noteRepo.SearchByText(ctx, query)
	if err != nil {
		log.Error(ctx, "failed to search notes", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxSearchingNotes, err)
	}
	return notes, nil
}

// ListNotesByTagSet возвращает заметки, набор тегов которых содержит все
// перечисленные теги. Как и SearchNotes, выборка не ограничена владельцем.
func (uc *NoteUseCaseImpl) ListNotesByTagSet(ctx context.Context, tags []string) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", methodListByTagSet))

	cleaned := make([]string, 0, len(tags))
	for _, tag := range tags {
		if t := strings.TrimSpace(tag); t != "" {
			cleaned = append(cleaned, t)
		}
	}
	if len(cleaned) == 0 {
		log.Debug(ctx, msgEmptyTagFilter)
		return nil, fmt.Errorf("%s: %w", errCtxListingTagSet, ErrInvalidParams)
	}

	notes, err := uc.noteRepo.ListByTagSet(ctx, cleaned)
	if err != nil {
		log.Error(ctx, "failed to list notes by tag set", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxListingTagSet, err)
	}
	return notes, nil
}
