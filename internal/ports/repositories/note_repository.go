// Package repositories defines repository interfaces for the notes backend.
package repositories

import (
	"context"

	"github.com/rvenkateswarreddy/notes-backend/internal/domain/entities"
)

// NoteUpdate описывает частичное обновление заметки.
// Nil-поля остаются без изменений.
type NoteUpdate struct {
	Title    *string
	Content  *string
	Tags     *[]string
	Color    *string
	Archived *bool
}

// NoteRepository определяет интерфейс для работы с хранилищем заметок.
// Все мутации и списки, принимающие ownerID, ограничены заметками этого
// пользователя; SearchByText и ListByTagSet намеренно не ограничены.
type NoteRepository interface {
	Create(ctx context.Context, note *entities.Note) (*entities.Note, error)
	Update(ctx context.Context, noteID, ownerID string, update NoteUpdate) (*entities.Note, error)
	SoftDelete(ctx context.Context, noteID, ownerID string) error
	Unarchive(ctx context.Context, noteID, ownerID string) (*entities.Note, error)
	Purge(ctx context.Context, noteID, ownerID string) error

	ListActive(ctx context.Context, ownerID string) ([]*entities.Note, error)
	ListArchived(ctx context.Context, ownerID string) ([]*entities.Note, error)
	ListTrashed(ctx context.Context, ownerID string) ([]*entities.Note, error)
	ListByTag(ctx context.Context, ownerID, tag string) ([]*entities.Note, error)
	SearchByText(ctx context.Context, query string) ([]*entities.Note, error)
	ListByTagSet(ctx context.Context, tags []string) ([]*entities.Note, error)
}
