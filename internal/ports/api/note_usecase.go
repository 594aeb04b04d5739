// Package api defines use case interfaces exposed to transport adapters.
package api

import (
	"context"

	"github.com/rvenkateswarreddy/notes-backend/internal/domain/entities"
	"github.com/rvenkateswarreddy/notes-backend/internal/ports/repositories"
)

// NoteUseCase определяет контракт жизненного цикла заметок и их выборок.
type NoteUseCase interface {
	CreateNote(ctx context.Context, ownerID, title, content string, tags []string, color string) (*entities.Note, error)
	UpdateNote(ctx context.Context, ownerID, noteID string, update repositories.NoteUpdate) (*entities.Note, error)
	SoftDeleteNote(ctx context.Context, ownerID, noteID string) error
	UnarchiveNote(ctx context.Context, ownerID, noteID string) (*entities.Note, error)
	PurgeNote(ctx context.Context, ownerID, noteID string) error

	ListActiveNotes(ctx context.Context, ownerID string) ([]*entities.Note, error)
	ListArchivedNotes(ctx context.Context, ownerID string) ([]*entities.Note, error)
	ListTrashedNotes(ctx context.Context, ownerID string) ([]*entities.Note, error)
	ListNotesByTag(ctx context.Context, ownerID, tag string) ([]*entities.Note, error)
	SearchNotes(ctx context.Context, query string) ([]*entities.Note, error)
	ListNotesByTagSet(ctx context.Context, tags []string) ([]*entities.Note, error)
}
