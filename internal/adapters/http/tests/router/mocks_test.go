package router_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rvenkateswarreddy/notes-backend/internal/domain/entities"
	"github.com/rvenkateswarreddy/notes-backend/internal/domain/services"
	"github.com/rvenkateswarreddy/notes-backend/internal/ports/repositories"
)

type mockNoteUseCase struct {
	mock.Mock
}

func (m *mockNoteUseCase) CreateNote(ctx context.Context, ownerID, title, content string, tags []string, color string) (*entities.Note, error) {
	args := m.Called(ctx, ownerID, title, content, tags, color)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *mockNoteUseCase) UpdateNote(ctx context.Context, ownerID, noteID string, update repositories.NoteUpdate) (*entities.Note, error) {
	args := m.Called(ctx, ownerID, noteID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *mockNoteUseCase) SoftDeleteNote(ctx context.Context, ownerID, noteID string) error {
	return m.Called(ctx, ownerID, noteID).Error(0)
}

func (m *mockNoteUseCase) UnarchiveNote(ctx context.Context, ownerID, noteID string) (*entities.Note, error) {
	args := m.Called(ctx, ownerID, noteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *mockNoteUseCase) PurgeNote(ctx context.Context, ownerID, noteID string) error {
	return m.Called(ctx, ownerID, noteID).Error(0)
}

func (m *mockNoteUseCase) ListActiveNotes(ctx context.Context, ownerID string) ([]*entities.Note, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Note), args.Error(1)
}

func (m *mockNoteUseCase) ListArchivedNotes(ctx context.Context, ownerID string) ([]*entities.Note, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Note), args.Error(1)
}

func (m *mockNoteUseCase) ListTrashedNotes(ctx context.Context, ownerID string) ([]*entities.Note, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Note), args.Error(1)
}

func (m *mockNoteUseCase) ListNotesByTag(ctx context.Context, ownerID, tag string) ([]*entities.Note, error) {
	args := m.Called(ctx, ownerID, tag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Note), args.Error(1)
}

func (m *mockNoteUseCase) SearchNotes(ctx context.Context, query string) ([]*entities.Note, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Note), args.Error(1)
}

func (m *mockNoteUseCase) ListNotesByTagSet(ctx context.Context, tags []string) ([]*entities.Note, error) {
	args := m.Called(ctx, tags)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Note), args.Error(1)
}

type mockAuthUseCase struct {
	mock.Mock
}

func (m *mockAuthUseCase) Register(ctx context.Context, email, password string) (*services.AccessToken, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.AccessToken), args.Error(1)
}

func (m *mockAuthUseCase) Login(ctx context.Context, email, password string) (*services.AccessToken, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.AccessToken), args.Error(1)
}
