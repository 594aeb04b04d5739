// Package postgres provides PostgreSQL implementations of repositories.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/rvenkateswarreddy/notes-backend/internal/domain/entities"
	"github.com/rvenkateswarreddy/notes-backend/internal/ports/repositories"
	"github.com/rvenkateswarreddy/notes-backend/pkg/logger"
)

const noteColumns = `id, user_id, title, content, tags, color, archived, deleted_at, created_at, updated_at`

// NoteRepository реализует интерфейс repositories.NoteRepository.
type NoteRepository struct {
	pool PgxPoolInterface
}

// NewNoteRepository создает новый репозиторий заметок.
func NewNoteRepository(pool PgxPoolInterface) repositories.NoteRepository {
	return &NoteRepository{pool: pool}
}

// Create сохраняет новую заметку в БД.
func (r *NoteRepository) Create(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "Create"))
	log.Debug(ctx, "creating new note", zap.String("ownerID", note.OwnerID))

	query := `
        INSERT INTO notes (user_id, title, content, tags, color)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + noteColumns

	created, err := scanNote(r.pool.QueryRow(ctx, query,
		note.OwnerID, note.Title, note.Content, note.Tags, note.Color))
	if err != nil {
		log.Error(ctx, "failed to create note", zap.Error(err))
		return nil, fmt.Errorf("error creating note: %w", err)
	}

	log.Debug(ctx, "note created", zap.String("noteID", created.ID))
	return created, nil
}

// Update применяет частичное обновление к заметке, принадлежащей пользователю.
// Nil-поля сохраняют текущие значения.
func (r *NoteRepository) Update(ctx context.Context, noteID, ownerID string, update repositories.NoteUpdate) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "Update"))
	log.Debug(ctx, "updating note", zap.String("noteID", noteID))

	query := `
        UPDATE notes
        SET title      = COALESCE($1, title),
            content    = COALESCE($2, content),
            tags       = COALESCE($3::text[], tags),
            color      = COALESCE($4, color),
            archived   = COALESCE($5, archived),
            updated_at = now()
        WHERE id = $6 AND user_id = $7
        RETURNING ` + noteColumns

	updated, err := scanNote(r.pool.QueryRow(ctx, query,
		update.Title, update.Content, update.Tags, update.Color, update.Archived,
		noteID, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note not found or not owned by user", zap.String("noteID", noteID))
			return nil, entities.ErrNoteNotFound
		}
		log.Error(ctx, "failed to update note", zap.Error(err))
		return nil, fmt.Errorf("error updating note: %w", err)
	}

	return updated, nil
}

// SoftDelete перемещает заметку в корзину, проставляя deleted_at.
// Флаг archived не затрагивается; повторный вызов обновляет отметку времени.
func (r *NoteRepository) SoftDelete(ctx context.Context, noteID, ownerID string) error {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "SoftDelete"))
	log.Debug(ctx, "moving note to trash", zap.String("noteID", noteID))

	result, err := r.pool.Exec(ctx,
		`UPDATE notes SET deleted_at = now(), updated_at = now() WHERE id = $1 AND user_id = $2`,
		noteID, ownerID,
	)
	if err != nil {
		log.Error(ctx, "failed to trash note", zap.Error(err))
		return fmt.Errorf("error trashing note: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "note not found or not owned by user", zap.String("noteID", noteID))
		return entities.ErrNoteNotFound
	}

	return nil
}

// Unarchive снимает флаг архива с заметки, принадлежащей пользователю.
func (r *NoteRepository) Unarchive(ctx context.Context, noteID, ownerID string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "Unarchive"))
	log.Debug(ctx, "unarchiving note", zap.String("noteID", noteID))

	query := `
        UPDATE notes
        SET archived = false, updated_at = now()
        WHERE id = $1 AND user_id = $2
        RETURNING ` + noteColumns

	updated, err := scanNote(r.pool.QueryRow(ctx, query, noteID, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note not found or not owned by user", zap.String("noteID", noteID))
			return nil, entities.ErrNoteNotFound
		}
		log.Error(ctx, "failed to unarchive note", zap.Error(err))
		return nil, fmt.Errorf("error unarchiving note: %w", err)
	}

	return updated, nil
}

// Purge безвозвратно удаляет заметку, принадлежащую пользователю.
func (r *NoteRepository) Purge(ctx context.Context, noteID, ownerID string) error {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "Purge"))
	log.Debug(ctx, "permanently deleting note", zap.String("noteID", noteID))

	result, err := r.pool.Exec(ctx,
		`DELETE FROM notes WHERE id = $1 AND user_id = $2`,
		noteID, ownerID,
	)
	if err != nil {
		log.Error(ctx, "failed to delete note", zap.Error(err))
		return fmt.Errorf("error deleting note: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "note not found or not owned by user", zap.String("noteID", noteID))
		return entities.ErrNoteNotFound
	}

	return nil
}

// ListActive возвращает заметки пользователя вне корзины, включая архивные.
func (r *NoteRepository) ListActive(ctx context.Context, ownerID string) ([]*entities.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE user_id = $1 AND deleted_at IS NULL`
	return r.list(ctx, "ListActive", query, ownerID)
}

// ListArchived возвращает архивные заметки пользователя вне корзины.
func (r *NoteRepository) ListArchived(ctx context.Context, ownerID string) ([]*entities.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE user_id = $1 AND archived AND deleted_at IS NULL`
	return r.list(ctx, "ListArchived", query, ownerID)
}

// ListTrashed возвращает заметки пользователя, находящиеся в корзине.
func (r *NoteRepository) ListTrashed(ctx context.Context, ownerID string) ([]*entities.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE user_id = $1 AND deleted_at IS NOT NULL`
	return r.list(ctx, "ListTrashed", query, ownerID)
}

// ListByTag возвращает активные заметки пользователя, содержащие тег.
func (r *NoteRepository) ListByTag(ctx context.Context, ownerID, tag string) ([]*entities.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE user_id = $1 AND deleted_at IS NULL AND $2 = ANY(tags)`
	return r.list(ctx, "ListByTag", query, ownerID, tag)
}

// SearchByText ищет заметки любых пользователей по подстроке в заголовке
// или содержимом без учета регистра.
func (r *NoteRepository) SearchByText(ctx context.Context, search string) ([]*entities.Note, error) {
	query := `
        SELECT ` + noteColumns + `
        FROM notes
        WHERE title ILIKE '%' || $1 || '%' OR content ILIKE '%' || $1 || '%'`
	return r.list(ctx, "SearchByText", query, search)
}

// ListByTagSet возвращает заметки любых пользователей, набор тегов которых
// содержит все перечисленные теги.
func (r *NoteRepository) ListByTagSet(ctx context.Context, tags []string) ([]*entities.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE tags @> $1::text[]`
	return r.list(ctx, "ListByTagSet", query, tags)
}

func (r *NoteRepository) list(ctx context.Context, method, query string, args ...interface{}) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", method))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		log.Error(ctx, "failed to query notes", zap.Error(err))
		return nil, fmt.Errorf("error querying notes: %w", err)
	}
	defer rows.Close()

	notes := make([]*entities.Note, 0)
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			log.Error(ctx, "failed to scan note", zap.Error(err))
			return nil, fmt.Errorf("error scanning note: %w", err)
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return notes, nil
}

func scanNote(row pgx.Row) (*entities.Note, error) {
	var note entities.Note
	err := row.Scan(
		&note.ID,
		&note.OwnerID,
		&note.Title,
		&note.Content,
		&note.Tags,
		&note.Color,
		&note.Archived,
		&note.DeletedAt,
		&note.CreatedAt,
		&note.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if note.Tags == nil {
		note.Tags = []string{}
	}
	return &note, nil
}
