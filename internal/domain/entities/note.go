// Package entities defines the domain entities for the notes backend.
package entities

import (
	"errors"
	"time"
)

// DefaultColor - цвет заметки по умолчанию.
const DefaultColor = "#ffffff"

// Ошибки уровня сущностей заметок.
var (
	ErrNoteNotFound = errors.New("note not found")
	ErrEmptyTitle   = errors.New("note title is required")
	ErrEmptyContent = errors.New("note content is required")
)

// Note представляет собой заметку пользователя.
// DeletedAt равный nil означает, что заметка активна или в архиве;
// ненулевое значение - момент перемещения в корзину.
type Note struct {
	ID        string     `json:"id"`
	OwnerID   string     `json:"ownerId"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Tags      []string   `json:"tags"`
	Color     string     `json:"color"`
	Archived  bool       `json:"archived"`
	DeletedAt *time.Time `json:"deletedAt"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// NewNote creates a new active note owned by the given user.
func NewNote(ownerID, title, content string, tags []string, color string) *Note {
	if tags == nil {
		tags = []string{}
	}
	if color == "" {
		color = DefaultColor
	}
	return &Note{
		OwnerID: ownerID,
		Title:   title,
		Content: content,
		Tags:    tags,
		Color:   color,
	}
}

// Trashed сообщает, находится ли заметка в корзине.
// DeletedAt авторитетен вне зависимости от флага Archived.
func (n *Note) Trashed() bool {
	return n.DeletedAt != nil
}
