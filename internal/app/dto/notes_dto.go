// Package dto содержит объекты передачи данных HTTP-слоя.
package dto

// CreateNoteRequest содержит данные для создания заметки.
type CreateNoteRequest struct {
	Title   string   `json:"title" validate:"required"`
	Content string   `json:"content" validate:"required"`
	Tags    []string `json:"tags"`
	Color   string   `json:"color"`
}

// UpdateNoteRequest содержит данные для частичного обновления заметки.
// Nil-поля не изменяются; Archived=true архивирует заметку.
type UpdateNoteRequest struct {
	Title    *string   `json:"title"`
	Content  *string   `json:"content"`
	Tags     *[]string `json:"tags"`
	Color    *string   `json:"color"`
	Archived *bool     `json:"archived"`
}

// StatusResponse содержит подтверждающее сообщение для операций удаления.
type StatusResponse struct {
	Message string `json:"message"`
}
