// Package http содержит компоненты для HTTP сервера.
package http

import (
	"github.com/gofiber/fiber/v3"

	"github.com/rvenkateswarreddy/notes-backend/internal/adapters/http/auth"
	"github.com/rvenkateswarreddy/notes-backend/internal/adapters/http/middleware"
	"github.com/rvenkateswarreddy/notes-backend/internal/adapters/http/notes"
	"github.com/rvenkateswarreddy/notes-backend/internal/ports/api"
	svc "github.com/rvenkateswarreddy/notes-backend/internal/ports/services"
)

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(app *fiber.App, authUseCase api.AuthUseCase, noteUseCase api.NoteUseCase, tokenService svc.TokenService) {
	authHandler := auth.NewHandler(authUseCase)
	notesHandler := notes.NewHandler(noteUseCase)

	// Middleware для всех запросов.
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	apiGroup := app.Group("/api")

	// Auth routes (публичные).
	authRoutes := apiGroup.Group("/auth")
	authRoutes.Post("/register", authHandler.Register)
	authRoutes.Post("/login", authHandler.Login)

	notesRoutes := apiGroup.Group("/notes")

	// Публичные выборки регистрируются до auth middleware: поиск и
	// фильтр по набору тегов не ограничены владельцем.
	notesRoutes.Get("/search", notesHandler.SearchNotes)
	notesRoutes.Get("/tags", notesHandler.ListNotesByTagSet)

	// Маршруты заметок (требуют авторизации).
	notesRoutes.Use(middleware.NewAuthMiddleware(tokenService))
	notesRoutes.Post("/", notesHandler.CreateNote)
	notesRoutes.Get("/", notesHandler.ListNotes)
	notesRoutes.Get("/archive", notesHandler.ListArchivedNotes)
	notesRoutes.Get("/trash", notesHandler.ListTrashedNotes)
	notesRoutes.Get("/tag/:tag", notesHandler.ListNotesByTag)
	notesRoutes.Put("/unarchive/:id", notesHandler.UnarchiveNote)
	notesRoutes.Put("/:id", notesHandler.UpdateNote)
	notesRoutes.Delete("/permanent/:id", notesHandler.PurgeNote)
	notesRoutes.Delete("/:id", notesHandler.TrashNote)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}
