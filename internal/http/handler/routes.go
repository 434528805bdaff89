package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"contentapi/internal/ai"
	"contentapi/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app. Keep
// handlers thin; business rules live in the services.
func RegisterRoutes(app *fiber.App, db *sql.DB, docSvc service.DocumentService, contentSvc service.ContentService, chatter ai.Chatter) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	app.Get("/documents", ListDocuments(docSvc))
	app.Post("/documents", UploadDocument(docSvc))
	app.Post("/documents/search", SearchDocuments(contentSvc))
	app.Get("/documents/:id", GetDocument(docSvc))
	app.Delete("/documents/:id", DeleteDocument(docSvc))

	app.Get("/documents/:id/content", GetDocumentContent(contentSvc))
	app.Get("/documents/:id/summary", SummarizeDocument(contentSvc))
	app.Get("/documents/:id/summary/brief", SummarizeDocumentBrief(contentSvc))

	app.Post("/documents/:id/analyze", AnalyzeDocument(contentSvc, chatter))
	app.Post("/chat", Chat(docSvc, chatter))
}
