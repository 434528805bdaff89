package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"contentapi/internal/ai"
	"contentapi/internal/model"
	"contentapi/internal/prompt"
	"contentapi/internal/service"
)

// chatDocsLimit bounds how many documents are folded into the chat
// prompt context.
const chatDocsLimit = 50

const chatFallbackMessage = "I'm having trouble reaching the AI service right now. Please try again in a moment."

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Response  string           `json:"response"`
	Documents []model.Document `json:"documents"`
}

type analysisResponse struct {
	Analysis string               `json:"analysis,omitempty"`
	Error    string               `json:"error,omitempty"`
	Document *model.ContentRecord `json:"document"`
}

// Chat handles POST /chat. The assistant answers against a snapshot of
// the document catalog; an AI outage degrades to a canned reply rather
// than a 5xx so chat clients keep a usable conversation.
func Chat(docSvc service.DocumentService, chatter ai.Chatter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if chatter == nil {
			return writeError(c, fiber.StatusServiceUnavailable, "AI_DISABLED", "AI features are not configured")
		}

		var req chatRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if req.Message == "" {
			return writeError(c, fiber.StatusBadRequest, "MESSAGE_REQUIRED", "message is required")
		}

		// A catalog failure is not fatal: the prompt just carries no
		// document context.
		docs := []model.Document{}
		if res, err := docSvc.List(c.UserContext(), chatDocsLimit, 0); err == nil {
			docs = res.Items
		}

		answer, err := chatter.Chat(c.UserContext(), prompt.Chat(docs, req.Message))
		if err != nil {
			answer = chatFallbackMessage
		}
		return c.JSON(chatResponse{Response: answer, Documents: docs})
	}
}

// AnalyzeDocument handles POST /documents/:id/analyze. A document whose
// content could not be resolved is reported inside the payload; the AI
// backend being down is the only gateway-level failure.
func AnalyzeDocument(contentSvc service.ContentService, chatter ai.Chatter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if chatter == nil {
			return writeError(c, fiber.StatusServiceUnavailable, "AI_DISABLED", "AI features are not configured")
		}

		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		rec, err := contentSvc.Resolve(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "document not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		if rec.Error != "" {
			return c.JSON(analysisResponse{Error: rec.Error, Document: rec})
		}

		analysis, err := chatter.Chat(c.UserContext(), prompt.Analysis(rec))
		if err != nil {
			return writeError(c, fiber.StatusBadGateway, "AI_UNAVAILABLE", "analysis backend unavailable")
		}
		return c.JSON(analysisResponse{Analysis: analysis, Document: rec})
	}
}
