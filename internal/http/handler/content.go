package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"contentapi/internal/model"
	"contentapi/internal/service"
)

// searchRequest is the body of POST /documents/search.
type searchRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit"`
}

// searchResponse wraps search hits with a count so clients don't need
// to distinguish "no matches" from "search degraded".
type searchResponse struct {
	Results []model.Document `json:"results"`
	Count   int              `json:"count"`
}

// GetDocumentContent handles GET /documents/:id/content. Degraded
// outcomes (no file, download failure, extraction failure) still return
// 200 with the error reported inside the record; only a missing
// metadata row is a 404.
func GetDocumentContent(contentSvc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
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
		return c.JSON(rec)
	}
}

// SearchDocuments handles POST /documents/search.
func SearchDocuments(contentSvc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req searchRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if req.Query == "" {
			return writeError(c, fiber.StatusBadRequest, "QUERY_REQUIRED", "query is required")
		}

		docs := contentSvc.Search(c.UserContext(), req.Query, req.Limit)
		return c.JSON(searchResponse{Results: docs, Count: len(docs)})
	}
}

// SummarizeDocument handles GET /documents/:id/summary. The summary is
// built from resolved content, so the reported length is real.
func SummarizeDocument(contentSvc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		sum, err := contentSvc.Summarize(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "document not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(sum)
	}
}

// SummarizeDocumentBrief handles GET /documents/:id/summary/brief. It
// never touches the blob store, so it stays fast for listings.
func SummarizeDocumentBrief(contentSvc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		sum, err := contentSvc.SummarizeBrief(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "document not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(sum)
	}
}
