package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"
	"unicode/utf8"

	"contentapi/internal/extract"
	"contentapi/internal/model"
	"contentapi/internal/repository"
	"contentapi/internal/storage"
)

const (
	// ErrNoFileAttached marks metadata rows without a backing file. A
	// missing file is a normal, representable state, not a failure.
	ErrNoFileAttached = "No file attached"
	// ErrCouldNotDownload marks a storage path that yielded no data.
	ErrCouldNotDownload = "Could not download file"

	contentPreviewLimit = 500
	briefPreviewLimit   = 200
	defaultSearchLimit  = 10
)

// ContentService is the entry point for content extraction: metadata
// lookup, blob retrieval, format dispatch and record assembly. Every
// degraded outcome is reported inside the returned record; the only
// errors that cross this boundary are ErrIDRequired and ErrNotFound.
type ContentService interface {
	// Resolve produces the normalized content record for a document.
	// ErrNotFound means no metadata row exists for the id.
	Resolve(ctx context.Context, id string) (*model.ContentRecord, error)

	// Search matches query against title or description,
	// case-insensitively, bounded to limit results. It never fails: a
	// store error degrades to an empty slice.
	Search(ctx context.Context, query string, limit int) []model.Document

	// Summarize resolves content and projects it into a prompt-sized
	// summary with a real content length (Contract A).
	Summarize(ctx context.Context, id string) (*model.SummaryRecord, error)

	// SummarizeBrief derives a summary from metadata alone, skipping the
	// blob store entirely; the content length is reported as 0 because
	// it cannot be known without a download (Contract B).
	SummarizeBrief(ctx context.Context, id string) (*model.SummaryRecord, error)
}

type contentService struct {
	store storage.Storage
	repo  repository.DocumentRepository
}

// NewContentService constructs a ContentService over the given stores.
func NewContentService(store storage.Storage, repo repository.DocumentRepository) ContentService {
	return &contentService{store: store, repo: repo}
}

func (s *contentService) Resolve(ctx context.Context, id string) (*model.ContentRecord, error) {
	if id == "" {
		return nil, ErrIDRequired
	}

	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		logEvent("resolve_metadata_failed", id, err)
		return processingErrorRecord(id, err), nil
	}

	rec := recordFromDocument(doc)

	if doc.StoragePath == "" {
		rec.Error = ErrNoFileAttached
		return rec, nil
	}

	data, err := s.store.Download(ctx, doc.StoragePath)
	if err != nil {
		logEvent("resolve_download_failed", id, err)
		return processingErrorRecord(id, err), nil
	}
	if len(data) == 0 {
		rec.Error = ErrCouldNotDownload
		return rec, nil
	}

	extracted := extract.Dispatch(doc.FileType, data)
	rec.ExtractedContent = &extracted
	return rec, nil
}

func (s *contentService) Search(ctx context.Context, query string, limit int) []model.Document {
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	docs, err := s.repo.Search(ctx, query, limit)
	if err != nil {
		logEvent("document_search_failed", query, err)
		return []model.Document{}
	}
	return docs
}

func (s *contentService) Summarize(ctx context.Context, id string) (*model.SummaryRecord, error) {
	rec, err := s.Resolve(ctx, id)
	if err != nil {
		return nil, err
	}

	sum := &model.SummaryRecord{
		ID:          rec.ID,
		Title:       rec.Title,
		Description: rec.Description,
		Department:  rec.Department,
		Priority:    rec.Priority,
		FileType:    rec.FileType,
		FileName:    rec.FileName,
		CreatedAt:   rec.CreatedAt,
	}
	if rec.ExtractedContent != nil && *rec.ExtractedContent != "" {
		sum.HasFileContent = true
	}

	source := rec.Content
	if source == "" && rec.ExtractedContent != nil {
		source = *rec.ExtractedContent
	}
	if source != "" {
		sum.ContentPreview = truncatePreview(source, contentPreviewLimit)
		sum.FileContentLength = utf8.RuneCountInString(source)
	}
	return sum, nil
}

func (s *contentService) SummarizeBrief(ctx context.Context, id string) (*model.SummaryRecord, error) {
	if id == "" {
		return nil, ErrIDRequired
	}

	doc, err := s.repo.FindMetaByID(ctx, id)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			// Store failure degrades to not-found per the summary
			// contract; the caller only needs a teaser, not a 500.
			logEvent("summarize_brief_failed", id, err)
		}
		return nil, ErrNotFound
	}

	return &model.SummaryRecord{
		ID:                doc.ID,
		Title:             doc.Title,
		Description:       doc.Description,
		Department:        doc.Department,
		Priority:          doc.Priority,
		FileType:          doc.FileType,
		FileName:          doc.FileName,
		CreatedAt:         doc.CreatedAt,
		ContentPreview:    truncatePreview(doc.Description, briefPreviewLimit),
		HasFileContent:    doc.StoragePath != "",
		FileContentLength: 0,
	}, nil
}

func recordFromDocument(doc *model.Document) *model.ContentRecord {
	return &model.ContentRecord{
		ID:          doc.ID,
		Title:       doc.Title,
		Description: doc.Description,
		Content:     doc.Content,
		FileType:    doc.FileType,
		Department:  doc.Department,
		Priority:    doc.Priority,
		CreatedAt:   doc.CreatedAt,
		FileName:    doc.FileName,
	}
}

func processingErrorRecord(id string, err error) *model.ContentRecord {
	return &model.ContentRecord{
		ID:    id,
		Error: fmt.Sprintf("Error processing document: %v", err),
	}
}

func truncatePreview(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit]) + "..."
}

func logEvent(event, subject string, err error) {
	entry := map[string]any{
		"ts":        time.Now().UTC().Format(time.RFC3339Nano),
		"level":     "error",
		"component": "service",
		"event":     event,
		"subject":   subject,
		"error":     err.Error(),
	}
	if b, marshalErr := json.Marshal(entry); marshalErr == nil {
		log.SetFlags(0)
		log.Println(string(b))
	}
}
