package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"contentapi/internal/model"
	repoMocks "contentapi/internal/repository/mocks"
	storeMocks "contentapi/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentService_Resolve(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	baseDoc := func() *model.Document {
		return &model.Document{
			ID:          "d1",
			Title:       "Policy",
			Description: "Safety policy",
			FileType:    "text/plain",
			StoragePath: "p1",
			Department:  "Operations",
			Priority:    "High",
			FileName:    "policy.txt",
			CreatedAt:   created,
		}
	}

	t.Run("missing metadata yields not found", func(t *testing.T) {
		mRepo := new(repoMocks.MockDocumentRepository)
		mRepo.On("FindByID", ctx, "missing-1").Return(nil, sql.ErrNoRows)
		svc := NewContentService(nil, mRepo)

		rec, err := svc.Resolve(ctx, "missing-1")

		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, rec)
		mRepo.AssertExpectations(t)
	})

	t.Run("empty id is rejected", func(t *testing.T) {
		svc := NewContentService(nil, new(repoMocks.MockDocumentRepository))

		_, err := svc.Resolve(ctx, "")

		assert.ErrorIs(t, err, ErrIDRequired)
	})

	t.Run("no storage path degrades with metadata preserved", func(t *testing.T) {
		doc := baseDoc()
		doc.StoragePath = ""
		mRepo := new(repoMocks.MockDocumentRepository)
		mRepo.On("FindByID", ctx, "d1").Return(doc, nil)
		svc := NewContentService(nil, mRepo)

		rec, err := svc.Resolve(ctx, "d1")

		require.NoError(t, err)
		assert.Equal(t, ErrNoFileAttached, rec.Error)
		assert.Nil(t, rec.ExtractedContent)
		assert.Equal(t, "Policy", rec.Title)
		assert.Equal(t, "Operations", rec.Department)
		assert.Equal(t, created, rec.CreatedAt)
	})

	t.Run("empty download degrades with metadata preserved", func(t *testing.T) {
		mRepo := new(repoMocks.MockDocumentRepository)
		mRepo.On("FindByID", ctx, "d1").Return(baseDoc(), nil)
		mStore := new(storeMocks.MockStorage)
		mStore.On("Download", ctx, "p1").Return(nil, nil)
		svc := NewContentService(mStore, mRepo)

		rec, err := svc.Resolve(ctx, "d1")

		require.NoError(t, err)
		assert.Equal(t, ErrCouldNotDownload, rec.Error)
		assert.Nil(t, rec.ExtractedContent)
		assert.Equal(t, "Policy", rec.Title)
	})

	t.Run("text file extracts end to end", func(t *testing.T) {
		mRepo := new(repoMocks.MockDocumentRepository)
		mRepo.On("FindByID", ctx, "d1").Return(baseDoc(), nil)
		mStore := new(storeMocks.MockStorage)
		mStore.On("Download", ctx, "p1").Return([]byte("hello world"), nil)
		svc := NewContentService(mStore, mRepo)

		rec, err := svc.Resolve(ctx, "d1")

		require.NoError(t, err)
		assert.Empty(t, rec.Error)
		require.NotNil(t, rec.ExtractedContent)
		assert.Equal(t, "hello world", *rec.ExtractedContent)
		mStore.AssertExpectations(t)
	})

	t.Run("unsupported type lands in extracted content not error", func(t *testing.T) {
		doc := baseDoc()
		doc.FileType = "image/png"
		mRepo := new(repoMocks.MockDocumentRepository)
		mRepo.On("FindByID", ctx, "d1").Return(doc, nil)
		mStore := new(storeMocks.MockStorage)
		mStore.On("Download", ctx, "p1").Return([]byte{1, 2, 3}, nil)
		svc := NewContentService(mStore, mRepo)

		rec, err := svc.Resolve(ctx, "d1")

		require.NoError(t, err)
		assert.Empty(t, rec.Error)
		require.NotNil(t, rec.ExtractedContent)
		assert.Contains(t, *rec.ExtractedContent, "image/png")
	})

	t.Run("metadata store failure becomes processing-error record", func(t *testing.T) {
		mRepo := new(repoMocks.MockDocumentRepository)
		mRepo.On("FindByID", ctx, "d1").Return(nil, errors.New("connection refused"))
		svc := NewContentService(nil, mRepo)

		rec, err := svc.Resolve(ctx, "d1")

		require.NoError(t, err)
		assert.Equal(t, "d1", rec.ID)
		assert.Contains(t, rec.Error, "Error processing document:")
		assert.Contains(t, rec.Error, "connection refused")
	})

	t.Run("download failure becomes processing-error record", func(t *testing.T) {
		mRepo := new(repoMocks.MockDocumentRepository)
		mRepo.On("FindByID", ctx, "d1").Return(baseDoc(), nil)
		mStore := new(storeMocks.MockStorage)
		mStore.On("Download", ctx, "p1").Return(nil, errors.New("storage down"))
		svc := NewContentService(mStore, mRepo)

		rec, err := svc.Resolve(ctx, "d1")

		require.NoError(t, err)
		assert.Contains(t, rec.Error, "Error processing document:")
	})
}

func TestContentService_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("passes through repository results", func(t *testing.T) {
		docs := []model.Document{
			{ID: "d1", Title: "Safety Circular"},
			{ID: "d2", Description: "fire safety notes"},
		}
		mRepo := new(repoMocks.MockDocumentRepository)
		mRepo.On("Search", ctx, "safety", 10).Return(docs, nil)
		svc := NewContentService(nil, mRepo)

		got := svc.Search(ctx, "safety", 10)

		assert.Equal(t, docs, got)
		mRepo.AssertExpectations(t)
	})

	t.Run("zero limit falls back to default", func(t *testing.T) {
		mRepo := new(repoMocks.MockDocumentRepository)
		mRepo.On("Search", ctx, "q", defaultSearchLimit).Return([]model.Document{}, nil)
		svc := NewContentService(nil, mRepo)

		got := svc.Search(ctx, "q", 0)

		assert.Empty(t, got)
		mRepo.AssertExpectations(t)
	})

	t.Run("store failure degrades to empty slice", func(t *testing.T) {
		mRepo := new(repoMocks.MockDocumentRepository)
		mRepo.On("Search", ctx, "q", 5).Return(nil, errors.New("db down"))
		svc := NewContentService(nil, mRepo)

		got := svc.Search(ctx, "q", 5)

		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestContentService_Summarize(t *testing.T) {
	ctx := context.Background()

	t.Run("long extracted content truncates to 500 plus ellipsis", func(t *testing.T) {
		long := strings.Repeat("x", 1234)
		doc := &model.Document{ID: "d1", Title: "T", FileType: "text/plain", StoragePath: "p1"}
		mRepo := new(repoMocks.MockDocumentRepository)
		mRepo.On("FindByID", ctx, "d1").Return(doc, nil)
		mStore := new(storeMocks.MockStorage)
		mStore.On("Download", ctx, "p1").Return([]byte(long), nil)
		svc := NewContentService(mStore, mRepo)

		sum, err := svc.Summarize(ctx, "d1")

		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(sum.ContentPreview, "..."))
		assert.Len(t, []rune(strings.TrimSuffix(sum.ContentPreview, "...")), 500)
		assert.Equal(t, 1234, sum.FileContentLength)
		assert.True(t, sum.HasFileContent)
	})

	t.Run("inline content wins over extracted content", func(t *testing.T) {
		doc := &model.Document{ID: "d1", Title: "T", Content: "inline body", FileType: "text/plain", StoragePath: "p1"}
		mRepo := new(repoMocks.MockDocumentRepository)
		mRepo.On("FindByID", ctx, "d1").Return(doc, nil)
		mStore := new(storeMocks.MockStorage)
		mStore.On("Download", ctx, "p1").Return([]byte("file body"), nil)
		svc := NewContentService(mStore, mRepo)

		sum, err := svc.Summarize(ctx, "d1")

		require.NoError(t, err)
		assert.Equal(t, "inline body", sum.ContentPreview)
		assert.Equal(t, len("inline body"), sum.FileContentLength)
		assert.True(t, sum.HasFileContent)
	})

	t.Run("short content keeps exact preview without ellipsis", func(t *testing.T) {
		doc := &model.Document{ID: "d1", Title: "T"}
		doc.Content = "short"
		mRepo := new(repoMocks.MockDocumentRepository)
		mRepo.On("FindByID", ctx, "d1").Return(doc, nil)
		svc := NewContentService(nil, mRepo)

		sum, err := svc.Summarize(ctx, "d1")

		require.NoError(t, err)
		assert.Equal(t, "short", sum.ContentPreview)
		assert.Equal(t, 5, sum.FileContentLength)
		assert.False(t, sum.HasFileContent)
	})

	t.Run("not found propagates", func(t *testing.T) {
		mRepo := new(repoMocks.MockDocumentRepository)
		mRepo.On("FindByID", ctx, "nope").Return(nil, sql.ErrNoRows)
		svc := NewContentService(nil, mRepo)

		_, err := svc.Summarize(ctx, "nope")

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestContentService_SummarizeBrief(t *testing.T) {
	ctx := context.Background()

	t.Run("derives preview from description without touching storage", func(t *testing.T) {
		longDesc := strings.Repeat("d", 300)
		doc := &model.Document{
			ID:          "d1",
			Title:       "T",
			Description: longDesc,
			StoragePath: "p1",
		}
		mRepo := new(repoMocks.MockDocumentRepository)
		mRepo.On("FindMetaByID", ctx, "d1").Return(doc, nil)
		// Storage mock deliberately not configured: any call would fail the test.
		mStore := new(storeMocks.MockStorage)
		svc := NewContentService(mStore, mRepo)

		sum, err := svc.SummarizeBrief(ctx, "d1")

		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(sum.ContentPreview, "..."))
		assert.Len(t, []rune(strings.TrimSuffix(sum.ContentPreview, "...")), 200)
		assert.True(t, sum.HasFileContent)
		assert.Equal(t, 0, sum.FileContentLength)
		mStore.AssertExpectations(t)
	})

	t.Run("no storage path means no file content", func(t *testing.T) {
		doc := &model.Document{ID: "d1", Title: "T", Description: "short"}
		mRepo := new(repoMocks.MockDocumentRepository)
		mRepo.On("FindMetaByID", ctx, "d1").Return(doc, nil)
		svc := NewContentService(nil, mRepo)

		sum, err := svc.SummarizeBrief(ctx, "d1")

		require.NoError(t, err)
		assert.Equal(t, "short", sum.ContentPreview)
		assert.False(t, sum.HasFileContent)
	})

	t.Run("store failure degrades to not found", func(t *testing.T) {
		mRepo := new(repoMocks.MockDocumentRepository)
		mRepo.On("FindMetaByID", ctx, "d1").Return(nil, errors.New("db down"))
		svc := NewContentService(nil, mRepo)

		sum, err := svc.SummarizeBrief(ctx, "d1")

		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, sum)
	})
}

func TestTruncatePreview(t *testing.T) {
	assert.Equal(t, "abc", truncatePreview("abc", 5))
	assert.Equal(t, "ab...", truncatePreview("abcdef", 2))
	// Rune-aware: multibyte characters are not split.
	assert.Equal(t, "éé...", truncatePreview("ééééé", 2))
}
