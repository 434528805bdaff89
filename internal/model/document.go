package model

import "time"

// Document is a metadata row describing a stored document. The row is
// owned by the metadata store; the content pipeline only reads it.
// Optional text fields use "" for absent values, matching the nullable
// columns in the documents table.
type Document struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	FileType    string    `json:"file_type"`
	StoragePath string    `json:"storage_path"`
	Department  string    `json:"department"`
	Priority    string    `json:"priority"`
	FileName    string    `json:"file_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// ContentRecord is the normalized output of the content resolution
// pipeline: a metadata snapshot plus whatever text could be extracted
// from the backing file.
//
// ExtractedContent is nil when there was no file to extract from. A
// non-empty Error marks a degraded result (missing file, failed
// download, processing failure); metadata fields stay populated on a
// best-effort basis and the record remains a normal value, not a
// failure of the call.
type ContentRecord struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Content          string    `json:"content"`
	FileType         string    `json:"file_type"`
	ExtractedContent *string   `json:"extracted_content"`
	Department       string    `json:"department"`
	Priority         string    `json:"priority"`
	CreatedAt        time.Time `json:"created_at"`
	FileName         string    `json:"file_name"`
	Error            string    `json:"error,omitempty"`
}

// SummaryRecord is a compact projection of a document sized for
// embedding in an LLM prompt. Derived on demand, never persisted.
type SummaryRecord struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	Department        string    `json:"department"`
	Priority          string    `json:"priority"`
	FileType          string    `json:"file_type"`
	FileName          string    `json:"file_name"`
	CreatedAt         time.Time `json:"created_at"`
	ContentPreview    string    `json:"content_preview"`
	HasFileContent    bool      `json:"has_file_content"`
	FileContentLength int       `json:"file_content_length"`
}
