package repository

import (
	"context"

	"contentapi/internal/model"
)

// DocumentRepository defines data access for document metadata rows using
// SQL queries only. No business logic here — strictly persistence
// operations.
type DocumentRepository interface {
	// Create inserts a new document row and returns the stored record
	// (may include values set by database defaults).
	Create(ctx context.Context, doc *model.Document) (*model.Document, error)

	// FindByID returns the full document row by its ID.
	FindByID(ctx context.Context, id string) (*model.Document, error)

	// FindMetaByID returns the document row without its content column.
	// Used by the brief summary path, which must stay cheap: no inline
	// content, no blob fetch.
	FindMetaByID(ctx context.Context, id string) (*model.Document, error)

	// List returns a paginated list of documents and the total row count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Document], error)

	// Search returns up to limit documents whose title or description
	// contains the query, matched case-insensitively, in store order.
	Search(ctx context.Context, query string, limit int) ([]model.Document, error)

	// Delete removes a document by ID. It returns nil if the row was
	// deleted or did not exist.
	Delete(ctx context.Context, id string) error
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}
