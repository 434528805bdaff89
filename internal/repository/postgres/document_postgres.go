package postgres

import (
	"context"
	"database/sql"

	"contentapi/internal/model"
	"contentapi/internal/repository"
)

// DocumentPostgres is a PostgreSQL implementation of repository.DocumentRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type DocumentPostgres struct {
	db *sql.DB
}

// NewDocumentPostgres creates a new DocumentPostgres repository.
func NewDocumentPostgres(db *sql.DB) *DocumentPostgres {
	return &DocumentPostgres{db: db}
}

var _ repository.DocumentRepository = (*DocumentPostgres)(nil)

const documentColumns = `id, title, description, content, file_type, storage_path, department, priority, file_name, created_at`

func scanDocument(row interface{ Scan(...any) error }) (*model.Document, error) {
	var (
		d           model.Document
		description sql.NullString
		content     sql.NullString
		fileType    sql.NullString
		storagePath sql.NullString
		department  sql.NullString
		priority    sql.NullString
		fileName    sql.NullString
	)
	if err := row.Scan(
		&d.ID,
		&d.Title,
		&description,
		&content,
		&fileType,
		&storagePath,
		&department,
		&priority,
		&fileName,
		&d.CreatedAt,
	); err != nil {
		return nil, err
	}
	d.Description = description.String
	d.Content = content.String
	d.FileType = fileType.String
	d.StoragePath = storagePath.String
	d.Department = department.String
	d.Priority = priority.String
	d.FileName = fileName.String
	return &d, nil
}

// Create inserts a new document row and returns the stored record.
func (r *DocumentPostgres) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	const q = `
		INSERT INTO documents (id, title, description, content, file_type, storage_path, department, priority, file_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + documentColumns
	row := r.db.QueryRowContext(ctx, q,
		doc.ID,
		doc.Title,
		doc.Description,
		doc.Content,
		doc.FileType,
		doc.StoragePath,
		doc.Department,
		doc.Priority,
		doc.FileName,
		doc.CreatedAt,
	)
	return scanDocument(row)
}

// FindByID fetches a full document row by its ID.
func (r *DocumentPostgres) FindByID(ctx context.Context, id string) (*model.Document, error) {
	const q = `
		SELECT ` + documentColumns + `
		FROM documents
		WHERE id = $1
	`
	return scanDocument(r.db.QueryRowContext(ctx, q, id))
}

// FindMetaByID fetches a document row without the content column. The
// returned Document carries an empty Content.
func (r *DocumentPostgres) FindMetaByID(ctx context.Context, id string) (*model.Document, error) {
	const q = `
		SELECT id, title, description, file_type, storage_path, department, priority, file_name, created_at
		FROM documents
		WHERE id = $1
	`
	var (
		d           model.Document
		description sql.NullString
		fileType    sql.NullString
		storagePath sql.NullString
		department  sql.NullString
		priority    sql.NullString
		fileName    sql.NullString
	)
	if err := r.db.QueryRowContext(ctx, q, id).Scan(
		&d.ID,
		&d.Title,
		&description,
		&fileType,
		&storagePath,
		&department,
		&priority,
		&fileName,
		&d.CreatedAt,
	); err != nil {
		return nil, err
	}
	d.Description = description.String
	d.FileType = fileType.String
	d.StoragePath = storagePath.String
	d.Department = department.String
	d.Priority = priority.String
	d.FileName = fileName.String
	return &d, nil
}

// List returns documents using LIMIT/OFFSET pagination and a total count.
func (r *DocumentPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Document], error) {
	const qCount = `SELECT COUNT(*) FROM documents`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT ` + documentColumns + `
		FROM documents
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Document, 0)
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Document]{
		Items: items,
		Total: total,
	}, nil
}

// Search matches title OR description case-insensitively in a single
// combined query, so each id appears at most once without client-side
// dedupe.
func (r *DocumentPostgres) Search(ctx context.Context, query string, limit int) ([]model.Document, error) {
	const q = `
		SELECT ` + documentColumns + `
		FROM documents
		WHERE title ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%'
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, q, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Document, 0)
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Delete removes a document by ID. It does not return an error if the row does not exist.
func (r *DocumentPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM documents WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}
