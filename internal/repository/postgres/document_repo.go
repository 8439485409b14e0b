package postgres

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type documentRepo struct {
	db *pgxpool.Pool
}

func NewDocumentRepository(db *pgxpool.Pool) domain.DocumentRepository {
	return &documentRepo{db: db}
}

func (r *documentRepo) Create(ctx context.Context, doc *domain.Document) error {
	query := `
		INSERT INTO documents (user_id, kind, original_name, stored_path, mime_type, size_bytes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at`
	return r.db.QueryRow(ctx, query,
		doc.UserID, doc.Kind, doc.OriginalName, doc.StoredPath, doc.MimeType, doc.SizeBytes,
	).Scan(&doc.ID, &doc.CreatedAt)
}

func (r *documentRepo) GetByID(ctx context.Context, id int64) (*domain.Document, error) {
	query := `SELECT id, user_id, kind, original_name, stored_path, mime_type, size_bytes, created_at
	          FROM documents WHERE id = $1`
	var doc domain.Document
	err := r.db.QueryRow(ctx, query, id).Scan(
		&doc.ID, &doc.UserID, &doc.Kind, &doc.OriginalName,
		&doc.StoredPath, &doc.MimeType, &doc.SizeBytes, &doc.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

func (r *documentRepo) GetByUserID(ctx context.Context, userID string) ([]domain.Document, error) {
	query := `SELECT id, user_id, kind, original_name, stored_path, mime_type, size_bytes, created_at
	          FROM documents WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []domain.Document
	for rows.Next() {
		var doc domain.Document
		if err := rows.Scan(&doc.ID, &doc.UserID, &doc.Kind, &doc.OriginalName,
			&doc.StoredPath, &doc.MimeType, &doc.SizeBytes, &doc.CreatedAt); err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

func (r *documentRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
