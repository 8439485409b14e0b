package domain

import (
	"context"
	"time"
)

// Document categories accepted at upload
const (
	DocumentKindCV          = "cv"
	DocumentKindCertificate = "certificate"
	DocumentKindPhoto       = "photo"
	DocumentKindOther       = "other"
)

type Document struct {
	ID           int64     `json:"id"`
	UserID       string    `json:"user_id"`
	Kind         string    `json:"kind"`
	OriginalName string    `json:"original_name"`
	StoredPath   string    `json:"-"` // local disk path, never exposed
	MimeType     string    `json:"mime_type"`
	SizeBytes    int64     `json:"size_bytes"`
	CreatedAt    time.Time `json:"created_at"`
}

type DocumentRepository interface {
	Create(ctx context.Context, doc *Document) error
	GetByID(ctx context.Context, id int64) (*Document, error)
	GetByUserID(ctx context.Context, userID string) ([]Document, error)
	Delete(ctx context.Context, id int64) error
}

type DocumentUsecase interface {
	Upload(ctx context.Context, userID, kind, filename string, data []byte) (*Document, error)
	ListMine(ctx context.Context, userID string) ([]Document, error)
	// GetForDownload returns the document only if owned by userID (admins bypass in usecase)
	GetForDownload(ctx context.Context, userID string, id int64) (*Document, error)
	Delete(ctx context.Context, userID string, id int64) error
}
