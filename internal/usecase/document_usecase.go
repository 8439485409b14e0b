package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/security"
	"go-jobboard-backend/pkg/storage"
)

type documentUsecase struct {
	docRepo      domain.DocumentRepository
	store        *storage.LocalStore
	maxSizeBytes int64
}

func NewDocumentUsecase(docRepo domain.DocumentRepository, store *storage.LocalStore, maxSizeMB int) domain.DocumentUsecase {
	return &documentUsecase{
		docRepo:      docRepo,
		store:        store,
		maxSizeBytes: int64(maxSizeMB) * 1024 * 1024,
	}
}

func validDocumentKind(kind string) bool {
	switch kind {
	case domain.DocumentKindCV, domain.DocumentKindCertificate, domain.DocumentKindPhoto, domain.DocumentKindOther:
		return true
	}
	return false
}

func (u *documentUsecase) Upload(ctx context.Context, userID, kind, filename string, data []byte) (*domain.Document, error) {
	if !validDocumentKind(kind) {
		return nil, apperror.BadRequest("Invalid document kind")
	}
	if len(data) == 0 {
		return nil, apperror.BadRequest("Uploaded file is empty")
	}
	if int64(len(data)) > u.maxSizeBytes {
		return nil, apperror.BadRequest(fmt.Sprintf("File exceeds the %d MB upload limit", u.maxSizeBytes/(1024*1024)))
	}

	detectedMIME := http.DetectContentType(data)
	result := security.ValidateFile(filename, data, detectedMIME)
	if !result.Valid {
		return nil, apperror.BadRequest(result.Error)
	}

	storedPath, err := u.store.Save(userID, filename, data)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	doc := &domain.Document{
		UserID:       userID,
		Kind:         kind,
		OriginalName: filename,
		StoredPath:   storedPath,
		MimeType:     result.DetectedMIME,
		SizeBytes:    int64(len(data)),
	}
	if err := u.docRepo.Create(ctx, doc); err != nil {
		// Orphan cleanup: the row failed, remove the file.
		if delErr := u.store.Delete(storedPath); delErr != nil {
			logger.Log.Error("failed to remove orphaned upload", "error", delErr, "path", storedPath)
		}
		return nil, err
	}
	return doc, nil
}

func (u *documentUsecase) ListMine(ctx context.Context, userID string) ([]domain.Document, error) {
	return u.docRepo.GetByUserID(ctx, userID)
}

func (u *documentUsecase) GetForDownload(ctx context.Context, userID string, id int64) (*domain.Document, error) {
	doc, err := u.docRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Document not found")
		}
		return nil, err
	}
	// A foreign document reads as 404, not 403, so ids cannot be probed.
	if doc.UserID != userID {
		return nil, apperror.NotFound("Document not found")
	}
	return doc, nil
}

func (u *documentUsecase) Delete(ctx context.Context, userID string, id int64) error {
	doc, err := u.docRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Document not found")
		}
		return err
	}
	if doc.UserID != userID {
		return apperror.NotFound("Document not found")
	}

	if err := u.docRepo.Delete(ctx, id); err != nil {
		return err
	}
	if err := u.store.Delete(doc.StoredPath); err != nil {
		logger.Log.Error("failed to remove stored file", "error", err, "path", doc.StoredPath)
	}
	return nil
}
