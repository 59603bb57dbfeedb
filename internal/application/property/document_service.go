package property

import (
	"context"
	"path"
	"strings"
	"time"

	"github.com/edificio/backend/internal/domain/property"
	"github.com/edificio/backend/internal/domain/shared"
	"github.com/edificio/backend/internal/infrastructure/storage"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ObjectStorageService is the object-store surface the document service needs
type ObjectStorageService interface {
	Upload(ctx context.Context, storageKey string, data []byte, contentType string) error
	GenerateDownloadURL(ctx context.Context, storageKey string, expiresIn time.Duration) (string, time.Time, error)
	DeleteObject(ctx context.Context, storageKey string) error
	ListKeys(ctx context.Context, prefix string) ([]string, error)
}

const documentURLExpiry = 15 * time.Minute

// DocumentService manages per-resident tax documents held in object storage.
// There is no database record for these, the bucket listing is the source of
// truth.
type DocumentService struct {
	residentRepo property.ResidentRepository
	objectStore  ObjectStorageService
	logger       *zap.Logger
}

// NewDocumentService creates a new DocumentService
func NewDocumentService(residentRepo property.ResidentRepository, objectStore ObjectStorageService, logger *zap.Logger) *DocumentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DocumentService{
		residentRepo: residentRepo,
		objectStore:  objectStore,
		logger:       logger,
	}
}

// Upload stores a tax document for a resident
func (s *DocumentService) Upload(ctx context.Context, req UploadTaxDocumentRequest) (*TaxDocumentResponse, error) {
	if len(req.Data) == 0 {
		return nil, shared.NewDomainError("INVALID_DOCUMENT", "Document content cannot be empty")
	}
	filename := path.Base(strings.TrimSpace(req.Filename))
	if filename == "" || filename == "." || filename == "/" {
		return nil, shared.NewDomainError("INVALID_DOCUMENT", "A document filename is required")
	}

	if _, err := s.residentRepo.FindByID(ctx, req.ResidentID); err != nil {
		return nil, err
	}

	key := storage.TaxDocumentKey(req.ResidentID, filename)
	if err := s.objectStore.Upload(ctx, key, req.Data, req.ContentType); err != nil {
		return nil, err
	}

	s.logger.Info("Tax document uploaded",
		zap.String("resident_id", req.ResidentID.String()),
		zap.String("filename", filename),
		zap.Int("size", len(req.Data)),
	)

	return &TaxDocumentResponse{ResidentID: req.ResidentID, Filename: filename}, nil
}

// List returns the filenames of a resident's stored tax documents
func (s *DocumentService) List(ctx context.Context, residentID uuid.UUID) ([]TaxDocumentResponse, error) {
	if _, err := s.residentRepo.FindByID(ctx, residentID); err != nil {
		return nil, err
	}

	keys, err := s.objectStore.ListKeys(ctx, storage.TaxDocumentPrefix(residentID))
	if err != nil {
		return nil, err
	}

	docs := make([]TaxDocumentResponse, 0, len(keys))
	for _, key := range keys {
		docs = append(docs, TaxDocumentResponse{
			ResidentID: residentID,
			Filename:   path.Base(key),
		})
	}
	return docs, nil
}

// DownloadURL returns a short-lived link to one stored document
func (s *DocumentService) DownloadURL(ctx context.Context, residentID uuid.UUID, filename string) (*TaxDocumentURLResponse, error) {
	key := storage.TaxDocumentKey(residentID, filename)
	url, expiresAt, err := s.objectStore.GenerateDownloadURL(ctx, key, documentURLExpiry)
	if err != nil {
		return nil, err
	}
	return &TaxDocumentURLResponse{URL: url, ExpiresAt: expiresAt}, nil
}

// Delete removes one stored document
func (s *DocumentService) Delete(ctx context.Context, residentID uuid.UUID, filename string) error {
	return s.objectStore.DeleteObject(ctx, storage.TaxDocumentKey(residentID, filename))
}
