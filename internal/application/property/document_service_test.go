package property

import (
	"context"
	"fmt"
	"testing"

	"github.com/edificio/backend/internal/domain/shared"
	"github.com/edificio/backend/internal/infrastructure/storage"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDocumentService_UploadAndList(t *testing.T) {
	residentRepo := new(MockResidentRepository)
	store := storage.NewMemoryObjectStorage()
	service := NewDocumentService(residentRepo, store, nil)

	resident := createTestResident(t)
	residentRepo.On("FindByID", mock.Anything, resident.ID).Return(resident, nil)

	doc, err := service.Upload(context.Background(), UploadTaxDocumentRequest{
		ResidentID:  resident.ID,
		Filename:    "2025_summary.pdf",
		ContentType: "application/pdf",
		Data:        []byte("%PDF-1.4 fake"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2025_summary.pdf", doc.Filename)

	stored, err := store.Download(context.Background(), storage.TaxDocumentKey(resident.ID, "2025_summary.pdf"))
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 fake"), stored)

	docs, err := service.List(context.Background(), resident.ID)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "2025_summary.pdf", docs[0].Filename)
}

func TestDocumentService_Upload_EmptyContent(t *testing.T) {
	residentRepo := new(MockResidentRepository)
	service := NewDocumentService(residentRepo, storage.NewMemoryObjectStorage(), nil)

	_, err := service.Upload(context.Background(), UploadTaxDocumentRequest{
		ResidentID: uuid.New(),
		Filename:   "empty.pdf",
	})
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_DOCUMENT", domainErr.Code)
	residentRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestDocumentService_Upload_UnknownResident(t *testing.T) {
	residentRepo := new(MockResidentRepository)
	service := NewDocumentService(residentRepo, storage.NewMemoryObjectStorage(), nil)

	ghost := uuid.New()
	residentRepo.On("FindByID", mock.Anything, ghost).Return(nil, shared.ErrNotFound)

	_, err := service.Upload(context.Background(), UploadTaxDocumentRequest{
		ResidentID: ghost,
		Filename:   "2025_summary.pdf",
		Data:       []byte("content"),
	})
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestDocumentService_DownloadURLAndDelete(t *testing.T) {
	residentRepo := new(MockResidentRepository)
	store := storage.NewMemoryObjectStorage()
	service := NewDocumentService(residentRepo, store, nil)

	resident := createTestResident(t)
	residentRepo.On("FindByID", mock.Anything, resident.ID).Return(resident, nil)

	_, err := service.Upload(context.Background(), UploadTaxDocumentRequest{
		ResidentID: resident.ID,
		Filename:   "contract.pdf",
		Data:       []byte("content"),
	})
	require.NoError(t, err)

	url, err := service.DownloadURL(context.Background(), resident.ID, "contract.pdf")
	require.NoError(t, err)
	assert.Contains(t, url.URL, fmt.Sprintf("tax_documents/%s/contract.pdf", resident.ID))

	require.NoError(t, service.Delete(context.Background(), resident.ID, "contract.pdf"))

	docs, err := service.List(context.Background(), resident.ID)
	require.NoError(t, err)
	assert.Empty(t, docs)
}
