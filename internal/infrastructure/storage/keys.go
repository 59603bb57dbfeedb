package storage

import (
	"fmt"
	"path"

	"github.com/edificio/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// Object key layout within the document bucket. Receipt PDFs live under a
// per-resident folder named by slug and ID so the folder stays readable in
// the bucket browser but still unique.

// ReceiptKey returns the object key of a resident's receipt PDF for a month.
func ReceiptKey(residentSlug string, residentID uuid.UUID, month valueobject.MonthKey) string {
	folder := fmt.Sprintf("%s_%s", residentSlug, residentID)
	return path.Join(folder, "receipts", month.String()+".pdf")
}

// VoucherKey returns the object key of an uploaded payment voucher.
func VoucherKey(residentID uuid.UUID, month valueobject.MonthKey, filename string) string {
	return path.Join("payment-vouchers", residentID.String(), month.String(), path.Base(filename))
}

// TaxDocumentKey returns the object key of a resident's tax document.
func TaxDocumentKey(residentID uuid.UUID, filename string) string {
	return path.Join("tax_documents", residentID.String(), path.Base(filename))
}

// TaxDocumentPrefix returns the listing prefix for a resident's tax documents.
func TaxDocumentPrefix(residentID uuid.UUID) string {
	return path.Join("tax_documents", residentID.String()) + "/"
}
