package storage

import (
	"fmt"
	"testing"

	"github.com/edificio/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReceiptKey(t *testing.T) {
	residentID := uuid.New()
	month, err := valueobject.ParseMonthKey("08_2025")
	require.NoError(t, err)

	key := ReceiptKey("ana-lopez", residentID, month)
	assert.Equal(t, fmt.Sprintf("ana-lopez_%s/receipts/08_2025.pdf", residentID), key)
}

func TestVoucherKey(t *testing.T) {
	residentID := uuid.New()
	month, err := valueobject.ParseMonthKey("08_2025")
	require.NoError(t, err)

	t.Run("plain filename", func(t *testing.T) {
		key := VoucherKey(residentID, month, "transfer.pdf")
		assert.Equal(t, fmt.Sprintf("payment-vouchers/%s/08_2025/transfer.pdf", residentID), key)
	})

	t.Run("path components in the filename are stripped", func(t *testing.T) {
		key := VoucherKey(residentID, month, "../../etc/passwd")
		assert.Equal(t, fmt.Sprintf("payment-vouchers/%s/08_2025/passwd", residentID), key)
	})
}

func TestTaxDocumentKey(t *testing.T) {
	residentID := uuid.New()

	key := TaxDocumentKey(residentID, "2025_summary.pdf")
	assert.Equal(t, fmt.Sprintf("tax_documents/%s/2025_summary.pdf", residentID), key)

	prefix := TaxDocumentPrefix(residentID)
	assert.Equal(t, fmt.Sprintf("tax_documents/%s/", residentID), prefix)
}
