package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/edificio/backend/internal/domain/payment"
	"github.com/edificio/backend/internal/domain/shared"
	"github.com/edificio/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/edificio/backend/internal/domain/billing"
)

// ReceiptModelSQLite is a SQLite-compatible version of ReceiptModel for testing
type ReceiptModelSQLite struct {
	ID            string `gorm:"primaryKey"`
	ResidentID    string `gorm:"index;not null"`
	ApartmentID   string `gorm:"not null"`
	ResidentName  string
	ApartmentName string
	Month         string `gorm:"not null;index"`
	Lines         string `gorm:"not null"`
	Total         decimal.Decimal
	SubTotal      decimal.Decimal
	Paid          bool
	Version       int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (ReceiptModelSQLite) TableName() string {
	return "receipts"
}

// PaymentModelSQLite is a SQLite-compatible version of PaymentModel for testing
type PaymentModelSQLite struct {
	ID           string `gorm:"primaryKey"`
	ResidentID   string `gorm:"index;not null"`
	ReceiptMonth string `gorm:"not null"`
	AmountOwed   decimal.Decimal
	AmountPaid   decimal.Decimal
	Status       string `gorm:"not null"`
	ReviewNotes  string
	VoucherKey   string
	ReviewedAt   *time.Time
	Version      int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (PaymentModelSQLite) TableName() string {
	return "payments"
}

func setupBillingTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&ReceiptModelSQLite{}, &PaymentModelSQLite{})
	require.NoError(t, err)

	return db
}

func mustMonth(t *testing.T, key string) valueobject.MonthKey {
	t.Helper()
	m, err := valueobject.ParseMonthKey(key)
	require.NoError(t, err)
	return m
}

func sampleReceipt(t *testing.T, residentID uuid.UUID, key string, total float64) *billing.Receipt {
	t.Helper()
	r := &billing.Receipt{
		ResidentID:    residentID,
		ApartmentID:   uuid.New(),
		ResidentName:  "Ana Lopez",
		ApartmentName: "2B",
		Month:         mustMonth(t, key),
		Lines: billing.LineItems{
			{Kind: billing.LineRent, Label: "Rent", Amount: decimal.NewFromFloat(total)},
		},
		Total:    decimal.NewFromFloat(total),
		SubTotal: decimal.Zero,
	}
	r.BaseAggregateRoot = shared.NewBaseAggregateRoot()
	return r
}

func TestGormReceiptRepository(t *testing.T) {
	db := setupBillingTestDB(t)
	repo := NewGormReceiptRepository(db)
	ctx := context.Background()

	residentID := uuid.New()
	receipt := sampleReceipt(t, residentID, "08_2025", 500)
	require.NoError(t, repo.Save(ctx, receipt))

	t.Run("FindByID round trip", func(t *testing.T) {
		found, err := repo.FindByID(ctx, receipt.ID)
		require.NoError(t, err)
		assert.Equal(t, receipt.ID, found.ID)
		assert.Equal(t, "08_2025", found.Month.String())
		assert.True(t, found.Total.Equal(decimal.NewFromInt(500)))
		require.Len(t, found.Lines, 1)
		assert.Equal(t, billing.LineRent, found.Lines[0].Kind)
	})

	t.Run("FindByID not found", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("FindByResidentAndMonth", func(t *testing.T) {
		found, err := repo.FindByResidentAndMonth(ctx, residentID, mustMonth(t, "08_2025"))
		require.NoError(t, err)
		assert.Equal(t, receipt.ID, found.ID)

		_, err = repo.FindByResidentAndMonth(ctx, residentID, mustMonth(t, "09_2025"))
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("ExistsByResidentAndMonth", func(t *testing.T) {
		exists, err := repo.ExistsByResidentAndMonth(ctx, residentID, mustMonth(t, "08_2025"))
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsByResidentAndMonth(ctx, residentID, mustMonth(t, "01_2026"))
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("FindByMonth", func(t *testing.T) {
		other := sampleReceipt(t, uuid.New(), "08_2025", 300)
		require.NoError(t, repo.Save(ctx, other))

		receipts, err := repo.FindByMonth(ctx, mustMonth(t, "08_2025"))
		require.NoError(t, err)
		assert.Len(t, receipts, 2)
	})

	t.Run("Save updates paid flag", func(t *testing.T) {
		receipt.MarkPaid()
		require.NoError(t, repo.Save(ctx, receipt))

		found, err := repo.FindByID(ctx, receipt.ID)
		require.NoError(t, err)
		assert.True(t, found.Paid)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, receipt.ID))
		_, err := repo.FindByID(ctx, receipt.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)

		assert.ErrorIs(t, repo.Delete(ctx, receipt.ID), shared.ErrNotFound)
	})
}

func TestGormPaymentRepository(t *testing.T) {
	db := setupBillingTestDB(t)
	repo := NewGormPaymentRepository(db)
	ctx := context.Background()

	residentID := uuid.New()
	p, err := payment.NewVoucherPayment(residentID, mustMonth(t, "08_2025"),
		decimal.NewFromInt(500), decimal.NewFromInt(500), "payment-vouchers/x/08_2025/v.pdf")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, p))

	t.Run("FindByID round trip", func(t *testing.T) {
		found, err := repo.FindByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, payment.StatusPending, found.Status)
		assert.Equal(t, "08_2025", found.ReceiptMonth.String())
		assert.True(t, found.AmountPaid.Equal(decimal.NewFromInt(500)))
	})

	t.Run("FindAll filters by status", func(t *testing.T) {
		approved := payment.StatusApproved
		payments, err := repo.FindAll(ctx, payment.Filter{Status: &approved})
		require.NoError(t, err)
		assert.Empty(t, payments)

		pending := payment.StatusPending
		payments, err = repo.FindAll(ctx, payment.Filter{Status: &pending})
		require.NoError(t, err)
		assert.Len(t, payments, 1)
	})

	t.Run("FindByResidentAndMonth", func(t *testing.T) {
		payments, err := repo.FindByResidentAndMonth(ctx, residentID, mustMonth(t, "08_2025"))
		require.NoError(t, err)
		assert.Len(t, payments, 1)

		payments, err = repo.FindByResidentAndMonth(ctx, residentID, mustMonth(t, "09_2025"))
		require.NoError(t, err)
		assert.Empty(t, payments)
	})

	t.Run("Save persists review transition", func(t *testing.T) {
		require.NoError(t, p.Approve("payment received"))
		require.NoError(t, repo.Save(ctx, p))

		found, err := repo.FindByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, payment.StatusApproved, found.Status)
		assert.Equal(t, "payment received", found.ReviewNotes)
		require.NotNil(t, found.ReviewedAt)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, p.ID))
		assert.ErrorIs(t, repo.Delete(ctx, p.ID), shared.ErrNotFound)
	})
}
