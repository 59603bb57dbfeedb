package payment

import (
	"testing"

	"github.com/edificio/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMonth(t *testing.T) valueobject.MonthKey {
	t.Helper()
	k, err := valueobject.ParseMonthKey("08_2025")
	require.NoError(t, err)
	return k
}

func createVoucherPayment(t *testing.T) *Payment {
	t.Helper()
	p, err := NewVoucherPayment(uuid.New(), testMonth(t),
		decimal.NewFromInt(800), decimal.NewFromInt(800), "payment-vouchers/x/08_2025/v.jpg")
	require.NoError(t, err)
	return p
}

func TestStatus_IsValid(t *testing.T) {
	tests := []struct {
		status  Status
		isValid bool
	}{
		{StatusPending, true},
		{StatusApproved, true},
		{StatusDeclined, true},
		{Status("INVALID"), false},
		{Status(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.isValid, tt.status.IsValid())
		})
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.True(t, StatusApproved.IsTerminal())
	assert.True(t, StatusDeclined.IsTerminal())
}

func TestNewVoucherPayment(t *testing.T) {
	p := createVoucherPayment(t)

	assert.Equal(t, StatusPending, p.Status)
	assert.Equal(t, "payment-vouchers/x/08_2025/v.jpg", p.VoucherKey)
	assert.Nil(t, p.ReviewedAt)
	assert.True(t, p.IsPending())
	assert.False(t, p.IsApproved())
}

func TestNewVoucherPayment_Validation(t *testing.T) {
	month := testMonth(t)

	_, err := NewVoucherPayment(uuid.Nil, month, decimal.NewFromInt(800), decimal.NewFromInt(800), "")
	assert.Error(t, err)

	_, err = NewVoucherPayment(uuid.New(), valueobject.MonthKey{}, decimal.NewFromInt(800), decimal.NewFromInt(800), "")
	assert.Error(t, err)

	_, err = NewVoucherPayment(uuid.New(), month, decimal.NewFromInt(800), decimal.Zero, "")
	assert.Error(t, err)

	_, err = NewVoucherPayment(uuid.New(), month, decimal.NewFromInt(800), decimal.NewFromInt(-5), "")
	assert.Error(t, err)
}

func TestNewManualPayment_ApprovedImmediately(t *testing.T) {
	p, err := NewManualPayment(uuid.New(), testMonth(t),
		decimal.NewFromInt(500), decimal.NewFromInt(500), "cash at office")
	require.NoError(t, err)

	assert.Equal(t, StatusApproved, p.Status)
	assert.Equal(t, "cash at office", p.ReviewNotes)
	require.NotNil(t, p.ReviewedAt)
	assert.True(t, p.IsApproved())
}

func TestPayment_Approve(t *testing.T) {
	p := createVoucherPayment(t)

	err := p.Approve("looks good")
	require.NoError(t, err)

	assert.Equal(t, StatusApproved, p.Status)
	assert.Equal(t, "looks good", p.ReviewNotes)
	require.NotNil(t, p.ReviewedAt)
	assert.Equal(t, 2, p.Version)
}

func TestPayment_Decline(t *testing.T) {
	p := createVoucherPayment(t)

	err := p.Decline("voucher unreadable")
	require.NoError(t, err)

	assert.Equal(t, StatusDeclined, p.Status)
	assert.Equal(t, "voucher unreadable", p.ReviewNotes)
	require.NotNil(t, p.ReviewedAt)
}

func TestPayment_NoTransitionOutOfTerminalStates(t *testing.T) {
	approved := createVoucherPayment(t)
	require.NoError(t, approved.Approve(""))
	assert.Error(t, approved.Approve(""))
	assert.Error(t, approved.Decline(""))

	declined := createVoucherPayment(t)
	require.NoError(t, declined.Decline(""))
	assert.Error(t, declined.Approve(""))
	assert.Error(t, declined.Decline(""))
}

func TestPayment_CoversOwed(t *testing.T) {
	month := testMonth(t)

	full, err := NewVoucherPayment(uuid.New(), month, decimal.NewFromInt(800), decimal.NewFromInt(800), "")
	require.NoError(t, err)
	assert.True(t, full.CoversOwed())

	partial, err := NewVoucherPayment(uuid.New(), month, decimal.NewFromInt(800), decimal.NewFromInt(300), "")
	require.NoError(t, err)
	assert.False(t, partial.CoversOwed())
}
