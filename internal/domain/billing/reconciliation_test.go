package billing

import (
	"testing"

	"github.com/edificio/backend/internal/domain/payment"
	"github.com/edificio/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receiptWithTotal(t *testing.T, m valueobject.MonthKey, total float64) *Receipt {
	t.Helper()
	r := newReceipt(uuid.New(), uuid.New(), "Ana Lopez", "2B", m, LineItems{
		{Kind: LineRent, Label: "Rent", Amount: decimal.NewFromFloat(total)},
	})
	require.True(t, r.Total.Equal(dec(total)))
	return r
}

func approvedPayment(m valueobject.MonthKey, amount float64) payment.Payment {
	return payment.Payment{
		ReceiptMonth: m,
		AmountPaid:   decimal.NewFromFloat(amount),
		Status:       payment.StatusApproved,
	}
}

func pendingPayment(m valueobject.MonthKey, amount float64) payment.Payment {
	return payment.Payment{
		ReceiptMonth: m,
		AmountPaid:   decimal.NewFromFloat(amount),
		Status:       payment.StatusPending,
	}
}

func TestReceiptPaymentStatus(t *testing.T) {
	jul := month(t, "07_2025")

	tests := []struct {
		name     string
		payments []payment.Payment
		want     PaymentState
	}{
		{"no payments", nil, StateUnpaid},
		{"approved covers total", []payment.Payment{approvedPayment(jul, 500)}, StatePaid},
		{"approved exceeds total", []payment.Payment{approvedPayment(jul, 600)}, StatePaid},
		{"approved short of total", []payment.Payment{approvedPayment(jul, 200)}, StatePartial},
		{"pending only", []payment.Payment{pendingPayment(jul, 500)}, StatePending},
		{
			"pending wins over partial",
			[]payment.Payment{approvedPayment(jul, 200), pendingPayment(jul, 300)},
			StatePending,
		},
		{
			"approved payments split across records",
			[]payment.Payment{approvedPayment(jul, 300), approvedPayment(jul, 200)},
			StatePaid,
		},
		{
			"declined payments do not count",
			[]payment.Payment{{ReceiptMonth: jul, AmountPaid: dec(500), Status: payment.StatusDeclined}},
			StateUnpaid,
		},
		{
			"other months do not count",
			[]payment.Payment{approvedPayment(month(t, "08_2025"), 500)},
			StateUnpaid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			receipt := receiptWithTotal(t, jul, 500)
			assert.Equal(t, tt.want, ReceiptPaymentStatus(receipt, tt.payments))
		})
	}
}

func TestReceiptPaymentStatus_PreCutoffAlwaysPaid(t *testing.T) {
	receipt := receiptWithTotal(t, month(t, "06_2025"), 500)
	assert.Equal(t, StatePaid, ReceiptPaymentStatus(receipt, nil))
	assert.Equal(t, StatePaid, ReceiptPaymentStatus(receipt, []payment.Payment{
		pendingPayment(month(t, "06_2025"), 100),
	}))
}

func TestUnpaidEligibleReceipts(t *testing.T) {
	jul := month(t, "07_2025")
	aug := month(t, "08_2025")

	preCutoff := receiptWithTotal(t, month(t, "05_2025"), 400)
	paid := receiptWithTotal(t, jul, 500)
	partial := receiptWithTotal(t, aug, 500)
	pending := receiptWithTotal(t, month(t, "09_2025"), 500)
	unpaid := receiptWithTotal(t, month(t, "10_2025"), 500)

	receipts := []Receipt{*preCutoff, *paid, *partial, *pending, *unpaid}
	payments := []payment.Payment{
		approvedPayment(jul, 500),
		approvedPayment(aug, 100),
		pendingPayment(month(t, "09_2025"), 500),
	}

	payable := UnpaidEligibleReceipts(receipts, payments)
	require.Len(t, payable, 2)
	assert.Equal(t, aug, payable[0].Month)
	assert.Equal(t, month(t, "10_2025"), payable[1].Month)
}

func TestComputeDebt(t *testing.T) {
	jul := month(t, "07_2025")
	aug := month(t, "08_2025")

	receipts := []Receipt{
		*receiptWithTotal(t, month(t, "01_2024"), 999), // pre-cutoff, never owed
		*receiptWithTotal(t, jul, 500),
		*receiptWithTotal(t, aug, 800),
	}

	t.Run("no payments", func(t *testing.T) {
		assert.True(t, ComputeDebt(receipts, nil).Equal(dec(1300)))
	})

	t.Run("pending payments still count as owed", func(t *testing.T) {
		debt := ComputeDebt(receipts, []payment.Payment{pendingPayment(jul, 500)})
		assert.True(t, debt.Equal(dec(1300)))
	})

	t.Run("approved payments reduce debt", func(t *testing.T) {
		debt := ComputeDebt(receipts, []payment.Payment{
			approvedPayment(jul, 500),
			approvedPayment(aug, 300),
		})
		assert.True(t, debt.Equal(dec(500)))
	})

	t.Run("fully settled", func(t *testing.T) {
		debt := ComputeDebt(receipts, []payment.Payment{
			approvedPayment(jul, 500),
			approvedPayment(aug, 800),
		})
		assert.True(t, debt.IsZero())
	})
}
