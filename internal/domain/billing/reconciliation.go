package billing

import (
	"github.com/edificio/backend/internal/domain/payment"
	"github.com/shopspring/decimal"
)

// PaymentState is the derived payment status of a receipt. It is recomputed
// on every read from the receipt and the resident's payment records, never
// stored.
type PaymentState string

const (
	StatePaid    PaymentState = "paid"
	StatePending PaymentState = "pending"
	StatePartial PaymentState = "partial"
	StateUnpaid  PaymentState = "unpaid"
)

// IsPaid returns true for the paid state
func (s PaymentState) IsPaid() bool {
	return s == StatePaid
}

// ReceiptPaymentStatus derives a receipt's payment state from the resident's
// payment records.
//
// Receipts before the cutoff month are always paid regardless of payment
// history, a deliberate amnesty for historical data. For eligible receipts,
// only payments targeting the receipt's month count: the approved sum decides
// paid, an open pending payment forces pending even when approved funds
// already exist (so a partially paid receipt with a pending top-up shows
// pending, not partial), any approved amount short of the total is partial.
func ReceiptPaymentStatus(receipt *Receipt, payments []payment.Payment) PaymentState {
	if !receipt.Eligible() {
		return StatePaid
	}

	totalApproved := decimal.Zero
	hasPending := false
	for _, p := range payments {
		if !p.ReceiptMonth.Equal(receipt.Month) {
			continue
		}
		switch p.Status {
		case payment.StatusApproved:
			totalApproved = totalApproved.Add(p.AmountPaid)
		case payment.StatusPending:
			hasPending = true
		}
	}

	switch {
	case totalApproved.GreaterThanOrEqual(receipt.Total):
		return StatePaid
	case hasPending:
		return StatePending
	case totalApproved.GreaterThan(decimal.Zero):
		return StatePartial
	default:
		return StateUnpaid
	}
}

// UnpaidEligibleReceipts returns the receipts a resident can still submit a
// voucher for: cutoff-eligible and currently unpaid or partial. Paid and
// pending receipts are excluded so the same obligation cannot be paid twice.
func UnpaidEligibleReceipts(receipts []Receipt, payments []payment.Payment) []Receipt {
	payable := make([]Receipt, 0, len(receipts))
	for i := range receipts {
		r := &receipts[i]
		if !r.Eligible() {
			continue
		}
		switch ReceiptPaymentStatus(r, payments) {
		case StateUnpaid, StatePartial:
			payable = append(payable, *r)
		}
	}
	return payable
}

// ComputeDebt derives a resident's outstanding balance: the sum of eligible
// receipt totals minus the sum of approved payment amounts. Pending payments
// still count as owed.
func ComputeDebt(receipts []Receipt, payments []payment.Payment) decimal.Decimal {
	owed := decimal.Zero
	for i := range receipts {
		if receipts[i].Eligible() {
			owed = owed.Add(receipts[i].Total)
		}
	}
	for _, p := range payments {
		if p.Status == payment.StatusApproved {
			owed = owed.Sub(p.AmountPaid)
		}
	}
	return owed
}
