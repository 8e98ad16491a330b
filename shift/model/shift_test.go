package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tillpoint.app/ledger"
)

func TestReconcile(t *testing.T) {
	// 250.00 of net cash sales with a standalone 20.00 cash refund.
	breakdown := ledger.Breakdown(
		[]ledger.Sale{
			{TransactionID: 1, Method: "cash", Amount: 15000},
			{TransactionID: 2, Method: "cash", Amount: 10000},
			{TransactionID: 3, Method: "card", Amount: 4000},
		},
		[]ledger.Refund{{TransactionID: 2, Amount: 2000}},
	)

	testCases := []struct {
		name                string
		reconcile           func() Reconciliation
		expectedActual      ledger.Amount
		expectedDiscrepancy ledger.Amount
	}{
		{
			name:                "short_drawer",
			reconcile:           func() Reconciliation { return Reconcile(10000, breakdown, 32500) },
			expectedActual:      32500,
			expectedDiscrepancy: -500,
		},
		{
			name:                "exact_drawer",
			reconcile:           func() Reconciliation { return Reconcile(10000, breakdown, 33000) },
			expectedActual:      33000,
			expectedDiscrepancy: 0,
		},
		{
			name:                "force_close_accepts_expected",
			reconcile:           func() Reconciliation { return AcceptExpected(10000, breakdown) },
			expectedActual:      33000,
			expectedDiscrepancy: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := tc.reconcile()

			assert.Equal(t, ledger.Amount(33000), rec.Expected)
			assert.Equal(t, ledger.Amount(29000), rec.TotalSales)
			assert.Equal(t, tc.expectedActual, rec.Actual)
			assert.Equal(t, tc.expectedDiscrepancy, rec.Discrepancy)
		})
	}
}

func TestShiftStatusOpen(t *testing.T) {
	assert.True(t, ShiftStatusActive.Open())
	assert.True(t, ShiftStatusPaused.Open())
	assert.False(t, ShiftStatusClosed.Open())
}
