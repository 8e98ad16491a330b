package model

import (
	"time"

	"tillpoint.app/ledger"
)

type ShiftStatus string

const (
	ShiftStatusActive ShiftStatus = "active"
	ShiftStatusPaused ShiftStatus = "paused"
	ShiftStatusClosed ShiftStatus = "closed"
)

// Open reports whether the shift still accepts sales and state changes.
func (s ShiftStatus) Open() bool {
	return s == ShiftStatusActive || s == ShiftStatusPaused
}

// Shift is one cash-drawer session. The closing fields are set exactly once,
// when the shift is closed or force closed.
type Shift struct {
	ID               int64          `json:"id"`
	Name             string         `json:"name"`
	LocationID       string         `json:"location_id"`
	AssignedUserID   string         `json:"assigned_user_id"`
	Status           ShiftStatus    `json:"status"`
	OpeningBalance   ledger.Amount  `json:"opening_balance_cents"`
	StartTime        time.Time      `json:"start_time"`
	PausedAt         *time.Time     `json:"paused_at,omitempty"`
	EndTime          *time.Time     `json:"end_time,omitempty"`
	ExpectedBalance  *ledger.Amount `json:"expected_balance_cents,omitempty"`
	ClosingBalance   *ledger.Amount `json:"closing_balance_cents,omitempty"`
	TotalSales       *ledger.Amount `json:"total_sales_cents,omitempty"`
	CashDiscrepancy  *ledger.Amount `json:"cash_discrepancy_cents,omitempty"`
	ForceClosed      bool           `json:"force_closed"`
	ForceCloseReason string         `json:"force_close_reason,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// Reconciliation is the drawer count computed at close.
type Reconciliation struct {
	Expected    ledger.Amount
	Actual      ledger.Amount
	TotalSales  ledger.Amount
	Discrepancy ledger.Amount
}

// Reconcile compares an operator count against the expected drawer.
func Reconcile(opening ledger.Amount, breakdown ledger.SalesBreakdown, actual ledger.Amount) Reconciliation {
	expected := breakdown.ExpectedCash(opening)
	return Reconciliation{
		Expected:    expected,
		Actual:      actual,
		TotalSales:  breakdown.Total(),
		Discrepancy: actual.Sub(expected),
	}
}

// AcceptExpected reconciles a force-closed shift: the expected drawer is taken
// as the count, so the discrepancy is zero.
func AcceptExpected(opening ledger.Amount, breakdown ledger.SalesBreakdown) Reconciliation {
	return Reconcile(opening, breakdown, breakdown.ExpectedCash(opening))
}
