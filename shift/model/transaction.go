package model

import (
	"time"

	"tillpoint.app/ledger"
)

type TransactionSource string

const (
	TransactionSourcePOS       TransactionSource = "pos"
	TransactionSourceRecurring TransactionSource = "recurring"
)

// Transaction is a sale in the location's ledger. TotalAmount is net of any
// refund applied at the register; standalone refunds are kept as Refund rows.
type Transaction struct {
	ID            int64             `json:"id"`
	LocationID    string            `json:"location_id"`
	ShiftID       *int64            `json:"shift_id,omitempty"`
	MembershipID  *int64            `json:"membership_id,omitempty"`
	CustomerID    *int64            `json:"customer_id,omitempty"`
	Source        TransactionSource `json:"source"`
	PaymentMethod string            `json:"payment_method"`
	Tender        ledger.Tender     `json:"tender"`
	TotalAmount   ledger.Amount     `json:"total_amount_cents"`
	Currency      string            `json:"currency"`
	Reference     string            `json:"reference"`
	CreatedAt     time.Time         `json:"created_at"`
}

type Refund struct {
	ID            int64         `json:"id"`
	TransactionID int64         `json:"transaction_id"`
	Amount        ledger.Amount `json:"amount_cents"`
	Reason        string        `json:"reason,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}

// SalesSummary is the live view of a shift's takings.
type SalesSummary struct {
	ShiftID          int64                 `json:"shift_id"`
	Status           ShiftStatus           `json:"status"`
	OpeningBalance   ledger.Amount         `json:"opening_balance_cents"`
	Breakdown        ledger.SalesBreakdown `json:"breakdown"`
	TotalSales       ledger.Amount         `json:"total_sales_cents"`
	ExpectedCash     ledger.Amount         `json:"expected_cash_cents"`
	TransactionCount int                   `json:"transaction_count"`
	RefundCount      int                   `json:"refund_count"`
}
