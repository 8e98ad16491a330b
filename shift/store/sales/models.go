package sales

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Transaction struct {
	ID            int64
	LocationID    string
	ShiftID       pgtype.Int8
	MembershipID  pgtype.Int8
	CustomerID    pgtype.Int8
	Source        string
	PaymentMethod string
	TotalAmount   int64
	Currency      string
	Reference     string
	CreatedAt     pgtype.Timestamptz
}

type Refund struct {
	ID            int64
	TransactionID int64
	Amount        int64
	Reason        pgtype.Text
	CreatedAt     pgtype.Timestamptz
}
