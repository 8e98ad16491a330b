package shifts

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Shift struct {
	ID               int64
	Name             string
	LocationID       string
	AssignedUserID   string
	Status           string
	OpeningBalance   int64
	StartTime        pgtype.Timestamptz
	PausedAt         pgtype.Timestamptz
	EndTime          pgtype.Timestamptz
	ExpectedBalance  pgtype.Int8
	ClosingBalance   pgtype.Int8
	TotalSales       pgtype.Int8
	CashDiscrepancy  pgtype.Int8
	ForceClosed      bool
	ForceCloseReason pgtype.Text
	CreatedAt        pgtype.Timestamptz
	UpdatedAt        pgtype.Timestamptz
}
