package shift

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"tillpoint.app/ledger"
	"tillpoint.app/shift/model"
	"tillpoint.app/shift/store/sales"
	"tillpoint.app/shift/store/shifts"
)

func timestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func optionalInt8(v *int64) pgtype.Int8 {
	if v == nil {
		return pgtype.Int8{}
	}
	return pgtype.Int8{Int64: *v, Valid: true}
}

func int64Ptr(v pgtype.Int8) *int64 {
	if !v.Valid {
		return nil
	}
	n := v.Int64
	return &n
}

func amountPtr(v pgtype.Int8) *ledger.Amount {
	if !v.Valid {
		return nil
	}
	a := ledger.Amount(v.Int64)
	return &a
}

func timePtr(ts pgtype.Timestamptz) *time.Time {
	if !ts.Valid {
		return nil
	}
	t := ts.Time
	return &t
}

// convertDBShiftToModel converts a database Shift to a domain model Shift
func convertDBShiftToModel(dbShift shifts.Shift) *model.Shift {
	return &model.Shift{
		ID:               dbShift.ID,
		Name:             dbShift.Name,
		LocationID:       dbShift.LocationID,
		AssignedUserID:   dbShift.AssignedUserID,
		Status:           model.ShiftStatus(dbShift.Status),
		OpeningBalance:   ledger.Amount(dbShift.OpeningBalance),
		StartTime:        dbShift.StartTime.Time,
		PausedAt:         timePtr(dbShift.PausedAt),
		EndTime:          timePtr(dbShift.EndTime),
		ExpectedBalance:  amountPtr(dbShift.ExpectedBalance),
		ClosingBalance:   amountPtr(dbShift.ClosingBalance),
		TotalSales:       amountPtr(dbShift.TotalSales),
		CashDiscrepancy:  amountPtr(dbShift.CashDiscrepancy),
		ForceClosed:      dbShift.ForceClosed,
		ForceCloseReason: dbShift.ForceCloseReason.String,
		CreatedAt:        dbShift.CreatedAt.Time,
		UpdatedAt:        dbShift.UpdatedAt.Time,
	}
}

func convertDBTransactionToModel(dbTxn sales.Transaction) *model.Transaction {
	return &model.Transaction{
		ID:            dbTxn.ID,
		LocationID:    dbTxn.LocationID,
		ShiftID:       int64Ptr(dbTxn.ShiftID),
		MembershipID:  int64Ptr(dbTxn.MembershipID),
		CustomerID:    int64Ptr(dbTxn.CustomerID),
		Source:        model.TransactionSource(dbTxn.Source),
		PaymentMethod: dbTxn.PaymentMethod,
		Tender:        ledger.ClassifyTender(dbTxn.PaymentMethod),
		TotalAmount:   ledger.Amount(dbTxn.TotalAmount),
		Currency:      dbTxn.Currency,
		Reference:     dbTxn.Reference,
		CreatedAt:     dbTxn.CreatedAt.Time,
	}
}

func convertDBRefundToModel(dbRefund sales.Refund) *model.Refund {
	return &model.Refund{
		ID:            dbRefund.ID,
		TransactionID: dbRefund.TransactionID,
		Amount:        ledger.Amount(dbRefund.Amount),
		Reason:        dbRefund.Reason.String,
		CreatedAt:     dbRefund.CreatedAt.Time,
	}
}

func toLedgerSales(txns []sales.Transaction) []ledger.Sale {
	out := make([]ledger.Sale, 0, len(txns))
	for _, t := range txns {
		out = append(out, ledger.Sale{
			TransactionID: t.ID,
			Method:        t.PaymentMethod,
			Amount:        ledger.Amount(t.TotalAmount),
		})
	}
	return out
}

func toLedgerRefunds(refunds []sales.Refund) []ledger.Refund {
	out := make([]ledger.Refund, 0, len(refunds))
	for _, r := range refunds {
		out = append(out, ledger.Refund{
			TransactionID: r.TransactionID,
			Amount:        ledger.Amount(r.Amount),
		})
	}
	return out
}
