package shift

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"tillpoint.app/ledger"
	"tillpoint.app/shift/domain"
	"tillpoint.app/shift/model"
	"tillpoint.app/shift/store/sales"
	"tillpoint.app/shift/store/shifts"
)

// CloseShift reconciles the drawer against the operator's count and closes
// the shift. The count is parsed before anything is locked or written.
func (b *business) CloseShift(ctx context.Context, id int64, actualBalance string) (*model.Shift, error) {
	actual, err := ledger.ParseAmount(actualBalance)
	if err != nil {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid actual balance"}
	}
	if actual.IsNegative() {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "actual balance cannot be negative"}
	}

	return b.close(ctx, id, domain.ActionClose, func(opening ledger.Amount, breakdown ledger.SalesBreakdown) model.Reconciliation {
		return model.Reconcile(opening, breakdown, actual)
	}, pgtype.Text{})
}

// ForceCloseShift closes a shift without a drawer count. The expected cash is
// recorded as the closing balance and the shift is flagged.
func (b *business) ForceCloseShift(ctx context.Context, id int64, reason string) (*model.Shift, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = DefaultForceCloseReason
	}

	return b.close(ctx, id, domain.ActionForceClose, model.AcceptExpected, pgtype.Text{String: reason, Valid: true})
}

type reconcileFunc func(opening ledger.Amount, breakdown ledger.SalesBreakdown) model.Reconciliation

func (b *business) close(ctx context.Context, id int64, action domain.Action, reconcile reconcileFunc, reason pgtype.Text) (*model.Shift, error) {
	updated, err := b.stateMachine.Transition(ctx, id, action,
		func(q domain.TxQueries, current shifts.Shift, _ model.ShiftStatus) (shifts.Shift, error) {
			breakdown, _, _, err := summarize(ctx, q.Sales, id)
			if err != nil {
				return shifts.Shift{}, err
			}

			rec := reconcile(ledger.Amount(current.OpeningBalance), breakdown)
			row, err := q.Shifts.CloseShift(ctx, shifts.CloseShiftParams{
				ID:               id,
				EndTime:          timestamptz(b.now()),
				ExpectedBalance:  rec.Expected.Cents(),
				ClosingBalance:   rec.Actual.Cents(),
				TotalSales:       rec.TotalSales.Cents(),
				CashDiscrepancy:  rec.Discrepancy.Cents(),
				ForceClosed:      reason.Valid,
				ForceCloseReason: reason,
			})
			if err != nil {
				return shifts.Shift{}, &errs.Error{Code: errs.Internal, Message: "failed to close shift"}
			}
			return row, nil
		})
	if err != nil {
		return nil, err
	}
	return convertDBShiftToModel(updated), nil
}

func (b *business) SalesSummary(ctx context.Context, id int64) (*model.SalesSummary, error) {
	s, err := b.GetShift(ctx, id)
	if err != nil {
		return nil, err
	}

	breakdown, txnCount, refundCount, err := summarize(ctx, b.salesRepo, id)
	if err != nil {
		return nil, err
	}

	return &model.SalesSummary{
		ShiftID:          s.ID,
		Status:           s.Status,
		OpeningBalance:   s.OpeningBalance,
		Breakdown:        breakdown,
		TotalSales:       breakdown.Total(),
		ExpectedCash:     breakdown.ExpectedCash(s.OpeningBalance),
		TransactionCount: txnCount,
		RefundCount:      refundCount,
	}, nil
}

// summarize reads a shift's sales and standalone refunds and totals them by
// tender.
func summarize(ctx context.Context, repo sales.Querier, shiftID int64) (ledger.SalesBreakdown, int, int, error) {
	txns, err := repo.ListShiftTransactions(ctx, shiftID)
	if err != nil {
		return ledger.SalesBreakdown{}, 0, 0, &errs.Error{Code: errs.Internal, Message: "failed to list shift transactions"}
	}
	refunds, err := repo.ListShiftRefunds(ctx, shiftID)
	if err != nil {
		return ledger.SalesBreakdown{}, 0, 0, &errs.Error{Code: errs.Internal, Message: "failed to list shift refunds"}
	}

	return ledger.Breakdown(toLedgerSales(txns), toLedgerRefunds(refunds)), len(txns), len(refunds), nil
}
