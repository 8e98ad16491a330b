package shift

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"tillpoint.app/ledger"
	"tillpoint.app/shift/domain"
	"tillpoint.app/shift/model"
	"tillpoint.app/shift/store/sales"
	"tillpoint.app/shift/store/shifts"
)

// RecordSale appends a POS sale to the ledger. A sale naming a shift is only
// accepted while that shift is active at the same location. Replaying a
// reference returns the transaction already recorded under it.
func (b *business) RecordSale(ctx context.Context, sale *model.Transaction) (*model.Transaction, error) {
	if strings.TrimSpace(sale.LocationID) == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "location id is required"}
	}
	if strings.TrimSpace(sale.PaymentMethod) == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "payment method is required"}
	}
	if sale.TotalAmount.IsNegative() {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "total amount cannot be negative"}
	}
	reference := strings.TrimSpace(sale.Reference)
	if reference == "" {
		reference = uuid.NewString()
	}

	params := sales.CreateTransactionParams{
		LocationID:    sale.LocationID,
		ShiftID:       optionalInt8(sale.ShiftID),
		MembershipID:  optionalInt8(sale.MembershipID),
		CustomerID:    optionalInt8(sale.CustomerID),
		Source:        string(model.TransactionSourcePOS),
		PaymentMethod: sale.PaymentMethod,
		TotalAmount:   sale.TotalAmount.Cents(),
		Currency:      sale.Currency,
		Reference:     reference,
		CreatedAt:     timestamptz(b.now()),
	}

	var created sales.Transaction
	var err error
	if sale.ShiftID == nil {
		created, err = b.salesRepo.CreateTransaction(ctx, params)
	} else {
		err = b.stateMachine.WithOpenShift(ctx, *sale.ShiftID, func(q domain.TxQueries, current shifts.Shift) error {
			if current.Status != string(model.ShiftStatusActive) {
				return &errs.Error{Code: errs.FailedPrecondition, Message: "shift is paused"}
			}
			if current.LocationID != sale.LocationID {
				return &errs.Error{Code: errs.InvalidArgument, Message: "shift belongs to another location"}
			}
			var cerr error
			created, cerr = q.Sales.CreateTransaction(ctx, params)
			return cerr
		})
	}
	if err != nil {
		if isUniqueViolation(err) {
			return b.existingTransaction(ctx, reference)
		}
		var e *errs.Error
		if errors.As(err, &e) {
			return nil, e
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to record sale"}
	}

	return convertDBTransactionToModel(created), nil
}

// RecordRefund adds a standalone refund against a transaction. The refund may
// not exceed what is left after earlier refunds, and a transaction rung up on
// a closed shift can no longer be refunded.
func (b *business) RecordRefund(ctx context.Context, transactionID int64, amount ledger.Amount, reason string) (*model.Refund, *model.Transaction, error) {
	if !amount.IsPositive() {
		return nil, nil, &errs.Error{Code: errs.InvalidArgument, Message: "refund amount must be positive"}
	}

	var refund sales.Refund
	var txn sales.Transaction
	err := b.stateMachine.InTx(ctx, func(q domain.TxQueries) error {
		var err error
		txn, err = q.Sales.GetTransactionForUpdate(ctx, transactionID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return &errs.Error{Code: errs.NotFound, Message: "transaction not found"}
			}
			return &errs.Error{Code: errs.Internal, Message: "failed to lock transaction"}
		}

		if txn.ShiftID.Valid {
			s, err := q.Shifts.GetShiftForShare(ctx, txn.ShiftID.Int64)
			if err != nil {
				return &errs.Error{Code: errs.Internal, Message: "failed to lock shift"}
			}
			if !model.ShiftStatus(s.Status).Open() {
				return &errs.Error{Code: errs.FailedPrecondition, Message: "shift is closed"}
			}
		}

		refunded, err := q.Sales.SumRefunds(ctx, transactionID)
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to sum refunds"}
		}
		remaining := ledger.Amount(txn.TotalAmount).Sub(ledger.Amount(refunded))
		if amount > remaining {
			return &errs.Error{
				Code:    errs.FailedPrecondition,
				Message: fmt.Sprintf("refund exceeds refundable amount of %s", remaining),
			}
		}

		refund, err = q.Sales.CreateRefund(ctx, sales.CreateRefundParams{
			TransactionID: transactionID,
			Amount:        amount.Cents(),
			Reason:        pgtype.Text{String: reason, Valid: reason != ""},
		})
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to create refund"}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return convertDBRefundToModel(refund), convertDBTransactionToModel(txn), nil
}

// RecurringChargeReference is the ledger reference of a membership billing
// cycle. It makes recording the same cycle twice a no-op.
func RecurringChargeReference(billingCycleID int64) string {
	return fmt.Sprintf("recurring-cycle-%d", billingCycleID)
}

func (b *business) RecordRecurringCharge(ctx context.Context, charge RecurringCharge) (*model.Transaction, error) {
	if strings.TrimSpace(charge.LocationID) == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "location id is required"}
	}
	if !charge.Amount.IsPositive() {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "charge amount must be positive"}
	}

	membershipID := charge.MembershipID
	customerID := charge.CustomerID
	reference := RecurringChargeReference(charge.BillingCycleID)

	created, err := b.salesRepo.CreateTransaction(ctx, sales.CreateTransactionParams{
		LocationID:    charge.LocationID,
		MembershipID:  optionalInt8(&membershipID),
		CustomerID:    optionalInt8(&customerID),
		Source:        string(model.TransactionSourceRecurring),
		PaymentMethod: string(ledger.TenderCard),
		TotalAmount:   charge.Amount.Cents(),
		Currency:      charge.Currency,
		Reference:     reference,
		CreatedAt:     timestamptz(charge.ChargedAt),
	})
	if err != nil {
		if isUniqueViolation(err) {
			return b.existingTransaction(ctx, reference)
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to record recurring charge"}
	}

	return convertDBTransactionToModel(created), nil
}

func (b *business) existingTransaction(ctx context.Context, reference string) (*model.Transaction, error) {
	existing, err := b.salesRepo.GetTransactionByReference(ctx, reference)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to load transaction by reference"}
	}
	return convertDBTransactionToModel(existing), nil
}
