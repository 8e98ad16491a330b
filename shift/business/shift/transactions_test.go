package shift

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"tillpoint.app/ledger"
	"tillpoint.app/shift/model"
	"tillpoint.app/shift/store/sales"
)

func shiftSale(shiftID int64) *model.Transaction {
	return &model.Transaction{
		LocationID:    "loc_1",
		ShiftID:       &shiftID,
		PaymentMethod: "cash",
		TotalAmount:   1250,
		Currency:      "usd",
		Reference:     "pos-1001",
	}
}

func echoTransaction(id int64) func(context.Context, sales.CreateTransactionParams) (sales.Transaction, error) {
	return func(_ context.Context, arg sales.CreateTransactionParams) (sales.Transaction, error) {
		return sales.Transaction{
			ID:            id,
			LocationID:    arg.LocationID,
			ShiftID:       arg.ShiftID,
			MembershipID:  arg.MembershipID,
			CustomerID:    arg.CustomerID,
			Source:        arg.Source,
			PaymentMethod: arg.PaymentMethod,
			TotalAmount:   arg.TotalAmount,
			Currency:      arg.Currency,
			Reference:     arg.Reference,
			CreatedAt:     arg.CreatedAt,
		}, nil
	}
}

func TestRecordSale(t *testing.T) {
	t.Run("records_sale_on_active_shift", func(t *testing.T) {
		b, m := newTestBusiness(t)
		m.expectOpenShift(4, dbShift(4, model.ShiftStatusActive, 0))
		m.sales.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).DoAndReturn(echoTransaction(30))

		result, err := b.RecordSale(context.Background(), shiftSale(4))

		require.NoError(t, err)
		assert.Equal(t, int64(30), result.ID)
		assert.Equal(t, model.TransactionSourcePOS, result.Source)
		assert.Equal(t, ledger.TenderCash, result.Tender)
		require.NotNil(t, result.ShiftID)
		assert.Equal(t, int64(4), *result.ShiftID)
	})

	t.Run("paused_shift_rejects_sale", func(t *testing.T) {
		b, m := newTestBusiness(t)
		m.expectOpenShift(4, dbShift(4, model.ShiftStatusPaused, 0))

		_, err := b.RecordSale(context.Background(), shiftSale(4))

		assert.Equal(t, errs.FailedPrecondition, errs.Code(err))
	})

	t.Run("closed_shift_rejects_sale", func(t *testing.T) {
		b, m := newTestBusiness(t)
		m.stateMachine.EXPECT().
			WithOpenShift(gomock.Any(), int64(4), gomock.Any()).
			Return(&errs.Error{Code: errs.FailedPrecondition, Message: "shift is closed"})

		_, err := b.RecordSale(context.Background(), shiftSale(4))

		require.Error(t, err)
		assert.Equal(t, errs.FailedPrecondition, errs.Code(err))
		assert.Contains(t, err.Error(), "shift is closed")
	})

	t.Run("shift_at_other_location", func(t *testing.T) {
		b, m := newTestBusiness(t)
		other := dbShift(4, model.ShiftStatusActive, 0)
		other.LocationID = "loc_2"
		m.expectOpenShift(4, other)

		_, err := b.RecordSale(context.Background(), shiftSale(4))

		assert.Equal(t, errs.InvalidArgument, errs.Code(err))
	})

	t.Run("replayed_reference_returns_original", func(t *testing.T) {
		b, m := newTestBusiness(t)
		m.expectOpenShift(4, dbShift(4, model.ShiftStatusActive, 0))
		m.sales.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(sales.Transaction{}, uniqueViolation())
		m.sales.EXPECT().
			GetTransactionByReference(gomock.Any(), "pos-1001").
			Return(sales.Transaction{ID: 12, Reference: "pos-1001", PaymentMethod: "cash", TotalAmount: 1250}, nil)

		result, err := b.RecordSale(context.Background(), shiftSale(4))

		require.NoError(t, err)
		assert.Equal(t, int64(12), result.ID)
	})

	t.Run("sale_without_shift_generates_reference", func(t *testing.T) {
		b, m := newTestBusiness(t)
		m.sales.EXPECT().
			CreateTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, arg sales.CreateTransactionParams) (sales.Transaction, error) {
				assert.False(t, arg.ShiftID.Valid)
				assert.NotEmpty(t, arg.Reference)
				return echoTransaction(31)(ctx, arg)
			})

		sale := shiftSale(0)
		sale.ShiftID = nil
		sale.Reference = ""
		result, err := b.RecordSale(context.Background(), sale)

		require.NoError(t, err)
		assert.Nil(t, result.ShiftID)
	})

	t.Run("negative_amount", func(t *testing.T) {
		b, _ := newTestBusiness(t)
		sale := shiftSale(4)
		sale.TotalAmount = -1

		_, err := b.RecordSale(context.Background(), sale)

		assert.Equal(t, errs.InvalidArgument, errs.Code(err))
	})
}

func TestRecordRefund(t *testing.T) {
	cashSale := sales.Transaction{ID: 20, LocationID: "loc_1", ShiftID: pgInt8(4), PaymentMethod: "cash", TotalAmount: 5000}

	testCases := []struct {
		name            string
		amount          ledger.Amount
		txnErr          error
		shiftStatus     model.ShiftStatus
		alreadyRefunded int64
		expectCreate    bool
		expectedCode    errs.ErrCode
	}{
		{name: "partial_refund", amount: 2000, shiftStatus: model.ShiftStatusActive, alreadyRefunded: 1000, expectCreate: true},
		{name: "refund_remaining_balance", amount: 4000, shiftStatus: model.ShiftStatusPaused, alreadyRefunded: 1000, expectCreate: true},
		{name: "over_refund", amount: 4001, shiftStatus: model.ShiftStatusActive, alreadyRefunded: 1000, expectedCode: errs.FailedPrecondition},
		{name: "closed_shift", amount: 100, shiftStatus: model.ShiftStatusClosed, expectedCode: errs.FailedPrecondition},
		{name: "unknown_transaction", amount: 100, txnErr: pgx.ErrNoRows, expectedCode: errs.NotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b, m := newTestBusiness(t)
			m.expectTx()

			m.sales.EXPECT().GetTransactionForUpdate(gomock.Any(), int64(20)).Return(cashSale, tc.txnErr)
			if tc.txnErr == nil {
				m.shifts.EXPECT().GetShiftForShare(gomock.Any(), int64(4)).Return(dbShift(4, tc.shiftStatus, 0), nil)
			}
			if tc.shiftStatus.Open() {
				m.sales.EXPECT().SumRefunds(gomock.Any(), int64(20)).Return(tc.alreadyRefunded, nil)
			}
			if tc.expectCreate {
				m.sales.EXPECT().
					CreateRefund(gomock.Any(), sales.CreateRefundParams{
						TransactionID: 20,
						Amount:        tc.amount.Cents(),
						Reason:        pgtype.Text{String: "damaged", Valid: true},
					}).
					Return(sales.Refund{ID: 8, TransactionID: 20, Amount: tc.amount.Cents()}, nil)
			}

			refund, txn, err := b.RecordRefund(context.Background(), 20, tc.amount, "damaged")

			if tc.expectedCode != errs.OK {
				require.Error(t, err)
				assert.Equal(t, tc.expectedCode, errs.Code(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.amount, refund.Amount)
			assert.Equal(t, int64(20), txn.ID)
		})
	}

	t.Run("non_positive_amount", func(t *testing.T) {
		b, _ := newTestBusiness(t)

		_, _, err := b.RecordRefund(context.Background(), 20, 0, "")

		assert.Equal(t, errs.InvalidArgument, errs.Code(err))
	})

	t.Run("transaction_without_shift", func(t *testing.T) {
		b, m := newTestBusiness(t)
		m.expectTx()
		recurring := sales.Transaction{ID: 21, LocationID: "loc_1", PaymentMethod: "card", TotalAmount: 2999}
		m.sales.EXPECT().GetTransactionForUpdate(gomock.Any(), int64(21)).Return(recurring, nil)
		m.sales.EXPECT().SumRefunds(gomock.Any(), int64(21)).Return(int64(0), nil)
		m.sales.EXPECT().CreateRefund(gomock.Any(), gomock.Any()).Return(sales.Refund{ID: 9, TransactionID: 21, Amount: 2999}, nil)

		refund, _, err := b.RecordRefund(context.Background(), 21, 2999, "")

		require.NoError(t, err)
		assert.Equal(t, int64(9), refund.ID)
	})
}

func TestRecordRecurringCharge(t *testing.T) {
	charge := RecurringCharge{
		LocationID:     "loc_1",
		MembershipID:   42,
		CustomerID:     7,
		BillingCycleID: 10,
		Amount:         2999,
		Currency:       "usd",
		ChargedAt:      testNow,
	}

	t.Run("records_shiftless_card_sale", func(t *testing.T) {
		b, m := newTestBusiness(t)
		m.sales.EXPECT().
			CreateTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, arg sales.CreateTransactionParams) (sales.Transaction, error) {
				assert.Equal(t, "recurring-cycle-10", arg.Reference)
				assert.Equal(t, string(model.TransactionSourceRecurring), arg.Source)
				assert.False(t, arg.ShiftID.Valid)
				assert.Equal(t, int64(42), arg.MembershipID.Int64)
				assert.Equal(t, testNow, arg.CreatedAt.Time)
				return echoTransaction(50)(ctx, arg)
			})

		result, err := b.RecordRecurringCharge(context.Background(), charge)

		require.NoError(t, err)
		assert.Equal(t, ledger.TenderCard, result.Tender)
		require.NotNil(t, result.MembershipID)
		assert.Equal(t, int64(42), *result.MembershipID)
	})

	t.Run("second_delivery_is_noop", func(t *testing.T) {
		b, m := newTestBusiness(t)
		m.sales.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(sales.Transaction{}, uniqueViolation())
		m.sales.EXPECT().
			GetTransactionByReference(gomock.Any(), "recurring-cycle-10").
			Return(sales.Transaction{ID: 50, Reference: "recurring-cycle-10"}, nil)

		result, err := b.RecordRecurringCharge(context.Background(), charge)

		require.NoError(t, err)
		assert.Equal(t, int64(50), result.ID)
	})

	t.Run("zero_amount_rejected", func(t *testing.T) {
		b, _ := newTestBusiness(t)
		zero := charge
		zero.Amount = 0

		_, err := b.RecordRecurringCharge(context.Background(), zero)

		assert.Equal(t, errs.InvalidArgument, errs.Code(err))
	})
}
