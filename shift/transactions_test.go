package shift

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"
	"encore.dev/et"

	"tillpoint.app/ledger"
	shiftbiz "tillpoint.app/shift/business/shift"
	"tillpoint.app/shift/model"
)

func TestRecordSale(t *testing.T) {
	shiftID := int64(31)
	membershipID := int64(42)

	t.Run("records_and_publishes", func(t *testing.T) {
		service, mockBusiness, _ := newTestService(t)
		mockBusiness.EXPECT().
			RecordSale(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, sale *model.Transaction) (*model.Transaction, error) {
				assert.Equal(t, ledger.Amount(1250), sale.TotalAmount)
				assert.Equal(t, "usd", sale.Currency)
				saved := *sale
				saved.ID = 500
				saved.Source = model.TransactionSourcePOS
				saved.CreatedAt = testTime
				return &saved, nil
			})

		resp, err := service.RecordSale(context.Background(), &RecordSaleRequest{
			LocationID:    "loc_1",
			ShiftID:       &shiftID,
			MembershipID:  &membershipID,
			PaymentMethod: "cash",
			TotalAmount:   "12.50",
			Currency:      "USD",
			Reference:     "pos-1001",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(500), resp.Transaction.ID)

		events := et.Topic(TransactionEvents).PublishedMessages()
		require.NotEmpty(t, events)
		last := events[len(events)-1]
		assert.Equal(t, TransactionEventSale, last.Kind)
		assert.Equal(t, int64(500), last.TransactionID)
		require.NotNil(t, last.MembershipID)
		assert.Equal(t, int64(42), *last.MembershipID)
	})

	t.Run("bad_amount_never_reaches_ledger", func(t *testing.T) {
		service, _, _ := newTestService(t)

		_, err := service.RecordSale(context.Background(), &RecordSaleRequest{
			LocationID:    "loc_1",
			PaymentMethod: "cash",
			TotalAmount:   "12.505",
		})

		assert.Equal(t, errs.InvalidArgument, errs.Code(err))
	})

	t.Run("closed_shift", func(t *testing.T) {
		service, mockBusiness, _ := newTestService(t)
		mockBusiness.EXPECT().
			RecordSale(gomock.Any(), gomock.Any()).
			Return(nil, &errs.Error{Code: errs.FailedPrecondition, Message: "shift is closed"})

		_, err := service.RecordSale(context.Background(), &RecordSaleRequest{
			LocationID:    "loc_1",
			ShiftID:       &shiftID,
			PaymentMethod: "cash",
			TotalAmount:   "1.00",
		})

		assert.Equal(t, errs.FailedPrecondition, errs.Code(err))
	})
}

func TestRecordRefund(t *testing.T) {
	shiftID := int64(31)

	t.Run("refund_published_with_refund_amount", func(t *testing.T) {
		service, mockBusiness, _ := newTestService(t)
		mockBusiness.EXPECT().
			RecordRefund(gomock.Any(), int64(500), ledger.Amount(300), "wrong size").
			Return(
				&model.Refund{ID: 9, TransactionID: 500, Amount: 300, CreatedAt: testTime},
				&model.Transaction{ID: 500, LocationID: "loc_1", ShiftID: &shiftID, PaymentMethod: "cash", TotalAmount: 1250},
				nil,
			)

		resp, err := service.RecordRefund(context.Background(), 500, &RecordRefundRequest{Amount: "3.00", Reason: "wrong size"})

		require.NoError(t, err)
		assert.Equal(t, int64(9), resp.Refund.ID)

		events := et.Topic(TransactionEvents).PublishedMessages()
		require.NotEmpty(t, events)
		last := events[len(events)-1]
		assert.Equal(t, TransactionEventRefund, last.Kind)
		assert.Equal(t, int64(300), last.AmountCents)
		require.NotNil(t, last.RefundID)
	})

	t.Run("over_refund_rejected", func(t *testing.T) {
		service, mockBusiness, _ := newTestService(t)
		mockBusiness.EXPECT().
			RecordRefund(gomock.Any(), int64(500), ledger.Amount(5000), "").
			Return(nil, nil, &errs.Error{Code: errs.FailedPrecondition, Message: "refund exceeds refundable amount of 12.50"})

		_, err := service.RecordRefund(context.Background(), 500, &RecordRefundRequest{Amount: "50"})

		require.Error(t, err)
		assert.Equal(t, errs.FailedPrecondition, errs.Code(err))
	})
}

func TestRecordRecurringCharge(t *testing.T) {
	service, mockBusiness, _ := newTestService(t)
	mockBusiness.EXPECT().
		RecordRecurringCharge(gomock.Any(), shiftbiz.RecurringCharge{
			LocationID:     "loc_1",
			MembershipID:   42,
			CustomerID:     7,
			BillingCycleID: 10,
			Amount:         2999,
			Currency:       "usd",
			ChargedAt:      testTime,
		}).
		Return(&model.Transaction{ID: 600, LocationID: "loc_1", Source: model.TransactionSourceRecurring, TotalAmount: 2999}, nil)

	resp, err := service.RecordRecurringCharge(context.Background(), &RecordRecurringChargeRequest{
		LocationID:         "loc_1",
		MembershipID:       42,
		CustomerID:         7,
		BillingCycleID:     10,
		AmountCents:        2999,
		Currency:           "usd",
		ProcessorPaymentID: "pi_1",
		ChargedAt:          testTime,
	})

	require.NoError(t, err)
	assert.Equal(t, model.TransactionSourceRecurring, resp.Transaction.Source)
}
