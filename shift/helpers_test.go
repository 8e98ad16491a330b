package shift

import (
	"context"
	"testing"
	"time"

	"go.temporal.io/sdk/mocks"
	"go.uber.org/mock/gomock"

	"tillpoint.app/ledger"
	"tillpoint.app/shift/mocks/business/shift_business"
	"tillpoint.app/shift/model"
)

// Run tests using `encore test`, which compiles the Encore app and then runs `go test`.

var testTime = time.Date(2025, 3, 15, 18, 30, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *shift_business.MockBusiness, *mocks.Client) {
	original := runAsync
	runAsync = func(op string, fn func(ctx context.Context) error) { _ = fn(context.Background()) }
	t.Cleanup(func() { runAsync = original })

	ctrl := gomock.NewController(t)
	mockBusiness := shift_business.NewMockBusiness(ctrl)
	mockTemporal := mocks.NewClient(t)
	return &Service{business: mockBusiness, temporal: mockTemporal}, mockBusiness, mockTemporal
}

func amountPtr(cents int64) *ledger.Amount {
	a := ledger.Amount(cents)
	return &a
}

func openShift(id int64) *model.Shift {
	return &model.Shift{
		ID:             id,
		Name:           "Evening",
		LocationID:     "loc_1",
		AssignedUserID: "user_1",
		Status:         model.ShiftStatusActive,
		OpeningBalance: 10000,
		StartTime:      testTime,
	}
}

func closedShift(id int64, forced bool) *model.Shift {
	s := openShift(id)
	s.Status = model.ShiftStatusClosed
	end := testTime.Add(8 * time.Hour)
	s.EndTime = &end
	s.ExpectedBalance = amountPtr(14000)
	s.ClosingBalance = amountPtr(13950)
	s.CashDiscrepancy = amountPtr(-50)
	s.TotalSales = amountPtr(7500)
	if forced {
		s.ClosingBalance = amountPtr(14000)
		s.CashDiscrepancy = amountPtr(0)
		s.ForceClosed = true
		s.ForceCloseReason = "till jammed"
	}
	return s
}
