package shift

import (
	"context"
	"time"

	"tillpoint.app/ledger"
	"tillpoint.app/shift/domain"
	"tillpoint.app/shift/model"
	"tillpoint.app/shift/store/sales"
	"tillpoint.app/shift/store/shifts"
)

//go:generate mockgen -destination=../../mocks/business/shift_business/business.go -package=shift_business tillpoint.app/shift/business/shift Business

type Business interface {
	StartShift(ctx context.Context, input StartShiftInput) (*model.Shift, error)
	PauseShift(ctx context.Context, id int64) (*model.Shift, error)
	ResumeShift(ctx context.Context, id int64) (*model.Shift, error)
	CloseShift(ctx context.Context, id int64, actualBalance string) (*model.Shift, error)
	ForceCloseShift(ctx context.Context, id int64, reason string) (*model.Shift, error)
	GetShift(ctx context.Context, id int64) (*model.Shift, error)
	ListShifts(ctx context.Context, filter ListShiftsFilter) ([]*model.Shift, int64, error)
	SalesSummary(ctx context.Context, id int64) (*model.SalesSummary, error)

	RecordSale(ctx context.Context, sale *model.Transaction) (*model.Transaction, error)
	RecordRefund(ctx context.Context, transactionID int64, amount ledger.Amount, reason string) (*model.Refund, *model.Transaction, error)
	RecordRecurringCharge(ctx context.Context, charge RecurringCharge) (*model.Transaction, error)
}

type StartShiftInput struct {
	Name           string
	OpeningBalance string
	AssignedUserID string
	LocationID     string
}

type ListShiftsFilter struct {
	LocationID string
	Status     *model.ShiftStatus
	Limit      int32
	Offset     int32
}

// RecurringCharge is a membership payment recorded as a sale with no shift.
type RecurringCharge struct {
	LocationID     string
	MembershipID   int64
	CustomerID     int64
	BillingCycleID int64
	Amount         ledger.Amount
	Currency       string
	ChargedAt      time.Time
}

// DefaultForceCloseReason is recorded when an administrator gives none.
const DefaultForceCloseReason = "force_close"

type business struct {
	shiftRepo    shifts.Querier
	salesRepo    sales.Querier
	stateMachine domain.StateMachine
	now          func() time.Time
}

// NewShiftBusiness creates the shift reconciliation business layer
func NewShiftBusiness(
	shiftRepo shifts.Querier,
	salesRepo sales.Querier,
	stateMachine domain.StateMachine,
) Business {
	return &business{
		shiftRepo:    shiftRepo,
		salesRepo:    salesRepo,
		stateMachine: stateMachine,
		now:          time.Now,
	}
}
