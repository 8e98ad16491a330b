package shifts

import (
	"context"
)

//go:generate mockgen -destination=../../mocks/repository/shift_repo/querier.go -package=shift_repo tillpoint.app/shift/store/shifts Querier

type Querier interface {
	CreateShift(ctx context.Context, arg CreateShiftParams) (Shift, error)
	GetShift(ctx context.Context, id int64) (Shift, error)
	GetShiftForUpdate(ctx context.Context, id int64) (Shift, error)
	GetShiftForShare(ctx context.Context, id int64) (Shift, error)
	GetOpenShift(ctx context.Context, arg GetOpenShiftParams) (Shift, error)
	ListShifts(ctx context.Context, arg ListShiftsParams) ([]Shift, error)
	CountShifts(ctx context.Context, arg CountShiftsParams) (int64, error)
	UpdateShiftStatus(ctx context.Context, arg UpdateShiftStatusParams) (Shift, error)
	CloseShift(ctx context.Context, arg CloseShiftParams) (Shift, error)
}

var _ Querier = (*Queries)(nil)
