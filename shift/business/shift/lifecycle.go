package shift

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"tillpoint.app/ledger"
	"tillpoint.app/shift/domain"
	"tillpoint.app/shift/model"
	"tillpoint.app/shift/store/shifts"
)

func (b *business) StartShift(ctx context.Context, input StartShiftInput) (*model.Shift, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "shift name is required"}
	}
	if strings.TrimSpace(input.LocationID) == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "location id is required"}
	}
	if strings.TrimSpace(input.AssignedUserID) == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "assigned user id is required"}
	}
	opening, err := ledger.ParseAmount(input.OpeningBalance)
	if err != nil {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid opening balance"}
	}
	if opening.IsNegative() {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "opening balance cannot be negative"}
	}

	_, err = b.shiftRepo.GetOpenShift(ctx, shifts.GetOpenShiftParams{
		AssignedUserID: input.AssignedUserID,
		LocationID:     input.LocationID,
	})
	switch {
	case err == nil:
		return nil, &errs.Error{Code: errs.AlreadyExists, Message: "user already has an open shift at this location"}
	case !errors.Is(err, pgx.ErrNoRows):
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to check open shifts"}
	}

	dbShift, err := b.shiftRepo.CreateShift(ctx, shifts.CreateShiftParams{
		Name:           name,
		LocationID:     input.LocationID,
		AssignedUserID: input.AssignedUserID,
		OpeningBalance: opening.Cents(),
		StartTime:      timestamptz(b.now()),
	})
	if err != nil {
		// The partial unique index catches two starts racing past the check above.
		if isUniqueViolation(err) {
			return nil, &errs.Error{Code: errs.AlreadyExists, Message: "user already has an open shift at this location"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to create shift"}
	}

	return convertDBShiftToModel(dbShift), nil
}

func (b *business) PauseShift(ctx context.Context, id int64) (*model.Shift, error) {
	return b.setStatus(ctx, id, domain.ActionPause)
}

func (b *business) ResumeShift(ctx context.Context, id int64) (*model.Shift, error) {
	return b.setStatus(ctx, id, domain.ActionResume)
}

func (b *business) setStatus(ctx context.Context, id int64, action domain.Action) (*model.Shift, error) {
	updated, err := b.stateMachine.Transition(ctx, id, action,
		func(q domain.TxQueries, _ shifts.Shift, next model.ShiftStatus) (shifts.Shift, error) {
			var pausedAt pgtype.Timestamptz
			if next == model.ShiftStatusPaused {
				pausedAt = timestamptz(b.now())
			}
			row, err := q.Shifts.UpdateShiftStatus(ctx, shifts.UpdateShiftStatusParams{
				ID:       id,
				Status:   string(next),
				PausedAt: pausedAt,
			})
			if err != nil {
				return shifts.Shift{}, &errs.Error{Code: errs.Internal, Message: "failed to update shift status"}
			}
			return row, nil
		})
	if err != nil {
		return nil, err
	}
	return convertDBShiftToModel(updated), nil
}

func (b *business) GetShift(ctx context.Context, id int64) (*model.Shift, error) {
	dbShift, err := b.shiftRepo.GetShift(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "shift not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get shift"}
	}
	return convertDBShiftToModel(dbShift), nil
}

func (b *business) ListShifts(ctx context.Context, filter ListShiftsFilter) ([]*model.Shift, int64, error) {
	var status pgtype.Text
	if filter.Status != nil {
		status = pgtype.Text{String: string(*filter.Status), Valid: true}
	}

	rows, err := b.shiftRepo.ListShifts(ctx, shifts.ListShiftsParams{
		LocationID: filter.LocationID,
		Status:     status,
		Limit:      filter.Limit,
		Offset:     filter.Offset,
	})
	if err != nil {
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to list shifts"}
	}

	total, err := b.shiftRepo.CountShifts(ctx, shifts.CountShiftsParams{
		LocationID: filter.LocationID,
		Status:     status,
	})
	if err != nil {
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to count shifts"}
	}

	result := make([]*model.Shift, 0, len(rows))
	for _, row := range rows {
		result = append(result, convertDBShiftToModel(row))
	}
	return result, total, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
