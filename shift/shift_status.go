package shift

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"tillpoint.app/shift/model"
)

//encore:api public path=/v1/shifts/:id/pause method=POST
func (s *Service) PauseShift(ctx context.Context, id int64) (*ShiftResponse, error) {
	return s.changeStatus(ctx, id, "pause", s.business.PauseShift)
}

//encore:api public path=/v1/shifts/:id/resume method=POST
func (s *Service) ResumeShift(ctx context.Context, id int64) (*ShiftResponse, error) {
	return s.changeStatus(ctx, id, "resume", s.business.ResumeShift)
}

func (s *Service) changeStatus(ctx context.Context, id int64, action string, apply func(context.Context, int64) (*model.Shift, error)) (*ShiftResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid shift ID"}
	}

	result, err := apply(ctx, id)
	if err != nil {
		rlog.Error("failed to change shift status", "error", err, "id", id, "action", action)
		return nil, err
	}

	invalidateSummary(ctx, &result.ID)
	publishShiftEvent(result)

	return &ShiftResponse{
		Shift: *result,
	}, nil
}
