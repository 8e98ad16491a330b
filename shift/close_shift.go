package shift

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
)

type CloseShiftRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`

	// ActualBalance is the counted drawer, e.g. "325.00".
	ActualBalance string `json:"actual_balance" validate:"required"`
}

//encore:api public path=/v1/shifts/:id/close method=POST tag:idempotency
func (s *Service) CloseShift(ctx context.Context, id int64, req *CloseShiftRequest) (*ShiftResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid shift ID"}
	}

	result, err := s.business.CloseShift(ctx, id, req.ActualBalance)
	if err != nil {
		rlog.Error("failed to close shift", "error", err, "id", id)
		return nil, err
	}

	rlog.Info("shift closed", "id", id, "expected_balance", result.ExpectedBalance, "cash_discrepancy", result.CashDiscrepancy)

	invalidateSummary(ctx, &result.ID)
	publishShiftEvent(result)
	s.endShiftSession(result)

	return &ShiftResponse{
		Shift: *result,
	}, nil
}

func (r *CloseShiftRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}

type ForceCloseShiftRequest struct {
	Reason string `json:"reason" validate:"max=255"`
}

// ForceCloseShift closes a shift without a drawer count.
//
//encore:api public path=/v1/shifts/:id/force_close method=POST
func (s *Service) ForceCloseShift(ctx context.Context, id int64, req *ForceCloseShiftRequest) (*ShiftResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid shift ID"}
	}

	result, err := s.business.ForceCloseShift(ctx, id, req.Reason)
	if err != nil {
		rlog.Error("failed to force close shift", "error", err, "id", id)
		return nil, err
	}

	rlog.Warn("shift force closed", "id", id, "reason", result.ForceCloseReason)

	invalidateSummary(ctx, &result.ID)
	publishShiftEvent(result)
	s.endShiftSession(result)

	return &ShiftResponse{
		Shift: *result,
	}, nil
}

func (r *ForceCloseShiftRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}
