package shift

import (
	"context"
	"fmt"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	shiftbiz "tillpoint.app/shift/business/shift"
	"tillpoint.app/shift/model"
	"tillpoint.app/shift/workflow"
)

type StartShiftRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`

	Name           string `json:"name" validate:"required,max=100"`
	OpeningBalance string `json:"opening_balance" validate:"required"`
	AssignedUserID string `json:"assigned_user_id" validate:"required"`
	LocationID     string `json:"location_id" validate:"required"`
}

type ShiftResponse struct {
	Shift model.Shift `json:"shift"`
}

//encore:api public path=/v1/shifts method=POST tag:idempotency
func (s *Service) StartShift(ctx context.Context, req *StartShiftRequest) (*ShiftResponse, error) {
	result, err := s.business.StartShift(ctx, shiftbiz.StartShiftInput{
		Name:           req.Name,
		OpeningBalance: req.OpeningBalance,
		AssignedUserID: req.AssignedUserID,
		LocationID:     req.LocationID,
	})
	if err != nil {
		rlog.Error("failed to start shift", "error", err, "location_id", req.LocationID, "user_id", req.AssignedUserID)
		return nil, err
	}

	// The shift is open either way; without a session it simply has no time limit.
	if wfErr := s.startShiftSession(ctx, result); wfErr != nil {
		rlog.Error("shift session start issue", "shift_id", result.ID, "workflow_id", workflow.ShiftSessionWorkflowID(result.ID), "error", wfErr)
	}

	publishShiftEvent(result)

	return &ShiftResponse{
		Shift: *result,
	}, nil
}

func (r *StartShiftRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}

func (s *Service) startShiftSession(ctx context.Context, opened *model.Shift) error {
	workflowID := workflow.ShiftSessionWorkflowID(opened.ID)

	options := client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: cfg.TaskQueue(),
	}

	params := workflow.ShiftSessionParams{
		ShiftID:     opened.ID,
		StartTime:   opened.StartTime,
		MaxDuration: time.Duration(cfg.MaxShiftHours()) * time.Hour,
	}

	_, err := s.temporal.ExecuteWorkflow(ctx, options, workflow.ShiftSession, params)
	if err != nil {
		if temporal.IsWorkflowExecutionAlreadyStartedError(err) {
			rlog.Info("shift session already started", "shift_id", opened.ID, "workflow_id", workflowID)
			return nil
		}
		return fmt.Errorf("execute workflow %s: %w", workflowID, err)
	}
	return nil
}

// endShiftSession stops the session timer of a shift closed through the API.
func (s *Service) endShiftSession(closed *model.Shift) {
	workflowID := workflow.ShiftSessionWorkflowID(closed.ID)
	signal := workflow.ShiftEndedSignal{
		Reason:      closed.ForceCloseReason,
		ForceClosed: closed.ForceClosed,
	}
	runAsync("signal shift ended", func(ctx context.Context) error {
		return s.temporal.SignalWorkflow(ctx, workflowID, "", workflow.ShiftEndedSignalName, signal)
	})
}
