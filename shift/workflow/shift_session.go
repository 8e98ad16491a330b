package workflow

import (
	"fmt"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

// AutoForceCloseReason is recorded on shifts closed by the session timer.
const AutoForceCloseReason = "auto_force_close"

type ShiftSessionParams struct {
	ShiftID     int64         `json:"shift_id"`
	StartTime   time.Time     `json:"start_time"`
	MaxDuration time.Duration `json:"max_duration"`
}

func ShiftSessionWorkflowID(shiftID int64) string {
	return fmt.Sprintf("shift-session-%d", shiftID)
}

// ShiftSession watches an open shift. It ends when the shift is closed through
// the API, or force closes the shift once MaxDuration has passed since it
// started. A zero MaxDuration disables the timer.
func ShiftSession(ctx workflow.Context, params ShiftSessionParams) error {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting shift session workflow", "shiftID", params.ShiftID, "startTime", params.StartTime, "maxDuration", params.MaxDuration)

	endedCh := workflow.GetSignalChannel(ctx, ShiftEndedSignalName)

	if params.MaxDuration <= 0 {
		var signal ShiftEndedSignal
		endedCh.Receive(ctx, &signal)
		logger.Info("Shift ended", "shiftID", params.ShiftID, "reason", signal.Reason)
		return nil
	}

	remaining := params.StartTime.Add(params.MaxDuration).Sub(workflow.Now(ctx))
	if remaining <= 0 {
		logger.Warn("Shift already past its maximum duration, closing immediately", "shiftID", params.ShiftID)
		return forceCloseShift(ctx, params.ShiftID)
	}

	timerCtx, cancelTimer := workflow.WithCancel(ctx)
	timer := workflow.NewTimer(timerCtx, remaining)

	var err error
	selector := workflow.NewSelector(ctx)

	selector.AddReceive(endedCh, func(c workflow.ReceiveChannel, more bool) {
		var signal ShiftEndedSignal
		c.Receive(ctx, &signal)
		cancelTimer()
		logger.Info("Shift ended", "shiftID", params.ShiftID, "reason", signal.Reason, "forceClosed", signal.ForceClosed)
	})

	selector.AddFuture(timer, func(f workflow.Future) {
		logger.Info("Shift reached its maximum duration", "shiftID", params.ShiftID)
		err = forceCloseShift(ctx, params.ShiftID)
		if err != nil {
			logger.Error("Failed to auto force close shift", "shiftID", params.ShiftID, "error", err)
		}
	})

	selector.Select(ctx)

	logger.Info("Shift session workflow completed", "shiftID", params.ShiftID)
	return err
}

func forceCloseShift(ctx workflow.Context, shiftID int64) error {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    30 * time.Second,
			MaximumAttempts:    6,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)
	return workflow.ExecuteActivity(activityCtx, ForceCloseShiftActivity, shiftID, AutoForceCloseReason).Get(ctx, nil)
}
