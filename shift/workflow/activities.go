package workflow

import (
	"context"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"encore.dev/beta/errs"

	"tillpoint.app/shift/business/shift"
	"tillpoint.app/shift/model"
)

// ClosedNotifier is told about shifts the session closes on its own.
type ClosedNotifier interface {
	ShiftClosed(ctx context.Context, s *model.Shift)
}

type ActivityDependencies struct {
	ShiftBusiness shift.Business
	Notifier      ClosedNotifier
}

var activityDeps *ActivityDependencies

// SetActivityDependencies sets the dependencies for activities
func SetActivityDependencies(shiftBusiness shift.Business, notifier ClosedNotifier) {
	activityDeps = &ActivityDependencies{
		ShiftBusiness: shiftBusiness,
		Notifier:      notifier,
	}
}

// ForceCloseShiftActivity force closes a shift that outlived its maximum
// duration. A shift that is already closed is left alone.
func ForceCloseShiftActivity(ctx context.Context, shiftID int64, reason string) error {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing force close shift activity", "shiftID", shiftID, "reason", reason)

	if activityDeps == nil || activityDeps.ShiftBusiness == nil {
		logger.Error("Activity dependencies not set")
		return temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	closed, err := activityDeps.ShiftBusiness.ForceCloseShift(ctx, shiftID, reason)
	switch errs.Code(err) {
	case errs.OK:
	case errs.FailedPrecondition:
		logger.Info("Shift already closed, nothing to do", "shiftID", shiftID)
		return nil
	case errs.NotFound:
		return temporal.NewNonRetryableApplicationError("shift not found", "SHIFT_NOT_FOUND", err)
	default:
		logger.Error("Failed to force close shift", "shiftID", shiftID, "error", err)
		return err
	}

	if activityDeps.Notifier != nil {
		activityDeps.Notifier.ShiftClosed(ctx, closed)
	}

	logger.Info("Successfully force closed shift", "shiftID", shiftID, "closingBalance", closed.ClosingBalance)
	return nil
}
