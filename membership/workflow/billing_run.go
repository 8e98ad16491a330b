package workflow

import (
	"errors"
	"fmt"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"tillpoint.app/membership/model"
)

// BillingRunParams contains parameters for a location's billing run
type BillingRunParams struct {
	LocationID string `json:"location_id"`
}

type BillingRunResult struct {
	Results     model.RunResults `json:"results"`
	ProcessedAt time.Time        `json:"processed_at"`
}

// BillingRunWorkflowID is the id of a location's billing run. Only one run per
// location can be open at a time.
func BillingRunWorkflowID(locationID string) string {
	return fmt.Sprintf("billing-run-%s", locationID)
}

// BillingRun bills every due membership of a location, one at a time. A
// membership that errors is recorded and the run moves on.
func BillingRun(ctx workflow.Context, params BillingRunParams) (BillingRunResult, error) {
	logger := workflow.GetLogger(ctx)
	now := workflow.Now(ctx)
	logger.Info("Starting billing run", "locationID", params.LocationID, "now", now)

	settings, err := loadSettings(ctx, params.LocationID)
	if err != nil {
		logger.Error("Failed to load billing settings", "locationID", params.LocationID, "error", err)
		return BillingRunResult{}, err
	}

	ids, err := dueMemberships(ctx, params.LocationID, now)
	if err != nil {
		logger.Error("Failed to select due memberships", "locationID", params.LocationID, "error", err)
		return BillingRunResult{}, err
	}

	results := model.NewRunResults()
	for _, id := range ids {
		outcome, err := processMembership(ctx, id, settings, now)
		results.Record(id, outcome, activityCause(err))
	}

	logger.Info("Billing run completed",
		"locationID", params.LocationID,
		"processed", results.Processed,
		"successful", results.Successful,
		"failed", results.Failed,
		"trialsConverted", results.TrialsConverted,
		"suspended", results.Suspended,
		"errors", len(results.Errors))

	return BillingRunResult{Results: results, ProcessedAt: workflow.Now(ctx)}, nil
}

// activityCause strips the activity envelope so run errors read as the
// business error that caused them.
func activityCause(err error) error {
	if err == nil {
		return nil
	}
	var appErr *temporal.ApplicationError
	if errors.As(err, &appErr) {
		return errors.New(appErr.Message())
	}
	return err
}

func loadSettings(ctx workflow.Context, locationID string) (model.BillingSettings, error) {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    500 * time.Millisecond,
			BackoffCoefficient: 2.0,
			MaximumInterval:    5 * time.Second,
			MaximumAttempts:    3,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)

	var settings model.BillingSettings
	err := workflow.ExecuteActivity(activityCtx, LoadSettingsActivity, locationID).Get(ctx, &settings)
	return settings, err
}

func dueMemberships(ctx workflow.Context, locationID string, now time.Time) ([]int64, error) {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    10 * time.Second,
			MaximumAttempts:    3,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)

	var ids []int64
	err := workflow.ExecuteActivity(activityCtx, DueMembershipsActivity, locationID, now).Get(ctx, &ids)
	return ids, err
}

func processMembership(ctx workflow.Context, membershipID int64, settings model.BillingSettings, now time.Time) (model.Outcome, error) {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 2 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 1,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)

	var outcome model.Outcome
	err := workflow.ExecuteActivity(activityCtx, ProcessMembershipActivity, membershipID, settings, now).Get(ctx, &outcome)
	return outcome, err
}
