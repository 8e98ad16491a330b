package workflow

import (
	"context"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"tillpoint.app/membership/business/billing"
	"tillpoint.app/membership/model"
)

// ActivityDependencies holds the dependencies needed by billing activities
type ActivityDependencies struct {
	BillingBusiness billing.Business
}

var activityDeps *ActivityDependencies

// SetActivityDependencies sets the dependencies for activities
func SetActivityDependencies(billingBusiness billing.Business) {
	activityDeps = &ActivityDependencies{
		BillingBusiness: billingBusiness,
	}
}

func dependencyError(ctx context.Context) error {
	if activityDeps == nil || activityDeps.BillingBusiness == nil {
		activity.GetLogger(ctx).Error("Activity dependencies not set")
		return temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}
	return nil
}

// LoadSettingsActivity loads the location's retry and suspension policy
func LoadSettingsActivity(ctx context.Context, locationID string) (model.BillingSettings, error) {
	if err := dependencyError(ctx); err != nil {
		return model.BillingSettings{}, err
	}

	settings, err := activityDeps.BillingBusiness.LoadSettings(ctx, locationID)
	if err != nil {
		activity.GetLogger(ctx).Error("Failed to load billing settings", "locationID", locationID, "error", err)
		return model.BillingSettings{}, err
	}
	return settings, nil
}

// DueMembershipsActivity selects the memberships to bill in this run
func DueMembershipsActivity(ctx context.Context, locationID string, now time.Time) ([]int64, error) {
	if err := dependencyError(ctx); err != nil {
		return nil, err
	}

	logger := activity.GetLogger(ctx)
	ids, err := activityDeps.BillingBusiness.DueMemberships(ctx, locationID, now)
	if err != nil {
		logger.Error("Failed to select due memberships", "locationID", locationID, "error", err)
		return nil, err
	}

	logger.Info("Selected due memberships", "locationID", locationID, "count", len(ids))
	return ids, nil
}

// ProcessMembershipActivity runs one billing attempt for a membership. It is
// never retried by Temporal: a retry would be a second charge attempt, which
// only the billing state machine may schedule.
func ProcessMembershipActivity(ctx context.Context, membershipID int64, settings model.BillingSettings, now time.Time) (model.Outcome, error) {
	if err := dependencyError(ctx); err != nil {
		return model.Outcome{}, err
	}

	logger := activity.GetLogger(ctx)
	outcome, err := activityDeps.BillingBusiness.ProcessMembership(ctx, membershipID, settings, now)
	if err != nil {
		logger.Error("Failed to process membership", "membershipID", membershipID, "error", err)
		return model.Outcome{}, temporal.NewNonRetryableApplicationError(err.Error(), "MEMBERSHIP_BILLING_FAILED", err)
	}

	logger.Info("Processed membership", "membershipID", membershipID, "outcome", outcome.Kind, "status", outcome.Status)
	if outcome.Warning != "" {
		logger.Warn("Membership billing completed with warning", "membershipID", membershipID, "warning", outcome.Warning)
	}
	return outcome, nil
}
