package billing

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"tillpoint.app/membership/model"
	"tillpoint.app/membership/store/memberships"
)

// LoadSettings returns the location's billing policy, falling back to the
// defaults when the location never configured one.
func (b *business) LoadSettings(ctx context.Context, locationID string) (model.BillingSettings, error) {
	dbSettings, err := b.membershipRepo.GetBillingSettings(ctx, locationID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.DefaultBillingSettings(), nil
		}
		return model.BillingSettings{}, &errs.Error{Code: errs.Internal, Message: "failed to load billing settings"}
	}
	return convertDBSettingsToModel(dbSettings), nil
}

func (b *business) UpdateSettings(ctx context.Context, locationID string, settings model.BillingSettings) (model.BillingSettings, error) {
	dbSettings, err := b.membershipRepo.UpsertBillingSettings(ctx, memberships.UpsertBillingSettingsParams{
		LocationID:            locationID,
		MaxRetryAttempts:      settings.MaxRetryAttempts,
		GracePeriodDays:       settings.GracePeriodDays,
		AutoSuspendAfterGrace: settings.AutoSuspendAfterGrace,
	})
	if err != nil {
		return model.BillingSettings{}, &errs.Error{Code: errs.Internal, Message: "failed to update billing settings"}
	}
	return convertDBSettingsToModel(dbSettings), nil
}
