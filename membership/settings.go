package membership

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"tillpoint.app/membership/model"
)

type BillingSettingsResponse struct {
	LocationID string                `json:"location_id"`
	Settings   model.BillingSettings `json:"settings"`
}

//encore:api public path=/v1/locations/:locationID/billing/settings method=GET
func (s *Service) GetBillingSettings(ctx context.Context, locationID string) (*BillingSettingsResponse, error) {
	settings, err := s.business.LoadSettings(ctx, locationID)
	if err != nil {
		rlog.Error("failed to load billing settings", "error", err, "location_id", locationID)
		return nil, err
	}

	return &BillingSettingsResponse{
		LocationID: locationID,
		Settings:   settings,
	}, nil
}

type UpdateBillingSettingsRequest struct {
	MaxRetryAttempts      int32 `json:"max_retry_attempts" validate:"min=1,max=30"`
	GracePeriodDays       int32 `json:"grace_period_days" validate:"min=0,max=90"`
	AutoSuspendAfterGrace bool  `json:"auto_suspend_after_grace"`
}

//encore:api public path=/v1/locations/:locationID/billing/settings method=PUT
func (s *Service) UpdateBillingSettings(ctx context.Context, locationID string, req *UpdateBillingSettingsRequest) (*BillingSettingsResponse, error) {
	settings, err := s.business.UpdateSettings(ctx, locationID, model.BillingSettings{
		MaxRetryAttempts:      req.MaxRetryAttempts,
		GracePeriodDays:       req.GracePeriodDays,
		AutoSuspendAfterGrace: req.AutoSuspendAfterGrace,
	})
	if err != nil {
		rlog.Error("failed to update billing settings", "error", err, "location_id", locationID)
		return nil, err
	}

	rlog.Info("billing settings updated", "location_id", locationID, "max_retry_attempts", settings.MaxRetryAttempts, "grace_period_days", settings.GracePeriodDays)
	return &BillingSettingsResponse{
		LocationID: locationID,
		Settings:   settings,
	}, nil
}

// Validate implements validation for UpdateBillingSettingsRequest
func (r *UpdateBillingSettingsRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}
