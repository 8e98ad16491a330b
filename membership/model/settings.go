package model

const (
	DefaultMaxRetryAttempts      = 5
	DefaultGracePeriodDays       = 5
	DefaultAutoSuspendAfterGrace = true
)

// BillingSettings is the per-location retry and suspension policy.
type BillingSettings struct {
	MaxRetryAttempts      int32 `json:"max_retry_attempts" validate:"min=1,max=30"`
	GracePeriodDays       int32 `json:"grace_period_days" validate:"min=0,max=90"`
	AutoSuspendAfterGrace bool  `json:"auto_suspend_after_grace"`
}

func DefaultBillingSettings() BillingSettings {
	return BillingSettings{
		MaxRetryAttempts:      DefaultMaxRetryAttempts,
		GracePeriodDays:       DefaultGracePeriodDays,
		AutoSuspendAfterGrace: DefaultAutoSuspendAfterGrace,
	}
}
