package memberships

import (
	"context"
)

//go:generate mockgen -destination=../../mocks/repository/membership_repo/querier.go -package=membership_repo tillpoint.app/membership/store/memberships Querier

type Querier interface {
	ListDueMemberships(ctx context.Context, arg ListDueMembershipsParams) ([]Membership, error)
	ListLocationsWithDueMemberships(ctx context.Context, arg ListLocationsWithDueMembershipsParams) ([]string, error)
	GetMembership(ctx context.Context, id int64) (Membership, error)
	GetPlan(ctx context.Context, id int64) (MembershipPlan, error)
	GetCustomer(ctx context.Context, id int64) (Customer, error)
	SetProcessorCustomerID(ctx context.Context, arg SetProcessorCustomerIDParams) error
	ConvertTrial(ctx context.Context, arg ConvertTrialParams) (Membership, error)
	CreateTrialConversion(ctx context.Context, arg CreateTrialConversionParams) error
	UpdateBillingState(ctx context.Context, arg UpdateBillingStateParams) (Membership, error)
	SumUsage(ctx context.Context, arg SumUsageParams) (int64, error)
	UpsertUsage(ctx context.Context, arg UpsertUsageParams) error
	GetBillingSettings(ctx context.Context, locationID string) (BillingSetting, error)
	UpsertBillingSettings(ctx context.Context, arg UpsertBillingSettingsParams) (BillingSetting, error)
}

var _ Querier = (*Queries)(nil)
