package billing

import (
	"context"
	"time"

	"tillpoint.app/membership/model"
	"tillpoint.app/membership/store/billingcycles"
	"tillpoint.app/membership/store/memberships"
	"tillpoint.app/payments"
)

//go:generate mockgen -destination=../../mocks/business/billing_business/business.go -package=billing_business tillpoint.app/membership/business/billing Business

type Business interface {
	DueMemberships(ctx context.Context, locationID string, now time.Time) ([]int64, error)
	ListLocationsDue(ctx context.Context, now time.Time) ([]string, error)
	LoadSettings(ctx context.Context, locationID string) (model.BillingSettings, error)
	UpdateSettings(ctx context.Context, locationID string, settings model.BillingSettings) (model.BillingSettings, error)
	ProcessMembership(ctx context.Context, membershipID int64, settings model.BillingSettings, now time.Time) (model.Outcome, error)

	GetMembership(ctx context.Context, id int64) (*model.Membership, error)
	ListBillingCycles(ctx context.Context, membershipID int64) ([]model.BillingCycle, error)
	RecordUsage(ctx context.Context, membershipID int64, at time.Time, transactionCount int32) error
}

// RecurringCharge is the sales-ledger entry written after a successful charge
// so recurring revenue shows up in normal sales reporting.
type RecurringCharge struct {
	LocationID         string
	MembershipID       int64
	CustomerID         int64
	BillingCycleID     int64
	AmountCents        int64
	Currency           string
	ProcessorPaymentID string
	ChargedAt          time.Time
}

type TransactionRecorder interface {
	RecordRecurringCharge(ctx context.Context, charge RecurringCharge) error
}

type business struct {
	membershipRepo memberships.Querier
	cycleRepo      billingcycles.Querier
	processor      payments.Processor
	recorder       TransactionRecorder
	currency       string
}

// NewBillingBusiness creates the billing engine business layer
func NewBillingBusiness(
	membershipRepo memberships.Querier,
	cycleRepo billingcycles.Querier,
	processor payments.Processor,
	recorder TransactionRecorder,
	currency string,
) Business {
	return &business{
		membershipRepo: membershipRepo,
		cycleRepo:      cycleRepo,
		processor:      processor,
		recorder:       recorder,
		currency:       currency,
	}
}
