package memberships

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Membership struct {
	ID                    int64
	LocationID            string
	CustomerID            int64
	PlanID                int64
	BillingType           string
	BillingStatus         string
	TrialEndDate          pgtype.Timestamptz
	LastBilledDate        pgtype.Timestamptz
	NextBillingDate       pgtype.Timestamptz
	FailedPaymentAttempts int32
	GracePeriodEnd        pgtype.Timestamptz
	ProcessorCustomerID   pgtype.Text
	CreatedAt             pgtype.Timestamptz
	UpdatedAt             pgtype.Timestamptz
}

type MembershipPlan struct {
	ID             int64
	Name           string
	PriceCents     int64
	UsageBased     bool
	UsageRateCents int64
	Currency       string
}

type Customer struct {
	ID    int64
	Email pgtype.Text
	Name  pgtype.Text
}

type BillingSetting struct {
	LocationID            string
	MaxRetryAttempts      int32
	GracePeriodDays       int32
	AutoSuspendAfterGrace bool
	UpdatedAt             pgtype.Timestamptz
}
