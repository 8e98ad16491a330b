package model

import (
	"time"
)

type Membership struct {
	ID                    int64         `json:"id"`
	LocationID            string        `json:"location_id"`
	CustomerID            int64         `json:"customer_id"`
	PlanID                int64         `json:"plan_id"`
	BillingType           BillingType   `json:"billing_type"`
	BillingStatus         BillingStatus `json:"billing_status"`
	TrialEndDate          *time.Time    `json:"trial_end_date,omitempty"`
	LastBilledDate        *time.Time    `json:"last_billed_date,omitempty"`
	NextBillingDate       *time.Time    `json:"next_billing_date,omitempty"`
	FailedPaymentAttempts int32         `json:"failed_payment_attempts"`
	GracePeriodEnd        *time.Time    `json:"grace_period_end,omitempty"`
	ProcessorCustomerID   *string       `json:"processor_customer_id,omitempty"`
	CreatedAt             time.Time     `json:"created_at"`
	UpdatedAt             time.Time     `json:"updated_at"`
}

type BillingType string

const (
	BillingTypeHybridFixed BillingType = "hybrid_fixed"
	BillingTypeHybridUsage BillingType = "hybrid_usage"
)

type BillingStatus string

const (
	BillingStatusTrial     BillingStatus = "trial"
	BillingStatusActive    BillingStatus = "active"
	BillingStatusPastDue   BillingStatus = "past_due"
	BillingStatusSuspended BillingStatus = "suspended"
)

// BillableTypes and BillableStatuses select memberships for a billing run.
var (
	BillableTypes    = []BillingType{BillingTypeHybridUsage, BillingTypeHybridFixed}
	BillableStatuses = []BillingStatus{BillingStatusActive, BillingStatusTrial, BillingStatusPastDue}
)

type Plan struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	PriceCents     int64  `json:"price_cents"`
	UsageBased     bool   `json:"usage_based"`
	UsageRateCents int64  `json:"usage_rate_cents"`
	Currency       string `json:"currency"`
}

type Customer struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
