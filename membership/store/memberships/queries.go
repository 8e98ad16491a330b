package memberships

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const membershipColumns = `id, location_id, customer_id, plan_id, billing_type, billing_status,
	trial_end_date, last_billed_date, next_billing_date, failed_payment_attempts,
	grace_period_end, processor_customer_id, created_at, updated_at`

func scanMembership(row pgx.Row) (Membership, error) {
	var i Membership
	err := row.Scan(
		&i.ID,
		&i.LocationID,
		&i.CustomerID,
		&i.PlanID,
		&i.BillingType,
		&i.BillingStatus,
		&i.TrialEndDate,
		&i.LastBilledDate,
		&i.NextBillingDate,
		&i.FailedPaymentAttempts,
		&i.GracePeriodEnd,
		&i.ProcessorCustomerID,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listDueMemberships = `SELECT ` + membershipColumns + `
FROM memberships
WHERE location_id = $1
  AND billing_type = ANY($2::text[])
  AND billing_status = ANY($3::text[])
  AND (next_billing_date IS NULL OR next_billing_date <= $4)
ORDER BY id`

type ListDueMembershipsParams struct {
	LocationID   string
	BillingTypes []string
	Statuses     []string
	Now          pgtype.Timestamptz
}

func (q *Queries) ListDueMemberships(ctx context.Context, arg ListDueMembershipsParams) ([]Membership, error) {
	rows, err := q.db.Query(ctx, listDueMemberships, arg.LocationID, arg.BillingTypes, arg.Statuses, arg.Now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Membership
	for rows.Next() {
		i, err := scanMembership(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listLocationsWithDueMemberships = `SELECT DISTINCT location_id
FROM memberships
WHERE billing_type = ANY($1::text[])
  AND billing_status = ANY($2::text[])
  AND (next_billing_date IS NULL OR next_billing_date <= $3)
ORDER BY location_id`

type ListLocationsWithDueMembershipsParams struct {
	BillingTypes []string
	Statuses     []string
	Now          pgtype.Timestamptz
}

func (q *Queries) ListLocationsWithDueMemberships(ctx context.Context, arg ListLocationsWithDueMembershipsParams) ([]string, error) {
	rows, err := q.db.Query(ctx, listLocationsWithDueMemberships, arg.BillingTypes, arg.Statuses, arg.Now)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

const getMembership = `SELECT ` + membershipColumns + ` FROM memberships WHERE id = $1`

func (q *Queries) GetMembership(ctx context.Context, id int64) (Membership, error) {
	return scanMembership(q.db.QueryRow(ctx, getMembership, id))
}

const getPlan = `SELECT id, name, price_cents, usage_based, usage_rate_cents, currency
FROM membership_plans
WHERE id = $1`

func (q *Queries) GetPlan(ctx context.Context, id int64) (MembershipPlan, error) {
	row := q.db.QueryRow(ctx, getPlan, id)
	var i MembershipPlan
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.PriceCents,
		&i.UsageBased,
		&i.UsageRateCents,
		&i.Currency,
	)
	return i, err
}

const getCustomer = `SELECT id, email, name FROM customers WHERE id = $1`

func (q *Queries) GetCustomer(ctx context.Context, id int64) (Customer, error) {
	row := q.db.QueryRow(ctx, getCustomer, id)
	var i Customer
	err := row.Scan(&i.ID, &i.Email, &i.Name)
	return i, err
}

const setProcessorCustomerID = `UPDATE memberships
SET processor_customer_id = $2, updated_at = now()
WHERE id = $1`

type SetProcessorCustomerIDParams struct {
	ID                  int64
	ProcessorCustomerID string
}

func (q *Queries) SetProcessorCustomerID(ctx context.Context, arg SetProcessorCustomerIDParams) error {
	_, err := q.db.Exec(ctx, setProcessorCustomerID, arg.ID, arg.ProcessorCustomerID)
	return err
}

const convertTrial = `UPDATE memberships
SET billing_status = 'active', trial_end_date = NULL, next_billing_date = $2, updated_at = now()
WHERE id = $1 AND billing_status = 'trial'
RETURNING ` + membershipColumns

type ConvertTrialParams struct {
	ID              int64
	NextBillingDate pgtype.Timestamptz
}

func (q *Queries) ConvertTrial(ctx context.Context, arg ConvertTrialParams) (Membership, error) {
	return scanMembership(q.db.QueryRow(ctx, convertTrial, arg.ID, arg.NextBillingDate))
}

const createTrialConversion = `INSERT INTO membership_trials (membership_id, trial_end_date, converted_at)
VALUES ($1, $2, $3)`

type CreateTrialConversionParams struct {
	MembershipID int64
	TrialEndDate pgtype.Timestamptz
	ConvertedAt  pgtype.Timestamptz
}

func (q *Queries) CreateTrialConversion(ctx context.Context, arg CreateTrialConversionParams) error {
	_, err := q.db.Exec(ctx, createTrialConversion, arg.MembershipID, arg.TrialEndDate, arg.ConvertedAt)
	return err
}

// The failed_payment_attempts predicate makes the update a compare-and-swap
// against the state the billing pass read.
const updateBillingState = `UPDATE memberships
SET billing_status = $2,
    next_billing_date = $3,
    last_billed_date = $4,
    failed_payment_attempts = $5,
    grace_period_end = $6,
    updated_at = now()
WHERE id = $1 AND failed_payment_attempts = $7
RETURNING ` + membershipColumns

type UpdateBillingStateParams struct {
	ID                    int64
	BillingStatus         string
	NextBillingDate       pgtype.Timestamptz
	LastBilledDate        pgtype.Timestamptz
	FailedPaymentAttempts int32
	GracePeriodEnd        pgtype.Timestamptz
	ExpectedAttempts      int32
}

func (q *Queries) UpdateBillingState(ctx context.Context, arg UpdateBillingStateParams) (Membership, error) {
	return scanMembership(q.db.QueryRow(ctx, updateBillingState,
		arg.ID,
		arg.BillingStatus,
		arg.NextBillingDate,
		arg.LastBilledDate,
		arg.FailedPaymentAttempts,
		arg.GracePeriodEnd,
		arg.ExpectedAttempts,
	))
}

const sumUsage = `SELECT COALESCE(SUM(transaction_count), 0)::bigint
FROM usage_tracking
WHERE membership_id = $1 AND usage_date >= $2 AND usage_date < $3`

type SumUsageParams struct {
	MembershipID int64
	From         pgtype.Date
	To           pgtype.Date
}

func (q *Queries) SumUsage(ctx context.Context, arg SumUsageParams) (int64, error) {
	row := q.db.QueryRow(ctx, sumUsage, arg.MembershipID, arg.From, arg.To)
	var total int64
	err := row.Scan(&total)
	return total, err
}

const upsertUsage = `INSERT INTO usage_tracking (membership_id, usage_date, transaction_count)
VALUES ($1, $2, $3)
ON CONFLICT (membership_id, usage_date)
DO UPDATE SET transaction_count = usage_tracking.transaction_count + EXCLUDED.transaction_count`

type UpsertUsageParams struct {
	MembershipID     int64
	UsageDate        pgtype.Date
	TransactionCount int32
}

func (q *Queries) UpsertUsage(ctx context.Context, arg UpsertUsageParams) error {
	_, err := q.db.Exec(ctx, upsertUsage, arg.MembershipID, arg.UsageDate, arg.TransactionCount)
	return err
}

const getBillingSettings = `SELECT location_id, max_retry_attempts, grace_period_days, auto_suspend_after_grace, updated_at
FROM billing_settings
WHERE location_id = $1`

func (q *Queries) GetBillingSettings(ctx context.Context, locationID string) (BillingSetting, error) {
	row := q.db.QueryRow(ctx, getBillingSettings, locationID)
	var i BillingSetting
	err := row.Scan(
		&i.LocationID,
		&i.MaxRetryAttempts,
		&i.GracePeriodDays,
		&i.AutoSuspendAfterGrace,
		&i.UpdatedAt,
	)
	return i, err
}

const upsertBillingSettings = `INSERT INTO billing_settings (location_id, max_retry_attempts, grace_period_days, auto_suspend_after_grace)
VALUES ($1, $2, $3, $4)
ON CONFLICT (location_id)
DO UPDATE SET max_retry_attempts = EXCLUDED.max_retry_attempts,
              grace_period_days = EXCLUDED.grace_period_days,
              auto_suspend_after_grace = EXCLUDED.auto_suspend_after_grace,
              updated_at = now()
RETURNING location_id, max_retry_attempts, grace_period_days, auto_suspend_after_grace, updated_at`

type UpsertBillingSettingsParams struct {
	LocationID            string
	MaxRetryAttempts      int32
	GracePeriodDays       int32
	AutoSuspendAfterGrace bool
}

func (q *Queries) UpsertBillingSettings(ctx context.Context, arg UpsertBillingSettingsParams) (BillingSetting, error) {
	row := q.db.QueryRow(ctx, upsertBillingSettings,
		arg.LocationID,
		arg.MaxRetryAttempts,
		arg.GracePeriodDays,
		arg.AutoSuspendAfterGrace,
	)
	var i BillingSetting
	err := row.Scan(
		&i.LocationID,
		&i.MaxRetryAttempts,
		&i.GracePeriodDays,
		&i.AutoSuspendAfterGrace,
		&i.UpdatedAt,
	)
	return i, err
}
