package billing

import (
	"fmt"
	"slices"
	"time"

	"tillpoint.app/ledger"
	"tillpoint.app/membership/domain"
	"tillpoint.app/membership/model"
)

// InvoiceDueDays is how long an invoice stays open after a billing attempt.
const InvoiceDueDays = 7

// StateUpdate is the membership billing state written after one pass.
type StateUpdate struct {
	Status                model.BillingStatus
	NextBillingDate       *time.Time
	LastBilledDate        *time.Time
	FailedPaymentAttempts int32
	GracePeriodEnd        *time.Time
}

func nextBillingDate(now time.Time) time.Time {
	return now.AddDate(0, 1, 0)
}

// IsDue reports whether a membership is selected for billing at now.
func IsDue(m model.Membership, now time.Time) bool {
	if !slices.Contains(model.BillableTypes, m.BillingType) {
		return false
	}
	if !slices.Contains(model.BillableStatuses, m.BillingStatus) {
		return false
	}
	return m.NextBillingDate == nil || !m.NextBillingDate.After(now)
}

// TrialExpired reports whether a trial membership must convert to active. A
// trial without an end date is treated as over. A converting membership is not
// billed in the same pass; it bills on the next cycle one month later.
func TrialExpired(m model.Membership, now time.Time) bool {
	if m.BillingStatus != model.BillingStatusTrial {
		return false
	}
	return m.TrialEndDate == nil || now.After(*m.TrialEndDate)
}

// ConvertTrial returns the state of a trial membership after conversion.
func ConvertTrial(m model.Membership, now time.Time) (StateUpdate, error) {
	status, err := domain.Transition(m.BillingStatus, model.BillingStatusActive)
	if err != nil {
		return StateUpdate{}, err
	}
	next := nextBillingDate(now)
	return StateUpdate{
		Status:                status,
		NextBillingDate:       &next,
		LastBilledDate:        m.LastBilledDate,
		FailedPaymentAttempts: m.FailedPaymentAttempts,
		GracePeriodEnd:        m.GracePeriodEnd,
	}, nil
}

// UsageWindow is the metering window for a membership: from the last billing
// (or enrollment when never billed) up to now.
func UsageWindow(m model.Membership, now time.Time) ledger.Window {
	start := m.CreatedAt
	if m.LastBilledDate != nil {
		start = *m.LastBilledDate
	}
	if start.After(now) {
		start = now
	}
	return ledger.Window{Start: start, End: now}
}

// ComputeAmount returns the amount owed in minor units. Fixed plans always
// owe the plan price. Usage plans add transactionCount at the usage rate only
// when the plan is usage based with a positive rate.
func ComputeAmount(m model.Membership, plan model.Plan, transactionCount int64) int64 {
	if !Metered(m, plan) {
		return plan.PriceCents
	}
	return plan.PriceCents + transactionCount*plan.UsageRateCents
}

func Metered(m model.Membership, plan model.Plan) bool {
	return m.BillingType == model.BillingTypeHybridUsage && plan.UsageBased && plan.UsageRateCents > 0
}

// ApplyPaymentSuccess clears the failure counters and schedules the next cycle.
func ApplyPaymentSuccess(m model.Membership, now time.Time) (StateUpdate, error) {
	status, err := domain.Transition(m.BillingStatus, model.BillingStatusActive)
	if err != nil {
		return StateUpdate{}, err
	}
	next := nextBillingDate(now)
	billed := now
	return StateUpdate{
		Status:                status,
		NextBillingDate:       &next,
		LastBilledDate:        &billed,
		FailedPaymentAttempts: 0,
		GracePeriodEnd:        nil,
	}, nil
}

// ApplyPaymentFailure counts the failed attempt and opens a grace period. Once
// the attempts reach the retry limit the membership is suspended, unless the
// location disabled auto suspension, in which case it stays past due.
// The billing dates are left untouched so the next run retries.
func ApplyPaymentFailure(m model.Membership, settings model.BillingSettings, now time.Time) (StateUpdate, error) {
	attempts := m.FailedPaymentAttempts + 1
	grace := now.AddDate(0, 0, int(settings.GracePeriodDays))

	target := model.BillingStatusPastDue
	if attempts >= settings.MaxRetryAttempts && settings.AutoSuspendAfterGrace {
		target = model.BillingStatusSuspended
	}

	status, err := domain.Transition(m.BillingStatus, target)
	if err != nil {
		return StateUpdate{}, err
	}
	return StateUpdate{
		Status:                status,
		NextBillingDate:       m.NextBillingDate,
		LastBilledDate:        m.LastBilledDate,
		FailedPaymentAttempts: attempts,
		GracePeriodEnd:        &grace,
	}, nil
}

// AdvanceWithoutCharge moves the schedule forward when nothing is owed.
func AdvanceWithoutCharge(m model.Membership, now time.Time) StateUpdate {
	next := nextBillingDate(now)
	billed := now
	return StateUpdate{
		Status:                m.BillingStatus,
		NextBillingDate:       &next,
		LastBilledDate:        &billed,
		FailedPaymentAttempts: m.FailedPaymentAttempts,
		GracePeriodEnd:        m.GracePeriodEnd,
	}
}

// IdempotencyKey identifies one charge attempt. Two runs that read the same
// membership state derive the same key, so only one of them can open the
// billing cycle and the processor deduplicates the charge.
func IdempotencyKey(m model.Membership) string {
	var due int64
	if m.NextBillingDate != nil {
		due = m.NextBillingDate.Unix()
	}
	return fmt.Sprintf("membership-%d-due-%d-attempt-%d", m.ID, due, m.FailedPaymentAttempts)
}
