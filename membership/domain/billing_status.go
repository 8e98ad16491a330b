package domain

import (
	"fmt"

	"tillpoint.app/membership/model"
)

// billingTransitions lists every legal billing status change. Statuses only
// move forward along trial -> active -> past_due -> suspended, except that a
// successful payment returns a past_due membership to active. Self loops cover
// repeated successes and repeated failures.
var billingTransitions = map[model.BillingStatus][]model.BillingStatus{
	model.BillingStatusTrial: {
		model.BillingStatusActive,
		model.BillingStatusPastDue,
		model.BillingStatusSuspended,
	},
	model.BillingStatusActive: {
		model.BillingStatusActive,
		model.BillingStatusPastDue,
		model.BillingStatusSuspended,
	},
	model.BillingStatusPastDue: {
		model.BillingStatusActive,
		model.BillingStatusPastDue,
		model.BillingStatusSuspended,
	},
	model.BillingStatusSuspended: {},
}

// InvalidTransitionError is returned for a status change outside the table.
type InvalidTransitionError struct {
	From model.BillingStatus
	To   model.BillingStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("illegal billing status transition %s -> %s", e.From, e.To)
}

func CanTransition(from, to model.BillingStatus) bool {
	for _, next := range billingTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition validates a status change and returns the new status.
func Transition(from, to model.BillingStatus) (model.BillingStatus, error) {
	if !CanTransition(from, to) {
		return from, &InvalidTransitionError{From: from, To: to}
	}
	return to, nil
}
