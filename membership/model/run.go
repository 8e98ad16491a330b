package model

import (
	"fmt"
)

// OutcomeKind tags the result of one membership's billing pass.
type OutcomeKind string

const (
	OutcomeTrialConverted OutcomeKind = "trial_converted"
	OutcomeCharged        OutcomeKind = "charged"
	OutcomePaymentFailed  OutcomeKind = "payment_failed"
	OutcomeNoCharge       OutcomeKind = "no_charge"
	OutcomeSkipped        OutcomeKind = "skipped"
)

type Outcome struct {
	MembershipID int64         `json:"membership_id"`
	Kind         OutcomeKind   `json:"kind"`
	AmountCents  int64         `json:"amount_cents"`
	Status       BillingStatus `json:"status"`
	Reason       string        `json:"reason,omitempty"`
	// Warning is set when the outcome stands but a follow-up side effect failed.
	Warning string `json:"warning,omitempty"`
}

func (o Outcome) Suspended() bool {
	return o.Kind == OutcomePaymentFailed && o.Status == BillingStatusSuspended
}

// RunResults aggregates the outcomes of one billing run.
type RunResults struct {
	Processed       int      `json:"processed"`
	Successful      int      `json:"successful"`
	Failed          int      `json:"failed"`
	TrialsConverted int      `json:"trials_converted"`
	Suspended       int      `json:"suspended"`
	Errors          []string `json:"errors"`
}

func NewRunResults() RunResults {
	return RunResults{Errors: []string{}}
}

// Record folds one membership's result into the counters. An error means the
// membership never reached a billing decision and only lands in Errors.
// A trial conversion counts only as TrialsConverted: no charge is attempted in
// that pass, so it is not Processed.
func (r *RunResults) Record(membershipID int64, o Outcome, err error) {
	if err != nil {
		r.Errors = append(r.Errors, fmt.Sprintf("membership %d: %v", membershipID, err))
		return
	}

	switch o.Kind {
	case OutcomeTrialConverted:
		r.TrialsConverted++
	case OutcomeCharged:
		r.Processed++
		r.Successful++
	case OutcomePaymentFailed:
		r.Processed++
		r.Failed++
		if o.Suspended() {
			r.Suspended++
		}
	case OutcomeNoCharge:
		r.Processed++
	}

	if o.Warning != "" {
		r.Errors = append(r.Errors, fmt.Sprintf("membership %d: %s", membershipID, o.Warning))
	}
}
