package membership

import (
	"context"

	"tillpoint.app/membership/business/billing"
	"tillpoint.app/shift"
)

// shiftRecorder writes successful recurring charges into the sales ledger
// owned by the shift service.
type shiftRecorder struct{}

func (shiftRecorder) RecordRecurringCharge(ctx context.Context, charge billing.RecurringCharge) error {
	_, err := shift.RecordRecurringCharge(ctx, &shift.RecordRecurringChargeRequest{
		LocationID:         charge.LocationID,
		MembershipID:       charge.MembershipID,
		CustomerID:         charge.CustomerID,
		BillingCycleID:     charge.BillingCycleID,
		AmountCents:        charge.AmountCents,
		Currency:           charge.Currency,
		ProcessorPaymentID: charge.ProcessorPaymentID,
		ChargedAt:          charge.ChargedAt,
	})
	return err
}
