package shift

import (
	"context"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"tillpoint.app/ledger"
	shiftbiz "tillpoint.app/shift/business/shift"
)

type RecordRecurringChargeRequest struct {
	LocationID         string    `json:"location_id" validate:"required"`
	MembershipID       int64     `json:"membership_id" validate:"gt=0"`
	CustomerID         int64     `json:"customer_id" validate:"gt=0"`
	BillingCycleID     int64     `json:"billing_cycle_id" validate:"gt=0"`
	AmountCents        int64     `json:"amount_cents" validate:"gt=0"`
	Currency           string    `json:"currency" validate:"required,len=3"`
	ProcessorPaymentID string    `json:"processor_payment_id"`
	ChargedAt          time.Time `json:"charged_at" validate:"required"`
}

// RecordRecurringCharge writes a settled membership charge into the sales
// ledger. It carries no shift, so it never moves a drawer. Recording the same
// billing cycle again returns the first transaction.
//
//encore:api private method=POST path=/internal/transactions/recurring
func (s *Service) RecordRecurringCharge(ctx context.Context, req *RecordRecurringChargeRequest) (*TransactionResponse, error) {
	result, err := s.business.RecordRecurringCharge(ctx, shiftbiz.RecurringCharge{
		LocationID:     req.LocationID,
		MembershipID:   req.MembershipID,
		CustomerID:     req.CustomerID,
		BillingCycleID: req.BillingCycleID,
		Amount:         ledger.Amount(req.AmountCents),
		Currency:       req.Currency,
		ChargedAt:      req.ChargedAt,
	})
	if err != nil {
		rlog.Error("failed to record recurring charge", "error", err,
			"membership_id", req.MembershipID, "billing_cycle_id", req.BillingCycleID, "processor_payment_id", req.ProcessorPaymentID)
		return nil, err
	}

	publishTransactionEvent(saleEvent(TransactionEventRecurringCharge, result))

	return &TransactionResponse{
		Transaction: *result,
	}, nil
}

func (r *RecordRecurringChargeRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}
