package membership

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/pubsub"
	"encore.dev/rlog"

	"tillpoint.app/shift"
)

var _ = pubsub.NewSubscription(
	shift.TransactionEvents, "membership-usage",
	pubsub.SubscriptionConfig[*shift.TransactionEvent]{
		Handler: pubsub.MethodHandler((*Service).RecordUsage),
	},
)

// RecordUsage meters a member's POS sale against their membership. Refunds
// and the recurring charges billing itself writes are not usage.
func (s *Service) RecordUsage(ctx context.Context, event *shift.TransactionEvent) error {
	if event.Kind != shift.TransactionEventSale || event.MembershipID == nil {
		return nil
	}

	err := s.business.RecordUsage(ctx, *event.MembershipID, event.OccurredAt, 1)
	if err != nil {
		// An unknown membership will never resolve; redelivery would only repeat it.
		if errs.Code(err) == errs.NotFound {
			rlog.Warn("usage for unknown membership dropped", "membership_id", *event.MembershipID, "transaction_id", event.TransactionID)
			return nil
		}
		rlog.Error("failed to record usage", "error", err, "membership_id", *event.MembershipID, "transaction_id", event.TransactionID)
		return err
	}
	return nil
}
