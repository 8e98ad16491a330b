package billing

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"tillpoint.app/membership/store/memberships"
)

// RecordUsage adds transactionCount to the membership's usage for the UTC day
// of at. Memberships on fixed plans are counted too; the plan decides at
// billing time whether usage is charged.
func (b *business) RecordUsage(ctx context.Context, membershipID int64, at time.Time, transactionCount int32) error {
	if transactionCount <= 0 {
		return &errs.Error{Code: errs.InvalidArgument, Message: "transaction count must be positive"}
	}

	if _, err := b.membershipRepo.GetMembership(ctx, membershipID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &errs.Error{Code: errs.NotFound, Message: "membership not found"}
		}
		return &errs.Error{Code: errs.Internal, Message: "failed to load membership"}
	}

	err := b.membershipRepo.UpsertUsage(ctx, memberships.UpsertUsageParams{
		MembershipID:     membershipID,
		UsageDate:        date(at),
		TransactionCount: transactionCount,
	})
	if err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to record usage"}
	}
	return nil
}
