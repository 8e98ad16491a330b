package billing

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/samber/lo"

	"encore.dev/beta/errs"

	"tillpoint.app/membership/model"
	"tillpoint.app/membership/store/billingcycles"
)

func (b *business) GetMembership(ctx context.Context, id int64) (*model.Membership, error) {
	dbMembership, err := b.membershipRepo.GetMembership(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "membership not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get membership"}
	}

	m := convertDBMembershipToModel(dbMembership)
	return &m, nil
}

// ListBillingCycles returns the membership's billing history, newest first,
// each cycle carrying its invoice when one was issued.
func (b *business) ListBillingCycles(ctx context.Context, membershipID int64) ([]model.BillingCycle, error) {
	if _, err := b.GetMembership(ctx, membershipID); err != nil {
		return nil, err
	}

	rows, err := b.cycleRepo.ListBillingCycles(ctx, membershipID)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list billing cycles"}
	}

	return lo.Map(rows, func(row billingcycles.ListBillingCyclesRow, _ int) model.BillingCycle {
		return convertDBBillingCycleToModel(row)
	}), nil
}
