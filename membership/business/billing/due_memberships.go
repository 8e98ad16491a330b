package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/lo"

	"tillpoint.app/membership/model"
	"tillpoint.app/membership/store/memberships"
)

// DueMemberships returns the ids of the location's memberships that are due
// at now, in billing-date order.
func (b *business) DueMemberships(ctx context.Context, locationID string, now time.Time) ([]int64, error) {
	rows, err := b.membershipRepo.ListDueMemberships(ctx, memberships.ListDueMembershipsParams{
		LocationID:   locationID,
		BillingTypes: billableTypes(),
		Statuses:     billableStatuses(),
		Now:          timestamptz(now),
	})
	if err != nil {
		return nil, fmt.Errorf("list due memberships for location %s: %w", locationID, err)
	}

	return lo.Map(rows, func(row memberships.Membership, _ int) int64 {
		return row.ID
	}), nil
}

// ListLocationsDue returns every location with at least one due membership.
func (b *business) ListLocationsDue(ctx context.Context, now time.Time) ([]string, error) {
	locations, err := b.membershipRepo.ListLocationsWithDueMemberships(ctx, memberships.ListLocationsWithDueMembershipsParams{
		BillingTypes: billableTypes(),
		Statuses:     billableStatuses(),
		Now:          timestamptz(now),
	})
	if err != nil {
		return nil, fmt.Errorf("list locations with due memberships: %w", err)
	}
	return locations, nil
}

func billableTypes() []string {
	return lo.Map(model.BillableTypes, func(t model.BillingType, _ int) string { return string(t) })
}

func billableStatuses() []string {
	return lo.Map(model.BillableStatuses, func(s model.BillingStatus, _ int) string { return string(s) })
}
