package membership

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"tillpoint.app/membership/model"
)

type MembershipResponse struct {
	Membership model.Membership `json:"membership"`
}

//encore:api public path=/v1/memberships/:id method=GET
func (s *Service) GetMembership(ctx context.Context, id int64) (*MembershipResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid membership ID"}
	}

	membership, err := s.business.GetMembership(ctx, id)
	if err != nil {
		rlog.Error("failed to get membership", "error", err, "id", id)
		return nil, err
	}

	return &MembershipResponse{Membership: *membership}, nil
}

type ListBillingCyclesResponse struct {
	BillingCycles []model.BillingCycle `json:"billing_cycles"`
}

//encore:api public path=/v1/memberships/:id/billing_cycles method=GET
func (s *Service) ListBillingCycles(ctx context.Context, id int64) (*ListBillingCyclesResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid membership ID"}
	}

	cycles, err := s.business.ListBillingCycles(ctx, id)
	if err != nil {
		rlog.Error("failed to list billing cycles", "error", err, "id", id)
		return nil, err
	}
	if cycles == nil {
		cycles = []model.BillingCycle{}
	}

	return &ListBillingCyclesResponse{BillingCycles: cycles}, nil
}
