package billingcycles

import (
	"context"
)

//go:generate mockgen -destination=../../mocks/repository/billing_cycle_repo/querier.go -package=billing_cycle_repo tillpoint.app/membership/store/billingcycles Querier

type Querier interface {
	CreateBillingCycle(ctx context.Context, arg CreateBillingCycleParams) (BillingCycle, error)
	MarkBillingCycleProcessed(ctx context.Context, id int64) error
	CreateInvoice(ctx context.Context, arg CreateInvoiceParams) (BillingInvoice, error)
	ListBillingCycles(ctx context.Context, membershipID int64) ([]ListBillingCyclesRow, error)
}

var _ Querier = (*Queries)(nil)
