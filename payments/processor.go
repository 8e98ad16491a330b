package payments

import (
	"context"
)

//go:generate mockgen -destination=mocks/processor.go -package=mocks tillpoint.app/payments Processor

// ChargeStatus mirrors the processor's payment intent status. Only
// ChargeStatusSucceeded counts as a successful charge.
type ChargeStatus string

const (
	ChargeStatusSucceeded ChargeStatus = "succeeded"
)

type CustomerParams struct {
	Email    string
	Name     string
	Metadata map[string]string
}

type PaymentMethod struct {
	ID   string
	Type string
}

type SetupIntent struct {
	ID              string
	Status          string
	PaymentMethodID string
}

// SetupIntentSucceeded is the status of a setup intent whose payment method
// can be reused off-session.
const SetupIntentSucceeded = "succeeded"

type ChargeRequest struct {
	CustomerID      string
	PaymentMethodID string
	AmountCents     int64
	Currency        string
	Description     string
	IdempotencyKey  string
	Metadata        map[string]string
}

type Charge struct {
	ID     string
	Status ChargeStatus
}

func (c *Charge) Succeeded() bool {
	return c != nil && c.Status == ChargeStatusSucceeded
}

// Processor is the subset of a payment processor's API used for recurring
// off-session charges.
type Processor interface {
	CreateCustomer(ctx context.Context, params CustomerParams) (string, error)
	ListPaymentMethods(ctx context.Context, customerID string) ([]PaymentMethod, error)
	ListSetupIntents(ctx context.Context, customerID string) ([]SetupIntent, error)
	AttachPaymentMethod(ctx context.Context, paymentMethodID, customerID string) error
	Charge(ctx context.Context, req ChargeRequest) (*Charge, error)
}
