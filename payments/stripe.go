package payments

import (
	"context"
	"fmt"

	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/customer"
	"github.com/stripe/stripe-go/v82/paymentintent"
	"github.com/stripe/stripe-go/v82/paymentmethod"
	"github.com/stripe/stripe-go/v82/setupintent"
)

// recentSetupIntents bounds the setup intent scan.
const recentSetupIntents = 10

// StripeProcessor implements Processor using the Stripe API.
type StripeProcessor struct {
	currency string
}

// NewStripeProcessor sets the global Stripe key and returns a processor that
// charges in the given ISO currency.
func NewStripeProcessor(apiKey, currency string) *StripeProcessor {
	stripe.Key = apiKey
	return &StripeProcessor{currency: currency}
}

func (p *StripeProcessor) CreateCustomer(ctx context.Context, params CustomerParams) (string, error) {
	cp := &stripe.CustomerParams{
		Metadata: params.Metadata,
	}
	cp.Context = ctx
	if params.Email != "" {
		cp.Email = stripe.String(params.Email)
	}
	if params.Name != "" {
		cp.Name = stripe.String(params.Name)
	}

	c, err := customer.New(cp)
	if err != nil {
		return "", fmt.Errorf("payments: create stripe customer: %w", err)
	}
	return c.ID, nil
}

func (p *StripeProcessor) ListPaymentMethods(ctx context.Context, customerID string) ([]PaymentMethod, error) {
	params := &stripe.PaymentMethodListParams{
		Customer: stripe.String(customerID),
		Type:     stripe.String(string(stripe.PaymentMethodTypeCard)),
	}
	params.Context = ctx

	var methods []PaymentMethod
	it := paymentmethod.List(params)
	for it.Next() {
		pm := it.PaymentMethod()
		methods = append(methods, PaymentMethod{ID: pm.ID, Type: string(pm.Type)})
	}
	if err := it.Err(); err != nil {
		return nil, fmt.Errorf("payments: list stripe payment methods: %w", err)
	}
	return methods, nil
}

func (p *StripeProcessor) ListSetupIntents(ctx context.Context, customerID string) ([]SetupIntent, error) {
	params := &stripe.SetupIntentListParams{
		Customer: stripe.String(customerID),
	}
	params.Limit = stripe.Int64(recentSetupIntents)
	params.Single = true
	params.Context = ctx

	var intents []SetupIntent
	it := setupintent.List(params)
	for it.Next() {
		si := it.SetupIntent()
		intent := SetupIntent{ID: si.ID, Status: string(si.Status)}
		if si.PaymentMethod != nil {
			intent.PaymentMethodID = si.PaymentMethod.ID
		}
		intents = append(intents, intent)
	}
	if err := it.Err(); err != nil {
		return nil, fmt.Errorf("payments: list stripe setup intents: %w", err)
	}
	return intents, nil
}

func (p *StripeProcessor) AttachPaymentMethod(ctx context.Context, paymentMethodID, customerID string) error {
	params := &stripe.PaymentMethodAttachParams{
		Customer: stripe.String(customerID),
	}
	params.Context = ctx

	_, err := paymentmethod.Attach(paymentMethodID, params)
	if err != nil {
		return fmt.Errorf("payments: attach stripe payment method: %w", err)
	}
	return nil
}

func (p *StripeProcessor) Charge(ctx context.Context, req ChargeRequest) (*Charge, error) {
	currency := req.Currency
	if currency == "" {
		currency = p.currency
	}

	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(req.AmountCents),
		Currency:      stripe.String(currency),
		Customer:      stripe.String(req.CustomerID),
		PaymentMethod: stripe.String(req.PaymentMethodID),
		Confirm:       stripe.Bool(true),
		OffSession:    stripe.Bool(true),
		Metadata:      req.Metadata,
	}
	params.Context = ctx
	if req.Description != "" {
		params.Description = stripe.String(req.Description)
	}
	if req.IdempotencyKey != "" {
		params.SetIdempotencyKey(req.IdempotencyKey)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("payments: create stripe payment intent: %w", err)
	}
	return &Charge{ID: pi.ID, Status: ChargeStatus(pi.Status)}, nil
}
