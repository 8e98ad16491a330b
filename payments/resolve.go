package payments

import (
	"context"
	"errors"
	"fmt"
)

var ErrNoPaymentMethod = errors.New("no payment method on file")

// Step names one stage of payment method resolution.
type Step string

const (
	StepAttachedMethods Step = "attached_methods"
	StepSetupIntents    Step = "setup_intents"
	StepAttach          Step = "attach"
)

// StepError reports which resolution step failed.
type StepError struct {
	Step Step
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("payment method resolution failed at %s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// ResolvePaymentMethod finds a chargeable payment method for the customer.
// Methods already attached to the customer win; otherwise the most recent
// succeeded setup intent supplies one, which is then attached.
func ResolvePaymentMethod(ctx context.Context, p Processor, customerID string) (string, error) {
	id, err := attachedMethod(ctx, p, customerID)
	if err != nil {
		return "", &StepError{Step: StepAttachedMethods, Err: err}
	}
	if id != "" {
		return id, nil
	}

	id, err = setupIntentMethod(ctx, p, customerID)
	if err != nil {
		return "", &StepError{Step: StepSetupIntents, Err: err}
	}
	if id == "" {
		return "", ErrNoPaymentMethod
	}

	if err := p.AttachPaymentMethod(ctx, id, customerID); err != nil {
		return "", &StepError{Step: StepAttach, Err: err}
	}

	return id, nil
}

func attachedMethod(ctx context.Context, p Processor, customerID string) (string, error) {
	methods, err := p.ListPaymentMethods(ctx, customerID)
	if err != nil {
		return "", err
	}
	for _, m := range methods {
		if m.ID != "" {
			return m.ID, nil
		}
	}
	return "", nil
}

// setupIntentMethod expects intents ordered newest first.
func setupIntentMethod(ctx context.Context, p Processor, customerID string) (string, error) {
	intents, err := p.ListSetupIntents(ctx, customerID)
	if err != nil {
		return "", err
	}
	for _, si := range intents {
		if si.Status == SetupIntentSucceeded && si.PaymentMethodID != "" {
			return si.PaymentMethodID, nil
		}
	}
	return "", nil
}
