package billing

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"tillpoint.app/membership/model"
	"tillpoint.app/membership/store/billingcycles"
	"tillpoint.app/membership/store/memberships"
	"tillpoint.app/payments"
)

// PaymentFailure is a failed payment attempt: a processor error, a missing
// payment method, or a charge that did not succeed. It drives the retry and
// suspension policy instead of being reported as a fault.
type PaymentFailure struct {
	Reason string
	Err    error
}

func (f *PaymentFailure) Error() string {
	if f.Err != nil {
		return f.Reason + ": " + f.Err.Error()
	}
	return f.Reason
}

func (f *PaymentFailure) Unwrap() error { return f.Err }

type paymentAttempt struct {
	cycleID int64
	charge  *payments.Charge
	warning string
}

// ProcessMembership drives one membership through a single billing attempt.
func (b *business) ProcessMembership(ctx context.Context, membershipID int64, settings model.BillingSettings, now time.Time) (model.Outcome, error) {
	dbMembership, err := b.membershipRepo.GetMembership(ctx, membershipID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Outcome{}, &errs.Error{Code: errs.NotFound, Message: "membership not found"}
		}
		return model.Outcome{}, &errs.Error{Code: errs.Internal, Message: "failed to load membership"}
	}
	m := convertDBMembershipToModel(dbMembership)

	// Another run may have billed the membership since it was selected.
	if !IsDue(m, now) {
		return model.Outcome{MembershipID: m.ID, Kind: model.OutcomeSkipped, Status: m.BillingStatus, Reason: "not due"}, nil
	}

	if TrialExpired(m, now) {
		return b.convertTrial(ctx, m, now)
	}
	if m.BillingStatus == model.BillingStatusTrial {
		return model.Outcome{MembershipID: m.ID, Kind: model.OutcomeSkipped, Status: m.BillingStatus, Reason: "trial in progress"}, nil
	}

	dbPlan, err := b.membershipRepo.GetPlan(ctx, m.PlanID)
	if err != nil {
		return model.Outcome{}, &errs.Error{Code: errs.Internal, Message: "failed to load membership plan"}
	}
	plan := convertDBPlanToModel(dbPlan)

	amount := b.amountOwed(ctx, m, plan, now)
	if amount <= 0 {
		return b.advanceWithoutCharge(ctx, m, now)
	}

	attempt, err := b.attemptPayment(ctx, m, plan, amount, now)
	var failure *PaymentFailure
	switch {
	case errors.As(err, &failure):
		return b.recordFailure(ctx, m, settings, amount, failure.Error(), now)
	case err != nil:
		return model.Outcome{}, err
	case !attempt.charge.Succeeded():
		return b.recordFailure(ctx, m, settings, amount, "payment status "+string(attempt.charge.Status), now)
	}

	return b.recordSuccess(ctx, m, plan, amount, attempt, now)
}

func (b *business) convertTrial(ctx context.Context, m model.Membership, now time.Time) (model.Outcome, error) {
	update, err := ConvertTrial(m, now)
	if err != nil {
		return model.Outcome{}, &errs.Error{Code: errs.FailedPrecondition, Message: err.Error()}
	}

	_, err = b.membershipRepo.ConvertTrial(ctx, memberships.ConvertTrialParams{
		ID:              m.ID,
		NextBillingDate: optionalTimestamptz(update.NextBillingDate),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Outcome{}, &errs.Error{Code: errs.Aborted, Message: "membership is no longer in trial"}
		}
		return model.Outcome{}, &errs.Error{Code: errs.Internal, Message: "failed to convert trial"}
	}

	err = b.membershipRepo.CreateTrialConversion(ctx, memberships.CreateTrialConversionParams{
		MembershipID: m.ID,
		TrialEndDate: optionalTimestamptz(m.TrialEndDate),
		ConvertedAt:  timestamptz(now),
	})
	outcome := model.Outcome{MembershipID: m.ID, Kind: model.OutcomeTrialConverted, Status: update.Status}
	if err != nil {
		outcome.Warning = "failed to record trial conversion"
	}
	return outcome, nil
}

// amountOwed falls back to the plan price when usage cannot be read, so a
// metering fault never bills zero.
func (b *business) amountOwed(ctx context.Context, m model.Membership, plan model.Plan, now time.Time) int64 {
	if !Metered(m, plan) {
		return ComputeAmount(m, plan, 0)
	}

	window := UsageWindow(m, now)
	count, err := b.membershipRepo.SumUsage(ctx, memberships.SumUsageParams{
		MembershipID: m.ID,
		From:         date(window.Start),
		To:           date(window.End),
	})
	if err != nil {
		return plan.PriceCents
	}
	return ComputeAmount(m, plan, count)
}

func (b *business) advanceWithoutCharge(ctx context.Context, m model.Membership, now time.Time) (model.Outcome, error) {
	update := AdvanceWithoutCharge(m, now)
	if err := b.writeState(ctx, m, update); err != nil {
		return model.Outcome{}, err
	}
	return model.Outcome{MembershipID: m.ID, Kind: model.OutcomeNoCharge, Status: update.Status}, nil
}

// attemptPayment opens a pending billing cycle before charging so every
// attempt is auditable, then records the invoice for the attempt.
func (b *business) attemptPayment(ctx context.Context, m model.Membership, plan model.Plan, amount int64, now time.Time) (*paymentAttempt, error) {
	customerID, err := b.ensureProcessorCustomer(ctx, m)
	if err != nil {
		return nil, err
	}

	paymentMethodID, err := payments.ResolvePaymentMethod(ctx, b.processor, customerID)
	if err != nil {
		reason := "payment method resolution failed"
		if errors.Is(err, payments.ErrNoPaymentMethod) {
			reason = "no payment method"
		}
		return nil, &PaymentFailure{Reason: reason, Err: err}
	}

	window := UsageWindow(m, now)
	cycle, err := b.cycleRepo.CreateBillingCycle(ctx, billingcycles.CreateBillingCycleParams{
		MembershipID:   m.ID,
		PeriodStart:    timestamptz(window.Start),
		PeriodEnd:      timestamptz(window.End),
		AmountCents:    amount,
		Status:         string(model.BillingCycleStatusPending),
		IdempotencyKey: IdempotencyKey(m),
	})
	if err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return nil, &errs.Error{Code: errs.AlreadyExists, Message: "billing attempt already in progress"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to create billing cycle"}
	}

	charge, chargeErr := b.processor.Charge(ctx, payments.ChargeRequest{
		CustomerID:      customerID,
		PaymentMethodID: paymentMethodID,
		AmountCents:     amount,
		Currency:        b.currencyFor(plan),
		Description:     fmt.Sprintf("%s membership", plan.Name),
		IdempotencyKey:  cycle.IdempotencyKey,
		Metadata: map[string]string{
			"membership_id":    strconv.FormatInt(m.ID, 10),
			"billing_cycle_id": strconv.FormatInt(cycle.ID, 10),
			"location_id":      m.LocationID,
		},
	})
	if chargeErr != nil {
		charge = nil
	}

	attempt := &paymentAttempt{cycleID: cycle.ID, charge: charge}

	invoiceStatus := model.InvoiceStatusPending
	processorPaymentID := pgtype.Text{Valid: false}
	if charge.Succeeded() {
		invoiceStatus = model.InvoiceStatusPaid
	}
	if charge != nil && charge.ID != "" {
		processorPaymentID = pgtype.Text{String: charge.ID, Valid: true}
	}

	_, err = b.cycleRepo.CreateInvoice(ctx, billingcycles.CreateInvoiceParams{
		BillingCycleID:     cycle.ID,
		MembershipID:       m.ID,
		AmountCents:        amount,
		Status:             string(invoiceStatus),
		DueDate:            timestamptz(now.AddDate(0, 0, InvoiceDueDays)),
		ProcessorPaymentID: processorPaymentID,
	})
	if err != nil {
		attempt.warning = "failed to create invoice"
	}

	if chargeErr != nil {
		return attempt, &PaymentFailure{Reason: "charge failed", Err: chargeErr}
	}
	return attempt, nil
}

func (b *business) ensureProcessorCustomer(ctx context.Context, m model.Membership) (string, error) {
	if m.ProcessorCustomerID != nil && *m.ProcessorCustomerID != "" {
		return *m.ProcessorCustomerID, nil
	}

	dbCustomer, err := b.membershipRepo.GetCustomer(ctx, m.CustomerID)
	if err != nil {
		return "", &errs.Error{Code: errs.Internal, Message: "failed to load customer"}
	}

	customerID, err := b.processor.CreateCustomer(ctx, payments.CustomerParams{
		Email: dbCustomer.Email.String,
		Name:  dbCustomer.Name.String,
		Metadata: map[string]string{
			"customer_id":   strconv.FormatInt(m.CustomerID, 10),
			"membership_id": strconv.FormatInt(m.ID, 10),
			"location_id":   m.LocationID,
		},
	})
	if err != nil {
		return "", &PaymentFailure{Reason: "failed to create processor customer", Err: err}
	}

	err = b.membershipRepo.SetProcessorCustomerID(ctx, memberships.SetProcessorCustomerIDParams{
		ID:                  m.ID,
		ProcessorCustomerID: customerID,
	})
	if err != nil {
		return "", &errs.Error{Code: errs.Internal, Message: "failed to store processor customer"}
	}

	return customerID, nil
}

func (b *business) recordSuccess(ctx context.Context, m model.Membership, plan model.Plan, amount int64, attempt *paymentAttempt, now time.Time) (model.Outcome, error) {
	outcome := model.Outcome{
		MembershipID: m.ID,
		Kind:         model.OutcomeCharged,
		AmountCents:  amount,
		Status:       model.BillingStatusActive,
		Warning:      attempt.warning,
	}

	update, err := ApplyPaymentSuccess(m, now)
	if err != nil {
		outcome.Status = m.BillingStatus
		outcome.Warning = "charged but " + err.Error()
		return outcome, nil
	}

	if err := b.cycleRepo.MarkBillingCycleProcessed(ctx, attempt.cycleID); err != nil {
		outcome.Warning = "failed to mark billing cycle processed"
	}

	// The money has moved; from here on problems are reported, not failed.
	if err := b.writeState(ctx, m, update); err != nil {
		outcome.Status = m.BillingStatus
		outcome.Warning = "charged but " + err.Error()
		return outcome, nil
	}

	err = b.recorder.RecordRecurringCharge(ctx, RecurringCharge{
		LocationID:         m.LocationID,
		MembershipID:       m.ID,
		CustomerID:         m.CustomerID,
		BillingCycleID:     attempt.cycleID,
		AmountCents:        amount,
		Currency:           b.currencyFor(plan),
		ProcessorPaymentID: attempt.charge.ID,
		ChargedAt:          now,
	})
	if err != nil {
		outcome.Warning = "failed to record recurring transaction"
	}

	return outcome, nil
}

func (b *business) recordFailure(ctx context.Context, m model.Membership, settings model.BillingSettings, amount int64, reason string, now time.Time) (model.Outcome, error) {
	update, err := ApplyPaymentFailure(m, settings, now)
	if err != nil {
		return model.Outcome{}, &errs.Error{Code: errs.FailedPrecondition, Message: err.Error()}
	}

	if err := b.writeState(ctx, m, update); err != nil {
		return model.Outcome{}, err
	}

	return model.Outcome{
		MembershipID: m.ID,
		Kind:         model.OutcomePaymentFailed,
		AmountCents:  amount,
		Status:       update.Status,
		Reason:       reason,
	}, nil
}

func (b *business) writeState(ctx context.Context, m model.Membership, update StateUpdate) error {
	_, err := b.membershipRepo.UpdateBillingState(ctx, updateParams(m, update))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &errs.Error{Code: errs.Aborted, Message: "membership billing state changed concurrently"}
		}
		return &errs.Error{Code: errs.Internal, Message: "failed to update membership billing state"}
	}
	return nil
}

func (b *business) currencyFor(plan model.Plan) string {
	if plan.Currency != "" {
		return plan.Currency
	}
	return b.currency
}
