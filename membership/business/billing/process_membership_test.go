package billing

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"tillpoint.app/membership/mocks/repository/billing_cycle_repo"
	"tillpoint.app/membership/mocks/repository/membership_repo"
	"tillpoint.app/membership/model"
	"tillpoint.app/membership/store/billingcycles"
	"tillpoint.app/membership/store/memberships"
	"tillpoint.app/payments"
	"tillpoint.app/payments/mocks"
)

type fakeRecorder struct {
	charges []RecurringCharge
	err     error
}

func (f *fakeRecorder) RecordRecurringCharge(_ context.Context, charge RecurringCharge) error {
	f.charges = append(f.charges, charge)
	return f.err
}

type billingMocks struct {
	memberships *membership_repo.MockQuerier
	cycles      *billing_cycle_repo.MockQuerier
	processor   *mocks.MockProcessor
	recorder    *fakeRecorder
}

func newTestBusiness(t *testing.T) (*business, billingMocks) {
	ctrl := gomock.NewController(t)
	m := billingMocks{
		memberships: membership_repo.NewMockQuerier(ctrl),
		cycles:      billing_cycle_repo.NewMockQuerier(ctrl),
		processor:   mocks.NewMockProcessor(ctrl),
		recorder:    &fakeRecorder{},
	}
	b := &business{
		membershipRepo: m.memberships,
		cycleRepo:      m.cycles,
		processor:      m.processor,
		recorder:       m.recorder,
		currency:       "usd",
	}
	return b, m
}

func dbMembership(status model.BillingStatus, attempts int32) memberships.Membership {
	return memberships.Membership{
		ID:                    42,
		LocationID:            "loc_1",
		CustomerID:            7,
		PlanID:                3,
		BillingType:           string(model.BillingTypeHybridFixed),
		BillingStatus:         string(status),
		NextBillingDate:       pgtype.Timestamptz{Time: testNow.Add(-time.Hour), Valid: true},
		FailedPaymentAttempts: attempts,
		ProcessorCustomerID:   pgtype.Text{String: "cus_1", Valid: true},
		CreatedAt:             pgtype.Timestamptz{Time: testNow.AddDate(0, -3, 0), Valid: true},
		UpdatedAt:             pgtype.Timestamptz{Time: testNow.AddDate(0, -1, 0), Valid: true},
	}
}

var fixedPlan = memberships.MembershipPlan{ID: 3, Name: "Gold", PriceCents: 2999, Currency: "usd"}

func expectPaymentMethod(m billingMocks) {
	m.processor.EXPECT().
		ListPaymentMethods(gomock.Any(), "cus_1").
		Return([]payments.PaymentMethod{{ID: "pm_1", Type: "card"}}, nil)
}

func TestProcessMembership(t *testing.T) {
	settings := model.DefaultBillingSettings()

	t.Run("fixed_plan_charge_succeeds", func(t *testing.T) {
		b, m := newTestBusiness(t)
		row := dbMembership(model.BillingStatusActive, 0)

		m.memberships.EXPECT().GetMembership(gomock.Any(), int64(42)).Return(row, nil)
		m.memberships.EXPECT().GetPlan(gomock.Any(), int64(3)).Return(fixedPlan, nil)
		expectPaymentMethod(m)
		m.cycles.EXPECT().
			CreateBillingCycle(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg billingcycles.CreateBillingCycleParams) (billingcycles.BillingCycle, error) {
				assert.Equal(t, int64(2999), arg.AmountCents)
				assert.Equal(t, string(model.BillingCycleStatusPending), arg.Status)
				assert.Equal(t, "membership-42-due-"+itoa(row.NextBillingDate.Time.Unix())+"-attempt-0", arg.IdempotencyKey)
				return billingcycles.BillingCycle{ID: 10, IdempotencyKey: arg.IdempotencyKey}, nil
			})
		m.processor.EXPECT().
			Charge(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req payments.ChargeRequest) (*payments.Charge, error) {
				assert.Equal(t, "cus_1", req.CustomerID)
				assert.Equal(t, "pm_1", req.PaymentMethodID)
				assert.Equal(t, int64(2999), req.AmountCents)
				assert.Equal(t, "usd", req.Currency)
				assert.Equal(t, "42", req.Metadata["membership_id"])
				return &payments.Charge{ID: "pi_1", Status: payments.ChargeStatusSucceeded}, nil
			})
		m.cycles.EXPECT().
			CreateInvoice(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg billingcycles.CreateInvoiceParams) (billingcycles.BillingInvoice, error) {
				assert.Equal(t, string(model.InvoiceStatusPaid), arg.Status)
				assert.Equal(t, testNow.AddDate(0, 0, InvoiceDueDays), arg.DueDate.Time)
				assert.Equal(t, "pi_1", arg.ProcessorPaymentID.String)
				return billingcycles.BillingInvoice{ID: 5}, nil
			})
		m.cycles.EXPECT().MarkBillingCycleProcessed(gomock.Any(), int64(10)).Return(nil)
		m.memberships.EXPECT().
			UpdateBillingState(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg memberships.UpdateBillingStateParams) (memberships.Membership, error) {
				assert.Equal(t, string(model.BillingStatusActive), arg.BillingStatus)
				assert.Equal(t, int32(0), arg.FailedPaymentAttempts)
				assert.Equal(t, int32(0), arg.ExpectedAttempts)
				assert.Equal(t, testNow, arg.LastBilledDate.Time)
				assert.Equal(t, testNow.AddDate(0, 1, 0), arg.NextBillingDate.Time)
				assert.False(t, arg.GracePeriodEnd.Valid)
				return memberships.Membership{}, nil
			})

		outcome, err := b.ProcessMembership(context.Background(), 42, settings, testNow)
		require.NoError(t, err)

		assert.Equal(t, model.OutcomeCharged, outcome.Kind)
		assert.Equal(t, int64(2999), outcome.AmountCents)
		assert.Equal(t, model.BillingStatusActive, outcome.Status)
		assert.Empty(t, outcome.Warning)
		require.Len(t, m.recorder.charges, 1)
		assert.Equal(t, "loc_1", m.recorder.charges[0].LocationID)
		assert.Equal(t, int64(10), m.recorder.charges[0].BillingCycleID)
		assert.Equal(t, "pi_1", m.recorder.charges[0].ProcessorPaymentID)
	})

	t.Run("usage_plan_bills_metered_transactions", func(t *testing.T) {
		b, m := newTestBusiness(t)
		row := dbMembership(model.BillingStatusActive, 0)
		row.BillingType = string(model.BillingTypeHybridUsage)
		row.LastBilledDate = pgtype.Timestamptz{Time: testNow.AddDate(0, -1, 0), Valid: true}

		plan := memberships.MembershipPlan{ID: 3, Name: "Metered", PriceCents: 1000, UsageBased: true, UsageRateCents: 50}

		m.memberships.EXPECT().GetMembership(gomock.Any(), int64(42)).Return(row, nil)
		m.memberships.EXPECT().GetPlan(gomock.Any(), int64(3)).Return(plan, nil)
		m.memberships.EXPECT().
			SumUsage(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg memberships.SumUsageParams) (int64, error) {
				assert.Equal(t, time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC), arg.From.Time)
				assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), arg.To.Time)
				return 12, nil
			})
		expectPaymentMethod(m)
		m.cycles.EXPECT().CreateBillingCycle(gomock.Any(), gomock.Any()).Return(billingcycles.BillingCycle{ID: 11, IdempotencyKey: "k"}, nil)
		m.processor.EXPECT().
			Charge(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req payments.ChargeRequest) (*payments.Charge, error) {
				assert.Equal(t, int64(1600), req.AmountCents)
				assert.Equal(t, "usd", req.Currency)
				return &payments.Charge{ID: "pi_2", Status: payments.ChargeStatusSucceeded}, nil
			})
		m.cycles.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).Return(billingcycles.BillingInvoice{}, nil)
		m.cycles.EXPECT().MarkBillingCycleProcessed(gomock.Any(), int64(11)).Return(nil)
		m.memberships.EXPECT().UpdateBillingState(gomock.Any(), gomock.Any()).Return(memberships.Membership{}, nil)

		outcome, err := b.ProcessMembership(context.Background(), 42, settings, testNow)
		require.NoError(t, err)
		assert.Equal(t, model.OutcomeCharged, outcome.Kind)
		assert.Equal(t, int64(1600), outcome.AmountCents)
	})

	t.Run("usage_read_failure_bills_plan_price", func(t *testing.T) {
		b, m := newTestBusiness(t)
		row := dbMembership(model.BillingStatusActive, 0)
		row.BillingType = string(model.BillingTypeHybridUsage)
		plan := memberships.MembershipPlan{ID: 3, Name: "Metered", PriceCents: 1000, UsageBased: true, UsageRateCents: 50}

		m.memberships.EXPECT().GetMembership(gomock.Any(), int64(42)).Return(row, nil)
		m.memberships.EXPECT().GetPlan(gomock.Any(), int64(3)).Return(plan, nil)
		m.memberships.EXPECT().SumUsage(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("connection reset"))
		expectPaymentMethod(m)
		m.cycles.EXPECT().CreateBillingCycle(gomock.Any(), gomock.Any()).Return(billingcycles.BillingCycle{ID: 12, IdempotencyKey: "k"}, nil)
		m.processor.EXPECT().Charge(gomock.Any(), gomock.Any()).Return(&payments.Charge{ID: "pi_3", Status: payments.ChargeStatusSucceeded}, nil)
		m.cycles.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).Return(billingcycles.BillingInvoice{}, nil)
		m.cycles.EXPECT().MarkBillingCycleProcessed(gomock.Any(), int64(12)).Return(nil)
		m.memberships.EXPECT().UpdateBillingState(gomock.Any(), gomock.Any()).Return(memberships.Membership{}, nil)

		outcome, err := b.ProcessMembership(context.Background(), 42, settings, testNow)
		require.NoError(t, err)
		assert.Equal(t, int64(1000), outcome.AmountCents)
	})

	t.Run("declined_charge_marks_past_due", func(t *testing.T) {
		b, m := newTestBusiness(t)
		row := dbMembership(model.BillingStatusActive, 0)

		m.memberships.EXPECT().GetMembership(gomock.Any(), int64(42)).Return(row, nil)
		m.memberships.EXPECT().GetPlan(gomock.Any(), int64(3)).Return(fixedPlan, nil)
		expectPaymentMethod(m)
		m.cycles.EXPECT().CreateBillingCycle(gomock.Any(), gomock.Any()).Return(billingcycles.BillingCycle{ID: 10, IdempotencyKey: "k"}, nil)
		m.processor.EXPECT().Charge(gomock.Any(), gomock.Any()).Return(&payments.Charge{ID: "pi_4", Status: "requires_payment_method"}, nil)
		m.cycles.EXPECT().
			CreateInvoice(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg billingcycles.CreateInvoiceParams) (billingcycles.BillingInvoice, error) {
				assert.Equal(t, string(model.InvoiceStatusPending), arg.Status)
				return billingcycles.BillingInvoice{}, nil
			})
		m.memberships.EXPECT().
			UpdateBillingState(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg memberships.UpdateBillingStateParams) (memberships.Membership, error) {
				assert.Equal(t, string(model.BillingStatusPastDue), arg.BillingStatus)
				assert.Equal(t, int32(1), arg.FailedPaymentAttempts)
				assert.Equal(t, int32(0), arg.ExpectedAttempts)
				assert.Equal(t, testNow.AddDate(0, 0, 5), arg.GracePeriodEnd.Time)
				assert.Equal(t, row.NextBillingDate, arg.NextBillingDate)
				return memberships.Membership{}, nil
			})

		outcome, err := b.ProcessMembership(context.Background(), 42, settings, testNow)
		require.NoError(t, err)

		assert.Equal(t, model.OutcomePaymentFailed, outcome.Kind)
		assert.Equal(t, model.BillingStatusPastDue, outcome.Status)
		assert.Contains(t, outcome.Reason, "requires_payment_method")
		assert.False(t, outcome.Suspended())
		assert.Empty(t, m.recorder.charges)
	})

	t.Run("fifth_failure_suspends", func(t *testing.T) {
		b, m := newTestBusiness(t)
		row := dbMembership(model.BillingStatusPastDue, 4)

		m.memberships.EXPECT().GetMembership(gomock.Any(), int64(42)).Return(row, nil)
		m.memberships.EXPECT().GetPlan(gomock.Any(), int64(3)).Return(fixedPlan, nil)
		expectPaymentMethod(m)
		m.cycles.EXPECT().CreateBillingCycle(gomock.Any(), gomock.Any()).Return(billingcycles.BillingCycle{ID: 10, IdempotencyKey: "k"}, nil)
		m.processor.EXPECT().Charge(gomock.Any(), gomock.Any()).Return(nil, errors.New("card_declined"))
		m.cycles.EXPECT().
			CreateInvoice(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg billingcycles.CreateInvoiceParams) (billingcycles.BillingInvoice, error) {
				assert.Equal(t, string(model.InvoiceStatusPending), arg.Status)
				assert.False(t, arg.ProcessorPaymentID.Valid)
				return billingcycles.BillingInvoice{}, nil
			})
		m.memberships.EXPECT().
			UpdateBillingState(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg memberships.UpdateBillingStateParams) (memberships.Membership, error) {
				assert.Equal(t, string(model.BillingStatusSuspended), arg.BillingStatus)
				assert.Equal(t, int32(5), arg.FailedPaymentAttempts)
				assert.Equal(t, int32(4), arg.ExpectedAttempts)
				return memberships.Membership{}, nil
			})

		outcome, err := b.ProcessMembership(context.Background(), 42, settings, testNow)
		require.NoError(t, err)

		assert.True(t, outcome.Suspended())
		assert.Contains(t, outcome.Reason, "card_declined")
	})

	t.Run("no_payment_method_fails_without_cycle", func(t *testing.T) {
		b, m := newTestBusiness(t)
		row := dbMembership(model.BillingStatusActive, 0)

		m.memberships.EXPECT().GetMembership(gomock.Any(), int64(42)).Return(row, nil)
		m.memberships.EXPECT().GetPlan(gomock.Any(), int64(3)).Return(fixedPlan, nil)
		m.processor.EXPECT().ListPaymentMethods(gomock.Any(), "cus_1").Return(nil, nil)
		m.processor.EXPECT().ListSetupIntents(gomock.Any(), "cus_1").Return(nil, nil)
		m.memberships.EXPECT().UpdateBillingState(gomock.Any(), gomock.Any()).Return(memberships.Membership{}, nil)

		outcome, err := b.ProcessMembership(context.Background(), 42, settings, testNow)
		require.NoError(t, err)

		assert.Equal(t, model.OutcomePaymentFailed, outcome.Kind)
		assert.Contains(t, outcome.Reason, "no payment method")
	})

	t.Run("creates_processor_customer_on_first_charge", func(t *testing.T) {
		b, m := newTestBusiness(t)
		row := dbMembership(model.BillingStatusActive, 0)
		row.ProcessorCustomerID = pgtype.Text{}

		m.memberships.EXPECT().GetMembership(gomock.Any(), int64(42)).Return(row, nil)
		m.memberships.EXPECT().GetPlan(gomock.Any(), int64(3)).Return(fixedPlan, nil)
		m.memberships.EXPECT().GetCustomer(gomock.Any(), int64(7)).Return(memberships.Customer{
			ID:    7,
			Email: pgtype.Text{String: "ana@example.com", Valid: true},
			Name:  pgtype.Text{String: "Ana", Valid: true},
		}, nil)
		m.processor.EXPECT().
			CreateCustomer(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params payments.CustomerParams) (string, error) {
				assert.Equal(t, "ana@example.com", params.Email)
				assert.Equal(t, "7", params.Metadata["customer_id"])
				return "cus_1", nil
			})
		m.memberships.EXPECT().
			SetProcessorCustomerID(gomock.Any(), memberships.SetProcessorCustomerIDParams{ID: 42, ProcessorCustomerID: "cus_1"}).
			Return(nil)
		expectPaymentMethod(m)
		m.cycles.EXPECT().CreateBillingCycle(gomock.Any(), gomock.Any()).Return(billingcycles.BillingCycle{ID: 10, IdempotencyKey: "k"}, nil)
		m.processor.EXPECT().Charge(gomock.Any(), gomock.Any()).Return(&payments.Charge{ID: "pi_5", Status: payments.ChargeStatusSucceeded}, nil)
		m.cycles.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).Return(billingcycles.BillingInvoice{}, nil)
		m.cycles.EXPECT().MarkBillingCycleProcessed(gomock.Any(), int64(10)).Return(nil)
		m.memberships.EXPECT().UpdateBillingState(gomock.Any(), gomock.Any()).Return(memberships.Membership{}, nil)

		outcome, err := b.ProcessMembership(context.Background(), 42, settings, testNow)
		require.NoError(t, err)
		assert.Equal(t, model.OutcomeCharged, outcome.Kind)
	})

	t.Run("expired_trial_converts_without_charge", func(t *testing.T) {
		b, m := newTestBusiness(t)
		row := dbMembership(model.BillingStatusTrial, 0)
		row.NextBillingDate = pgtype.Timestamptz{}
		row.TrialEndDate = pgtype.Timestamptz{Time: testNow.AddDate(0, 0, -1), Valid: true}

		m.memberships.EXPECT().GetMembership(gomock.Any(), int64(42)).Return(row, nil)
		m.memberships.EXPECT().
			ConvertTrial(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg memberships.ConvertTrialParams) (memberships.Membership, error) {
				assert.Equal(t, testNow.AddDate(0, 1, 0), arg.NextBillingDate.Time)
				return memberships.Membership{}, nil
			})
		m.memberships.EXPECT().CreateTrialConversion(gomock.Any(), gomock.Any()).Return(nil)

		outcome, err := b.ProcessMembership(context.Background(), 42, settings, testNow)
		require.NoError(t, err)

		assert.Equal(t, model.OutcomeTrialConverted, outcome.Kind)
		assert.Equal(t, model.BillingStatusActive, outcome.Status)
	})

	t.Run("zero_amount_advances_without_charge", func(t *testing.T) {
		b, m := newTestBusiness(t)
		row := dbMembership(model.BillingStatusActive, 0)

		m.memberships.EXPECT().GetMembership(gomock.Any(), int64(42)).Return(row, nil)
		m.memberships.EXPECT().GetPlan(gomock.Any(), int64(3)).Return(memberships.MembershipPlan{ID: 3, Name: "Free"}, nil)
		m.memberships.EXPECT().
			UpdateBillingState(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg memberships.UpdateBillingStateParams) (memberships.Membership, error) {
				assert.Equal(t, testNow.AddDate(0, 1, 0), arg.NextBillingDate.Time)
				return memberships.Membership{}, nil
			})

		outcome, err := b.ProcessMembership(context.Background(), 42, settings, testNow)
		require.NoError(t, err)
		assert.Equal(t, model.OutcomeNoCharge, outcome.Kind)
	})

	t.Run("not_due_is_skipped", func(t *testing.T) {
		b, m := newTestBusiness(t)
		row := dbMembership(model.BillingStatusActive, 0)
		row.NextBillingDate = pgtype.Timestamptz{Time: testNow.Add(24 * time.Hour), Valid: true}

		m.memberships.EXPECT().GetMembership(gomock.Any(), int64(42)).Return(row, nil)

		outcome, err := b.ProcessMembership(context.Background(), 42, settings, testNow)
		require.NoError(t, err)
		assert.Equal(t, model.OutcomeSkipped, outcome.Kind)
	})

	t.Run("membership_not_found", func(t *testing.T) {
		b, m := newTestBusiness(t)
		m.memberships.EXPECT().GetMembership(gomock.Any(), int64(42)).Return(memberships.Membership{}, pgx.ErrNoRows)

		_, err := b.ProcessMembership(context.Background(), 42, settings, testNow)
		require.Error(t, err)
		assert.Equal(t, errs.NotFound, errs.Code(err))
	})

	t.Run("concurrent_attempt_is_an_error", func(t *testing.T) {
		b, m := newTestBusiness(t)
		row := dbMembership(model.BillingStatusActive, 0)

		m.memberships.EXPECT().GetMembership(gomock.Any(), int64(42)).Return(row, nil)
		m.memberships.EXPECT().GetPlan(gomock.Any(), int64(3)).Return(fixedPlan, nil)
		expectPaymentMethod(m)
		m.cycles.EXPECT().
			CreateBillingCycle(gomock.Any(), gomock.Any()).
			Return(billingcycles.BillingCycle{}, &pgconn.PgError{Code: pgerrcode.UniqueViolation})

		_, err := b.ProcessMembership(context.Background(), 42, settings, testNow)
		require.Error(t, err)
		assert.Equal(t, errs.AlreadyExists, errs.Code(err))
	})

	t.Run("state_changed_after_charge_is_a_warning", func(t *testing.T) {
		b, m := newTestBusiness(t)
		row := dbMembership(model.BillingStatusActive, 0)

		m.memberships.EXPECT().GetMembership(gomock.Any(), int64(42)).Return(row, nil)
		m.memberships.EXPECT().GetPlan(gomock.Any(), int64(3)).Return(fixedPlan, nil)
		expectPaymentMethod(m)
		m.cycles.EXPECT().CreateBillingCycle(gomock.Any(), gomock.Any()).Return(billingcycles.BillingCycle{ID: 10, IdempotencyKey: "k"}, nil)
		m.processor.EXPECT().Charge(gomock.Any(), gomock.Any()).Return(&payments.Charge{ID: "pi_6", Status: payments.ChargeStatusSucceeded}, nil)
		m.cycles.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).Return(billingcycles.BillingInvoice{}, nil)
		m.cycles.EXPECT().MarkBillingCycleProcessed(gomock.Any(), int64(10)).Return(nil)
		m.memberships.EXPECT().UpdateBillingState(gomock.Any(), gomock.Any()).Return(memberships.Membership{}, pgx.ErrNoRows)

		outcome, err := b.ProcessMembership(context.Background(), 42, settings, testNow)
		require.NoError(t, err)

		assert.Equal(t, model.OutcomeCharged, outcome.Kind)
		assert.Contains(t, outcome.Warning, "changed concurrently")
		assert.Empty(t, m.recorder.charges)
	})

	t.Run("recorder_failure_is_a_warning", func(t *testing.T) {
		b, m := newTestBusiness(t)
		m.recorder.err = errors.New("shift service unavailable")
		row := dbMembership(model.BillingStatusActive, 0)

		m.memberships.EXPECT().GetMembership(gomock.Any(), int64(42)).Return(row, nil)
		m.memberships.EXPECT().GetPlan(gomock.Any(), int64(3)).Return(fixedPlan, nil)
		expectPaymentMethod(m)
		m.cycles.EXPECT().CreateBillingCycle(gomock.Any(), gomock.Any()).Return(billingcycles.BillingCycle{ID: 10, IdempotencyKey: "k"}, nil)
		m.processor.EXPECT().Charge(gomock.Any(), gomock.Any()).Return(&payments.Charge{ID: "pi_7", Status: payments.ChargeStatusSucceeded}, nil)
		m.cycles.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).Return(billingcycles.BillingInvoice{}, nil)
		m.cycles.EXPECT().MarkBillingCycleProcessed(gomock.Any(), int64(10)).Return(nil)
		m.memberships.EXPECT().UpdateBillingState(gomock.Any(), gomock.Any()).Return(memberships.Membership{}, nil)

		outcome, err := b.ProcessMembership(context.Background(), 42, settings, testNow)
		require.NoError(t, err)
		assert.Equal(t, model.OutcomeCharged, outcome.Kind)
		assert.Equal(t, "failed to record recurring transaction", outcome.Warning)
	})
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}

func TestProcessMembership_TrialInProgressIsSkipped(t *testing.T) {
	b, m := newTestBusiness(t)
	row := dbMembership(model.BillingStatusTrial, 0)
	row.NextBillingDate = pgtype.Timestamptz{}
	row.TrialEndDate = pgtype.Timestamptz{Time: testNow.AddDate(0, 0, 3), Valid: true}

	m.memberships.EXPECT().GetMembership(gomock.Any(), int64(42)).Return(row, nil)

	outcome, err := b.ProcessMembership(context.Background(), 42, model.DefaultBillingSettings(), testNow)
	require.NoError(t, err)
	assert.Equal(t, model.OutcomeSkipped, outcome.Kind)
	assert.Equal(t, "trial in progress", outcome.Reason)
}
