package billing

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"tillpoint.app/membership/model"
	"tillpoint.app/membership/store/billingcycles"
	"tillpoint.app/membership/store/memberships"
)

func timestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func optionalTimestamptz(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{Valid: false}
	}
	return timestamptz(*t)
}

func timePtr(ts pgtype.Timestamptz) *time.Time {
	if !ts.Valid {
		return nil
	}
	t := ts.Time
	return &t
}

func date(t time.Time) pgtype.Date {
	y, m, d := t.UTC().Date()
	return pgtype.Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), Valid: true}
}

// convertDBMembershipToModel converts a database Membership to a domain model Membership
func convertDBMembershipToModel(dbMembership memberships.Membership) model.Membership {
	m := model.Membership{
		ID:                    dbMembership.ID,
		LocationID:            dbMembership.LocationID,
		CustomerID:            dbMembership.CustomerID,
		PlanID:                dbMembership.PlanID,
		BillingType:           model.BillingType(dbMembership.BillingType),
		BillingStatus:         model.BillingStatus(dbMembership.BillingStatus),
		TrialEndDate:          timePtr(dbMembership.TrialEndDate),
		LastBilledDate:        timePtr(dbMembership.LastBilledDate),
		NextBillingDate:       timePtr(dbMembership.NextBillingDate),
		FailedPaymentAttempts: dbMembership.FailedPaymentAttempts,
		GracePeriodEnd:        timePtr(dbMembership.GracePeriodEnd),
		CreatedAt:             dbMembership.CreatedAt.Time,
		UpdatedAt:             dbMembership.UpdatedAt.Time,
	}

	if dbMembership.ProcessorCustomerID.Valid {
		m.ProcessorCustomerID = &dbMembership.ProcessorCustomerID.String
	}

	return m
}

func convertDBPlanToModel(dbPlan memberships.MembershipPlan) model.Plan {
	return model.Plan{
		ID:             dbPlan.ID,
		Name:           dbPlan.Name,
		PriceCents:     dbPlan.PriceCents,
		UsageBased:     dbPlan.UsageBased,
		UsageRateCents: dbPlan.UsageRateCents,
		Currency:       dbPlan.Currency,
	}
}

func convertDBSettingsToModel(dbSettings memberships.BillingSetting) model.BillingSettings {
	return model.BillingSettings{
		MaxRetryAttempts:      dbSettings.MaxRetryAttempts,
		GracePeriodDays:       dbSettings.GracePeriodDays,
		AutoSuspendAfterGrace: dbSettings.AutoSuspendAfterGrace,
	}
}

func convertDBBillingCycleToModel(row billingcycles.ListBillingCyclesRow) model.BillingCycle {
	cycle := model.BillingCycle{
		ID:             row.BillingCycle.ID,
		MembershipID:   row.BillingCycle.MembershipID,
		PeriodStart:    row.BillingCycle.PeriodStart.Time,
		PeriodEnd:      row.BillingCycle.PeriodEnd.Time,
		AmountCents:    row.BillingCycle.AmountCents,
		Status:         model.BillingCycleStatus(row.BillingCycle.Status),
		IdempotencyKey: row.BillingCycle.IdempotencyKey,
		CreatedAt:      row.BillingCycle.CreatedAt.Time,
	}

	if row.InvoiceID.Valid {
		invoice := &model.Invoice{
			ID:             row.Invoice.ID,
			BillingCycleID: row.Invoice.BillingCycleID,
			AmountCents:    row.Invoice.AmountCents,
			Status:         model.InvoiceStatus(row.Invoice.Status),
			DueDate:        row.Invoice.DueDate.Time,
			CreatedAt:      row.Invoice.CreatedAt.Time,
		}
		if row.Invoice.ProcessorPaymentID.Valid {
			invoice.ProcessorPaymentID = &row.Invoice.ProcessorPaymentID.String
		}
		cycle.Invoice = invoice
	}

	return cycle
}

func updateParams(m model.Membership, u StateUpdate) memberships.UpdateBillingStateParams {
	return memberships.UpdateBillingStateParams{
		ID:                    m.ID,
		BillingStatus:         string(u.Status),
		NextBillingDate:       optionalTimestamptz(u.NextBillingDate),
		LastBilledDate:        optionalTimestamptz(u.LastBilledDate),
		FailedPaymentAttempts: u.FailedPaymentAttempts,
		GracePeriodEnd:        optionalTimestamptz(u.GracePeriodEnd),
		ExpectedAttempts:      m.FailedPaymentAttempts,
	}
}
