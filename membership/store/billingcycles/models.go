package billingcycles

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type BillingCycle struct {
	ID             int64
	MembershipID   int64
	PeriodStart    pgtype.Timestamptz
	PeriodEnd      pgtype.Timestamptz
	AmountCents    int64
	Status         string
	IdempotencyKey string
	CreatedAt      pgtype.Timestamptz
}

type BillingInvoice struct {
	ID                 int64
	BillingCycleID     int64
	MembershipID       int64
	AmountCents        int64
	Status             string
	DueDate            pgtype.Timestamptz
	ProcessorPaymentID pgtype.Text
	CreatedAt          pgtype.Timestamptz
}

type ListBillingCyclesRow struct {
	BillingCycle BillingCycle
	InvoiceID    pgtype.Int8
	Invoice      BillingInvoice
}
