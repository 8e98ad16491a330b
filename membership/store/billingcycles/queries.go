package billingcycles

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createBillingCycle = `INSERT INTO billing_cycles (membership_id, period_start, period_end, amount_cents, status, idempotency_key)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, membership_id, period_start, period_end, amount_cents, status, idempotency_key, created_at`

type CreateBillingCycleParams struct {
	MembershipID   int64
	PeriodStart    pgtype.Timestamptz
	PeriodEnd      pgtype.Timestamptz
	AmountCents    int64
	Status         string
	IdempotencyKey string
}

func (q *Queries) CreateBillingCycle(ctx context.Context, arg CreateBillingCycleParams) (BillingCycle, error) {
	row := q.db.QueryRow(ctx, createBillingCycle,
		arg.MembershipID,
		arg.PeriodStart,
		arg.PeriodEnd,
		arg.AmountCents,
		arg.Status,
		arg.IdempotencyKey,
	)
	var i BillingCycle
	err := row.Scan(
		&i.ID,
		&i.MembershipID,
		&i.PeriodStart,
		&i.PeriodEnd,
		&i.AmountCents,
		&i.Status,
		&i.IdempotencyKey,
		&i.CreatedAt,
	)
	return i, err
}

const markBillingCycleProcessed = `UPDATE billing_cycles SET status = 'processed' WHERE id = $1 AND status = 'pending'`

func (q *Queries) MarkBillingCycleProcessed(ctx context.Context, id int64) error {
	_, err := q.db.Exec(ctx, markBillingCycleProcessed, id)
	return err
}

const createInvoice = `INSERT INTO billing_invoices (billing_cycle_id, membership_id, amount_cents, status, due_date, processor_payment_id)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, billing_cycle_id, membership_id, amount_cents, status, due_date, processor_payment_id, created_at`

type CreateInvoiceParams struct {
	BillingCycleID     int64
	MembershipID       int64
	AmountCents        int64
	Status             string
	DueDate            pgtype.Timestamptz
	ProcessorPaymentID pgtype.Text
}

func (q *Queries) CreateInvoice(ctx context.Context, arg CreateInvoiceParams) (BillingInvoice, error) {
	row := q.db.QueryRow(ctx, createInvoice,
		arg.BillingCycleID,
		arg.MembershipID,
		arg.AmountCents,
		arg.Status,
		arg.DueDate,
		arg.ProcessorPaymentID,
	)
	var i BillingInvoice
	err := row.Scan(
		&i.ID,
		&i.BillingCycleID,
		&i.MembershipID,
		&i.AmountCents,
		&i.Status,
		&i.DueDate,
		&i.ProcessorPaymentID,
		&i.CreatedAt,
	)
	return i, err
}

const listBillingCycles = `SELECT c.id, c.membership_id, c.period_start, c.period_end, c.amount_cents, c.status, c.idempotency_key, c.created_at,
       i.id, i.amount_cents, i.status, i.due_date, i.processor_payment_id, i.created_at
FROM billing_cycles c
LEFT JOIN billing_invoices i ON i.billing_cycle_id = c.id
WHERE c.membership_id = $1
ORDER BY c.created_at DESC, c.id DESC`

func (q *Queries) ListBillingCycles(ctx context.Context, membershipID int64) ([]ListBillingCyclesRow, error) {
	rows, err := q.db.Query(ctx, listBillingCycles, membershipID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ListBillingCyclesRow
	for rows.Next() {
		var (
			i             ListBillingCyclesRow
			invoiceAmount pgtype.Int8
			invoiceStatus pgtype.Text
		)
		if err := rows.Scan(
			&i.BillingCycle.ID,
			&i.BillingCycle.MembershipID,
			&i.BillingCycle.PeriodStart,
			&i.BillingCycle.PeriodEnd,
			&i.BillingCycle.AmountCents,
			&i.BillingCycle.Status,
			&i.BillingCycle.IdempotencyKey,
			&i.BillingCycle.CreatedAt,
			&i.InvoiceID,
			&invoiceAmount,
			&invoiceStatus,
			&i.Invoice.DueDate,
			&i.Invoice.ProcessorPaymentID,
			&i.Invoice.CreatedAt,
		); err != nil {
			return nil, err
		}
		if i.InvoiceID.Valid {
			i.Invoice.ID = i.InvoiceID.Int64
			i.Invoice.BillingCycleID = i.BillingCycle.ID
			i.Invoice.MembershipID = i.BillingCycle.MembershipID
			i.Invoice.AmountCents = invoiceAmount.Int64
			i.Invoice.Status = invoiceStatus.String
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
