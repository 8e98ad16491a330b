package sales

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const transactionColumns = `id, location_id, shift_id, membership_id, customer_id, source,
	payment_method, total_amount, currency, reference, created_at`

func scanTransaction(row pgx.Row) (Transaction, error) {
	var i Transaction
	err := row.Scan(
		&i.ID,
		&i.LocationID,
		&i.ShiftID,
		&i.MembershipID,
		&i.CustomerID,
		&i.Source,
		&i.PaymentMethod,
		&i.TotalAmount,
		&i.Currency,
		&i.Reference,
		&i.CreatedAt,
	)
	return i, err
}

func scanRefund(row pgx.Row) (Refund, error) {
	var i Refund
	err := row.Scan(
		&i.ID,
		&i.TransactionID,
		&i.Amount,
		&i.Reason,
		&i.CreatedAt,
	)
	return i, err
}

const createTransaction = `INSERT INTO transactions (
    location_id, shift_id, membership_id, customer_id, source,
    payment_method, total_amount, currency, reference, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING ` + transactionColumns

type CreateTransactionParams struct {
	LocationID    string
	ShiftID       pgtype.Int8
	MembershipID  pgtype.Int8
	CustomerID    pgtype.Int8
	Source        string
	PaymentMethod string
	TotalAmount   int64
	Currency      string
	Reference     string
	CreatedAt     pgtype.Timestamptz
}

func (q *Queries) CreateTransaction(ctx context.Context, arg CreateTransactionParams) (Transaction, error) {
	return scanTransaction(q.db.QueryRow(ctx, createTransaction,
		arg.LocationID,
		arg.ShiftID,
		arg.MembershipID,
		arg.CustomerID,
		arg.Source,
		arg.PaymentMethod,
		arg.TotalAmount,
		arg.Currency,
		arg.Reference,
		arg.CreatedAt,
	))
}

const getTransaction = `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`

func (q *Queries) GetTransaction(ctx context.Context, id int64) (Transaction, error) {
	return scanTransaction(q.db.QueryRow(ctx, getTransaction, id))
}

const getTransactionForUpdate = getTransaction + ` FOR UPDATE`

func (q *Queries) GetTransactionForUpdate(ctx context.Context, id int64) (Transaction, error) {
	return scanTransaction(q.db.QueryRow(ctx, getTransactionForUpdate, id))
}

const getTransactionByReference = `SELECT ` + transactionColumns + ` FROM transactions WHERE reference = $1`

func (q *Queries) GetTransactionByReference(ctx context.Context, reference string) (Transaction, error) {
	return scanTransaction(q.db.QueryRow(ctx, getTransactionByReference, reference))
}

const listShiftTransactions = `SELECT ` + transactionColumns + `
FROM transactions
WHERE shift_id = $1
ORDER BY id`

func (q *Queries) ListShiftTransactions(ctx context.Context, shiftID int64) ([]Transaction, error) {
	rows, err := q.db.Query(ctx, listShiftTransactions, shiftID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Transaction
	for rows.Next() {
		i, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const listShiftRefunds = `SELECT r.id, r.transaction_id, r.amount, r.reason, r.created_at
FROM refunds r
JOIN transactions t ON t.id = r.transaction_id
WHERE t.shift_id = $1
ORDER BY r.id`

func (q *Queries) ListShiftRefunds(ctx context.Context, shiftID int64) ([]Refund, error) {
	rows, err := q.db.Query(ctx, listShiftRefunds, shiftID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Refund
	for rows.Next() {
		i, err := scanRefund(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const sumRefunds = `SELECT COALESCE(SUM(amount), 0)::bigint FROM refunds WHERE transaction_id = $1`

func (q *Queries) SumRefunds(ctx context.Context, transactionID int64) (int64, error) {
	var total int64
	err := q.db.QueryRow(ctx, sumRefunds, transactionID).Scan(&total)
	return total, err
}

const createRefund = `INSERT INTO refunds (transaction_id, amount, reason)
VALUES ($1, $2, $3)
RETURNING id, transaction_id, amount, reason, created_at`

type CreateRefundParams struct {
	TransactionID int64
	Amount        int64
	Reason        pgtype.Text
}

func (q *Queries) CreateRefund(ctx context.Context, arg CreateRefundParams) (Refund, error) {
	return scanRefund(q.db.QueryRow(ctx, createRefund, arg.TransactionID, arg.Amount, arg.Reason))
}
