package shifts

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const shiftColumns = `id, name, location_id, assigned_user_id, status, opening_balance,
	start_time, paused_at, end_time, expected_balance, closing_balance, total_sales,
	cash_discrepancy, force_closed, force_close_reason, created_at, updated_at`

func scanShift(row pgx.Row) (Shift, error) {
	var i Shift
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.LocationID,
		&i.AssignedUserID,
		&i.Status,
		&i.OpeningBalance,
		&i.StartTime,
		&i.PausedAt,
		&i.EndTime,
		&i.ExpectedBalance,
		&i.ClosingBalance,
		&i.TotalSales,
		&i.CashDiscrepancy,
		&i.ForceClosed,
		&i.ForceCloseReason,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createShift = `INSERT INTO shifts (name, location_id, assigned_user_id, status, opening_balance, start_time)
VALUES ($1, $2, $3, 'active', $4, $5)
RETURNING ` + shiftColumns

type CreateShiftParams struct {
	Name           string
	LocationID     string
	AssignedUserID string
	OpeningBalance int64
	StartTime      pgtype.Timestamptz
}

func (q *Queries) CreateShift(ctx context.Context, arg CreateShiftParams) (Shift, error) {
	return scanShift(q.db.QueryRow(ctx, createShift,
		arg.Name,
		arg.LocationID,
		arg.AssignedUserID,
		arg.OpeningBalance,
		arg.StartTime,
	))
}

const getShift = `SELECT ` + shiftColumns + ` FROM shifts WHERE id = $1`

func (q *Queries) GetShift(ctx context.Context, id int64) (Shift, error) {
	return scanShift(q.db.QueryRow(ctx, getShift, id))
}

const getShiftForUpdate = getShift + ` FOR UPDATE`

func (q *Queries) GetShiftForUpdate(ctx context.Context, id int64) (Shift, error) {
	return scanShift(q.db.QueryRow(ctx, getShiftForUpdate, id))
}

// FOR SHARE blocks a concurrent close until the sale or refund commits.
const getShiftForShare = getShift + ` FOR SHARE`

func (q *Queries) GetShiftForShare(ctx context.Context, id int64) (Shift, error) {
	return scanShift(q.db.QueryRow(ctx, getShiftForShare, id))
}

const getOpenShift = `SELECT ` + shiftColumns + `
FROM shifts
WHERE assigned_user_id = $1 AND location_id = $2 AND status IN ('active', 'paused')
LIMIT 1`

type GetOpenShiftParams struct {
	AssignedUserID string
	LocationID     string
}

func (q *Queries) GetOpenShift(ctx context.Context, arg GetOpenShiftParams) (Shift, error) {
	return scanShift(q.db.QueryRow(ctx, getOpenShift, arg.AssignedUserID, arg.LocationID))
}

const listShifts = `SELECT ` + shiftColumns + `
FROM shifts
WHERE location_id = $1
  AND ($2::text IS NULL OR status = $2)
ORDER BY start_time DESC, id DESC
LIMIT $3 OFFSET $4`

type ListShiftsParams struct {
	LocationID string
	Status     pgtype.Text
	Limit      int32
	Offset     int32
}

func (q *Queries) ListShifts(ctx context.Context, arg ListShiftsParams) ([]Shift, error) {
	rows, err := q.db.Query(ctx, listShifts, arg.LocationID, arg.Status, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Shift
	for rows.Next() {
		i, err := scanShift(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const countShifts = `SELECT count(*) FROM shifts
WHERE location_id = $1
  AND ($2::text IS NULL OR status = $2)`

type CountShiftsParams struct {
	LocationID string
	Status     pgtype.Text
}

func (q *Queries) CountShifts(ctx context.Context, arg CountShiftsParams) (int64, error) {
	var count int64
	err := q.db.QueryRow(ctx, countShifts, arg.LocationID, arg.Status).Scan(&count)
	return count, err
}

const updateShiftStatus = `UPDATE shifts
SET status = $2, paused_at = $3, updated_at = now()
WHERE id = $1
RETURNING ` + shiftColumns

type UpdateShiftStatusParams struct {
	ID       int64
	Status   string
	PausedAt pgtype.Timestamptz
}

func (q *Queries) UpdateShiftStatus(ctx context.Context, arg UpdateShiftStatusParams) (Shift, error) {
	return scanShift(q.db.QueryRow(ctx, updateShiftStatus, arg.ID, arg.Status, arg.PausedAt))
}

const closeShift = `UPDATE shifts
SET status = 'closed',
    paused_at = NULL,
    end_time = $2,
    expected_balance = $3,
    closing_balance = $4,
    total_sales = $5,
    cash_discrepancy = $6,
    force_closed = $7,
    force_close_reason = $8,
    updated_at = now()
WHERE id = $1 AND status <> 'closed'
RETURNING ` + shiftColumns

type CloseShiftParams struct {
	ID               int64
	EndTime          pgtype.Timestamptz
	ExpectedBalance  int64
	ClosingBalance   int64
	TotalSales       int64
	CashDiscrepancy  int64
	ForceClosed      bool
	ForceCloseReason pgtype.Text
}

func (q *Queries) CloseShift(ctx context.Context, arg CloseShiftParams) (Shift, error) {
	return scanShift(q.db.QueryRow(ctx, closeShift,
		arg.ID,
		arg.EndTime,
		arg.ExpectedBalance,
		arg.ClosingBalance,
		arg.TotalSales,
		arg.CashDiscrepancy,
		arg.ForceClosed,
		arg.ForceCloseReason,
	))
}
