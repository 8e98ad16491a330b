package domain

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.dev/beta/errs"

	"tillpoint.app/shift/model"
	"tillpoint.app/shift/store/sales"
	"tillpoint.app/shift/store/shifts"
)

//go:generate mockgen -destination=../mocks/domain/state_machine/state_machine.go -package=state_machine tillpoint.app/shift/domain StateMachine

// TxQueries are the shift repositories bound to one database transaction.
type TxQueries struct {
	Shifts shifts.Querier
	Sales  sales.Querier
}

// TransitionFunc writes the new state of a locked shift. next is the status
// the transition table allows for the requested action.
type TransitionFunc func(q TxQueries, current shifts.Shift, next model.ShiftStatus) (shifts.Shift, error)

// StateMachine owns every read-modify-write of a shift.
type StateMachine interface {
	// Transition locks the shift, checks the action against the transition
	// table and runs apply in the same transaction.
	Transition(ctx context.Context, id int64, action Action, apply TransitionFunc) (shifts.Shift, error)
	// WithOpenShift holds a shared lock on an open shift while fn runs, so the
	// shift cannot close underneath a sale or refund.
	WithOpenShift(ctx context.Context, id int64, fn func(q TxQueries, current shifts.Shift) error) error
	// InTx runs fn in a plain transaction.
	InTx(ctx context.Context, fn func(q TxQueries) error) error
}

type ShiftStateMachine struct {
	db     *pgxpool.Pool
	shifts *shifts.Queries
	sales  *sales.Queries
}

func NewShiftStateMachine(db *pgxpool.Pool, shiftRepo *shifts.Queries, salesRepo *sales.Queries) *ShiftStateMachine {
	return &ShiftStateMachine{
		db:     db,
		shifts: shiftRepo,
		sales:  salesRepo,
	}
}

var _ StateMachine = (*ShiftStateMachine)(nil)

func (sm *ShiftStateMachine) InTx(ctx context.Context, fn func(q TxQueries) error) error {
	tx, err := sm.db.Begin(ctx)
	if err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to start transaction"}
	}
	defer tx.Rollback(ctx)

	err = fn(TxQueries{
		Shifts: sm.shifts.WithTx(tx),
		Sales:  sm.sales.WithTx(tx),
	})
	if err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to commit transaction"}
	}
	return nil
}

func (sm *ShiftStateMachine) Transition(ctx context.Context, id int64, action Action, apply TransitionFunc) (shifts.Shift, error) {
	var updated shifts.Shift
	err := sm.InTx(ctx, func(q TxQueries) error {
		current, err := q.Shifts.GetShiftForUpdate(ctx, id)
		if err != nil {
			return lockError(err)
		}

		next, err := Next(model.ShiftStatus(current.Status), action)
		if err != nil {
			return &errs.Error{Code: errs.FailedPrecondition, Message: err.Error()}
		}

		updated, err = apply(q, current, next)
		return err
	})
	return updated, err
}

func (sm *ShiftStateMachine) WithOpenShift(ctx context.Context, id int64, fn func(q TxQueries, current shifts.Shift) error) error {
	return sm.InTx(ctx, func(q TxQueries) error {
		current, err := q.Shifts.GetShiftForShare(ctx, id)
		if err != nil {
			return lockError(err)
		}
		if !model.ShiftStatus(current.Status).Open() {
			return &errs.Error{Code: errs.FailedPrecondition, Message: "shift is closed"}
		}
		return fn(q, current)
	})
}

func lockError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return &errs.Error{Code: errs.NotFound, Message: "shift not found"}
	}
	return &errs.Error{Code: errs.Internal, Message: "failed to lock shift"}
}
