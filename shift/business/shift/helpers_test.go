package shift

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"tillpoint.app/shift/domain"
	"tillpoint.app/shift/mocks/domain/state_machine"
	"tillpoint.app/shift/mocks/repository/sales_repo"
	"tillpoint.app/shift/mocks/repository/shift_repo"
	"tillpoint.app/shift/model"
	"tillpoint.app/shift/store/shifts"
)

var testNow = time.Date(2025, 3, 15, 18, 30, 0, 0, time.UTC)

type shiftMocks struct {
	shifts       *shift_repo.MockQuerier
	sales        *sales_repo.MockQuerier
	stateMachine *state_machine.MockStateMachine
}

func newTestBusiness(t *testing.T) (*business, shiftMocks) {
	ctrl := gomock.NewController(t)
	m := shiftMocks{
		shifts:       shift_repo.NewMockQuerier(ctrl),
		sales:        sales_repo.NewMockQuerier(ctrl),
		stateMachine: state_machine.NewMockStateMachine(ctrl),
	}
	b := &business{
		shiftRepo:    m.shifts,
		salesRepo:    m.sales,
		stateMachine: m.stateMachine,
		now:          func() time.Time { return testNow },
	}
	return b, m
}

func (m shiftMocks) tx() domain.TxQueries {
	return domain.TxQueries{Shifts: m.shifts, Sales: m.sales}
}

// expectTransition runs apply against the repo mocks the way the real state
// machine would once the row is locked and the action checked.
func (m shiftMocks) expectTransition(id int64, action domain.Action, current shifts.Shift) {
	m.stateMachine.EXPECT().
		Transition(gomock.Any(), id, action, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, action domain.Action, apply domain.TransitionFunc) (shifts.Shift, error) {
			next, err := domain.Next(model.ShiftStatus(current.Status), action)
			if err != nil {
				return shifts.Shift{}, &errs.Error{Code: errs.FailedPrecondition, Message: err.Error()}
			}
			return apply(m.tx(), current, next)
		})
}

func (m shiftMocks) expectOpenShift(id int64, current shifts.Shift) {
	m.stateMachine.EXPECT().
		WithOpenShift(gomock.Any(), id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, fn func(domain.TxQueries, shifts.Shift) error) error {
			return fn(m.tx(), current)
		})
}

func (m shiftMocks) expectTx() {
	m.stateMachine.EXPECT().
		InTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(domain.TxQueries) error) error {
			return fn(m.tx())
		})
}

func dbShift(id int64, status model.ShiftStatus, opening int64) shifts.Shift {
	return shifts.Shift{
		ID:             id,
		Name:           "Evening",
		LocationID:     "loc_1",
		AssignedUserID: "user_1",
		Status:         string(status),
		OpeningBalance: opening,
		StartTime:      pgtype.Timestamptz{Time: testNow.Add(-8 * time.Hour), Valid: true},
		CreatedAt:      pgtype.Timestamptz{Time: testNow.Add(-8 * time.Hour), Valid: true},
		UpdatedAt:      pgtype.Timestamptz{Time: testNow.Add(-8 * time.Hour), Valid: true},
	}
}

func pgInt8(v int64) pgtype.Int8 {
	return pgtype.Int8{Int64: v, Valid: true}
}

func uniqueViolation() error {
	return &pgconn.PgError{Code: pgerrcode.UniqueViolation}
}
