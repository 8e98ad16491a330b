package shift

import (
	"context"

	"tillpoint.app/shift/model"
)

// closedNotifier fans out shifts the session workflow force closed.
type closedNotifier struct{}

func (closedNotifier) ShiftClosed(ctx context.Context, s *model.Shift) {
	invalidateSummary(ctx, &s.ID)
	publishShiftEvent(s)
}
