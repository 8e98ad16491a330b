package ledger

import (
	"errors"
	"time"
)

var ErrInvalidWindow = errors.New("window end must not be before start")

// Window is the half-open interval [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

func NewWindow(start, end time.Time) (Window, error) {
	if end.Before(start) {
		return Window{}, ErrInvalidWindow
	}
	return Window{Start: start, End: end}, nil
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

func (w Window) IsEmpty() bool {
	return !w.End.After(w.Start)
}

func (w Window) Duration() time.Duration {
	return w.End.Sub(w.Start)
}
