package domain

import (
	"fmt"

	"tillpoint.app/shift/model"
)

// Action is an operator or administrative command on a shift.
type Action string

const (
	ActionPause      Action = "pause"
	ActionResume     Action = "resume"
	ActionClose      Action = "close"
	ActionForceClose Action = "force_close"
)

var shiftTransitions = map[model.ShiftStatus]map[Action]model.ShiftStatus{
	model.ShiftStatusActive: {
		ActionPause:      model.ShiftStatusPaused,
		ActionClose:      model.ShiftStatusClosed,
		ActionForceClose: model.ShiftStatusClosed,
	},
	model.ShiftStatusPaused: {
		ActionResume:     model.ShiftStatusActive,
		ActionClose:      model.ShiftStatusClosed,
		ActionForceClose: model.ShiftStatusClosed,
	},
	// closed is terminal
}

// IllegalActionError is returned for an action the current status does not allow.
type IllegalActionError struct {
	From   model.ShiftStatus
	Action Action
}

func (e *IllegalActionError) Error() string {
	return fmt.Sprintf("cannot %s a shift that is %s", e.Action, e.From)
}

// Next returns the status a shift moves to when action is applied.
func Next(from model.ShiftStatus, action Action) (model.ShiftStatus, error) {
	to, ok := shiftTransitions[from][action]
	if !ok {
		return from, &IllegalActionError{From: from, Action: action}
	}
	return to, nil
}

func Allowed(from model.ShiftStatus, action Action) bool {
	_, ok := shiftTransitions[from][action]
	return ok
}
