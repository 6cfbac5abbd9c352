package booking

import (
	"shareit/internal/pkg/errs"
)

// Status is the lifecycle state of a booking. WAITING transitions exactly
// once to APPROVED or REJECTED by the item owner's decision. CANCELED is part
// of the wire vocabulary but no transition produces it here; it is kept so
// stored and exchanged values round-trip.
type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
	StatusCanceled Status = "CANCELED"
)

var ErrUnknownStatus = errs.New("unknown booking status")

func (s Status) String() string {
	return string(s)
}

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusWaiting, StatusApproved, StatusRejected, StatusCanceled:
		return Status(s), nil
	}
	return "", ErrUnknownStatus
}

// Decide resolves the owner's single-shot decision against the current
// status. An approved booking is final; a rejected one may still be
// approved later.
func Decide(current Status, approve bool) (Status, error) {
	if current == StatusApproved {
		return current, ErrAlreadyDecided
	}
	if approve {
		return StatusApproved, nil
	}
	return StatusRejected, nil
}

// State is a listing filter, not a stored value. PAST/FUTURE/CURRENT classify
// by time relative to now; WAITING/REJECTED match the status exactly.
type State string

const (
	StateAll      State = "ALL"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateCurrent  State = "CURRENT"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

var ErrUnknownState = errs.New("unknown booking state")

func ParseState(s string) (State, error) {
	if s == "" {
		return StateAll, nil
	}
	switch State(s) {
	case StateAll, StatePast, StateFuture, StateCurrent, StateWaiting, StateRejected:
		return State(s), nil
	}
	return "", ErrUnknownState
}
