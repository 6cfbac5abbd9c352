package booking

import (
	"time"

	"shareit/internal/pkg/errs"
)

var (
	ErrPeriodIncomplete = errs.New("booking start and end are required")
	ErrStartNotFuture   = errs.New("booking start must be in the future")
	ErrEndNotFuture     = errs.New("booking end must be in the future")
	ErrEndNotAfterStart = errs.New("booking end must be after start")
)

// Period is a half-open-in-spirit rental interval; both endpoints are strict
// at creation time: start > now, end > start, end > now.
type Period struct {
	start time.Time
	end   time.Time
}

func NewPeriod(start, end, now time.Time) (Period, error) {
	if start.IsZero() || end.IsZero() {
		return Period{}, ErrPeriodIncomplete
	}
	if !start.After(now) {
		return Period{}, ErrStartNotFuture
	}
	if !end.After(now) {
		return Period{}, ErrEndNotFuture
	}
	if !end.After(start) {
		return Period{}, ErrEndNotAfterStart
	}
	return Period{start: start, end: end}, nil
}

func (p Period) Start() time.Time {
	return p.start
}

func (p Period) End() time.Time {
	return p.end
}
