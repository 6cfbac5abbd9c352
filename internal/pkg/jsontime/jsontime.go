// Package jsontime serializes timestamps as local date-times without a zone
// offset, matching the service's wire contract (yyyy-MM-ddTHH:mm:ss).
package jsontime

import (
	"strings"
	"time"

	"shareit/internal/pkg/errs"
)

const (
	// Layout is the exact wire format for outgoing timestamps.
	Layout = "2006-01-02T15:04:05"

	// parseLayout additionally tolerates fractional seconds on input.
	parseLayout = "2006-01-02T15:04:05.999999999"
)

var ErrBadFormat = errs.New("invalid date-time format")

// LocalTime is a time.Time that marshals without a timezone designator.
type LocalTime struct {
	time.Time
}

func From(t time.Time) LocalTime {
	return LocalTime{Time: t}
}

func FromPtr(t *time.Time) *LocalTime {
	if t == nil {
		return nil
	}
	lt := From(*t)
	return &lt
}

func (t LocalTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Format(Layout) + `"`), nil
}

func (t *LocalTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}
	parsed, err := time.ParseInLocation(parseLayout, s, time.Local)
	if err != nil {
		return errs.Mark(err, ErrBadFormat)
	}
	t.Time = parsed
	return nil
}
