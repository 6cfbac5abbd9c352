package request

import (
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/pkg/errs"
	"shareit/internal/pkg/jsontime"
)

var ErrItemIDRequired = errs.New("booking itemId is required")

type CreateBookingRequest struct {
	ItemID *int64             `json:"itemId"`
	Start  jsontime.LocalTime `json:"start"`
	End    jsontime.LocalTime `json:"end"`
}

func (r CreateBookingRequest) ToDomain(bookerID int64, now time.Time) (*booking.Booking, error) {
	if r.ItemID == nil {
		return nil, ErrItemIDRequired
	}
	period, err := booking.NewPeriod(r.Start.Time, r.End.Time, now)
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(*r.ItemID, bookerID, period), nil
}
