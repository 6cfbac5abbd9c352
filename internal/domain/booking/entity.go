package booking

import (
	"shareit/internal/pkg/errs"
)

var ErrAlreadyDecided = errs.New("booking decision already made")

// Booking is a time-bounded request by a non-owner to use an item.
type Booking struct {
	id       int64
	period   Period
	itemID   int64
	bookerID int64
	status   Status
}

func NewBooking(itemID, bookerID int64, period Period) *Booking {
	return &Booking{
		period:   period,
		itemID:   itemID,
		bookerID: bookerID,
		status:   StatusWaiting,
	}
}

func (b *Booking) ID() int64       { return b.id }
func (b *Booking) Period() Period  { return b.period }
func (b *Booking) ItemID() int64   { return b.itemID }
func (b *Booking) BookerID() int64 { return b.bookerID }
func (b *Booking) Status() Status  { return b.status }
