// Package readmodel holds the flat read-side shapes returned by repositories
// and use cases. They carry everything the handlers need to assemble wire
// responses without reaching back into the domain layer.
package readmodel

import "time"

type UserRM struct {
	ID    int64
	Name  string
	Email string
}

type ItemRM struct {
	ID          int64
	Name        string
	Description string
	Available   bool
	OwnerID     int64
	RequestID   *int64
}

// BookingRefRM is the short booking reference embedded in item views
// (lastBooking / nextBooking).
type BookingRefRM struct {
	ID       int64
	BookerID int64
	Start    time.Time
	End      time.Time
}

// ItemBookingRM is one row of the batched bookings-by-items lookup used for
// last/next enrichment; REJECTED bookings are filtered out at the query.
type ItemBookingRM struct {
	ID       int64
	ItemID   int64
	BookerID int64
	Start    time.Time
	End      time.Time
}

// ItemDetailRM is an item enriched with owner-perspective booking references
// and the item's comments.
type ItemDetailRM struct {
	ItemRM
	LastBooking *BookingRefRM
	NextBooking *BookingRefRM
	Comments    []*CommentRM
}

type CommentRM struct {
	ID         int64
	Text       string
	ItemID     int64
	AuthorID   int64
	AuthorName string
	Created    time.Time
}

// BookingRM is the full booking view with item and booker snapshots embedded.
type BookingRM struct {
	ID     int64
	Start  time.Time
	End    time.Time
	Status string
	Item   ItemRM
	Booker UserRM
}

// BookingDecisionRM is the in-transaction snapshot the decision flow locks
// and validates against.
type BookingDecisionRM struct {
	ID          int64
	ItemID      int64
	ItemOwnerID int64
	BookerID    int64
	Start       time.Time
	End         time.Time
	Status      string
}

type RequestRM struct {
	ID          int64
	Description string
	RequesterID int64
	Created     time.Time
	Items       []*ItemRM
}
