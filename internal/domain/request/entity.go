package request

import (
	"time"

	"shareit/internal/pkg/errs"
)

var ErrDescriptionRequired = errs.New("request description is required")

// ItemRequest is a posted need for an item not currently listed. Immutable
// after creation; fulfilling items reference it from their side.
type ItemRequest struct {
	id          int64
	description string
	requesterID int64
	created     time.Time
}

// NewItemRequest assigns the creation time server-side; a client-supplied
// timestamp is never trusted.
func NewItemRequest(description string, requesterID int64, now time.Time) (*ItemRequest, error) {
	if description == "" {
		return nil, ErrDescriptionRequired
	}
	return &ItemRequest{
		description: description,
		requesterID: requesterID,
		created:     now,
	}, nil
}

func (r *ItemRequest) ID() int64           { return r.id }
func (r *ItemRequest) Description() string { return r.description }
func (r *ItemRequest) RequesterID() int64  { return r.requesterID }
func (r *ItemRequest) Created() time.Time  { return r.created }
