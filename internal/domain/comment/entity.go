package comment

import (
	"time"

	"shareit/internal/pkg/errs"
)

var ErrTextRequired = errs.New("comment text is required")

// Comment is feedback left by a renter after a completed, approved booking.
// Immutable once written.
type Comment struct {
	id       int64
	text     string
	itemID   int64
	authorID int64
	created  time.Time
}

func NewComment(text string, itemID, authorID int64, now time.Time) (*Comment, error) {
	if text == "" {
		return nil, ErrTextRequired
	}
	return &Comment{
		text:     text,
		itemID:   itemID,
		authorID: authorID,
		created:  now,
	}, nil
}

func (c *Comment) ID() int64          { return c.id }
func (c *Comment) Text() string       { return c.text }
func (c *Comment) ItemID() int64      { return c.itemID }
func (c *Comment) AuthorID() int64    { return c.authorID }
func (c *Comment) Created() time.Time { return c.created }
