package request

import (
	"strings"
	"time"

	"shareit/internal/domain/comment"
	"shareit/internal/domain/item"
	"shareit/internal/pkg/errs"
)

var ErrAvailableRequired = errs.New("item availability is required")

type CreateItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   *bool  `json:"available"`
	RequestID   *int64 `json:"requestId,omitempty"`
}

func (r CreateItemRequest) ToDomain(ownerID int64) (*item.Item, error) {
	if r.Available == nil {
		return nil, ErrAvailableRequired
	}
	return item.NewItem(
		strings.TrimSpace(r.Name),
		strings.TrimSpace(r.Description),
		*r.Available,
		ownerID,
		r.RequestID,
	)
}

// UpdateItemRequest is a partial update; absent fields keep their stored
// values.
type UpdateItemRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Available   *bool   `json:"available,omitempty"`
}

type CreateCommentRequest struct {
	Text string `json:"text"`
}

func (r CreateCommentRequest) ToDomain(itemID, authorID int64, now time.Time) (*comment.Comment, error) {
	return comment.NewComment(strings.TrimSpace(r.Text), itemID, authorID, now)
}
