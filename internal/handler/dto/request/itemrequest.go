package request

import (
	"strings"
	"time"

	domainreq "shareit/internal/domain/request"
	"shareit/internal/pkg/jsontime"
)

type CreateItemRequestRequest struct {
	Description string `json:"description"`
	// Created is accepted for wire compatibility but ignored; the
	// timestamp is always assigned server-side.
	Created *jsontime.LocalTime `json:"created"`
}

func (r CreateItemRequestRequest) ToDomain(requesterID int64, now time.Time) (*domainreq.ItemRequest, error) {
	return domainreq.NewItemRequest(strings.TrimSpace(r.Description), requesterID, now)
}
