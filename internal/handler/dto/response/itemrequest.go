package response

import (
	"shareit/internal/pkg/jsontime"
	"shareit/internal/usecase/readmodel"
)

type ItemRequestResponse struct {
	ID          int64              `json:"id"`
	Description string             `json:"description"`
	Requestor   int64              `json:"requestor"`
	Created     jsontime.LocalTime `json:"created"`
	Items       []*ItemResponse    `json:"items"`
}

func FromRequestRM(rm *readmodel.RequestRM) *ItemRequestResponse {
	return &ItemRequestResponse{
		ID:          rm.ID,
		Description: rm.Description,
		Requestor:   rm.RequesterID,
		Created:     jsontime.From(rm.Created),
		Items:       FromItemRMs(rm.Items),
	}
}

func FromRequestRMs(rms []*readmodel.RequestRM) []*ItemRequestResponse {
	result := make([]*ItemRequestResponse, 0, len(rms))
	for _, rm := range rms {
		result = append(result, FromRequestRM(rm))
	}
	return result
}
