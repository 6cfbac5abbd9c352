package response

import (
	"shareit/internal/pkg/jsontime"
	"shareit/internal/usecase/readmodel"
)

type BookingResponse struct {
	ID     int64              `json:"id"`
	Start  jsontime.LocalTime `json:"start"`
	End    jsontime.LocalTime `json:"end"`
	Status string             `json:"status"`
	Item   ItemResponse       `json:"item"`
	Booker UserResponse       `json:"booker"`
}

func FromBookingRM(rm *readmodel.BookingRM) *BookingResponse {
	return &BookingResponse{
		ID:     rm.ID,
		Start:  jsontime.From(rm.Start),
		End:    jsontime.From(rm.End),
		Status: rm.Status,
		Item:   *FromItemRM(&rm.Item),
		Booker: *FromUserRM(&rm.Booker),
	}
}

func FromBookingRMs(rms []*readmodel.BookingRM) []*BookingResponse {
	result := make([]*BookingResponse, 0, len(rms))
	for _, rm := range rms {
		result = append(result, FromBookingRM(rm))
	}
	return result
}
