package response

import (
	"shareit/internal/pkg/jsontime"
	"shareit/internal/usecase/readmodel"
)

type ItemResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   *int64 `json:"requestId"`
}

// ItemDetailResponse adds the owner-perspective booking references and the
// item's comments; lastBooking/nextBooking stay null for non-owners.
type ItemDetailResponse struct {
	ItemResponse
	LastBooking *BookingRefResponse `json:"lastBooking"`
	NextBooking *BookingRefResponse `json:"nextBooking"`
	Comments    []*CommentResponse  `json:"comments"`
}

// BookingRefResponse is the short booking form embedded in item views.
type BookingRefResponse struct {
	ID       int64              `json:"id"`
	BookerID int64              `json:"bookerId"`
	Start    jsontime.LocalTime `json:"start"`
	End      jsontime.LocalTime `json:"end"`
}

type CommentResponse struct {
	ID         int64              `json:"id"`
	Text       string             `json:"text"`
	AuthorName string             `json:"authorName"`
	Created    jsontime.LocalTime `json:"created"`
}

func FromItemRM(rm *readmodel.ItemRM) *ItemResponse {
	return &ItemResponse{
		ID:          rm.ID,
		Name:        rm.Name,
		Description: rm.Description,
		Available:   rm.Available,
		RequestID:   rm.RequestID,
	}
}

func FromItemRMs(rms []*readmodel.ItemRM) []*ItemResponse {
	result := make([]*ItemResponse, 0, len(rms))
	for _, rm := range rms {
		result = append(result, FromItemRM(rm))
	}
	return result
}

func FromItemDetailRM(rm *readmodel.ItemDetailRM) *ItemDetailResponse {
	return &ItemDetailResponse{
		ItemResponse: *FromItemRM(&rm.ItemRM),
		LastBooking:  fromBookingRefRM(rm.LastBooking),
		NextBooking:  fromBookingRefRM(rm.NextBooking),
		Comments:     FromCommentRMs(rm.Comments),
	}
}

func FromItemDetailRMs(rms []*readmodel.ItemDetailRM) []*ItemDetailResponse {
	result := make([]*ItemDetailResponse, 0, len(rms))
	for _, rm := range rms {
		result = append(result, FromItemDetailRM(rm))
	}
	return result
}

func fromBookingRefRM(rm *readmodel.BookingRefRM) *BookingRefResponse {
	if rm == nil {
		return nil
	}
	return &BookingRefResponse{
		ID:       rm.ID,
		BookerID: rm.BookerID,
		Start:    jsontime.From(rm.Start),
		End:      jsontime.From(rm.End),
	}
}

func FromCommentRM(rm *readmodel.CommentRM) *CommentResponse {
	return &CommentResponse{
		ID:         rm.ID,
		Text:       rm.Text,
		AuthorName: rm.AuthorName,
		Created:    jsontime.From(rm.Created),
	}
}

func FromCommentRMs(rms []*readmodel.CommentRM) []*CommentResponse {
	result := make([]*CommentResponse, 0, len(rms))
	for _, rm := range rms {
		result = append(result, FromCommentRM(rm))
	}
	return result
}
