package api

import (
	"errors"
	"net/http"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/comment"
	"shareit/internal/domain/item"
	domainreq "shareit/internal/domain/request"
	"shareit/internal/domain/user"
	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/handler/httperr"
	"shareit/internal/usecase"

	"github.com/gin-gonic/gin"
)

// validationMessages maps domain validation sentinels to their wire messages.
var validationMessages = []struct {
	err error
	msg string
}{
	{user.ErrNameRequired, "User name is required"},
	{user.ErrEmailRequired, "Email is required"},
	{user.ErrInvalidEmail, "Invalid email format"},
	{item.ErrNameRequired, "Item name is required"},
	{item.ErrDescriptionRequired, "Item description is required"},
	{reqdto.ErrAvailableRequired, "Item availability is required"},
	{reqdto.ErrItemIDRequired, "Booking itemId is required"},
	{comment.ErrTextRequired, "Comment text is required"},
	{domainreq.ErrDescriptionRequired, "Request description is required"},
	{booking.ErrPeriodIncomplete, "Booking start and end are required"},
	{booking.ErrStartNotFuture, "Booking start must be in the future"},
	{booking.ErrEndNotFuture, "Booking end must be in the future"},
	{booking.ErrEndNotAfterStart, "Booking end must be after start"},
}

// handleError translates usecase sentinels into HTTP responses. Ownership and
// visibility failures answer exactly like a missing resource.
func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "User not found")
	case errors.Is(err, usecase.ErrItemNotFound), errors.Is(err, usecase.ErrSelfBooking):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found")
	case errors.Is(err, usecase.ErrRequestNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Request not found")
	case errors.Is(err, usecase.ErrBookingNotFound),
		errors.Is(err, usecase.ErrBookingAccessDenied),
		errors.Is(err, usecase.ErrDecisionNotAllowed):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found")
	case errors.Is(err, usecase.ErrEmailConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Email already in use")
	case errors.Is(err, usecase.ErrBookingConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Booking period conflicts with another booking")
	case errors.Is(err, usecase.ErrItemUnavailable):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Item is not available for booking")
	case errors.Is(err, booking.ErrAlreadyDecided):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Booking has already been approved")
	case errors.Is(err, usecase.ErrCommentNotAllowed):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Commenting requires a finished approved booking")
	case errors.Is(err, usecase.ErrInvalidPagination):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid pagination parameters")
	case errors.Is(err, usecase.ErrDomainValidationFailed):
		httperr.AbortWithError(c, http.StatusBadRequest, err, validationMessage(err))
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
	}
}

func validationMessage(err error) string {
	for _, vm := range validationMessages {
		if errors.Is(err, vm.err) {
			return vm.msg
		}
	}
	return "Invalid request"
}
