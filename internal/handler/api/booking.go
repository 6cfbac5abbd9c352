package api

import (
	"context"
	"net/http"
	"strconv"

	"shareit/internal/domain/booking"
	reqdto "shareit/internal/handler/dto/request"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/handler/httperr"
	"shareit/internal/usecase"
	"shareit/internal/usecase/readmodel"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingUseCase usecase.BookingUseCase
}

func NewBookingHandler(bookingUseCase usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{bookingUseCase: bookingUseCase}
}

// @Summary Create booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Booker ID"
// @Param request body reqdto.CreateBookingRequest true "Booking"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	bookerID, ok := callerID(c)
	if !ok {
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	rm, err := h.bookingUseCase.Create(c.Request.Context(), bookerID, req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingRM(rm))
}

// @Summary Approve or reject booking
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Owner ID"
// @Param bookingId path int true "Booking ID"
// @Param approved query bool true "Approve (true) or reject (false)"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{bookingId} [patch]
func (h *BookingHandler) DecideBooking(c *gin.Context) {
	ownerID, ok := callerID(c)
	if !ok {
		return
	}
	bookingID, ok := pathID(c, "bookingId")
	if !ok {
		return
	}

	approve, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid approved format")
		return
	}

	rm, err := h.bookingUseCase.Decide(c.Request.Context(), ownerID, bookingID, approve)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingRM(rm))
}

// @Summary Get booking
// @Description Visible to the booker and the item owner only.
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Caller ID"
// @Param bookingId path int true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /bookings/{bookingId} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	bookingID, ok := pathID(c, "bookingId")
	if !ok {
		return
	}

	rm, err := h.bookingUseCase.Get(c.Request.Context(), caller, bookingID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingRM(rm))
}

// @Summary List own bookings
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Booker ID"
// @Param state query string false "ALL | CURRENT | PAST | FUTURE | WAITING | REJECTED"
// @Param from query int false "Offset"
// @Param size query int false "Page size"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	h.list(c, h.bookingUseCase.ListForBooker)
}

// @Summary List bookings of own items
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Owner ID"
// @Param state query string false "ALL | CURRENT | PAST | FUTURE | WAITING | REJECTED"
// @Param from query int false "Offset"
// @Param size query int false "Page size"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Router /bookings/owner [get]
func (h *BookingHandler) ListOwnerBookings(c *gin.Context) {
	h.list(c, h.bookingUseCase.ListForOwner)
}

type listFunc func(ctx context.Context, userID int64, state booking.State, from, size int) ([]*readmodel.BookingRM, error)

func (h *BookingHandler) list(c *gin.Context, fn listFunc) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	raw := c.Query("state")
	state, err := booking.ParseState(raw)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown state: "+raw)
		return
	}

	from, size, ok := pageParams(c)
	if !ok {
		return
	}

	rms, err := fn(c.Request.Context(), userID, state, from, size)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingRMs(rms))
}
