package api

import (
	"net/http"

	reqdto "shareit/internal/handler/dto/request"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/handler/httperr"
	"shareit/internal/usecase"

	"github.com/gin-gonic/gin"
)

type RequestHandler struct {
	requestUseCase usecase.RequestUseCase
}

func NewRequestHandler(requestUseCase usecase.RequestUseCase) *RequestHandler {
	return &RequestHandler{requestUseCase: requestUseCase}
}

// @Summary Create item request
// @Tags requests
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Requester ID"
// @Param request body reqdto.CreateItemRequestRequest true "Request"
// @Success 200 {object} resdto.ItemRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /requests [post]
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	requesterID, ok := callerID(c)
	if !ok {
		return
	}

	var req reqdto.CreateItemRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	rm, err := h.requestUseCase.Create(c.Request.Context(), requesterID, req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequestRM(rm))
}

// @Summary List own item requests
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header int true "Requester ID"
// @Success 200 {array} resdto.ItemRequestResponse
// @Failure 404 {object} httperr.Response
// @Router /requests [get]
func (h *RequestHandler) ListOwnRequests(c *gin.Context) {
	requesterID, ok := callerID(c)
	if !ok {
		return
	}

	rms, err := h.requestUseCase.ListOwn(c.Request.Context(), requesterID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequestRMs(rms))
}

// @Summary List other users' item requests
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header int true "Requester ID"
// @Param from query int false "Offset"
// @Param size query int false "Page size"
// @Success 200 {array} resdto.ItemRequestResponse
// @Failure 400 {object} httperr.Response
// @Router /requests/all [get]
func (h *RequestHandler) ListOtherRequests(c *gin.Context) {
	requesterID, ok := callerID(c)
	if !ok {
		return
	}

	from, size, ok := pageParams(c)
	if !ok {
		return
	}

	rms, err := h.requestUseCase.ListOthers(c.Request.Context(), requesterID, from, size)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequestRMs(rms))
}

// @Summary Get item request
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header int true "Caller ID"
// @Param requestId path int true "Request ID"
// @Success 200 {object} resdto.ItemRequestResponse
// @Failure 404 {object} httperr.Response
// @Router /requests/{requestId} [get]
func (h *RequestHandler) GetRequest(c *gin.Context) {
	requesterID, ok := callerID(c)
	if !ok {
		return
	}
	requestID, ok := pathID(c, "requestId")
	if !ok {
		return
	}

	rm, err := h.requestUseCase.Get(c.Request.Context(), requesterID, requestID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequestRM(rm))
}
