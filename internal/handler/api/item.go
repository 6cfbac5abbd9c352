package api

import (
	"net/http"

	reqdto "shareit/internal/handler/dto/request"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/handler/httperr"
	"shareit/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ItemHandler struct {
	itemUseCase usecase.ItemUseCase
}

func NewItemHandler(itemUseCase usecase.ItemUseCase) *ItemHandler {
	return &ItemHandler{itemUseCase: itemUseCase}
}

// @Summary Create item
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Owner ID"
// @Param request body reqdto.CreateItemRequest true "Item"
// @Success 200 {object} resdto.ItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items [post]
func (h *ItemHandler) CreateItem(c *gin.Context) {
	ownerID, ok := callerID(c)
	if !ok {
		return
	}

	var req reqdto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	rm, err := h.itemUseCase.Create(c.Request.Context(), ownerID, req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemRM(rm))
}

// @Summary Update item
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Owner ID"
// @Param itemId path int true "Item ID"
// @Param request body reqdto.UpdateItemRequest true "Fields to change"
// @Success 200 {object} resdto.ItemResponse
// @Failure 404 {object} httperr.Response
// @Router /items/{itemId} [patch]
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}

	var req reqdto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	rm, err := h.itemUseCase.Update(c.Request.Context(), caller, itemID, req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemRM(rm))
}

// @Summary Get item
// @Description Comments are always attached; lastBooking/nextBooking only for the owner.
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header int true "Caller ID"
// @Param itemId path int true "Item ID"
// @Success 200 {object} resdto.ItemDetailResponse
// @Failure 404 {object} httperr.Response
// @Router /items/{itemId} [get]
func (h *ItemHandler) GetItem(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}

	rm, err := h.itemUseCase.Get(c.Request.Context(), caller, itemID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemDetailRM(rm))
}

// @Summary List own items
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header int true "Owner ID"
// @Success 200 {array} resdto.ItemDetailResponse
// @Router /items [get]
func (h *ItemHandler) ListItems(c *gin.Context) {
	ownerID, ok := callerID(c)
	if !ok {
		return
	}

	rms, err := h.itemUseCase.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemDetailRMs(rms))
}

// @Summary Search items
// @Description Blank text yields an empty list.
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header int true "Caller ID"
// @Param text query string true "Search text"
// @Success 200 {array} resdto.ItemResponse
// @Router /items/search [get]
func (h *ItemHandler) SearchItems(c *gin.Context) {
	if _, ok := callerID(c); !ok {
		return
	}

	rms, err := h.itemUseCase.Search(c.Request.Context(), c.Query("text"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemRMs(rms))
}

// @Summary Delete item
// @Tags items
// @Param X-Sharer-User-Id header int true "Owner ID"
// @Param itemId path int true "Item ID"
// @Success 200
// @Failure 404 {object} httperr.Response
// @Router /items/{itemId} [delete]
func (h *ItemHandler) DeleteItem(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}

	if err := h.itemUseCase.Delete(c.Request.Context(), caller, itemID); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Comment on an item
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Author ID"
// @Param itemId path int true "Item ID"
// @Param request body reqdto.CreateCommentRequest true "Comment"
// @Success 200 {object} resdto.CommentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items/{itemId}/comment [post]
func (h *ItemHandler) AddComment(c *gin.Context) {
	authorID, ok := callerID(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}

	var req reqdto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	rm, err := h.itemUseCase.AddComment(c.Request.Context(), authorID, itemID, req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCommentRM(rm))
}
