package api

import (
	"errors"
	"net/http"

	"slotswapper/internal/domain/swap"
	reqdto "slotswapper/internal/handler/dto/request"
	resdto "slotswapper/internal/handler/dto/response"
	"slotswapper/internal/handler/middleware"
	"slotswapper/internal/usecase/commands"
	"slotswapper/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SwapHandler struct {
	swapCommands commands.SwapCommands
	swapQueries  queries.SwapQueries
}

func NewSwapHandler(swapCommands commands.SwapCommands, swapQueries queries.SwapQueries) *SwapHandler {
	return &SwapHandler{
		swapCommands: swapCommands,
		swapQueries:  swapQueries,
	}
}

// @Summary Propose swap
// @Description Propose swapping one of your slots for another user's slot
// @Tags swaps
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateSwapRequest true "Swap proposal"
// @Success 201 {object} resdto.SwapRequestResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /swap-request [post]
func (h *SwapHandler) Propose(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateSwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "mySlotId and theirSlotId are required",
		})
		return
	}

	view, err := h.swapCommands.Propose(c.Request.Context(), userID, req.MySlotID, req.TheirSlotID)
	if err != nil {
		h.respondSwapError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSwapRequestView(view))
}

// @Summary List incoming swap requests
// @Description List pending swap requests targeting the current user's slots
// @Tags swaps
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.SwapRequestResponse
// @Failure 401 {object} map[string]string
// @Router /swap-requests/incoming [get]
func (h *SwapHandler) ListIncoming(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.swapQueries.ListIncoming(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromSwapRequestViews(views))
}

// @Summary List outgoing swap requests
// @Description List pending swap requests created by the current user
// @Tags swaps
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.SwapRequestResponse
// @Failure 401 {object} map[string]string
// @Router /swap-requests/outgoing [get]
func (h *SwapHandler) ListOutgoing(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.swapQueries.ListOutgoing(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromSwapRequestViews(views))
}

// @Summary Respond to swap request
// @Description Accept or reject a pending swap request targeting your slot
// @Tags swaps
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param requestId path string true "Swap request ID"
// @Param request body reqdto.SwapResponseRequest true "Swap response"
// @Success 200 {object} resdto.SwapRequestResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /swap-response/{requestId} [post]
func (h *SwapHandler) Respond(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	requestID, err := uuid.Parse(c.Param("requestId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid swap request ID format",
		})
		return
	}

	var req reqdto.SwapResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "accepted is required",
		})
		return
	}

	view, err := h.swapCommands.Respond(c.Request.Context(), userID, requestID, *req.Accepted)
	if err != nil {
		h.respondSwapError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSwapRequestView(view))
}

func (h *SwapHandler) respondSwapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrSlotNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Slot not found",
		})
	case errors.Is(err, commands.ErrRequestNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Swap request not found",
		})
	case errors.Is(err, commands.ErrNotRequestOwner):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Not authorized to respond to this swap request",
		})
	case errors.Is(err, commands.ErrSlotNotSwappable):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Slot is not available for swapping",
		})
	case errors.Is(err, commands.ErrAlreadyResolved):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Swap request has already been resolved",
		})
	case errors.Is(err, commands.ErrSwapConflict):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Swap conflicts with a concurrent operation",
		})
	case errors.Is(err, commands.ErrSelfSwap):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Cannot swap with your own slot",
		})
	case errors.Is(err, swap.ErrSameSlot):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Cannot swap a slot with itself",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
