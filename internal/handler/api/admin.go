package api

import (
	"errors"
	"net/http"

	"hutbook/internal/domain/booking"
	reqdto "hutbook/internal/handler/dto/request"
	resdto "hutbook/internal/handler/dto/response"
	"hutbook/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler exposes the payment-review console operations.
type AdminHandler struct {
	bookingUseCase commands.BookingUseCase
	sweepUseCase   commands.SweepUseCase
}

func NewAdminHandler(bookingUseCase commands.BookingUseCase, sweepUseCase commands.SweepUseCase) *AdminHandler {
	return &AdminHandler{
		bookingUseCase: bookingUseCase,
		sweepUseCase:   sweepUseCase,
	}
}

// @Summary Confirm booking
// @Description Approve a payment under review; confirming twice is a no-op
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/bookings/{id}/confirm [post]
func (h *AdminHandler) ConfirmBooking(c *gin.Context) {
	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	if err := h.bookingUseCase.ConfirmBooking(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Reject payment evidence
// @Description Send a booking under review back to pending so the customer can retry
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.RejectBookingRequest true "Rejection reason"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/bookings/{id}/reject [post]
func (h *AdminHandler) RejectBooking(c *gin.Context) {
	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	var req reqdto.RejectBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "reason is required",
		})
		return
	}

	if err := h.bookingUseCase.RejectBooking(c.Request.Context(), id, req.Reason); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Cancel booking
// @Description Cancel a booking, freeing its slot
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.CancelBookingRequest false "Optional reason"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/bookings/{id}/cancel [post]
func (h *AdminHandler) CancelBooking(c *gin.Context) {
	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	var req reqdto.CancelBookingRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request format",
			})
			return
		}
	}

	if err := h.bookingUseCase.CancelBooking(c.Request.Context(), id, req.Reason); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Complete booking
// @Description Mark a confirmed booking's stay as finished
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/bookings/{id}/complete [post]
func (h *AdminHandler) CompleteBooking(c *gin.Context) {
	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	if err := h.bookingUseCase.CompleteBooking(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Sweep stale bookings
// @Description Expire unpaid bookings past the TTL immediately
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SweepResponse
// @Failure 401 {object} map[string]string
// @Router /admin/bookings/sweep [post]
func (h *AdminHandler) SweepBookings(c *gin.Context) {
	ids, err := h.sweepUseCase.ExpireStale(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	if ids == nil {
		ids = []uuid.UUID{}
	}

	c.JSON(http.StatusOK, resdto.SweepResponse{
		ExpiredCount: len(ids),
		ExpiredIDs:   ids,
	})
}

func (h *AdminHandler) bookingID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

func (h *AdminHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking not found",
		})
	case errors.Is(err, booking.ErrReasonRequired):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Rejection reason is required",
		})
	case errors.Is(err, booking.ErrNotUnderReview):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Booking is not under payment review",
		})
	case errors.Is(err, booking.ErrNotConfirmed):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Booking is not confirmed",
		})
	case errors.Is(err, booking.ErrAlreadyCancelled):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Booking is cancelled",
		})
	case errors.Is(err, booking.ErrAlreadyCompleted):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Booking is already completed",
		})
	case errors.Is(err, booking.ErrBookingFinalized):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Booking is already finalized",
		})
	case errors.Is(err, commands.ErrSlotTaken):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Slot is taken by an overlapping booking",
		})
	case errors.Is(err, commands.ErrConcurrentModification):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Booking was modified concurrently, retry",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
