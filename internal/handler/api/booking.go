package api

import (
	"errors"
	"net/http"

	"hutbook/internal/domain/booking"
	"hutbook/internal/domain/customer"
	reqdto "hutbook/internal/handler/dto/request"
	resdto "hutbook/internal/handler/dto/response"
	"hutbook/internal/usecase/commands"
	"hutbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingUseCase commands.BookingUseCase
	bookingQueries queries.BookingQueryUseCase
}

func NewBookingHandler(bookingUseCase commands.BookingUseCase, bookingQueries queries.BookingQueryUseCase) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: bookingUseCase,
		bookingQueries: bookingQueries,
	}
}

// @Summary Create booking
// @Description Create a booking, claiming the slot if it is still free
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	date, err := req.ParseDate()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	id, err := h.bookingUseCase.CreateBooking(c.Request.Context(), commands.CreateBookingInput{
		PropertyID:   req.PropertyID,
		CustomerID:   req.CustomerID,
		CustomerName: req.CustomerName,
		NationalID:   req.NationalID,
		Phone:        req.Phone,
		Date:         date,
		Shift:        req.Shift,
		Source:       req.Source,
	})
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrInvalidShift):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Unknown shift",
			})
		case errors.Is(err, booking.ErrInvalidSource):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Unknown booking source",
			})
		case errors.Is(err, customer.ErrInvalidNationalID):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "National ID must be exactly 13 digits",
			})
		case errors.Is(err, commands.ErrCustomerIdentity) || errors.Is(err, customer.ErrNameRequired):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Customer name and national ID are required",
			})
		case errors.Is(err, commands.ErrPropertyNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Property not found",
			})
		case errors.Is(err, commands.ErrCustomerNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Customer not found",
			})
		case errors.Is(err, commands.ErrSlotTaken):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Slot already taken",
			})
		case errors.Is(err, commands.ErrRateNotFound):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "No rate configured for this slot",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Submit payment evidence
// @Description Attach a payment proof reference and move the booking under review
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body reqdto.PaymentEvidenceRequest true "Payment evidence"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/payment-evidence [post]
func (h *BookingHandler) SubmitPaymentEvidence(c *gin.Context) {
	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	var req reqdto.PaymentEvidenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "evidence_ref is required",
		})
		return
	}

	if err := h.bookingUseCase.SubmitPaymentEvidence(c.Request.Context(), id, req.EvidenceRef); err != nil {
		h.respondTransitionError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get booking
// @Description Get booking details by ID
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	view, err := h.bookingQueries.GetBooking(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List customer bookings
// @Description List all bookings for a customer, newest first
// @Tags bookings
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /customers/{id}/bookings [get]
func (h *BookingHandler) ListCustomerBookings(c *gin.Context) {
	idStr := c.Param("id")
	customerID, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid customer ID format",
		})
		return
	}

	views, err := h.bookingQueries.ListCustomerBookings(c.Request.Context(), customerID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrCustomerNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Customer not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	response := make([]*resdto.BookingResponse, len(views))
	for i := range views {
		response[i] = resdto.FromBookingView(&views[i])
	}

	c.JSON(http.StatusOK, response)
}

func (h *BookingHandler) bookingID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

func (h *BookingHandler) respondTransitionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking not found",
		})
	case errors.Is(err, booking.ErrAlreadyCancelled):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Booking is cancelled",
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
