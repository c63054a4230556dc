package api

import (
	"errors"
	"net/http"

	reqdto "hutbook/internal/handler/dto/request"
	resdto "hutbook/internal/handler/dto/response"
	"hutbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	availabilityUseCase queries.AvailabilityUseCase
}

func NewAvailabilityHandler(availabilityUseCase queries.AvailabilityUseCase) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityUseCase: availabilityUseCase,
	}
}

// @Summary Check availability
// @Description Check whether a property is free for a date and shift
// @Tags availability
// @Produce json
// @Param property_id query string true "Property ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param shift query string true "Shift (day, night, full_day, full_night)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Router /availability [get]
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "property_id, date and shift are required",
		})
		return
	}

	propertyID, err := uuid.Parse(q.PropertyID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid property ID format",
		})
		return
	}

	date, err := q.ParseDate()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	available, err := h.availabilityUseCase.IsAvailable(c.Request.Context(), propertyID, date, q.Shift)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrUnknownShift):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Unknown shift",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.AvailabilityResponse{
		PropertyID: propertyID,
		Date:       q.Date,
		Shift:      q.Shift,
		Available:  available,
	})
}

// @Summary Search properties
// @Description List free properties for a slot with a price quote
// @Tags availability
// @Produce json
// @Param guests query int true "Guest count"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param shift query string true "Shift (day, night, full_day, full_night)"
// @Success 200 {array} resdto.PropertyQuoteResponse
// @Failure 400 {object} map[string]string
// @Router /properties/search [get]
func (h *AvailabilityHandler) SearchProperties(c *gin.Context) {
	var q reqdto.PropertySearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "guests, date and shift are required",
		})
		return
	}

	date, err := q.ParseDate()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	quotes, err := h.availabilityUseCase.SearchProperties(c.Request.Context(), q.Guests, date, q.Shift)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrUnknownShift):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Unknown shift",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	response := make([]resdto.PropertyQuoteResponse, len(quotes))
	for i, quote := range quotes {
		response[i] = resdto.FromPropertyQuote(quote)
	}

	c.JSON(http.StatusOK, response)
}
