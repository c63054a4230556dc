//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"hutbook/internal/domain/booking"
	"hutbook/internal/handler/api"
	resdto "hutbook/internal/handler/dto/response"
	"hutbook/internal/usecase/commands"
	"hutbook/internal/usecase/queries"
	"hutbook/tests/common/builder"
	commonhttp "hutbook/tests/common/httptest"
	commandsmock "hutbook/tests/mock/commands"
	queriesmock "hutbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	bookingUseCase *commandsmock.MockBookingUseCase
	bookingQueries *queriesmock.MockBookingQueryUseCase
	router         *gin.Engine
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.ctrl = gomock.NewController(s.T())
	s.bookingUseCase = commandsmock.NewMockBookingUseCase(s.ctrl)
	s.bookingQueries = queriesmock.NewMockBookingQueryUseCase(s.ctrl)

	h := api.NewBookingHandler(s.bookingUseCase, s.bookingQueries)
	s.router = gin.New()
	s.router.POST("/api/bookings", h.CreateBooking)
	s.router.GET("/api/bookings/:id", h.GetBooking)
	s.router.POST("/api/bookings/:id/payment-evidence", h.SubmitPaymentEvidence)
	s.router.GET("/api/customers/:id/bookings", h.ListCustomerBookings)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	s.Run("201 with the new booking ID", func() {
		b := builder.NewBookingBuilder()
		req := b.BuildCreateRequestDTO()

		s.bookingUseCase.EXPECT().
			CreateBooking(gomock.Any(), gomock.Any()).
			Return(b.ID, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings", req, "")

		var res resdto.CreatedResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusCreated, &res)
		s.Equal(b.ID, res.ID)
	})

	s.Run("400 on malformed date", func() {
		req := builder.NewBookingBuilder().BuildCreateRequestDTO()
		req.Date = "13-02-2026"

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings", req, "")

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid date format")
	})

	s.Run("400 on unknown shift", func() {
		req := builder.NewBookingBuilder().BuildCreateRequestDTO()
		req.Shift = "evening"

		s.bookingUseCase.EXPECT().
			CreateBooking(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, booking.ErrInvalidShift)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings", req, "")

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Unknown shift")
	})

	s.Run("404 when the property does not exist", func() {
		req := builder.NewBookingBuilder().BuildCreateRequestDTO()

		s.bookingUseCase.EXPECT().
			CreateBooking(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, commands.ErrPropertyNotFound)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings", req, "")

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Property not found")
	})

	s.Run("409 when the slot is taken", func() {
		req := builder.NewBookingBuilder().BuildCreateRequestDTO()

		s.bookingUseCase.EXPECT().
			CreateBooking(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, commands.ErrSlotTaken)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings", req, "")

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusConflict, "Slot already taken")
	})

	s.Run("422 when no rate is configured", func() {
		req := builder.NewBookingBuilder().BuildCreateRequestDTO()

		s.bookingUseCase.EXPECT().
			CreateBooking(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, commands.ErrRateNotFound)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings", req, "")

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "No rate configured")
	})
}

func (s *BookingHandlerTestSuite) TestSubmitPaymentEvidence() {
	s.Run("204 on success", func() {
		id := uuid.New()

		s.bookingUseCase.EXPECT().
			SubmitPaymentEvidence(gomock.Any(), id, "TXN-1001").
			Return(nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost,
			"/api/bookings/"+id.String()+"/payment-evidence",
			gin.H{"evidence_ref": "TXN-1001"}, "")

		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("400 when the evidence reference is missing", func() {
		id := uuid.New()

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost,
			"/api/bookings/"+id.String()+"/payment-evidence", gin.H{}, "")

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "evidence_ref is required")
	})

	s.Run("409 on a cancelled booking", func() {
		id := uuid.New()

		s.bookingUseCase.EXPECT().
			SubmitPaymentEvidence(gomock.Any(), id, "TXN-1001").
			Return(booking.ErrAlreadyCancelled)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost,
			"/api/bookings/"+id.String()+"/payment-evidence",
			gin.H{"evidence_ref": "TXN-1001"}, "")

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusConflict, "cancelled")
	})

	s.Run("400 on a malformed booking ID", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost,
			"/api/bookings/not-a-uuid/payment-evidence",
			gin.H{"evidence_ref": "TXN-1001"}, "")

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid booking ID")
	})
}

func (s *BookingHandlerTestSuite) TestGetBooking() {
	s.Run("200 with booking details", func() {
		b := builder.NewBookingBuilder()
		view := b.BuildView()

		s.bookingQueries.EXPECT().GetBooking(gomock.Any(), b.ID).Return(view, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/bookings/"+b.ID.String(), nil, "")

		var res resdto.BookingResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Equal(b.ID, res.ID)
		s.Equal(string(booking.StatusPending), res.Status)
		s.Equal(view.RemainingCents, res.RemainingCents)
	})

	s.Run("404 when the booking does not exist", func() {
		id := uuid.New()

		s.bookingQueries.EXPECT().GetBooking(gomock.Any(), id).
			Return(nil, queries.ErrBookingNotFound)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/bookings/"+id.String(), nil, "")

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestListCustomerBookings() {
	s.Run("200 with the customer's bookings", func() {
		b := builder.NewBookingBuilder()
		views := []queries.BookingView{*b.BuildView()}

		s.bookingQueries.EXPECT().
			ListCustomerBookings(gomock.Any(), b.CustomerID).
			Return(views, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/customers/"+b.CustomerID.String()+"/bookings", nil, "")

		var res []resdto.BookingResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Require().Len(res, 1)
		s.Equal(b.ID, res[0].ID)
	})

	s.Run("404 for an unknown customer", func() {
		id := uuid.New()

		s.bookingQueries.EXPECT().
			ListCustomerBookings(gomock.Any(), id).
			Return(nil, queries.ErrCustomerNotFound)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/customers/"+id.String()+"/bookings", nil, "")

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Customer not found")
	})
}
