//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"hutbook/internal/domain/booking"
	"hutbook/internal/handler/api"
	resdto "hutbook/internal/handler/dto/response"
	"hutbook/internal/handler/middleware"
	"hutbook/internal/pkg/jwt"
	"hutbook/internal/usecase"
	"hutbook/internal/usecase/commands"
	commonhttp "hutbook/tests/common/httptest"
	commandsmock "hutbook/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	bookingUseCase *commandsmock.MockBookingUseCase
	sweepUseCase   *commandsmock.MockSweepUseCase
	jwtService     *jwt.Service
	router         *gin.Engine
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.ctrl = gomock.NewController(s.T())
	s.bookingUseCase = commandsmock.NewMockBookingUseCase(s.ctrl)
	s.sweepUseCase = commandsmock.NewMockSweepUseCase(s.ctrl)
	s.jwtService = jwt.NewService("test-secret", time.Hour)

	h := api.NewAdminHandler(s.bookingUseCase, s.sweepUseCase)
	auth := middleware.NewAuthMiddleware(s.jwtService)

	s.router = gin.New()
	admin := s.router.Group("/api/admin", auth.RequireAdmin())
	admin.POST("/bookings/sweep", h.SweepBookings)
	admin.POST("/bookings/:id/confirm", h.ConfirmBooking)
	admin.POST("/bookings/:id/reject", h.RejectBooking)
	admin.POST("/bookings/:id/cancel", h.CancelBooking)
	admin.POST("/bookings/:id/complete", h.CompleteBooking)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) adminToken() string {
	token, err := s.jwtService.GenerateToken(uuid.New(), usecase.RoleAdmin)
	s.Require().NoError(err)
	return token
}

func (s *AdminHandlerTestSuite) TestAuthGuard() {
	s.Run("401 without a token", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost,
			"/api/admin/bookings/sweep", nil, "")

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Access token required")
	})

	s.Run("401 with a garbage token", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost,
			"/api/admin/bookings/sweep", nil, "not-a-jwt")

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("403 for a non-admin token", func() {
		token, err := s.jwtService.GenerateToken(uuid.New(), "viewer")
		s.Require().NoError(err)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost,
			"/api/admin/bookings/sweep", nil, token)

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Insufficient permissions")
	})
}

func (s *AdminHandlerTestSuite) TestConfirmBooking() {
	s.Run("204 on success", func() {
		id := uuid.New()

		s.bookingUseCase.EXPECT().ConfirmBooking(gomock.Any(), id).Return(nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost,
			"/api/admin/bookings/"+id.String()+"/confirm", nil, s.adminToken())

		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("409 when the booking is not under review", func() {
		id := uuid.New()

		s.bookingUseCase.EXPECT().ConfirmBooking(gomock.Any(), id).
			Return(booking.ErrNotUnderReview)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost,
			"/api/admin/bookings/"+id.String()+"/confirm", nil, s.adminToken())

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusConflict, "not under payment review")
	})

	s.Run("409 when the slot was taken during review", func() {
		id := uuid.New()

		s.bookingUseCase.EXPECT().ConfirmBooking(gomock.Any(), id).
			Return(commands.ErrSlotTaken)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost,
			"/api/admin/bookings/"+id.String()+"/confirm", nil, s.adminToken())

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusConflict, "overlapping booking")
	})

	s.Run("409 on a concurrent modification", func() {
		id := uuid.New()

		s.bookingUseCase.EXPECT().ConfirmBooking(gomock.Any(), id).
			Return(commands.ErrConcurrentModification)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost,
			"/api/admin/bookings/"+id.String()+"/confirm", nil, s.adminToken())

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusConflict, "modified concurrently")
	})

	s.Run("404 for an unknown booking", func() {
		id := uuid.New()

		s.bookingUseCase.EXPECT().ConfirmBooking(gomock.Any(), id).
			Return(commands.ErrBookingNotFound)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost,
			"/api/admin/bookings/"+id.String()+"/confirm", nil, s.adminToken())

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Booking not found")
	})
}

func (s *AdminHandlerTestSuite) TestRejectBooking() {
	s.Run("204 with a reason", func() {
		id := uuid.New()

		s.bookingUseCase.EXPECT().
			RejectBooking(gomock.Any(), id, "unreadable receipt").
			Return(nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost,
			"/api/admin/bookings/"+id.String()+"/reject",
			gin.H{"reason": "unreadable receipt"}, s.adminToken())

		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("400 without a reason", func() {
		id := uuid.New()

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost,
			"/api/admin/bookings/"+id.String()+"/reject", gin.H{}, s.adminToken())

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "reason is required")
	})
}

func (s *AdminHandlerTestSuite) TestCancelBooking() {
	s.Run("204 without a body", func() {
		id := uuid.New()

		s.bookingUseCase.EXPECT().CancelBooking(gomock.Any(), id, nil).Return(nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost,
			"/api/admin/bookings/"+id.String()+"/cancel", nil, s.adminToken())

		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("409 when already completed", func() {
		id := uuid.New()

		s.bookingUseCase.EXPECT().CancelBooking(gomock.Any(), id, nil).
			Return(booking.ErrAlreadyCompleted)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost,
			"/api/admin/bookings/"+id.String()+"/cancel", nil, s.adminToken())

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusConflict, "already completed")
	})
}

func (s *AdminHandlerTestSuite) TestCompleteBooking() {
	s.Run("409 when the booking is not confirmed", func() {
		id := uuid.New()

		s.bookingUseCase.EXPECT().CompleteBooking(gomock.Any(), id).
			Return(booking.ErrNotConfirmed)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost,
			"/api/admin/bookings/"+id.String()+"/complete", nil, s.adminToken())

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusConflict, "not confirmed")
	})
}

func (s *AdminHandlerTestSuite) TestSweepBookings() {
	s.Run("200 with the expired IDs", func() {
		expired := []uuid.UUID{uuid.New()}

		s.sweepUseCase.EXPECT().ExpireStale(gomock.Any()).Return(expired, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost,
			"/api/admin/bookings/sweep", nil, s.adminToken())

		var res resdto.SweepResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Equal(1, res.ExpiredCount)
		s.Equal(expired, res.ExpiredIDs)
	})

	s.Run("200 with an empty list when nothing is stale", func() {
		s.sweepUseCase.EXPECT().ExpireStale(gomock.Any()).Return(nil, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost,
			"/api/admin/bookings/sweep", nil, s.adminToken())

		var res resdto.SweepResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Equal(0, res.ExpiredCount)
		s.NotNil(res.ExpiredIDs)
	})
}
