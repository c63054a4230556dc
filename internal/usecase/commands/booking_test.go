//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hutbook/internal/domain/booking"
	"hutbook/internal/infra"
	"hutbook/internal/pkg/clock"
	"hutbook/internal/pkg/config"
	"hutbook/internal/usecase/commands"
	"hutbook/internal/usecase/shared"
	"hutbook/tests/common/builder"
	sharedmock "hutbook/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	uow       *sharedmock.MockUnitOfWork
	tx        *sharedmock.MockTx
	reads     *sharedmock.MockCommandReads
	bookings  *sharedmock.MockBookingRepository
	customers *sharedmock.MockCustomerRepository
	clk       *clock.MockClock
	uc        commands.BookingUseCase
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.reads = sharedmock.NewMockCommandReads(s.ctrl)
	s.bookings = sharedmock.NewMockBookingRepository(s.ctrl)
	s.customers = sharedmock.NewMockCustomerRepository(s.ctrl)
	s.clk = clock.NewMockClock(time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC))

	s.tx.EXPECT().Reads().Return(s.reads).AnyTimes()
	s.tx.EXPECT().Bookings().Return(s.bookings).AnyTimes()
	s.tx.EXPECT().Customers().Return(s.customers).AnyTimes()
	s.tx.EXPECT().DB().Return(nil).AnyTimes()

	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).AnyTimes()
	s.uow.EXPECT().WithinSerializable(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).AnyTimes()

	s.uc = commands.NewBookingCommands(s.uow, s.clk, config.BookingConfig{
		ExpiryTTL:     15 * time.Minute,
		SweepInterval: 15 * time.Minute,
		CapacitySlack: 10,
	})
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) TestCreateBooking() {
	s.Run("creates a pending booking for a free slot", func() {
		b := builder.NewBookingBuilder()
		in := b.BuildCreateInput()
		customerID := b.CustomerID
		in.CustomerID = &customerID
		in.CustomerName = ""
		in.NationalID = ""

		s.reads.EXPECT().PropertyByID(gomock.Any(), b.PropertyID).Return(b.BuildPropertySnapshot(), nil)
		s.reads.EXPECT().CustomerByID(gomock.Any(), customerID).Return(b.BuildCustomerSnapshot(), nil)
		// A day shift probes its own date and the previous night
		s.reads.EXPECT().CountConflicts(gomock.Any(), b.PropertyID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), nil).Times(2)
		s.reads.EXPECT().RateFor(gomock.Any(), b.PropertyID, time.Friday, booking.ShiftDay).
			Return(int64(500000), nil)

		var created *booking.Booking
		s.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ any, nb *booking.Booking) (uuid.UUID, error) {
				created = nb
				return nb.ID(), nil
			})

		id, err := s.uc.CreateBooking(context.Background(), in)

		s.NoError(err)
		s.NotEqual(uuid.Nil, id)
		s.Equal(booking.StatusPending, created.Status())
		s.Equal(int64(150000), created.Advance().Cents())
	})

	s.Run("registers an inline customer before booking", func() {
		b := builder.NewBookingBuilder()
		in := b.BuildCreateInput()

		s.reads.EXPECT().PropertyByID(gomock.Any(), b.PropertyID).Return(b.BuildPropertySnapshot(), nil)
		s.reads.EXPECT().CustomerByNationalID(gomock.Any(), b.NationalID).
			Return(nil, infra.WrapRepoErr("customer not found", nil, infra.KindNotFound))
		s.customers.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(b.CustomerID, nil)
		s.reads.EXPECT().CountConflicts(gomock.Any(), b.PropertyID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), nil).Times(2)
		s.reads.EXPECT().RateFor(gomock.Any(), b.PropertyID, time.Friday, booking.ShiftDay).
			Return(int64(500000), nil)
		s.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil)

		_, err := s.uc.CreateBooking(context.Background(), in)

		s.NoError(err)
	})

	s.Run("reuses a returning customer matched by national ID", func() {
		b := builder.NewBookingBuilder()
		in := b.BuildCreateInput()

		s.reads.EXPECT().PropertyByID(gomock.Any(), b.PropertyID).Return(b.BuildPropertySnapshot(), nil)
		s.reads.EXPECT().CustomerByNationalID(gomock.Any(), b.NationalID).
			Return(b.BuildCustomerSnapshot(), nil)
		s.reads.EXPECT().CountConflicts(gomock.Any(), b.PropertyID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), nil).Times(2)
		s.reads.EXPECT().RateFor(gomock.Any(), b.PropertyID, time.Friday, booking.ShiftDay).
			Return(int64(500000), nil)

		var created *booking.Booking
		s.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ any, nb *booking.Booking) (uuid.UUID, error) {
				created = nb
				return nb.ID(), nil
			})

		_, err := s.uc.CreateBooking(context.Background(), in)

		s.NoError(err)
		s.Equal(b.CustomerID, created.CustomerID())
	})

	s.Run("rejects a taken slot without inserting", func() {
		b := builder.NewBookingBuilder()
		in := b.BuildCreateInput()

		s.reads.EXPECT().PropertyByID(gomock.Any(), b.PropertyID).Return(b.BuildPropertySnapshot(), nil)
		s.reads.EXPECT().CustomerByNationalID(gomock.Any(), b.NationalID).
			Return(b.BuildCustomerSnapshot(), nil)
		s.reads.EXPECT().CountConflicts(gomock.Any(), b.PropertyID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(1), nil)

		_, err := s.uc.CreateBooking(context.Background(), in)

		s.ErrorIs(err, commands.ErrSlotTaken)
	})

	s.Run("rejects an unknown shift before touching storage", func() {
		in := builder.NewBookingBuilder().BuildCreateInput()
		in.Shift = "evening"

		_, err := s.uc.CreateBooking(context.Background(), in)

		s.ErrorIs(err, booking.ErrInvalidShift)
	})

	s.Run("returns not found for a missing property", func() {
		b := builder.NewBookingBuilder()
		in := b.BuildCreateInput()

		s.reads.EXPECT().PropertyByID(gomock.Any(), b.PropertyID).
			Return(nil, infra.WrapRepoErr("property not found", nil, infra.KindNotFound))

		_, err := s.uc.CreateBooking(context.Background(), in)

		s.ErrorIs(err, commands.ErrPropertyNotFound)
	})

	s.Run("maps an exclusion violation on insert to slot taken", func() {
		b := builder.NewBookingBuilder()
		in := b.BuildCreateInput()

		s.reads.EXPECT().PropertyByID(gomock.Any(), b.PropertyID).Return(b.BuildPropertySnapshot(), nil)
		s.reads.EXPECT().CustomerByNationalID(gomock.Any(), b.NationalID).
			Return(b.BuildCustomerSnapshot(), nil)
		s.reads.EXPECT().CountConflicts(gomock.Any(), b.PropertyID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), nil).Times(2)
		s.reads.EXPECT().RateFor(gomock.Any(), b.PropertyID, time.Friday, booking.ShiftDay).
			Return(int64(500000), nil)
		s.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("failed to insert booking", nil, infra.KindConflict))

		_, err := s.uc.CreateBooking(context.Background(), in)

		s.ErrorIs(err, commands.ErrSlotTaken)
	})
}

func (s *BookingCommandsTestSuite) TestSubmitPaymentEvidence() {
	s.Run("moves a pending booking under review", func() {
		b := builder.NewBookingBuilder()
		snap := b.BuildSnapshot()

		s.reads.EXPECT().BookingByID(gomock.Any(), b.ID).Return(snap, nil)

		var upd shared.StatusUpdate
		s.bookings.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ any, u shared.StatusUpdate) (int64, error) {
				upd = u
				return 1, nil
			})

		err := s.uc.SubmitPaymentEvidence(context.Background(), b.ID, "TXN-1001")

		s.NoError(err)
		s.Equal(booking.StatusWaiting, upd.To)
		s.Equal([]booking.Status{booking.StatusPending}, upd.From)
		s.Require().NotNil(upd.PaymentRef)
		s.Equal("TXN-1001", *upd.PaymentRef)
	})

	s.Run("fails on a cancelled booking", func() {
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Status = booking.StatusCancelled
		})

		s.reads.EXPECT().BookingByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil)

		err := s.uc.SubmitPaymentEvidence(context.Background(), b.ID, "TXN-1001")

		s.ErrorIs(err, booking.ErrAlreadyCancelled)
	})
}

func (s *BookingCommandsTestSuite) TestConfirmBooking() {
	s.Run("confirms a booking under review", func() {
		ref := "TXN-1001"
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Status = booking.StatusWaiting
			b.PaymentRef = &ref
		})

		s.reads.EXPECT().BookingByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil)
		s.bookings.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ any, u shared.StatusUpdate) (int64, error) {
				s.Equal(booking.StatusConfirmed, u.To)
				return 1, nil
			})

		err := s.uc.ConfirmBooking(context.Background(), b.ID)

		s.NoError(err)
	})

	s.Run("confirming twice is a no-op with no write", func() {
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Status = booking.StatusConfirmed
		})

		s.reads.EXPECT().BookingByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil)

		err := s.uc.ConfirmBooking(context.Background(), b.ID)

		s.NoError(err)
	})

	s.Run("reports a lost race as concurrent modification", func() {
		b := builder.NewBookingBuilder()

		s.reads.EXPECT().BookingByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil)
		s.bookings.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)

		err := s.uc.ConfirmBooking(context.Background(), b.ID)

		s.ErrorIs(err, commands.ErrConcurrentModification)
	})

	s.Run("reports slot taken when the overlap constraint rejects the write", func() {
		// The slot was grabbed by another booking while this one sat in
		// payment review, which does not block new bookings.
		ref := "TXN-1001"
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Status = booking.StatusWaiting
			b.PaymentRef = &ref
		})

		s.reads.EXPECT().BookingByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil)
		s.bookings.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), infra.WrapRepoErr("failed to update booking status", nil, infra.KindConflict))

		err := s.uc.ConfirmBooking(context.Background(), b.ID)

		s.ErrorIs(err, commands.ErrSlotTaken)
	})
}

func (s *BookingCommandsTestSuite) TestRejectBooking() {
	s.Run("sends a booking under review back to pending", func() {
		ref := "TXN-1001"
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Status = booking.StatusWaiting
			b.PaymentRef = &ref
		})

		s.reads.EXPECT().BookingByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil)

		var upd shared.StatusUpdate
		s.bookings.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ any, u shared.StatusUpdate) (int64, error) {
				upd = u
				return 1, nil
			})

		err := s.uc.RejectBooking(context.Background(), b.ID, "unreadable receipt")

		s.NoError(err)
		s.Equal(booking.StatusPending, upd.To)
		s.True(upd.ClearPaymentRef)
		s.Require().NotNil(upd.Reason)
		s.Equal("unreadable receipt", *upd.Reason)
	})

	s.Run("reports slot taken when pending would overlap again", func() {
		ref := "TXN-1001"
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Status = booking.StatusWaiting
			b.PaymentRef = &ref
		})

		s.reads.EXPECT().BookingByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil)
		s.bookings.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), infra.WrapRepoErr("failed to update booking status", nil, infra.KindConflict))

		err := s.uc.RejectBooking(context.Background(), b.ID, "unreadable receipt")

		s.ErrorIs(err, commands.ErrSlotTaken)
	})

	s.Run("requires a reason", func() {
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Status = booking.StatusWaiting
		})

		s.reads.EXPECT().BookingByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil)

		err := s.uc.RejectBooking(context.Background(), b.ID, "  ")

		s.ErrorIs(err, booking.ErrReasonRequired)
	})

	s.Run("refuses a booking not under review", func() {
		b := builder.NewBookingBuilder()

		s.reads.EXPECT().BookingByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil)

		err := s.uc.RejectBooking(context.Background(), b.ID, "unreadable receipt")

		s.ErrorIs(err, booking.ErrNotUnderReview)
	})
}

func (s *BookingCommandsTestSuite) TestCancelAndComplete() {
	s.Run("cancels an active booking with a reason", func() {
		b := builder.NewBookingBuilder()
		reason := "customer request"

		s.reads.EXPECT().BookingByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil)
		s.bookings.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ any, u shared.StatusUpdate) (int64, error) {
				s.Equal(booking.StatusCancelled, u.To)
				return 1, nil
			})

		err := s.uc.CancelBooking(context.Background(), b.ID, &reason)

		s.NoError(err)
	})

	s.Run("will not cancel a completed booking", func() {
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Status = booking.StatusCompleted
		})

		s.reads.EXPECT().BookingByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil)

		err := s.uc.CancelBooking(context.Background(), b.ID, nil)

		s.ErrorIs(err, booking.ErrAlreadyCompleted)
	})

	s.Run("completes a confirmed booking", func() {
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Status = booking.StatusConfirmed
		})

		s.reads.EXPECT().BookingByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil)
		s.bookings.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ any, u shared.StatusUpdate) (int64, error) {
				s.Equal(booking.StatusCompleted, u.To)
				return 1, nil
			})

		err := s.uc.CompleteBooking(context.Background(), b.ID)

		s.NoError(err)
	})

	s.Run("will not complete an unconfirmed booking", func() {
		b := builder.NewBookingBuilder()

		s.reads.EXPECT().BookingByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil)

		err := s.uc.CompleteBooking(context.Background(), b.ID)

		s.ErrorIs(err, booking.ErrNotConfirmed)
	})
}
