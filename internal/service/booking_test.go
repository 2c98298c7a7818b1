package service

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"spacebook-backend/internal/domain"
)

func newBookingFixture() (*MockBookingRepo, *MockSpaceRepo, *MockUserRepo, *MockEmailService, BookingService) {
	bookingRepo := new(MockBookingRepo)
	spaceRepo := new(MockSpaceRepo)
	userRepo := new(MockUserRepo)
	emailSvc := new(MockEmailService)
	svc := NewBookingService(bookingRepo, spaceRepo, userRepo, emailSvc)
	return bookingRepo, spaceRepo, userRepo, emailSvc, svc
}

func TestBookingService_CreateBooking(t *testing.T) {
	ctx := context.Background()
	student := domain.Actor{UserID: 1, Role: domain.RoleStudent}

	openSpace := &domain.LibrarySpace{
		SpaceID:     10,
		SpaceName:   "Discussion Room A",
		LibraryCode: "PTAR1",
		IsActive:    true,
	}
	existing := []domain.Booking{
		{ID: 5, SpaceID: 10, BookingDate: "2026-09-01", StartTime: "10:00", EndTime: "11:00", Status: domain.BookingStatusApproved},
	}

	t.Run("TouchingBoundarySucceeds", func(t *testing.T) {
		bookingRepo, spaceRepo, _, _, svc := newBookingFixture()
		spaceRepo.On("GetByID", ctx, int32(10)).Return(openSpace, nil)
		bookingRepo.On("ListForSlot", ctx, int32(10), "2026-09-01").Return(existing, nil)
		bookingRepo.On("CreateIfSlotFree", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)

		b, err := svc.CreateBooking(ctx, student, 10, "2026-09-01", "11:00", "12:00")
		require.NoError(t, err)
		assert.Equal(t, domain.BookingStatusApproved, b.Status)
		assert.Empty(t, b.PaymentStatus)
		assert.Equal(t, int32(1), b.UserID)
		bookingRepo.AssertCalled(t, "CreateIfSlotFree", ctx, mock.AnythingOfType("*domain.Booking"))
	})

	t.Run("OverlapFails", func(t *testing.T) {
		bookingRepo, spaceRepo, _, _, svc := newBookingFixture()
		spaceRepo.On("GetByID", ctx, int32(10)).Return(openSpace, nil)
		bookingRepo.On("ListForSlot", ctx, int32(10), "2026-09-01").Return(existing, nil)

		_, err := svc.CreateBooking(ctx, student, 10, "2026-09-01", "10:30", "11:30")
		assert.ErrorIs(t, err, domain.ErrConflict)
		bookingRepo.AssertNotCalled(t, "CreateIfSlotFree", mock.Anything, mock.Anything)
	})

	t.Run("InactiveSpaceFails", func(t *testing.T) {
		_, spaceRepo, _, _, svc := newBookingFixture()
		spaceRepo.On("GetByID", ctx, int32(10)).Return(&domain.LibrarySpace{SpaceID: 10, IsActive: false}, nil)

		_, err := svc.CreateBooking(ctx, student, 10, "2026-09-01", "10:00", "11:00")
		assert.ErrorIs(t, err, domain.ErrInactiveSpace)
	})

	t.Run("EndBeforeStartFails", func(t *testing.T) {
		_, spaceRepo, _, _, svc := newBookingFixture()
		spaceRepo.On("GetByID", ctx, int32(10)).Return(openSpace, nil)

		_, err := svc.CreateBooking(ctx, student, 10, "2026-09-01", "11:00", "10:00")
		assert.ErrorIs(t, err, domain.ErrValidation)

		_, err = svc.CreateBooking(ctx, student, 10, "2026-09-01", "11:00", "11:00")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("ApprovalAndPaymentFlagsSetInitialState", func(t *testing.T) {
		bookingRepo, spaceRepo, _, _, svc := newBookingFixture()
		gated := &domain.LibrarySpace{SpaceID: 11, IsActive: true, RequiresApproval: true, RequiresPayment: true}
		spaceRepo.On("GetByID", ctx, int32(11)).Return(gated, nil)
		bookingRepo.On("ListForSlot", ctx, int32(11), "2026-09-01").Return([]domain.Booking{}, nil)
		bookingRepo.On("CreateIfSlotFree", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)

		b, err := svc.CreateBooking(ctx, student, 11, "2026-09-01", "09:00", "10:00")
		require.NoError(t, err)
		assert.Equal(t, domain.BookingStatusPending, b.Status)
		assert.Equal(t, domain.PaymentStatusUnpaid, b.PaymentStatus)
	})
}

func TestBookingService_ApproveBooking(t *testing.T) {
	ctx := context.Background()
	librarian := domain.Actor{UserID: 9, Role: domain.RoleLibrarian}

	t.Run("StudentForbidden", func(t *testing.T) {
		_, _, _, _, svc := newBookingFixture()
		_, err := svc.ApproveBooking(ctx, domain.Actor{UserID: 1, Role: domain.RoleStudent}, 5)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("PendingApprovedAndOwnerNotified", func(t *testing.T) {
		bookingRepo, spaceRepo, userRepo, emailSvc, svc := newBookingFixture()
		bookingRepo.On("GetByID", ctx, int32(5)).Return(&domain.Booking{
			ID: 5, SpaceID: 10, UserID: 1,
			BookingDate: "2026-09-01", StartTime: "10:00", EndTime: "11:00",
			Status: domain.BookingStatusPending,
		}, nil)
		bookingRepo.On("Update", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)
		userRepo.On("GetByID", ctx, int32(1)).Return(&domain.User{ID: 1, Email: "s@uni.edu.my"}, nil)
		spaceRepo.On("GetByID", ctx, int32(10)).Return(&domain.LibrarySpace{SpaceID: 10, SpaceName: "Discussion Room A"}, nil)
		emailSvc.On("SendBookingApprovedNotification", ctx, "s@uni.edu.my", "Discussion Room A", "2026-09-01", "10:00", "11:00").Return(nil)

		b, err := svc.ApproveBooking(ctx, librarian, 5)
		require.NoError(t, err)
		assert.Equal(t, domain.BookingStatusApproved, b.Status)
		emailSvc.AssertExpectations(t)
	})

	t.Run("DoubleApproveIsNoOp", func(t *testing.T) {
		bookingRepo, _, _, emailSvc, svc := newBookingFixture()
		bookingRepo.On("GetByID", ctx, int32(5)).Return(&domain.Booking{ID: 5, Status: domain.BookingStatusApproved}, nil)

		b, err := svc.ApproveBooking(ctx, librarian, 5)
		require.NoError(t, err)
		assert.Equal(t, domain.BookingStatusApproved, b.Status)
		bookingRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		emailSvc.AssertNotCalled(t, "SendBookingApprovedNotification", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("ApproveRejectedFails", func(t *testing.T) {
		bookingRepo, _, _, _, svc := newBookingFixture()
		bookingRepo.On("GetByID", ctx, int32(5)).Return(&domain.Booking{ID: 5, Status: domain.BookingStatusRejected}, nil)

		b, err := svc.ApproveBooking(ctx, librarian, 5)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
		assert.Equal(t, domain.BookingStatusRejected, b.Status)
		bookingRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestBookingService_CancelBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("NonOwnerForbidden", func(t *testing.T) {
		bookingRepo, _, _, _, svc := newBookingFixture()
		bookingRepo.On("GetByID", ctx, int32(5)).Return(&domain.Booking{ID: 5, UserID: 1, Status: domain.BookingStatusPending}, nil)

		_, err := svc.CancelBooking(ctx, domain.Actor{UserID: 2, Role: domain.RoleStudent}, 5)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("OwnerCancelsApproved", func(t *testing.T) {
		bookingRepo, _, _, _, svc := newBookingFixture()
		bookingRepo.On("GetByID", ctx, int32(5)).Return(&domain.Booking{ID: 5, UserID: 1, Status: domain.BookingStatusApproved}, nil)
		bookingRepo.On("Update", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)

		b, err := svc.CancelBooking(ctx, domain.Actor{UserID: 1, Role: domain.RoleStudent}, 5)
		require.NoError(t, err)
		assert.Equal(t, domain.BookingStatusCancelled, b.Status)
	})
}

func TestBookingService_PaymentFlow(t *testing.T) {
	ctx := context.Background()
	owner := domain.Actor{UserID: 1, Role: domain.RoleStudent}

	t.Run("StartAssignsReference", func(t *testing.T) {
		bookingRepo, _, _, _, svc := newBookingFixture()
		bookingRepo.On("GetByID", ctx, int32(7)).Return(&domain.Booking{
			ID: 7, UserID: 1, Status: domain.BookingStatusApproved, PaymentStatus: domain.PaymentStatusUnpaid,
		}, nil)
		bookingRepo.On("Update", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)

		b, err := svc.StartPayment(ctx, owner, 7)
		require.NoError(t, err)
		assert.Regexp(t, regexp.MustCompile(`^FPX-[0-9A-F]{10}$`), b.TransactionRef)
	})

	t.Run("StartWithoutPaymentRequirementFails", func(t *testing.T) {
		bookingRepo, _, _, _, svc := newBookingFixture()
		bookingRepo.On("GetByID", ctx, int32(7)).Return(&domain.Booking{ID: 7, UserID: 1, Status: domain.BookingStatusApproved}, nil)

		_, err := svc.StartPayment(ctx, owner, 7)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("ConfirmMarksPaidWithTimestamp", func(t *testing.T) {
		bookingRepo, _, _, _, svc := newBookingFixture()
		fixed := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
		svc.(*bookingService).now = func() time.Time { return fixed }

		bookingRepo.On("GetByID", ctx, int32(7)).Return(&domain.Booking{
			ID: 7, UserID: 1, PaymentStatus: domain.PaymentStatusUnpaid, TransactionRef: "FPX-ABCDEF0123",
		}, nil)
		bookingRepo.On("Update", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)

		b, err := svc.ConfirmPayment(ctx, owner, 7)
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusPaid, b.PaymentStatus)
		require.NotNil(t, b.PaidOn)
		assert.Equal(t, "2026-09-01T12:00:00Z", *b.PaidOn)
	})

	t.Run("ConfirmTwiceKeepsFirstTimestamp", func(t *testing.T) {
		bookingRepo, _, _, _, svc := newBookingFixture()
		paidOn := "2026-08-01T09:00:00Z"
		bookingRepo.On("GetByID", ctx, int32(7)).Return(&domain.Booking{
			ID: 7, UserID: 1, PaymentStatus: domain.PaymentStatusPaid, PaidOn: &paidOn,
		}, nil)

		b, err := svc.ConfirmPayment(ctx, owner, 7)
		require.NoError(t, err)
		assert.Equal(t, paidOn, *b.PaidOn)
		bookingRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestBookingService_BookingReport(t *testing.T) {
	ctx := context.Background()
	admin := domain.Actor{UserID: 9, Role: domain.RoleAdmin}

	t.Run("StudentForbidden", func(t *testing.T) {
		_, _, _, _, svc := newBookingFixture()
		_, err := svc.BookingReport(ctx, domain.Actor{UserID: 1, Role: domain.RoleStudent}, "2026-09-01", "2026-09-30")
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("SummaryArithmetic", func(t *testing.T) {
		bookingRepo, spaceRepo, _, _, svc := newBookingFixture()
		bookingRepo.On("ListBetween", ctx, "2026-09-01", "2026-09-30").Return([]domain.Booking{
			{ID: 1, SpaceID: 10, Status: domain.BookingStatusApproved, PaymentStatus: domain.PaymentStatusPaid},
			{ID: 2, SpaceID: 10, Status: domain.BookingStatusApproved},
			{ID: 3, SpaceID: 11, Status: domain.BookingStatusPending, PaymentStatus: domain.PaymentStatusUnpaid},
			{ID: 4, SpaceID: 12, Status: domain.BookingStatusRejected},
			{ID: 5, SpaceID: 10, Status: domain.BookingStatusCancelled},
		}, nil)
		spaceRepo.On("List", ctx, domain.SpaceFilter{}).Return([]domain.LibrarySpace{
			{SpaceID: 10, SpaceName: "Discussion Room A"},
			{SpaceID: 11, SpaceName: "Carrel 3"},
		}, nil)

		report, err := svc.BookingReport(ctx, admin, "2026-09-01", "2026-09-30")
		require.NoError(t, err)
		assert.Equal(t, 5, report.Summary.Total)
		assert.Equal(t, 2, report.Summary.Approved)
		assert.Equal(t, 1, report.Summary.Pending)
		assert.Equal(t, 1, report.Summary.Rejected)
		assert.Equal(t, 1, report.Summary.Cancelled)
		assert.Equal(t, 1, report.Summary.Paid)
		assert.Equal(t, 1, report.Summary.Unpaid)

		require.NotEmpty(t, report.TopSpaces)
		assert.Equal(t, int32(10), report.TopSpaces[0].SpaceID)
		assert.Equal(t, "Discussion Room A", report.TopSpaces[0].SpaceName)
		assert.Equal(t, 3, report.TopSpaces[0].Total)
	})
}
