package service

import (
	"context"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"spacebook-backend/internal/domain"
	"spacebook-backend/internal/logger"
	"spacebook-backend/internal/repository"
)

type bookingService struct {
	bookingRepo repository.BookingRepository
	spaceRepo   repository.SpaceRepository
	userRepo    repository.UserRepository
	emailSvc    EmailService
	now         func() time.Time
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	spaceRepo repository.SpaceRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		spaceRepo:   spaceRepo,
		userRepo:    userRepo,
		emailSvc:    emailSvc,
		now:         time.Now,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, actor domain.Actor, spaceID int32, date, start, end string) (*domain.Booking, error) {
	space, err := s.spaceRepo.GetByID(ctx, spaceID)
	if err != nil {
		return nil, err
	}
	if !space.IsActive {
		return nil, fmt.Errorf("space %d: %w", spaceID, domain.ErrInactiveSpace)
	}

	date, err = domain.NormalizeDate(date)
	if err != nil {
		return nil, err
	}
	start, err = domain.NormalizeClock(start)
	if err != nil {
		return nil, err
	}
	end, err = domain.NormalizeClock(end)
	if err != nil {
		return nil, err
	}
	if end <= start {
		return nil, fmt.Errorf("end time must be later than start time: %w", domain.ErrValidation)
	}

	// First pass over current bookings; the repository re-checks under
	// a per-slot lock before inserting.
	existing, err := s.bookingRepo.ListForSlot(ctx, spaceID, date)
	if err != nil {
		return nil, err
	}
	for _, b := range existing {
		if domain.Overlaps(b.StartTime, b.EndTime, start, end) {
			return nil, domain.ErrConflict
		}
	}

	booking := &domain.Booking{
		SpaceID:     spaceID,
		UserID:      actor.UserID,
		BookingDate: date,
		StartTime:   start,
		EndTime:     end,
		Status:      domain.InitialBookingStatus(space.RequiresApproval),
	}
	if space.RequiresPayment {
		booking.PaymentStatus = domain.PaymentStatusUnpaid
	}

	if err := s.bookingRepo.CreateIfSlotFree(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) ApproveBooking(ctx context.Context, actor domain.Actor, bookingID int32) (*domain.Booking, error) {
	if !actor.Role.CanModerate() {
		return nil, fmt.Errorf("approve requires a librarian or staff role: %w", domain.ErrForbidden)
	}
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	prev := booking.Status
	if err := booking.Approve(); err != nil {
		return booking, err
	}
	if booking.Status == prev {
		return booking, nil
	}
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}
	s.notify(ctx, booking, true)
	return booking, nil
}

func (s *bookingService) RejectBooking(ctx context.Context, actor domain.Actor, bookingID int32) (*domain.Booking, error) {
	if !actor.Role.CanModerate() {
		return nil, fmt.Errorf("reject requires a librarian or staff role: %w", domain.ErrForbidden)
	}
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	prev := booking.Status
	if err := booking.Reject(); err != nil {
		return booking, err
	}
	if booking.Status == prev {
		return booking, nil
	}
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}
	s.notify(ctx, booking, false)
	return booking, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, actor domain.Actor, bookingID int32) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != actor.UserID {
		return nil, fmt.Errorf("only the booking owner may cancel: %w", domain.ErrForbidden)
	}

	prev := booking.Status
	if err := booking.Cancel(); err != nil {
		return booking, err
	}
	if booking.Status == prev {
		return booking, nil
	}
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// StartPayment assigns an FPX transaction reference, mirroring the
// first step of the stubbed bank flow. Already-paid bookings pass
// through untouched.
func (s *bookingService) StartPayment(ctx context.Context, actor domain.Actor, bookingID int32) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != actor.UserID {
		return nil, fmt.Errorf("only the booking owner may pay: %w", domain.ErrForbidden)
	}
	switch booking.PaymentStatus {
	case domain.PaymentStatusPaid:
		return booking, nil
	case domain.PaymentStatusUnpaid:
	default:
		return booking, fmt.Errorf("booking has no payment requirement: %w", domain.ErrInvalidTransition)
	}

	booking.TransactionRef = newTransactionRef()
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) ConfirmPayment(ctx context.Context, actor domain.Actor, bookingID int32) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != actor.UserID {
		return nil, fmt.Errorf("only the booking owner may pay: %w", domain.ErrForbidden)
	}

	prev := booking.PaymentStatus
	if err := booking.MarkPaid(s.now().UTC().Format(time.RFC3339)); err != nil {
		return booking, err
	}
	if booking.PaymentStatus == prev {
		return booking, nil
	}
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) ListMyBookings(ctx context.Context, actor domain.Actor) ([]domain.Booking, error) {
	return s.bookingRepo.ListByUser(ctx, actor.UserID)
}

func (s *bookingService) ListPendingBookings(ctx context.Context, actor domain.Actor) ([]domain.Booking, error) {
	if !actor.Role.CanModerate() {
		return nil, fmt.Errorf("pending queue requires a librarian or staff role: %w", domain.ErrForbidden)
	}
	return s.bookingRepo.ListPending(ctx)
}

func (s *bookingService) BookingReport(ctx context.Context, actor domain.Actor, startDate, endDate string) (*domain.BookingReport, error) {
	if !actor.Role.CanModerate() {
		return nil, fmt.Errorf("report requires a librarian or staff role: %w", domain.ErrForbidden)
	}

	bookings, err := s.bookingRepo.ListBetween(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}

	report := &domain.BookingReport{
		StartDate: startDate,
		EndDate:   endDate,
		Bookings:  bookings,
	}

	usage := map[int32]int{}
	for _, b := range bookings {
		report.Summary.Total++
		switch b.Status {
		case domain.BookingStatusApproved:
			report.Summary.Approved++
		case domain.BookingStatusPending:
			report.Summary.Pending++
		case domain.BookingStatusRejected:
			report.Summary.Rejected++
		case domain.BookingStatusCancelled:
			report.Summary.Cancelled++
		}
		switch b.PaymentStatus {
		case domain.PaymentStatusPaid:
			report.Summary.Paid++
		case domain.PaymentStatusUnpaid:
			report.Summary.Unpaid++
		}
		usage[b.SpaceID]++
	}

	names := map[int32]string{}
	if spaces, err := s.spaceRepo.List(ctx, domain.SpaceFilter{}); err == nil {
		for _, sp := range spaces {
			names[sp.SpaceID] = sp.SpaceName
		}
	}
	for id, total := range usage {
		report.SpaceUsage = append(report.SpaceUsage, domain.SpaceUsage{
			SpaceID:   id,
			SpaceName: names[id],
			Total:     total,
		})
	}
	sort.Slice(report.SpaceUsage, func(i, j int) bool {
		if report.SpaceUsage[i].Total != report.SpaceUsage[j].Total {
			return report.SpaceUsage[i].Total > report.SpaceUsage[j].Total
		}
		return report.SpaceUsage[i].SpaceID < report.SpaceUsage[j].SpaceID
	})
	report.TopSpaces = report.SpaceUsage
	if len(report.TopSpaces) > 5 {
		report.TopSpaces = report.TopSpaces[:5]
	}

	return report, nil
}

// notify emails the booking owner about an approve/reject decision.
// Delivery failures must not fail the transition.
func (s *bookingService) notify(ctx context.Context, booking *domain.Booking, approved bool) {
	user, err := s.userRepo.GetByID(ctx, booking.UserID)
	if err != nil {
		logger.Warn("failed to look up booking owner for notification", "booking_id", booking.ID, "error", err)
		return
	}
	spaceName := fmt.Sprintf("space %d", booking.SpaceID)
	if space, err := s.spaceRepo.GetByID(ctx, booking.SpaceID); err == nil {
		spaceName = space.SpaceName
	}

	if approved {
		err = s.emailSvc.SendBookingApprovedNotification(ctx, user.Email, spaceName, booking.BookingDate, booking.StartTime, booking.EndTime)
	} else {
		err = s.emailSvc.SendBookingRejectedNotification(ctx, user.Email, spaceName, booking.BookingDate, booking.StartTime, booking.EndTime)
	}
	if err != nil {
		logger.Warn("failed to send booking notification", "booking_id", booking.ID, "error", err)
	}
}

func newTransactionRef() string {
	u := uuid.New()
	return "FPX-" + strings.ToUpper(hex.EncodeToString(u[:])[:10])
}
