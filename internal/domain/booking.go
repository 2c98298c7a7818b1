package domain

import (
	"fmt"
	"time"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusApproved  BookingStatus = "APPROVED"
	BookingStatusRejected  BookingStatus = "REJECTED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "UNPAID"
	PaymentStatusPaid   PaymentStatus = "PAID"
)

// Terminal reports whether no further status transition is defined.
func (s BookingStatus) Terminal() bool {
	return s == BookingStatusRejected || s == BookingStatusCancelled
}

type Booking struct {
	ID             int32         `json:"id"`
	SpaceID        int32         `json:"space_id"`
	UserID         int32         `json:"user_id"`
	BookingDate    string        `json:"booking_date"` // YYYY-MM-DD
	StartTime      string        `json:"start_time"`   // HH:MM, zero padded
	EndTime        string        `json:"end_time"`
	Status         BookingStatus `json:"status"`
	PaymentStatus  PaymentStatus `json:"payment_status,omitempty"`
	TransactionRef string        `json:"transaction_ref,omitempty"`
	PaidOn         *string       `json:"paid_on,omitempty"`
	CreatedOn      string        `json:"created_on"`
	UpdatedOn      string        `json:"updated_on"`
}

// InitialBookingStatus decides the status a fresh booking starts in.
func InitialBookingStatus(requiresApproval bool) BookingStatus {
	if requiresApproval {
		return BookingStatusPending
	}
	return BookingStatusApproved
}

// Approve moves PENDING to APPROVED. Approving an already approved
// booking is an idempotent no-op; any other state is rejected.
func (b *Booking) Approve() error {
	switch b.Status {
	case BookingStatusApproved:
		return nil
	case BookingStatusPending:
		b.Status = BookingStatusApproved
		return nil
	}
	return fmt.Errorf("approve %s booking: %w", b.Status, ErrInvalidTransition)
}

// Reject moves PENDING to REJECTED, with the same idempotency rule.
func (b *Booking) Reject() error {
	switch b.Status {
	case BookingStatusRejected:
		return nil
	case BookingStatusPending:
		b.Status = BookingStatusRejected
		return nil
	}
	return fmt.Errorf("reject %s booking: %w", b.Status, ErrInvalidTransition)
}

// Cancel moves PENDING or APPROVED to CANCELLED. Cancelling twice is a
// no-op; a REJECTED booking cannot be cancelled.
func (b *Booking) Cancel() error {
	switch b.Status {
	case BookingStatusCancelled:
		return nil
	case BookingStatusPending, BookingStatusApproved:
		b.Status = BookingStatusCancelled
		return nil
	}
	return fmt.Errorf("cancel %s booking: %w", b.Status, ErrInvalidTransition)
}

// MarkPaid moves the payment axis UNPAID -> PAID. Paying twice is a
// no-op. Bookings without a payment requirement carry an empty axis and
// cannot be paid.
func (b *Booking) MarkPaid(paidOn string) error {
	switch b.PaymentStatus {
	case PaymentStatusPaid:
		return nil
	case PaymentStatusUnpaid:
		b.PaymentStatus = PaymentStatusPaid
		b.PaidOn = &paidOn
		return nil
	}
	return fmt.Errorf("pay booking without payment requirement: %w", ErrInvalidTransition)
}

// Overlaps reports whether [existingStart, existingEnd) intersects
// [candidateStart, candidateEnd). Times are zero-padded HH:MM strings,
// so lexical order is chronological. Touching endpoints do not overlap.
func Overlaps(existingStart, existingEnd, candidateStart, candidateEnd string) bool {
	return existingStart < candidateEnd && existingEnd > candidateStart
}

// NormalizeClock parses a wall-clock value and returns it zero padded
// as HH:MM. Accepts HH:MM and HH:MM:SS input.
func NormalizeClock(s string) (string, error) {
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("15:04"), nil
		}
	}
	return "", fmt.Errorf("invalid time %q: %w", s, ErrValidation)
}

// NormalizeDate parses a calendar date and returns it as YYYY-MM-DD.
func NormalizeDate(s string) (string, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", s, ErrValidation)
	}
	return t.Format("2006-01-02"), nil
}
