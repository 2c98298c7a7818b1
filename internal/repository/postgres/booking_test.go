package postgres

import (
	"context"
	"testing"

	"spacebook-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingRepository_CreateIfSlotFree(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewBookingRepository(db)
	ctx := context.Background()

	booking := &domain.Booking{
		SpaceID:       7,
		UserID:        3,
		BookingDate:   "2025-03-01",
		StartTime:     "10:00",
		EndTime:       "11:00",
		Status:        domain.BookingStatusPending,
		PaymentStatus: domain.PaymentStatusUnpaid,
	}

	t.Run("SlotFree", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("SELECT pg_advisory_xact_lock").
			WithArgs("space:7:2025-03-01").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM bookings").
			WithArgs(booking.SpaceID, booking.BookingDate, booking.EndTime, booking.StartTime).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery("INSERT INTO bookings").
			WithArgs(booking.SpaceID, booking.UserID, booking.BookingDate, booking.StartTime, booking.EndTime,
				booking.Status, booking.PaymentStatus, booking.TransactionRef, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
		mock.ExpectCommit()

		err := repo.CreateIfSlotFree(ctx, booking)
		assert.NoError(t, err)
		assert.Equal(t, int32(42), booking.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("SlotTaken", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("SELECT pg_advisory_xact_lock").
			WithArgs("space:7:2025-03-01").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM bookings").
			WithArgs(booking.SpaceID, booking.BookingDate, booking.EndTime, booking.StartTime).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectRollback()

		err := repo.CreateIfSlotFree(ctx, booking)
		assert.ErrorIs(t, err, domain.ErrConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBookingRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewBookingRepository(db)
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{
			"id", "space_id", "user_id", "booking_date", "start_time", "end_time",
			"status", "payment_status", "transaction_ref", "paid_on", "created_on", "updated_on",
		}).AddRow(1, 7, 3, "2025-03-01", "10:00", "11:00", "PENDING", "UNPAID", "", nil, "2025-02-20T08:00:00Z", "2025-02-20T08:00:00Z")

		mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id = \\$1").
			WithArgs(int32(1)).
			WillReturnRows(rows)

		b, err := repo.GetByID(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, domain.BookingStatusPending, b.Status)
		assert.Nil(t, b.PaidOn)
	})

	t.Run("Missing", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id = \\$1").
			WithArgs(int32(99)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetByID(ctx, 99)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestBookingRepository_ListForSlot(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewBookingRepository(db)

	rows := sqlmock.NewRows([]string{
		"id", "space_id", "user_id", "booking_date", "start_time", "end_time",
		"status", "payment_status", "transaction_ref", "paid_on", "created_on", "updated_on",
	}).
		AddRow(1, 7, 3, "2025-03-01", "09:00", "10:00", "APPROVED", "", "", nil, "x", "x").
		AddRow(2, 7, 4, "2025-03-01", "10:00", "11:00", "PENDING", "UNPAID", "", nil, "x", "x")

	mock.ExpectQuery("SELECT (.+) FROM bookings").
		WithArgs(int32(7), "2025-03-01").
		WillReturnRows(rows)

	bookings, err := repo.ListForSlot(context.Background(), 7, "2025-03-01")
	assert.NoError(t, err)
	assert.Len(t, bookings, 2)
	assert.Equal(t, "09:00", bookings[0].StartTime)
}
