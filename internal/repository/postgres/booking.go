package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"spacebook-backend/internal/domain"
	"spacebook-backend/internal/repository"
)

const bookingColumns = `id, space_id, user_id, booking_date, start_time, end_time, status, payment_status, transaction_ref, paid_on, created_on, updated_on`

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) CreateIfSlotFree(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// Serialize concurrent submissions for the same (space, date).
	lockKey := fmt.Sprintf("space:%d:%s", b.SpaceID, b.BookingDate)
	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, lockKey); err != nil {
		return fmt.Errorf("failed to acquire slot lock: %w", err)
	}

	var overlapping int
	countQuery := `SELECT COUNT(*) FROM bookings
	               WHERE space_id = $1 AND booking_date = $2
	                 AND status NOT IN ('CANCELLED', 'REJECTED')
	                 AND start_time < $3 AND end_time > $4`
	err = tx.QueryRowContext(ctx, countQuery, b.SpaceID, b.BookingDate, b.EndTime, b.StartTime).Scan(&overlapping)
	if err != nil {
		return fmt.Errorf("failed to re-check slot availability: %w", err)
	}
	if overlapping > 0 {
		return domain.ErrConflict
	}

	now := time.Now().UTC().Format(time.RFC3339)
	insertQuery := `INSERT INTO bookings (space_id, user_id, booking_date, start_time, end_time, status, payment_status, transaction_ref, created_on, updated_on)
	                VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	err = tx.QueryRowContext(ctx, insertQuery,
		b.SpaceID, b.UserID, b.BookingDate, b.StartTime, b.EndTime,
		b.Status, b.PaymentStatus, b.TransactionRef, now, now,
	).Scan(&b.ID)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	b.CreatedOn = now
	b.UpdatedOn = now

	return tx.Commit()
}

func (r *bookingRepository) GetByID(ctx context.Context, id int32) (*domain.Booking, error) {
	b := &domain.Booking{}
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&b.ID, &b.SpaceID, &b.UserID, &b.BookingDate, &b.StartTime, &b.EndTime,
		&b.Status, &b.PaymentStatus, &b.TransactionRef, &b.PaidOn, &b.CreatedOn, &b.UpdatedOn,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("booking %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	query := `UPDATE bookings SET status=$1, payment_status=$2, transaction_ref=$3, paid_on=$4, updated_on=$5 WHERE id=$6`
	now := time.Now().UTC().Format(time.RFC3339)
	res, err := r.db.ExecContext(ctx, query, b.Status, b.PaymentStatus, b.TransactionRef, b.PaidOn, now, b.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("booking %d: %w", b.ID, domain.ErrNotFound)
	}
	b.UpdatedOn = now
	return nil
}

func (r *bookingRepository) ListForSlot(ctx context.Context, spaceID int32, date string) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings
	          WHERE space_id = $1 AND booking_date = $2 AND status NOT IN ('CANCELLED', 'REJECTED')
	          ORDER BY start_time`
	return r.queryBookings(ctx, query, spaceID, date)
}

func (r *bookingRepository) ListByUser(ctx context.Context, userID int32) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE user_id = $1 ORDER BY created_on DESC`
	return r.queryBookings(ctx, query, userID)
}

func (r *bookingRepository) ListPending(ctx context.Context) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE status = 'PENDING' ORDER BY booking_date, start_time`
	return r.queryBookings(ctx, query)
}

func (r *bookingRepository) ListBetween(ctx context.Context, startDate, endDate string) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE 1=1`
	args := []interface{}{}
	if startDate != "" {
		args = append(args, startDate)
		query += fmt.Sprintf(" AND booking_date >= $%d", len(args))
	}
	if endDate != "" {
		args = append(args, endDate)
		query += fmt.Sprintf(" AND booking_date <= $%d", len(args))
	}
	query += " ORDER BY booking_date DESC, start_time DESC"
	return r.queryBookings(ctx, query, args...)
}

func (r *bookingRepository) queryBookings(ctx context.Context, query string, args ...interface{}) ([]domain.Booking, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(
			&b.ID, &b.SpaceID, &b.UserID, &b.BookingDate, &b.StartTime, &b.EndTime,
			&b.Status, &b.PaymentStatus, &b.TransactionRef, &b.PaidOn, &b.CreatedOn, &b.UpdatedOn,
		); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}
