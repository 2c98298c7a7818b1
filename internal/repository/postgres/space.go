package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"spacebook-backend/internal/domain"
	"spacebook-backend/internal/repository"
)

const spaceColumns = `space_id, library_code, space_name, description, room_number, floor, space_type,
	is_active, capacity, has_projector, has_whiteboard, has_wifi, has_power_plug, has_network_node,
	wheelchair_accessible, has_climate_control, noise_level, available_from, available_to,
	buffer_minutes, advance_notice, requires_payment, fee_amount, requires_approval, access_policy, booking_notes`

type spaceRepository struct {
	db *sql.DB
}

func NewSpaceRepository(db *sql.DB) repository.SpaceRepository {
	return &spaceRepository{db: db}
}

func scanSpace(row interface{ Scan(...interface{}) error }, s *domain.LibrarySpace) error {
	return row.Scan(
		&s.SpaceID, &s.LibraryCode, &s.SpaceName, &s.Description, &s.RoomNumber, &s.Floor, &s.SpaceType,
		&s.IsActive, &s.Capacity, &s.HasProjector, &s.HasWhiteboard, &s.HasWifi, &s.HasPowerPlug, &s.HasNetworkNode,
		&s.WheelchairAccessible, &s.HasClimateControl, &s.NoiseLevel, &s.AvailableFrom, &s.AvailableTo,
		&s.BufferMinutes, &s.AdvanceNotice, &s.RequiresPayment, &s.FeeAmount, &s.RequiresApproval, &s.AccessPolicy, &s.BookingNotes,
	)
}

func (r *spaceRepository) Create(ctx context.Context, s *domain.LibrarySpace) error {
	query := `INSERT INTO library_spaces (library_code, space_name, description, room_number, floor, space_type,
	          is_active, capacity, has_projector, has_whiteboard, has_wifi, has_power_plug, has_network_node,
	          wheelchair_accessible, has_climate_control, noise_level, available_from, available_to,
	          buffer_minutes, advance_notice, requires_payment, fee_amount, requires_approval, access_policy, booking_notes)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25)
	          RETURNING space_id`
	return r.db.QueryRowContext(ctx, query,
		s.LibraryCode, s.SpaceName, s.Description, s.RoomNumber, s.Floor, s.SpaceType,
		s.IsActive, s.Capacity, s.HasProjector, s.HasWhiteboard, s.HasWifi, s.HasPowerPlug, s.HasNetworkNode,
		s.WheelchairAccessible, s.HasClimateControl, s.NoiseLevel, s.AvailableFrom, s.AvailableTo,
		s.BufferMinutes, s.AdvanceNotice, s.RequiresPayment, s.FeeAmount, s.RequiresApproval, s.AccessPolicy, s.BookingNotes,
	).Scan(&s.SpaceID)
}

func (r *spaceRepository) GetByID(ctx context.Context, id int32) (*domain.LibrarySpace, error) {
	s := &domain.LibrarySpace{}
	query := `SELECT ` + spaceColumns + ` FROM library_spaces WHERE space_id = $1`
	err := scanSpace(r.db.QueryRowContext(ctx, query, id), s)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("space %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *spaceRepository) List(ctx context.Context, f domain.SpaceFilter) ([]domain.LibrarySpace, error) {
	query := `SELECT ` + spaceColumns + ` FROM library_spaces WHERE 1=1`
	args := []interface{}{}

	if f.LibraryCode != "" {
		args = append(args, f.LibraryCode)
		query += fmt.Sprintf(" AND library_code = $%d", len(args))
	}
	if f.CampusCode != "" {
		args = append(args, f.CampusCode)
		query += fmt.Sprintf(" AND library_code IN (SELECT library_code FROM libraries WHERE campus_code = $%d)", len(args))
	}
	if f.HasProjector {
		query += " AND has_projector"
	}
	if f.HasWhiteboard {
		query += " AND has_whiteboard"
	}
	if f.HasWifi {
		query += " AND has_wifi"
	}
	if f.HasPowerPlug {
		query += " AND has_power_plug"
	}
	if f.HasNetworkNode {
		query += " AND has_network_node"
	}
	if f.WheelchairAccessible {
		query += " AND wheelchair_accessible"
	}
	query += " ORDER BY space_name"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var spaces []domain.LibrarySpace
	for rows.Next() {
		var s domain.LibrarySpace
		if err := scanSpace(rows, &s); err != nil {
			return nil, err
		}
		spaces = append(spaces, s)
	}
	return spaces, rows.Err()
}

func (r *spaceRepository) Update(ctx context.Context, s *domain.LibrarySpace) error {
	query := `UPDATE library_spaces SET library_code=$1, space_name=$2, description=$3, room_number=$4, floor=$5,
	          space_type=$6, is_active=$7, capacity=$8, has_projector=$9, has_whiteboard=$10, has_wifi=$11,
	          has_power_plug=$12, has_network_node=$13, wheelchair_accessible=$14, has_climate_control=$15,
	          noise_level=$16, available_from=$17, available_to=$18, buffer_minutes=$19, advance_notice=$20,
	          requires_payment=$21, fee_amount=$22, requires_approval=$23, access_policy=$24, booking_notes=$25
	          WHERE space_id=$26`
	res, err := r.db.ExecContext(ctx, query,
		s.LibraryCode, s.SpaceName, s.Description, s.RoomNumber, s.Floor,
		s.SpaceType, s.IsActive, s.Capacity, s.HasProjector, s.HasWhiteboard, s.HasWifi,
		s.HasPowerPlug, s.HasNetworkNode, s.WheelchairAccessible, s.HasClimateControl,
		s.NoiseLevel, s.AvailableFrom, s.AvailableTo, s.BufferMinutes, s.AdvanceNotice,
		s.RequiresPayment, s.FeeAmount, s.RequiresApproval, s.AccessPolicy, s.BookingNotes,
		s.SpaceID,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("space %d: %w", s.SpaceID, domain.ErrNotFound)
	}
	return nil
}

func (r *spaceRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM library_spaces WHERE space_id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("space %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
