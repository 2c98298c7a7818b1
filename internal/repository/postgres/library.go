package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"spacebook-backend/internal/domain"
	"spacebook-backend/internal/repository"
)

const libraryColumns = `library_code, branch_code, campus_code, library_name, short_name, library_type,
	address, city, state, postcode, phone, email, website_url, opening_hours, weekend_hours,
	notes, latitude, longitude, source_url, last_verified`

type libraryRepository struct {
	db *sql.DB
}

func NewLibraryRepository(db *sql.DB) repository.LibraryRepository {
	return &libraryRepository{db: db}
}

func (r *libraryRepository) Create(ctx context.Context, l *domain.Library) error {
	query := `INSERT INTO libraries (` + libraryColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
	_, err := r.db.ExecContext(ctx, query,
		l.LibraryCode, l.BranchCode, l.CampusCode, l.LibraryName, l.ShortName, l.LibraryType,
		l.Address, l.City, l.State, l.Postcode, l.Phone, l.Email, l.WebsiteURL, l.OpeningHours, l.WeekendHours,
		l.Notes, l.Latitude, l.Longitude, l.SourceURL, l.LastVerified,
	)
	return err
}

func (r *libraryRepository) GetByCode(ctx context.Context, code string) (*domain.Library, error) {
	l := &domain.Library{}
	query := `SELECT ` + libraryColumns + ` FROM libraries WHERE library_code = $1`
	err := r.db.QueryRowContext(ctx, query, code).Scan(
		&l.LibraryCode, &l.BranchCode, &l.CampusCode, &l.LibraryName, &l.ShortName, &l.LibraryType,
		&l.Address, &l.City, &l.State, &l.Postcode, &l.Phone, &l.Email, &l.WebsiteURL, &l.OpeningHours, &l.WeekendHours,
		&l.Notes, &l.Latitude, &l.Longitude, &l.SourceURL, &l.LastVerified,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("library %s: %w", code, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (r *libraryRepository) List(ctx context.Context, campusCode string) ([]domain.Library, error) {
	query := `SELECT ` + libraryColumns + ` FROM libraries`
	args := []interface{}{}
	if campusCode != "" {
		query += ` WHERE campus_code = $1`
		args = append(args, campusCode)
	}
	query += ` ORDER BY library_name`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var libraries []domain.Library
	for rows.Next() {
		var l domain.Library
		if err := rows.Scan(
			&l.LibraryCode, &l.BranchCode, &l.CampusCode, &l.LibraryName, &l.ShortName, &l.LibraryType,
			&l.Address, &l.City, &l.State, &l.Postcode, &l.Phone, &l.Email, &l.WebsiteURL, &l.OpeningHours, &l.WeekendHours,
			&l.Notes, &l.Latitude, &l.Longitude, &l.SourceURL, &l.LastVerified,
		); err != nil {
			return nil, err
		}
		libraries = append(libraries, l)
	}
	return libraries, rows.Err()
}

func (r *libraryRepository) Update(ctx context.Context, l *domain.Library) error {
	query := `UPDATE libraries SET branch_code=$1, campus_code=$2, library_name=$3, short_name=$4, library_type=$5,
	          address=$6, city=$7, state=$8, postcode=$9, phone=$10, email=$11, website_url=$12,
	          opening_hours=$13, weekend_hours=$14, notes=$15, latitude=$16, longitude=$17, source_url=$18,
	          last_verified=$19 WHERE library_code=$20`
	res, err := r.db.ExecContext(ctx, query,
		l.BranchCode, l.CampusCode, l.LibraryName, l.ShortName, l.LibraryType,
		l.Address, l.City, l.State, l.Postcode, l.Phone, l.Email, l.WebsiteURL,
		l.OpeningHours, l.WeekendHours, l.Notes, l.Latitude, l.Longitude, l.SourceURL,
		l.LastVerified, l.LibraryCode,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("library %s: %w", l.LibraryCode, domain.ErrNotFound)
	}
	return nil
}

func (r *libraryRepository) Delete(ctx context.Context, code string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM libraries WHERE library_code = $1`, code)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("library %s: %w", code, domain.ErrNotFound)
	}
	return nil
}
