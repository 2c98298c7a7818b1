package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"spacebook-backend/internal/domain"
	"spacebook-backend/internal/repository"
)

type campusRepository struct {
	db *sql.DB
}

func NewCampusRepository(db *sql.DB) repository.CampusRepository {
	return &campusRepository{db: db}
}

func (r *campusRepository) Create(ctx context.Context, c *domain.Campus) error {
	query := `INSERT INTO campuses (campus_code, branch_code, campus_name, city, state, role)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query, c.CampusCode, c.BranchCode, c.CampusName, c.City, c.State, c.Role)
	return err
}

func (r *campusRepository) GetByCode(ctx context.Context, code string) (*domain.Campus, error) {
	c := &domain.Campus{}
	query := `SELECT campus_code, branch_code, campus_name, city, state, role FROM campuses WHERE campus_code = $1`
	err := r.db.QueryRowContext(ctx, query, code).Scan(&c.CampusCode, &c.BranchCode, &c.CampusName, &c.City, &c.State, &c.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("campus %s: %w", code, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *campusRepository) List(ctx context.Context, branchCode string) ([]domain.Campus, error) {
	query := `SELECT campus_code, branch_code, campus_name, city, state, role FROM campuses`
	args := []interface{}{}
	if branchCode != "" {
		query += ` WHERE branch_code = $1`
		args = append(args, branchCode)
	}
	query += ` ORDER BY campus_name`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var campuses []domain.Campus
	for rows.Next() {
		var c domain.Campus
		if err := rows.Scan(&c.CampusCode, &c.BranchCode, &c.CampusName, &c.City, &c.State, &c.Role); err != nil {
			return nil, err
		}
		campuses = append(campuses, c)
	}
	return campuses, rows.Err()
}

func (r *campusRepository) Update(ctx context.Context, c *domain.Campus) error {
	query := `UPDATE campuses SET branch_code=$1, campus_name=$2, city=$3, state=$4, role=$5 WHERE campus_code=$6`
	res, err := r.db.ExecContext(ctx, query, c.BranchCode, c.CampusName, c.City, c.State, c.Role, c.CampusCode)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("campus %s: %w", c.CampusCode, domain.ErrNotFound)
	}
	return nil
}

func (r *campusRepository) Delete(ctx context.Context, code string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM campuses WHERE campus_code = $1`, code)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("campus %s: %w", code, domain.ErrNotFound)
	}
	return nil
}
