package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"spacebook-backend/internal/domain"
	"spacebook-backend/internal/repository"
)

type branchRepository struct {
	db *sql.DB
}

func NewBranchRepository(db *sql.DB) repository.BranchRepository {
	return &branchRepository{db: db}
}

func (r *branchRepository) Create(ctx context.Context, b *domain.Branch) error {
	query := `INSERT INTO branches (code, name, location) VALUES ($1, $2, $3)`
	_, err := r.db.ExecContext(ctx, query, b.Code, b.Name, b.Location)
	return err
}

func (r *branchRepository) GetByCode(ctx context.Context, code string) (*domain.Branch, error) {
	b := &domain.Branch{}
	query := `SELECT code, name, location FROM branches WHERE code = $1`
	err := r.db.QueryRowContext(ctx, query, code).Scan(&b.Code, &b.Name, &b.Location)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("branch %s: %w", code, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *branchRepository) List(ctx context.Context, query string) ([]domain.Branch, error) {
	sqlQuery := `SELECT code, name, location FROM branches`
	args := []interface{}{}
	if query != "" {
		sqlQuery += ` WHERE name ILIKE '%' || $1 || '%'`
		args = append(args, query)
	}
	sqlQuery += ` ORDER BY name`

	rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var branches []domain.Branch
	for rows.Next() {
		var b domain.Branch
		if err := rows.Scan(&b.Code, &b.Name, &b.Location); err != nil {
			return nil, err
		}
		branches = append(branches, b)
	}
	return branches, rows.Err()
}

func (r *branchRepository) Update(ctx context.Context, b *domain.Branch) error {
	query := `UPDATE branches SET name=$1, location=$2 WHERE code=$3`
	res, err := r.db.ExecContext(ctx, query, b.Name, b.Location, b.Code)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("branch %s: %w", b.Code, domain.ErrNotFound)
	}
	return nil
}

func (r *branchRepository) Delete(ctx context.Context, code string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM branches WHERE code = $1`, code)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("branch %s: %w", code, domain.ErrNotFound)
	}
	return nil
}
