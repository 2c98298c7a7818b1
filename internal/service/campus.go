package service

import (
	"context"
	"fmt"
	"strings"

	"spacebook-backend/internal/domain"
	"spacebook-backend/internal/repository"
)

type campusService struct {
	repo       repository.CampusRepository
	branchRepo repository.BranchRepository
}

func NewCampusService(repo repository.CampusRepository, branchRepo repository.BranchRepository) CampusService {
	return &campusService{repo: repo, branchRepo: branchRepo}
}

func (s *campusService) CreateCampus(ctx context.Context, campus *domain.Campus) error {
	if err := validateCampus(campus); err != nil {
		return err
	}
	if _, err := s.branchRepo.GetByCode(ctx, campus.BranchCode); err != nil {
		return err
	}
	return s.repo.Create(ctx, campus)
}

func (s *campusService) GetCampus(ctx context.Context, code string) (*domain.Campus, error) {
	return s.repo.GetByCode(ctx, code)
}

func (s *campusService) ListCampuses(ctx context.Context, branchCode string) ([]domain.Campus, error) {
	return s.repo.List(ctx, branchCode)
}

func (s *campusService) UpdateCampus(ctx context.Context, campus *domain.Campus) error {
	if err := validateCampus(campus); err != nil {
		return err
	}
	return s.repo.Update(ctx, campus)
}

func (s *campusService) DeleteCampus(ctx context.Context, code string) error {
	return s.repo.Delete(ctx, code)
}

func validateCampus(campus *domain.Campus) error {
	if strings.TrimSpace(campus.CampusCode) == "" || strings.TrimSpace(campus.CampusName) == "" {
		return fmt.Errorf("campus code and name are required: %w", domain.ErrValidation)
	}
	if !campus.Role.Valid() {
		return fmt.Errorf("unknown campus role %q: %w", campus.Role, domain.ErrValidation)
	}
	return nil
}
