package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"spacebook-backend/internal/domain"
	"spacebook-backend/internal/media"
	"spacebook-backend/internal/repository"
)

type branchService struct {
	repo       repository.BranchRepository
	mediaStore *media.Store
	stateCodes map[string]string
}

// NewBranchService builds a branch service. stateCodes maps a location
// (state) name to its two-letter code and is fixed at construction.
func NewBranchService(repo repository.BranchRepository, mediaStore *media.Store, stateCodes map[string]string) BranchService {
	return &branchService{
		repo:       repo,
		mediaStore: mediaStore,
		stateCodes: stateCodes,
	}
}

func (s *branchService) CreateBranch(ctx context.Context, name, location string) (*domain.Branch, error) {
	name = strings.TrimSpace(name)
	location = strings.TrimSpace(location)
	if name == "" || location == "" {
		return nil, fmt.Errorf("name and location are required: %w", domain.ErrValidation)
	}

	code, err := s.assignCode(ctx, location)
	if err != nil {
		return nil, err
	}

	branch := &domain.Branch{
		Code:     code,
		Name:     name,
		Location: location,
	}
	if err := s.repo.Create(ctx, branch); err != nil {
		return nil, err
	}
	return branch, nil
}

// assignCode derives a base code from the configured state map, falling
// back to the location's initials, then appends the lowest numeric
// suffix that makes it unique.
func (s *branchService) assignCode(ctx context.Context, location string) (string, error) {
	base, ok := s.stateCodes[location]
	if !ok {
		base = initials(location)
	}
	base = strings.ToUpper(base)

	if free, err := s.codeFree(ctx, base); err != nil {
		return "", err
	} else if free {
		return base, nil
	}
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s%d", base, i)
		free, err := s.codeFree(ctx, candidate)
		if err != nil {
			return "", err
		}
		if free {
			return candidate, nil
		}
	}
}

func (s *branchService) codeFree(ctx context.Context, code string) (bool, error) {
	_, err := s.repo.GetByCode(ctx, code)
	if errors.Is(err, domain.ErrNotFound) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return false, nil
}

func initials(location string) string {
	var b strings.Builder
	for _, word := range strings.Fields(location) {
		b.WriteString(strings.ToUpper(word[:1]))
	}
	if b.Len() == 0 {
		return "BR"
	}
	return b.String()
}

func (s *branchService) GetBranch(ctx context.Context, code string) (*domain.Branch, error) {
	return s.repo.GetByCode(ctx, code)
}

func (s *branchService) ListBranches(ctx context.Context, query string) ([]domain.Branch, error) {
	return s.repo.List(ctx, query)
}

// UpdateBranch changes name and location only; the code is permanent.
func (s *branchService) UpdateBranch(ctx context.Context, code, name, location string) (*domain.Branch, error) {
	branch, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if name != "" {
		branch.Name = name
	}
	if location != "" {
		branch.Location = location
	}
	if err := s.repo.Update(ctx, branch); err != nil {
		return nil, err
	}
	return branch, nil
}

func (s *branchService) DeleteBranch(ctx context.Context, code string) error {
	if err := s.repo.Delete(ctx, code); err != nil {
		return err
	}
	s.mediaStore.Remove(code, media.KindBranch)
	return nil
}

func (s *branchService) SaveBranchImage(ctx context.Context, code, filename string, data []byte) (string, error) {
	branch, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return "", err
	}
	return s.mediaStore.Ingest(branch.Code, filename, data, media.KindBranch)
}
