package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"spacebook-backend/internal/domain"
	"spacebook-backend/internal/media"
	"spacebook-backend/internal/repository"
)

type spaceService struct {
	repo        repository.SpaceRepository
	libraryRepo repository.LibraryRepository
	mediaStore  *media.Store
}

func NewSpaceService(repo repository.SpaceRepository, libraryRepo repository.LibraryRepository, mediaStore *media.Store) SpaceService {
	return &spaceService{
		repo:        repo,
		libraryRepo: libraryRepo,
		mediaStore:  mediaStore,
	}
}

func (s *spaceService) CreateSpace(ctx context.Context, space *domain.LibrarySpace) error {
	if err := validateSpace(space); err != nil {
		return err
	}
	if _, err := s.libraryRepo.GetByCode(ctx, space.LibraryCode); err != nil {
		return err
	}
	return s.repo.Create(ctx, space)
}

func (s *spaceService) GetSpace(ctx context.Context, id int32) (*domain.LibrarySpace, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *spaceService) ListSpaces(ctx context.Context, filter domain.SpaceFilter) ([]domain.LibrarySpace, error) {
	return s.repo.List(ctx, filter)
}

func (s *spaceService) UpdateSpace(ctx context.Context, space *domain.LibrarySpace) error {
	if err := validateSpace(space); err != nil {
		return err
	}
	return s.repo.Update(ctx, space)
}

func (s *spaceService) DeleteSpace(ctx context.Context, id int32) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.mediaStore.Remove(strconv.Itoa(int(id)), media.KindSpace)
	return nil
}

func (s *spaceService) SaveSpaceImage(ctx context.Context, id int32, filename string, data []byte) (string, error) {
	space, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return s.mediaStore.Ingest(strconv.Itoa(int(space.SpaceID)), filename, data, media.KindSpace)
}

func validateSpace(space *domain.LibrarySpace) error {
	if strings.TrimSpace(space.SpaceName) == "" || strings.TrimSpace(space.LibraryCode) == "" {
		return fmt.Errorf("space name and library code are required: %w", domain.ErrValidation)
	}
	if space.Capacity < 0 {
		return fmt.Errorf("capacity must not be negative: %w", domain.ErrValidation)
	}
	if space.AvailableFrom != "" || space.AvailableTo != "" {
		from, err := domain.NormalizeClock(space.AvailableFrom)
		if err != nil {
			return err
		}
		to, err := domain.NormalizeClock(space.AvailableTo)
		if err != nil {
			return err
		}
		if to <= from {
			return fmt.Errorf("available_to must be later than available_from: %w", domain.ErrValidation)
		}
		space.AvailableFrom, space.AvailableTo = from, to
	}
	return nil
}
