package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"spacebook-backend/internal/domain"
	"spacebook-backend/internal/media"
	"spacebook-backend/internal/repository"
)

type libraryService struct {
	repo       repository.LibraryRepository
	mediaStore *media.Store
	now        func() time.Time
}

func NewLibraryService(repo repository.LibraryRepository, mediaStore *media.Store) LibraryService {
	return &libraryService{
		repo:       repo,
		mediaStore: mediaStore,
		now:        time.Now,
	}
}

func (s *libraryService) CreateLibrary(ctx context.Context, library *domain.Library) error {
	if err := s.validate(library); err != nil {
		return err
	}
	_, err := s.repo.GetByCode(ctx, library.LibraryCode)
	if err == nil {
		return fmt.Errorf("library code %s already exists: %w", library.LibraryCode, domain.ErrValidation)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return s.repo.Create(ctx, library)
}

func (s *libraryService) GetLibrary(ctx context.Context, code string) (*domain.Library, error) {
	return s.repo.GetByCode(ctx, code)
}

func (s *libraryService) ListLibraries(ctx context.Context, campusCode string) ([]domain.Library, error) {
	return s.repo.List(ctx, campusCode)
}

func (s *libraryService) UpdateLibrary(ctx context.Context, library *domain.Library) error {
	if err := s.validate(library); err != nil {
		return err
	}
	return s.repo.Update(ctx, library)
}

func (s *libraryService) DeleteLibrary(ctx context.Context, code string) error {
	if err := s.repo.Delete(ctx, code); err != nil {
		return err
	}
	s.mediaStore.Remove(code, media.KindLibrary)
	return nil
}

func (s *libraryService) SaveLibraryImage(ctx context.Context, code, filename string, data []byte) (string, error) {
	library, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return "", err
	}
	return s.mediaStore.Ingest(library.LibraryCode, filename, data, media.KindLibrary)
}

// validate enforces required fields and the submission-time freshness
// rule: last_verified must be today's date.
func (s *libraryService) validate(library *domain.Library) error {
	if strings.TrimSpace(library.LibraryCode) == "" || strings.TrimSpace(library.LibraryName) == "" {
		return fmt.Errorf("library code and name are required: %w", domain.ErrValidation)
	}
	today := s.now().Format("2006-01-02")
	if library.LastVerified != today {
		return fmt.Errorf("last_verified must be today's date (%s): %w", today, domain.ErrValidation)
	}
	return nil
}
