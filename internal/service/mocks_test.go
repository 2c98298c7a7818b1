package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"spacebook-backend/internal/domain"
)

// MockBookingRepo
type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) CreateIfSlotFree(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}
func (m *MockBookingRepo) GetByID(ctx context.Context, id int32) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) Update(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}
func (m *MockBookingRepo) ListForSlot(ctx context.Context, spaceID int32, date string) ([]domain.Booking, error) {
	args := m.Called(ctx, spaceID, date)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListByUser(ctx context.Context, userID int32) ([]domain.Booking, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListPending(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListBetween(ctx context.Context, startDate, endDate string) ([]domain.Booking, error) {
	args := m.Called(ctx, startDate, endDate)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

// MockSpaceRepo
type MockSpaceRepo struct {
	mock.Mock
}

func (m *MockSpaceRepo) Create(ctx context.Context, space *domain.LibrarySpace) error {
	args := m.Called(ctx, space)
	return args.Error(0)
}
func (m *MockSpaceRepo) GetByID(ctx context.Context, id int32) (*domain.LibrarySpace, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LibrarySpace), args.Error(1)
}
func (m *MockSpaceRepo) List(ctx context.Context, filter domain.SpaceFilter) ([]domain.LibrarySpace, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.LibrarySpace), args.Error(1)
}
func (m *MockSpaceRepo) Update(ctx context.Context, space *domain.LibrarySpace) error {
	args := m.Called(ctx, space)
	return args.Error(0)
}
func (m *MockSpaceRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockBranchRepo
type MockBranchRepo struct {
	mock.Mock
}

func (m *MockBranchRepo) Create(ctx context.Context, branch *domain.Branch) error {
	args := m.Called(ctx, branch)
	return args.Error(0)
}
func (m *MockBranchRepo) GetByCode(ctx context.Context, code string) (*domain.Branch, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Branch), args.Error(1)
}
func (m *MockBranchRepo) List(ctx context.Context, query string) ([]domain.Branch, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]domain.Branch), args.Error(1)
}
func (m *MockBranchRepo) Update(ctx context.Context, branch *domain.Branch) error {
	args := m.Called(ctx, branch)
	return args.Error(0)
}
func (m *MockBranchRepo) Delete(ctx context.Context, code string) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

// MockLibraryRepo
type MockLibraryRepo struct {
	mock.Mock
}

func (m *MockLibraryRepo) Create(ctx context.Context, library *domain.Library) error {
	args := m.Called(ctx, library)
	return args.Error(0)
}
func (m *MockLibraryRepo) GetByCode(ctx context.Context, code string) (*domain.Library, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Library), args.Error(1)
}
func (m *MockLibraryRepo) List(ctx context.Context, campusCode string) ([]domain.Library, error) {
	args := m.Called(ctx, campusCode)
	return args.Get(0).([]domain.Library), args.Error(1)
}
func (m *MockLibraryRepo) Update(ctx context.Context, library *domain.Library) error {
	args := m.Called(ctx, library)
	return args.Error(0)
}
func (m *MockLibraryRepo) Delete(ctx context.Context, code string) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendBookingApprovedNotification(ctx context.Context, email, spaceName, date, start, end string) error {
	args := m.Called(ctx, email, spaceName, date, start, end)
	return args.Error(0)
}
func (m *MockEmailService) SendBookingRejectedNotification(ctx context.Context, email, spaceName, date, start, end string) error {
	args := m.Called(ctx, email, spaceName, date, start, end)
	return args.Error(0)
}
