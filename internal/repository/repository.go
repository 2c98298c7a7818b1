package repository

import (
	"context"

	"spacebook-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type BranchRepository interface {
	Create(ctx context.Context, branch *domain.Branch) error
	GetByCode(ctx context.Context, code string) (*domain.Branch, error)
	List(ctx context.Context, query string) ([]domain.Branch, error)
	Update(ctx context.Context, branch *domain.Branch) error
	Delete(ctx context.Context, code string) error
}

type CampusRepository interface {
	Create(ctx context.Context, campus *domain.Campus) error
	GetByCode(ctx context.Context, code string) (*domain.Campus, error)
	List(ctx context.Context, branchCode string) ([]domain.Campus, error)
	Update(ctx context.Context, campus *domain.Campus) error
	Delete(ctx context.Context, code string) error
}

type LibraryRepository interface {
	Create(ctx context.Context, library *domain.Library) error
	GetByCode(ctx context.Context, code string) (*domain.Library, error)
	List(ctx context.Context, campusCode string) ([]domain.Library, error)
	Update(ctx context.Context, library *domain.Library) error
	Delete(ctx context.Context, code string) error
}

type SpaceRepository interface {
	Create(ctx context.Context, space *domain.LibrarySpace) error
	GetByID(ctx context.Context, id int32) (*domain.LibrarySpace, error)
	List(ctx context.Context, filter domain.SpaceFilter) ([]domain.LibrarySpace, error)
	Update(ctx context.Context, space *domain.LibrarySpace) error
	Delete(ctx context.Context, id int32) error
}

type BookingRepository interface {
	// CreateIfSlotFree inserts the booking inside a transaction that
	// holds a per-(space, date) advisory lock and re-checks overlap,
	// so two concurrent submissions for the same slot cannot both
	// succeed. Returns domain.ErrConflict when the slot is taken.
	CreateIfSlotFree(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id int32) (*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) error
	// ListForSlot returns bookings for (space, date) that still count
	// for conflicts, i.e. not CANCELLED and not REJECTED.
	ListForSlot(ctx context.Context, spaceID int32, date string) ([]domain.Booking, error)
	ListByUser(ctx context.Context, userID int32) ([]domain.Booking, error)
	ListPending(ctx context.Context) ([]domain.Booking, error)
	ListBetween(ctx context.Context, startDate, endDate string) ([]domain.Booking, error)
}
