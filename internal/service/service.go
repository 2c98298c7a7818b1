package service

import (
	"context"

	"spacebook-backend/internal/domain"
)

type AuthService interface {
	Register(ctx context.Context, name, email, password string, role domain.Role) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

type BookingService interface {
	CreateBooking(ctx context.Context, actor domain.Actor, spaceID int32, date, start, end string) (*domain.Booking, error)
	ApproveBooking(ctx context.Context, actor domain.Actor, bookingID int32) (*domain.Booking, error)
	RejectBooking(ctx context.Context, actor domain.Actor, bookingID int32) (*domain.Booking, error)
	CancelBooking(ctx context.Context, actor domain.Actor, bookingID int32) (*domain.Booking, error)
	StartPayment(ctx context.Context, actor domain.Actor, bookingID int32) (*domain.Booking, error)
	ConfirmPayment(ctx context.Context, actor domain.Actor, bookingID int32) (*domain.Booking, error)
	ListMyBookings(ctx context.Context, actor domain.Actor) ([]domain.Booking, error)
	ListPendingBookings(ctx context.Context, actor domain.Actor) ([]domain.Booking, error)
	BookingReport(ctx context.Context, actor domain.Actor, startDate, endDate string) (*domain.BookingReport, error)
}

type BranchService interface {
	CreateBranch(ctx context.Context, name, location string) (*domain.Branch, error)
	GetBranch(ctx context.Context, code string) (*domain.Branch, error)
	ListBranches(ctx context.Context, query string) ([]domain.Branch, error)
	UpdateBranch(ctx context.Context, code, name, location string) (*domain.Branch, error)
	DeleteBranch(ctx context.Context, code string) error
	SaveBranchImage(ctx context.Context, code, filename string, data []byte) (string, error)
}

type CampusService interface {
	CreateCampus(ctx context.Context, campus *domain.Campus) error
	GetCampus(ctx context.Context, code string) (*domain.Campus, error)
	ListCampuses(ctx context.Context, branchCode string) ([]domain.Campus, error)
	UpdateCampus(ctx context.Context, campus *domain.Campus) error
	DeleteCampus(ctx context.Context, code string) error
}

type LibraryService interface {
	CreateLibrary(ctx context.Context, library *domain.Library) error
	GetLibrary(ctx context.Context, code string) (*domain.Library, error)
	ListLibraries(ctx context.Context, campusCode string) ([]domain.Library, error)
	UpdateLibrary(ctx context.Context, library *domain.Library) error
	DeleteLibrary(ctx context.Context, code string) error
	SaveLibraryImage(ctx context.Context, code, filename string, data []byte) (string, error)
}

type SpaceService interface {
	CreateSpace(ctx context.Context, space *domain.LibrarySpace) error
	GetSpace(ctx context.Context, id int32) (*domain.LibrarySpace, error)
	ListSpaces(ctx context.Context, filter domain.SpaceFilter) ([]domain.LibrarySpace, error)
	UpdateSpace(ctx context.Context, space *domain.LibrarySpace) error
	DeleteSpace(ctx context.Context, id int32) error
	SaveSpaceImage(ctx context.Context, id int32, filename string, data []byte) (string, error)
}

type EmailService interface {
	SendBookingApprovedNotification(ctx context.Context, email, spaceName, date, start, end string) error
	SendBookingRejectedNotification(ctx context.Context, email, spaceName, date, start, end string) error
}
