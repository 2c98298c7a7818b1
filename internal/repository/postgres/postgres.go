package postgres

import (
	"database/sql"

	"spacebook-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.BranchRepository
	repository.CampusRepository
	repository.LibraryRepository
	repository.SpaceRepository
	repository.BookingRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                db,
		UserRepository:    NewUserRepository(db),
		BranchRepository:  NewBranchRepository(db),
		CampusRepository:  NewCampusRepository(db),
		LibraryRepository: NewLibraryRepository(db),
		SpaceRepository:   NewSpaceRepository(db),
		BookingRepository: NewBookingRepository(db),
	}
}
