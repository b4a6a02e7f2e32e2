package repository

import (
	"tour-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User     UserRepository
	Session  SessionRepository
	Category CategoryRepository
	Tour     TourRepository
	Schedule ScheduleRepository
	Booking  BookingRepository
	Review   ReviewRepository
	Wishlist WishlistRepository
	Banner   BannerRepository
	Setting  SettingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Session:  NewSessionRepository(db, log),
		Category: NewCategoryRepository(db, log),
		Tour:     NewTourRepository(db, log),
		Schedule: NewScheduleRepository(db, log),
		Booking:  NewBookingRepository(db, log),
		Review:   NewReviewRepository(db, log),
		Wishlist: NewWishlistRepository(db, log),
		Banner:   NewBannerRepository(db, log),
		Setting:  NewSettingRepository(db, log),
	}
}
