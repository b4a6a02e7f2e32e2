package wire

import (
	"tour-booking/internal/adaptor"
	"tour-booking/internal/data/repository"
	"tour-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	auth := middleware.AuthSession(repo.Session, repo.User, log)
	admin := middleware.Admin(repo.User, log)

	// ==================== PROTECTED ROUTES ====================
	r.With(auth).Post("/api/bookings", bookingHandler.CreateBooking)
	r.With(auth).Get("/api/bookings", bookingHandler.GetMyBookings)
	r.With(auth).Get("/api/bookings/{id}", bookingHandler.GetBookingByID)
	r.With(auth).Post("/api/bookings/{id}/cancel", bookingHandler.CancelBooking)
	r.With(auth).Get("/api/bookings/{id}/voucher", bookingHandler.GetVoucher)

	// ==================== ADMIN ROUTES ====================
	r.With(auth, admin).Post("/api/admin/bookings/{id}/confirm", bookingHandler.ConfirmBooking)
}
