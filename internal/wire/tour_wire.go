package wire

import (
	"tour-booking/internal/adaptor"
	"tour-booking/internal/data/repository"
	"tour-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireTour(
	r chi.Router,
	tourHandler *adaptor.TourHandler,
	scheduleHandler *adaptor.ScheduleHandler,
	reviewHandler *adaptor.ReviewHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	optionalAuth := middleware.OptionalAuth(repo.Session, repo.User, log)

	r.Get("/api/tours", tourHandler.GetTours)
	r.With(optionalAuth).Get("/api/tours/{slug}", tourHandler.GetTourBySlug)
	r.Get("/api/tours/{slug}/related", tourHandler.GetRelatedTours)
	r.Get("/api/tours/{slug}/schedules", scheduleHandler.GetUpcomingSchedules)
	r.Post("/api/tours/{slug}/quote", scheduleHandler.GetQuote)
	r.Get("/api/tours/{slug}/reviews", reviewHandler.GetTourReviews)
	r.Get("/api/categories", tourHandler.GetCategories)

	// ==================== ADMIN ROUTES ====================
	auth := middleware.AuthSession(repo.Session, repo.User, log)
	admin := middleware.Admin(repo.User, log)

	r.With(auth, admin).Post("/api/admin/tours", tourHandler.CreateTour)
	r.With(auth, admin).Put("/api/admin/tours/{id}", tourHandler.UpdateTour)
	r.With(auth, admin).Delete("/api/admin/tours/{id}", tourHandler.DeleteTour)

	r.With(auth, admin).Post("/api/admin/categories", tourHandler.CreateCategory)
	r.With(auth, admin).Delete("/api/admin/categories/{id}", tourHandler.DeleteCategory)

	r.With(auth, admin).Post("/api/admin/schedules", scheduleHandler.CreateSchedule)
	r.With(auth, admin).Patch("/api/admin/schedules/{id}/status", scheduleHandler.UpdateScheduleStatus)
	r.With(auth, admin).Delete("/api/admin/schedules/{id}", scheduleHandler.DeleteSchedule)
}
