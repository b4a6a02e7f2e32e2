package wire

import (
	"tour-booking/internal/adaptor"
	"tour-booking/internal/data/repository"
	"tour-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Listing reviews is wired with the tour routes, only creation
	// needs a session.
	auth := middleware.AuthSession(repo.Session, repo.User, log)
	r.With(auth).Post("/api/reviews", reviewHandler.CreateReview)
}
