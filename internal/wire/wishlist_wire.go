package wire

import (
	"tour-booking/internal/adaptor"
	"tour-booking/internal/data/repository"
	"tour-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireWishlist(
	r chi.Router,
	wishlistHandler *adaptor.WishlistHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	auth := middleware.AuthSession(repo.Session, repo.User, log)

	r.With(auth).Get("/api/wishlist", wishlistHandler.GetWishlist)
	r.With(auth).Put("/api/wishlist/{tourId}", wishlistHandler.AddToWishlist)
	r.With(auth).Delete("/api/wishlist/{tourId}", wishlistHandler.RemoveFromWishlist)
}
