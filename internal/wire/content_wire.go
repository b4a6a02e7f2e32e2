package wire

import (
	"tour-booking/internal/adaptor"
	"tour-booking/internal/data/repository"
	"tour-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireContent(
	r chi.Router,
	contentHandler *adaptor.ContentHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/banners", contentHandler.GetActiveBanners)

	// ==================== ADMIN ROUTES ====================
	auth := middleware.AuthSession(repo.Session, repo.User, log)
	admin := middleware.Admin(repo.User, log)

	r.With(auth, admin).Get("/api/admin/banners", contentHandler.GetAllBanners)
	r.With(auth, admin).Post("/api/admin/banners", contentHandler.CreateBanner)
	r.With(auth, admin).Put("/api/admin/banners/{id}", contentHandler.UpdateBanner)
	r.With(auth, admin).Delete("/api/admin/banners/{id}", contentHandler.DeleteBanner)

	r.With(auth, admin).Get("/api/admin/settings", contentHandler.GetSettings)
	r.With(auth, admin).Put("/api/admin/settings", contentHandler.UpsertSetting)
	r.With(auth, admin).Delete("/api/admin/settings/{key}", contentHandler.DeleteSetting)
}
