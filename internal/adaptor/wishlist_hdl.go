package adaptor

import (
	"net/http"

	"tour-booking/internal/usecase"
	"tour-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type WishlistHandler struct {
	service usecase.WishlistService
	log     *zap.Logger
}

func NewWishlistHandler(service usecase.WishlistService, log *zap.Logger) *WishlistHandler {
	return &WishlistHandler{
		service: service,
		log:     log.With(zap.String("handler", "wishlist")),
	}
}

// GetWishlist handles GET /api/wishlist
func (h *WishlistHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Not authenticated")
		return
	}

	tours, err := h.service.GetWishlist(r.Context(), userID)
	if err != nil {
		handleServiceError(h.log, w, err, "get wishlist")
		return
	}

	utils.ResponseSuccess(w, "Wishlist retrieved successfully", tours)
}

// AddToWishlist handles PUT /api/wishlist/{tourId}
func (h *WishlistHandler) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Not authenticated")
		return
	}

	tourID := chi.URLParam(r, "tourId")
	if tourID == "" {
		utils.ResponseBadRequest(w, "Tour ID is required", nil)
		return
	}

	if err := h.service.AddToWishlist(r.Context(), userID, tourID); err != nil {
		handleServiceError(h.log, w, err, "add to wishlist")
		return
	}

	utils.ResponseSuccess(w, "Tour added to wishlist", nil)
}

// RemoveFromWishlist handles DELETE /api/wishlist/{tourId}
func (h *WishlistHandler) RemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Not authenticated")
		return
	}

	tourID := chi.URLParam(r, "tourId")
	if tourID == "" {
		utils.ResponseBadRequest(w, "Tour ID is required", nil)
		return
	}

	if err := h.service.RemoveFromWishlist(r.Context(), userID, tourID); err != nil {
		handleServiceError(h.log, w, err, "remove from wishlist")
		return
	}

	utils.ResponseSuccess(w, "Tour removed from wishlist", nil)
}
