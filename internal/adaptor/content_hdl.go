package adaptor

import (
	"encoding/json"
	"net/http"

	"tour-booking/internal/dto/request"
	"tour-booking/internal/usecase"
	"tour-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ContentHandler struct {
	service usecase.ContentService
	log     *zap.Logger
}

func NewContentHandler(service usecase.ContentService, log *zap.Logger) *ContentHandler {
	return &ContentHandler{
		service: service,
		log:     log.With(zap.String("handler", "content")),
	}
}

// GetActiveBanners handles GET /api/banners
func (h *ContentHandler) GetActiveBanners(w http.ResponseWriter, r *http.Request) {
	banners, err := h.service.GetActiveBanners(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get banners")
		return
	}

	utils.ResponseSuccess(w, "Banners retrieved successfully", banners)
}

// GetAllBanners handles GET /api/admin/banners (admin only)
func (h *ContentHandler) GetAllBanners(w http.ResponseWriter, r *http.Request) {
	banners, err := h.service.GetAllBanners(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get all banners")
		return
	}

	utils.ResponseSuccess(w, "Banners retrieved successfully", banners)
}

// CreateBanner handles POST /api/admin/banners (admin only)
func (h *ContentHandler) CreateBanner(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBannerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	banner, err := h.service.CreateBanner(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create banner")
		return
	}

	utils.ResponseCreated(w, "Banner created successfully", banner)
}

// UpdateBanner handles PUT /api/admin/banners/{id} (admin only)
func (h *ContentHandler) UpdateBanner(w http.ResponseWriter, r *http.Request) {
	bannerID := chi.URLParam(r, "id")
	if bannerID == "" {
		utils.ResponseBadRequest(w, "Banner ID is required", nil)
		return
	}

	var req request.UpdateBannerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	banner, err := h.service.UpdateBanner(r.Context(), bannerID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update banner")
		return
	}

	utils.ResponseSuccess(w, "Banner updated successfully", banner)
}

// DeleteBanner handles DELETE /api/admin/banners/{id} (admin only)
func (h *ContentHandler) DeleteBanner(w http.ResponseWriter, r *http.Request) {
	bannerID := chi.URLParam(r, "id")
	if bannerID == "" {
		utils.ResponseBadRequest(w, "Banner ID is required", nil)
		return
	}

	if err := h.service.DeleteBanner(r.Context(), bannerID); err != nil {
		handleServiceError(h.log, w, err, "delete banner")
		return
	}

	utils.ResponseSuccess(w, "Banner deleted successfully", nil)
}

// GetSettings handles GET /api/admin/settings (admin only)
func (h *ContentHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.GetSettings(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get settings")
		return
	}

	utils.ResponseSuccess(w, "Settings retrieved successfully", settings)
}

// UpsertSetting handles PUT /api/admin/settings (admin only)
func (h *ContentHandler) UpsertSetting(w http.ResponseWriter, r *http.Request) {
	var req request.UpsertSettingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	setting, err := h.service.UpsertSetting(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "upsert setting")
		return
	}

	utils.ResponseSuccess(w, "Setting saved successfully", setting)
}

// DeleteSetting handles DELETE /api/admin/settings/{key} (admin only)
func (h *ContentHandler) DeleteSetting(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if key == "" {
		utils.ResponseBadRequest(w, "Setting key is required", nil)
		return
	}

	if err := h.service.DeleteSetting(r.Context(), key); err != nil {
		handleServiceError(h.log, w, err, "delete setting")
		return
	}

	utils.ResponseSuccess(w, "Setting deleted successfully", nil)
}
