package adaptor

import (
	"encoding/json"
	"net/http"

	"tour-booking/internal/dto/request"
	"tour-booking/internal/usecase"
	"tour-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TourHandler struct {
	service        usecase.TourService
	recommendation usecase.RecommendationService
	log            *zap.Logger
}

func NewTourHandler(service usecase.TourService, recommendation usecase.RecommendationService, log *zap.Logger) *TourHandler {
	return &TourHandler{
		service:        service,
		recommendation: recommendation,
		log:            log.With(zap.String("handler", "tour")),
	}
}

// GetTours handles GET /api/tours
func (h *TourHandler) GetTours(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	tours, err := h.service.ListTours(r.Context(), page, query.Get("category"))
	if err != nil {
		handleServiceError(h.log, w, err, "get tours")
		return
	}

	utils.ResponseSuccess(w, "Tours retrieved successfully", tours)
}

// GetTourBySlug handles GET /api/tours/{slug}
func (h *TourHandler) GetTourBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		utils.ResponseBadRequest(w, "Tour slug is required", nil)
		return
	}

	// A logged-in viewer gets a personalized wishlisted flag
	var viewerID *uuid.UUID
	if userID, ok := utils.GetUserIDFromContext(r.Context()); ok {
		viewerID = &userID
	}

	tour, err := h.service.GetTourBySlug(r.Context(), slug, viewerID)
	if err != nil {
		handleServiceError(h.log, w, err, "get tour by slug")
		return
	}

	utils.ResponseSuccess(w, "Tour retrieved successfully", tour)
}

// GetRelatedTours handles GET /api/tours/{slug}/related
func (h *TourHandler) GetRelatedTours(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		utils.ResponseBadRequest(w, "Tour slug is required", nil)
		return
	}

	related, err := h.recommendation.RelatedTours(r.Context(), slug)
	if err != nil {
		handleServiceError(h.log, w, err, "get related tours")
		return
	}

	utils.ResponseSuccess(w, "Related tours retrieved successfully", related)
}

// GetCategories handles GET /api/categories
func (h *TourHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get categories")
		return
	}

	utils.ResponseSuccess(w, "Categories retrieved successfully", categories)
}

// CreateTour handles POST /api/admin/tours (admin only)
func (h *TourHandler) CreateTour(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTourRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	tour, err := h.service.CreateTour(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create tour")
		return
	}

	utils.ResponseCreated(w, "Tour created successfully", tour)
}

// UpdateTour handles PUT /api/admin/tours/{id} (admin only)
func (h *TourHandler) UpdateTour(w http.ResponseWriter, r *http.Request) {
	tourID := chi.URLParam(r, "id")
	if tourID == "" {
		utils.ResponseBadRequest(w, "Tour ID is required", nil)
		return
	}

	var req request.UpdateTourRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	tour, err := h.service.UpdateTour(r.Context(), tourID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update tour")
		return
	}

	utils.ResponseSuccess(w, "Tour updated successfully", tour)
}

// DeleteTour handles DELETE /api/admin/tours/{id} (admin only)
func (h *TourHandler) DeleteTour(w http.ResponseWriter, r *http.Request) {
	tourID := chi.URLParam(r, "id")
	if tourID == "" {
		utils.ResponseBadRequest(w, "Tour ID is required", nil)
		return
	}

	if err := h.service.DeleteTour(r.Context(), tourID); err != nil {
		handleServiceError(h.log, w, err, "delete tour")
		return
	}

	utils.ResponseSuccess(w, "Tour deleted successfully", nil)
}

// CreateCategory handles POST /api/admin/categories (admin only)
func (h *TourHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req request.CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	category, err := h.service.CreateCategory(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create category")
		return
	}

	utils.ResponseCreated(w, "Category created successfully", category)
}

// DeleteCategory handles DELETE /api/admin/categories/{id} (admin only)
func (h *TourHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "id")
	if categoryID == "" {
		utils.ResponseBadRequest(w, "Category ID is required", nil)
		return
	}

	if err := h.service.DeleteCategory(r.Context(), categoryID); err != nil {
		handleServiceError(h.log, w, err, "delete category")
		return
	}

	utils.ResponseSuccess(w, "Category deleted successfully", nil)
}
