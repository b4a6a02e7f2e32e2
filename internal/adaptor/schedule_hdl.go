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

type ScheduleHandler struct {
	service usecase.ScheduleService
	log     *zap.Logger
}

func NewScheduleHandler(service usecase.ScheduleService, log *zap.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		service: service,
		log:     log.With(zap.String("handler", "schedule")),
	}
}

// GetUpcomingSchedules handles GET /api/tours/{slug}/schedules
func (h *ScheduleHandler) GetUpcomingSchedules(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		utils.ResponseBadRequest(w, "Tour slug is required", nil)
		return
	}

	schedules, err := h.service.UpcomingSchedules(r.Context(), slug)
	if err != nil {
		handleServiceError(h.log, w, err, "get schedules")
		return
	}

	utils.ResponseSuccess(w, "Schedules retrieved successfully", schedules)
}

// GetQuote handles POST /api/tours/{slug}/quote
func (h *ScheduleHandler) GetQuote(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		utils.ResponseBadRequest(w, "Tour slug is required", nil)
		return
	}

	var req request.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	quote, err := h.service.Quote(r.Context(), slug, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "get quote")
		return
	}

	utils.ResponseSuccess(w, "Quote computed successfully", quote)
}

// CreateSchedule handles POST /api/admin/schedules (admin only)
func (h *ScheduleHandler) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	var req request.CreateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	schedule, err := h.service.CreateSchedule(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create schedule")
		return
	}

	utils.ResponseCreated(w, "Schedule created successfully", schedule)
}

// UpdateScheduleStatus handles PATCH /api/admin/schedules/{id}/status (admin only)
func (h *ScheduleHandler) UpdateScheduleStatus(w http.ResponseWriter, r *http.Request) {
	scheduleID := chi.URLParam(r, "id")
	if scheduleID == "" {
		utils.ResponseBadRequest(w, "Schedule ID is required", nil)
		return
	}

	var req request.UpdateScheduleStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.UpdateScheduleStatus(r.Context(), scheduleID, &req); err != nil {
		handleServiceError(h.log, w, err, "update schedule status")
		return
	}

	utils.ResponseSuccess(w, "Schedule status updated successfully", nil)
}

// DeleteSchedule handles DELETE /api/admin/schedules/{id} (admin only)
func (h *ScheduleHandler) DeleteSchedule(w http.ResponseWriter, r *http.Request) {
	scheduleID := chi.URLParam(r, "id")
	if scheduleID == "" {
		utils.ResponseBadRequest(w, "Schedule ID is required", nil)
		return
	}

	if err := h.service.DeleteSchedule(r.Context(), scheduleID); err != nil {
		handleServiceError(h.log, w, err, "delete schedule")
		return
	}

	utils.ResponseSuccess(w, "Schedule deleted successfully", nil)
}
