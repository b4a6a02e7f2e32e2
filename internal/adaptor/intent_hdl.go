package adaptor

import (
	"encoding/json"
	"net/http"

	"tour-booking/internal/dto/request"
	"tour-booking/internal/dto/response"
	"tour-booking/internal/usecase"
	"tour-booking/pkg/utils"

	"go.uber.org/zap"
)

// IntentHandler exposes the pre-login booking intent slot. The caller
// identifies its anonymous session via the X-Session-Key header.
type IntentHandler struct {
	service usecase.IntentService
	log     *zap.Logger
}

func NewIntentHandler(service usecase.IntentService, log *zap.Logger) *IntentHandler {
	return &IntentHandler{
		service: service,
		log:     log.With(zap.String("handler", "intent")),
	}
}

// SaveIntent handles POST /api/intents
func (h *IntentHandler) SaveIntent(w http.ResponseWriter, r *http.Request) {
	sessionKey := r.Header.Get(sessionKeyHeader)
	if sessionKey == "" {
		utils.ResponseBadRequest(w, "X-Session-Key header is required", nil)
		return
	}

	var req request.SaveIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.Save(r.Context(), sessionKey, &req); err != nil {
		handleServiceError(h.log, w, err, "save intent")
		return
	}

	utils.ResponseCreated(w, "Booking intent saved", nil)
}

// PeekIntent handles GET /api/intents
func (h *IntentHandler) PeekIntent(w http.ResponseWriter, r *http.Request) {
	sessionKey := r.Header.Get(sessionKeyHeader)
	if sessionKey == "" {
		utils.ResponseBadRequest(w, "X-Session-Key header is required", nil)
		return
	}

	intent, err := h.service.Peek(r.Context(), sessionKey)
	if err != nil {
		handleServiceError(h.log, w, err, "peek intent")
		return
	}

	// An empty slot responds 200 with null data, it is not an error
	utils.ResponseSuccess(w, "Booking intent retrieved", intent)
}

// ConsumeIntent handles POST /api/intents/consume
func (h *IntentHandler) ConsumeIntent(w http.ResponseWriter, r *http.Request) {
	sessionKey := r.Header.Get(sessionKeyHeader)
	if sessionKey == "" {
		utils.ResponseBadRequest(w, "X-Session-Key header is required", nil)
		return
	}

	intent, err := h.service.Consume(r.Context(), sessionKey)
	if err != nil {
		handleServiceError(h.log, w, err, "consume intent")
		return
	}

	if intent == nil {
		utils.ResponseSuccess(w, "No booking intent pending", nil)
		return
	}

	resp := response.IntentToResponse(intent)
	utils.ResponseSuccess(w, "Booking intent consumed", resp)
}

// ClearIntent handles DELETE /api/intents
func (h *IntentHandler) ClearIntent(w http.ResponseWriter, r *http.Request) {
	sessionKey := r.Header.Get(sessionKeyHeader)
	if sessionKey == "" {
		utils.ResponseBadRequest(w, "X-Session-Key header is required", nil)
		return
	}

	if err := h.service.Clear(r.Context(), sessionKey); err != nil {
		handleServiceError(h.log, w, err, "clear intent")
		return
	}

	utils.ResponseSuccess(w, "Booking intent cleared", nil)
}
