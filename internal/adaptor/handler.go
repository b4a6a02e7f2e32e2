package adaptor

import (
	"net/http"
	"strings"

	"tour-booking/internal/usecase"
	"tour-booking/pkg/utils"

	"go.uber.org/zap"
)

// sessionKeyHeader carries the anonymous browser session identifier
// used to park and pick up booking intents around the login redirect.
const sessionKeyHeader = "X-Session-Key"

type Handler struct {
	Auth     *AuthHandler
	Tour     *TourHandler
	Schedule *ScheduleHandler
	Booking  *BookingHandler
	Intent   *IntentHandler
	Review   *ReviewHandler
	Wishlist *WishlistHandler
	Content  *ContentHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		Tour:     NewTourHandler(service.Tour, service.Recommendation, log),
		Schedule: NewScheduleHandler(service.Schedule, log),
		Booking:  NewBookingHandler(service.Booking, log),
		Intent:   NewIntentHandler(service.Intent, log),
		Review:   NewReviewHandler(service.Review, log),
		Wishlist: NewWishlistHandler(service.Wishlist, log),
		Content:  NewContentHandler(service.Content, log),
	}
}

// handleServiceError maps service error strings onto HTTP responses.
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "forbidden"):
		log.Warn(operation+" failed - forbidden",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseForbidden(w, errMsg)

	case strings.Contains(errMsg, "invalid email or password"),
		strings.Contains(errMsg, "deactivated"):
		log.Warn(operation+" failed - unauthorized",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseUnauthorized(w, errMsg)

	case strings.Contains(errMsg, "already"),
		strings.Contains(errMsg, "not enough available seats"):
		log.Warn(operation+" failed - conflict",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"),
		strings.Contains(errMsg, "cannot"),
		strings.Contains(errMsg, "required"):
		log.Warn(operation+" failed - bad request",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
