package usecase

import (
	"tour-booking/internal/data/repository"
	"tour-booking/pkg/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Service bundles every use case for wiring.
type Service struct {
	Auth           AuthService
	Tour           TourService
	Schedule       ScheduleService
	Recommendation RecommendationService
	Intent         IntentService
	Booking        BookingService
	Review         ReviewService
	Wishlist       WishlistService
	Content        ContentService
}

func NewService(repo *repository.Repository, rdb *redis.Client, config *utils.Config, log *zap.Logger) *Service {
	intents := NewIntentService(rdb, config, log)

	return &Service{
		Auth:           NewAuthService(repo, intents, config, log),
		Tour:           NewTourService(repo, log),
		Schedule:       NewScheduleService(repo, log),
		Recommendation: NewRecommendationService(repo, log),
		Intent:         intents,
		Booking:        NewBookingService(repo, log),
		Review:         NewReviewService(repo, log),
		Wishlist:       NewWishlistService(repo, log),
		Content:        NewContentService(repo, log),
	}
}
