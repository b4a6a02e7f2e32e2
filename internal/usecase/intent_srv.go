package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/dto/request"
	"tour-booking/internal/dto/response"
	"tour-booking/pkg/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const intentKeyPrefix = "booking_intent:"

// IntentService bridges a booking flow interrupted by the login
// redirect. The selection is parked under the browser's session key
// with a TTL and picked up again after authentication. A missing slot
// is not an error: the user just re-selects.
type IntentService interface {
	Save(ctx context.Context, sessionKey string, req *request.SaveIntentRequest) error

	// Peek returns the stored intent without removing it, or nil.
	Peek(ctx context.Context, sessionKey string) (*response.IntentResponse, error)

	// Consume removes and returns the stored intent, or nil when the
	// slot is empty, expired, or holds an incompatible schema version.
	Consume(ctx context.Context, sessionKey string) (*entity.BookingIntent, error)

	Clear(ctx context.Context, sessionKey string) error
}

type intentService struct {
	rdb *redis.Client
	ttl time.Duration
	log *zap.Logger
}

func NewIntentService(rdb *redis.Client, config *utils.Config, log *zap.Logger) IntentService {
	return &intentService{
		rdb: rdb,
		ttl: time.Duration(config.Booking.IntentTTLMinutes) * time.Minute,
		log: log.With(zap.String("service", "intent")),
	}
}

func (s *intentService) Save(ctx context.Context, sessionKey string, req *request.SaveIntentRequest) error {
	if sessionKey == "" {
		return fmt.Errorf("session key is required")
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Save intent validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	tourID, err := uuid.Parse(req.TourID)
	if err != nil {
		return fmt.Errorf("invalid tour ID format %s: %w", req.TourID, err)
	}

	intent := &entity.BookingIntent{
		Version:         entity.IntentSchemaVersion,
		TourID:          tourID,
		TourSlug:        req.TourSlug,
		StartDate:       req.StartDate,
		NumAdults:       req.NumAdults,
		NumChildren:     req.NumChildren,
		SpecialRequests: req.SpecialRequests,
		CreatedAt:       time.Now(),
	}

	payload, err := encodeIntent(intent)
	if err != nil {
		return fmt.Errorf("encode intent: %w", err)
	}

	// A new attempt overwrites whatever was parked before
	if err := s.rdb.Set(ctx, intentKeyPrefix+sessionKey, payload, s.ttl).Err(); err != nil {
		s.log.Error("Failed to store booking intent",
			zap.Error(err),
			zap.String("session_key", sessionKey),
		)
		return fmt.Errorf("store intent: %w", err)
	}

	s.log.Info("Booking intent stored",
		zap.String("session_key", sessionKey),
		zap.String("tour_slug", req.TourSlug),
	)

	return nil
}

func (s *intentService) Peek(ctx context.Context, sessionKey string) (*response.IntentResponse, error) {
	intent, err := s.load(ctx, sessionKey)
	if err != nil || intent == nil {
		return nil, err
	}

	resp := response.IntentToResponse(intent)
	return &resp, nil
}

func (s *intentService) Consume(ctx context.Context, sessionKey string) (*entity.BookingIntent, error) {
	intent, err := s.load(ctx, sessionKey)
	if err != nil || intent == nil {
		return nil, err
	}

	if err := s.rdb.Del(ctx, intentKeyPrefix+sessionKey).Err(); err != nil {
		s.log.Error("Failed to delete consumed intent",
			zap.Error(err),
			zap.String("session_key", sessionKey),
		)
		return nil, fmt.Errorf("delete intent: %w", err)
	}

	s.log.Info("Booking intent consumed",
		zap.String("session_key", sessionKey),
		zap.String("tour_slug", intent.TourSlug),
	)

	return intent, nil
}

func (s *intentService) Clear(ctx context.Context, sessionKey string) error {
	if sessionKey == "" {
		return nil
	}

	if err := s.rdb.Del(ctx, intentKeyPrefix+sessionKey).Err(); err != nil {
		s.log.Error("Failed to clear booking intent",
			zap.Error(err),
			zap.String("session_key", sessionKey),
		)
		return fmt.Errorf("clear intent: %w", err)
	}

	return nil
}

func (s *intentService) load(ctx context.Context, sessionKey string) (*entity.BookingIntent, error) {
	if sessionKey == "" {
		return nil, nil
	}

	payload, err := s.rdb.Get(ctx, intentKeyPrefix+sessionKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		s.log.Error("Failed to read booking intent",
			zap.Error(err),
			zap.String("session_key", sessionKey),
		)
		return nil, fmt.Errorf("read intent: %w", err)
	}

	intent, err := decodeIntent([]byte(payload))
	if err != nil {
		// Unreadable or incompatible records are discarded, never trusted
		s.log.Warn("Discarding stale booking intent",
			zap.Error(err),
			zap.String("session_key", sessionKey),
		)
		s.rdb.Del(ctx, intentKeyPrefix+sessionKey)
		return nil, nil
	}

	return intent, nil
}

// ==================== CODEC ====================

func encodeIntent(intent *entity.BookingIntent) ([]byte, error) {
	return json.Marshal(intent)
}

func decodeIntent(payload []byte) (*entity.BookingIntent, error) {
	var intent entity.BookingIntent
	if err := json.Unmarshal(payload, &intent); err != nil {
		return nil, fmt.Errorf("unmarshal intent: %w", err)
	}

	if intent.Version != entity.IntentSchemaVersion {
		return nil, fmt.Errorf("unsupported intent schema version %d", intent.Version)
	}

	return &intent, nil
}
