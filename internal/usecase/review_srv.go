package usecase

import (
	"context"
	"fmt"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"
	"tour-booking/internal/dto/request"
	"tour-booking/internal/dto/response"
	"tour-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewService interface {
	CreateReview(ctx context.Context, userID uuid.UUID, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	GetTourReviews(ctx context.Context, slug string, page request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error)
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) CreateReview(ctx context.Context, userID uuid.UUID, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	tourID, err := uuid.Parse(req.TourID)
	if err != nil {
		return nil, fmt.Errorf("invalid tour ID format %s: %w", req.TourID, err)
	}

	tour, err := s.repo.Tour.FindByID(ctx, tourID)
	if err != nil {
		return nil, err
	}
	if tour == nil {
		return nil, fmt.Errorf("tour not found")
	}

	existing, err := s.repo.Review.FindByUserAndTour(ctx, userID, tourID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("review already exists for this tour")
	}

	review := &entity.Review{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:  userID,
		TourID:  tourID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		return nil, err
	}

	// The tour carries a denormalized average so listings can sort on
	// it without joining reviews.
	average, err := s.repo.Review.AverageRating(ctx, tourID)
	if err != nil {
		s.log.Error("Failed to recompute tour rating",
			zap.Error(err),
			zap.String("tour_id", tourID.String()),
		)
	} else if err := s.repo.Tour.UpdateRating(ctx, tourID, average); err != nil {
		s.log.Error("Failed to store tour rating",
			zap.Error(err),
			zap.String("tour_id", tourID.String()),
		)
	}

	s.log.Info("Review created",
		zap.String("user_id", userID.String()),
		zap.String("tour_id", tourID.String()),
		zap.Int("rating", req.Rating),
	)

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) GetTourReviews(ctx context.Context, slug string, page request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error) {
	tour, err := s.repo.Tour.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if tour == nil {
		return nil, fmt.Errorf("tour %s not found", slug)
	}

	reviews, err := s.repo.Review.FindByTourID(ctx, tour.ID, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Review.CountByTourID(ctx, tour.ID)
	if err != nil {
		return nil, err
	}

	responses := make([]response.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		responses = append(responses, response.ReviewToResponse(review))
	}

	return response.NewPaginatedResponse(responses, page.Page, page.Limit(), total), nil
}
