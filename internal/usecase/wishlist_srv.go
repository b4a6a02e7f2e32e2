package usecase

import (
	"context"
	"fmt"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"
	"tour-booking/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type WishlistService interface {
	AddToWishlist(ctx context.Context, userID uuid.UUID, tourID string) error
	RemoveFromWishlist(ctx context.Context, userID uuid.UUID, tourID string) error
	GetWishlist(ctx context.Context, userID uuid.UUID) ([]response.TourResponse, error)
}

type wishlistService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewWishlistService(repo *repository.Repository, log *zap.Logger) WishlistService {
	return &wishlistService{
		repo: repo,
		log:  log.With(zap.String("service", "wishlist")),
	}
}

func (s *wishlistService) AddToWishlist(ctx context.Context, userID uuid.UUID, tourID string) error {
	id, err := uuid.Parse(tourID)
	if err != nil {
		return fmt.Errorf("invalid tour ID format %s: %w", tourID, err)
	}

	tour, err := s.repo.Tour.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if tour == nil {
		return fmt.Errorf("tour not found")
	}

	wishlist := &entity.Wishlist{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID: userID,
		TourID: id,
	}

	// Adding twice is a no-op, the insert conflicts on (user, tour)
	if err := s.repo.Wishlist.Add(ctx, wishlist); err != nil {
		return err
	}

	s.log.Info("Tour added to wishlist",
		zap.String("user_id", userID.String()),
		zap.String("tour_id", tourID),
	)

	return nil
}

func (s *wishlistService) RemoveFromWishlist(ctx context.Context, userID uuid.UUID, tourID string) error {
	id, err := uuid.Parse(tourID)
	if err != nil {
		return fmt.Errorf("invalid tour ID format %s: %w", tourID, err)
	}

	return s.repo.Wishlist.Remove(ctx, userID, id)
}

func (s *wishlistService) GetWishlist(ctx context.Context, userID uuid.UUID) ([]response.TourResponse, error) {
	tourIDs, err := s.repo.Wishlist.FindTourIDsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]response.TourResponse, 0, len(tourIDs))
	for _, tourID := range tourIDs {
		tour, err := s.repo.Tour.FindByID(ctx, tourID)
		if err != nil {
			return nil, err
		}
		if tour == nil {
			// Soft-deleted tours stay in the join table, skip them
			continue
		}
		responses = append(responses, response.TourToResponse(tour, ""))
	}

	return responses, nil
}
