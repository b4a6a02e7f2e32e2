package usecase

import (
	"context"
	"fmt"
	"sort"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"
	"tour-booking/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	relatedLimit = 3

	// Price bands widen tier by tier so a thin catalog still fills the
	// related section: close matches first, then looser ones, then
	// anything left in the category.
	tierOneBand = 0.30
	tierTwoBand = 0.50
)

type RecommendationService interface {
	// RelatedTours returns up to 3 tours from the same category as the
	// source, closest in price first. An empty list is a valid result.
	RelatedTours(ctx context.Context, slug string) ([]response.TourResponse, error)
}

type recommendationService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRecommendationService(repo *repository.Repository, log *zap.Logger) RecommendationService {
	return &recommendationService{
		repo: repo,
		log:  log.With(zap.String("service", "recommendation")),
	}
}

func (s *recommendationService) RelatedTours(ctx context.Context, slug string) ([]response.TourResponse, error) {
	source, err := s.repo.Tour.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if source == nil {
		return nil, fmt.Errorf("tour %s not found", slug)
	}

	// The related section is decorative: a failed candidate fetch is
	// logged and rendered as an empty list, never as a page error.
	pool, err := s.repo.Tour.FindByCategory(ctx, source.CategoryID)
	if err != nil {
		s.log.Warn("Related tours candidate fetch failed, returning empty set",
			zap.Error(err),
			zap.String("slug", slug),
			zap.String("category_id", source.CategoryID.String()),
		)
		return []response.TourResponse{}, nil
	}

	selected := SelectRelated(source, pool)

	responses := make([]response.TourResponse, len(selected))
	for i, tour := range selected {
		responses[i] = response.TourToResponse(tour, "")
	}

	s.log.Debug("Related tours selected",
		zap.String("slug", slug),
		zap.Int("pool_size", len(pool)),
		zap.Int("selected", len(selected)),
	)

	return responses, nil
}

// SelectRelated picks up to 3 tours related to source from the same
// category, in three widening price tiers:
//
//  1. effective price within ±30% of the source's
//  2. within ±50%, filling whatever tier 1 left open
//  3. any remaining candidate, ignoring price
//
// Within every tier candidates are ordered by rating descending, ties
// broken by view count descending. The source itself and anything
// already picked are skipped, so the result holds no duplicates.
func SelectRelated(source *entity.Tour, pool []*entity.Tour) []*entity.Tour {
	candidates := make([]*entity.Tour, 0, len(pool))
	for _, tour := range pool {
		if tour.ID != source.ID {
			candidates = append(candidates, tour)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Rating != candidates[j].Rating {
			return candidates[i].Rating > candidates[j].Rating
		}
		return candidates[i].ViewCount > candidates[j].ViewCount
	})

	base := source.EffectivePrice()
	selected := make([]*entity.Tour, 0, relatedLimit)
	picked := make(map[uuid.UUID]bool, relatedLimit)

	// -1 marks the unbounded tier
	for _, band := range []float64{tierOneBand, tierTwoBand, -1} {
		if len(selected) >= relatedLimit {
			break
		}
		for _, tour := range candidates {
			if len(selected) >= relatedLimit {
				break
			}
			if picked[tour.ID] {
				continue
			}
			if band >= 0 {
				price := tour.EffectivePrice()
				if price < (1-band)*base || price > (1+band)*base {
					continue
				}
			}
			picked[tour.ID] = true
			selected = append(selected, tour)
		}
	}

	return selected
}
