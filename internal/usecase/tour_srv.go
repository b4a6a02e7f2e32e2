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

type TourService interface {
	ListTours(ctx context.Context, page request.PaginatedRequest, categorySlug string) (*response.PaginatedResponse[response.TourResponse], error)
	GetTourBySlug(ctx context.Context, slug string, viewerID *uuid.UUID) (*response.TourDetailResponse, error)
	ListCategories(ctx context.Context) ([]response.CategoryResponse, error)

	CreateTour(ctx context.Context, req *request.CreateTourRequest) (*response.TourResponse, error)
	UpdateTour(ctx context.Context, tourID string, req *request.UpdateTourRequest) (*response.TourResponse, error)
	DeleteTour(ctx context.Context, tourID string) error
	CreateCategory(ctx context.Context, req *request.CreateCategoryRequest) (*response.CategoryResponse, error)
	DeleteCategory(ctx context.Context, categoryID string) error
}

type tourService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewTourService(repo *repository.Repository, log *zap.Logger) TourService {
	return &tourService{
		repo: repo,
		log:  log.With(zap.String("service", "tour")),
	}
}

func (s *tourService) ListTours(ctx context.Context, page request.PaginatedRequest, categorySlug string) (*response.PaginatedResponse[response.TourResponse], error) {
	var categoryID *uuid.UUID
	categoryNames := map[uuid.UUID]string{}

	if categorySlug != "" {
		category, err := s.repo.Category.FindBySlug(ctx, categorySlug)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, fmt.Errorf("category not found")
		}
		categoryID = &category.ID
		categoryNames[category.ID] = category.Name
	}

	tours, err := s.repo.Tour.FindAll(ctx, page.Offset(), page.Limit(), categoryID)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Tour.CountAll(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	responses := make([]response.TourResponse, 0, len(tours))
	for _, tour := range tours {
		responses = append(responses, response.TourToResponse(tour, s.categoryName(ctx, categoryNames, tour.CategoryID)))
	}

	return response.NewPaginatedResponse(responses, page.Page, page.Limit(), total), nil
}

func (s *tourService) GetTourBySlug(ctx context.Context, slug string, viewerID *uuid.UUID) (*response.TourDetailResponse, error) {
	tour, err := s.repo.Tour.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if tour == nil {
		return nil, fmt.Errorf("tour not found")
	}

	// View counting is best effort and never blocks the detail page
	if err := s.repo.Tour.IncrementViewCount(ctx, tour.ID); err != nil {
		s.log.Warn("Failed to increment view count",
			zap.Error(err),
			zap.String("slug", slug),
		)
	} else {
		tour.ViewCount++
	}

	reviewCount, err := s.repo.Review.CountByTourID(ctx, tour.ID)
	if err != nil {
		return nil, err
	}

	wishlisted := false
	if viewerID != nil {
		wishlisted, err = s.repo.Wishlist.Exists(ctx, *viewerID, tour.ID)
		if err != nil {
			return nil, err
		}
	}

	detail := &response.TourDetailResponse{
		TourResponse: response.TourToResponse(tour, s.categoryName(ctx, map[uuid.UUID]string{}, tour.CategoryID)),
		ReviewCount:  int(reviewCount),
		Wishlisted:   wishlisted,
		UpdatedAt:    &tour.UpdatedAt,
	}

	return detail, nil
}

func (s *tourService) ListCategories(ctx context.Context) ([]response.CategoryResponse, error) {
	categories, err := s.repo.Category.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]response.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		responses = append(responses, response.CategoryToResponse(category))
	}

	return responses, nil
}

func (s *tourService) CreateTour(ctx context.Context, req *request.CreateTourRequest) (*response.TourResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create tour validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("invalid category ID format %s: %w", req.CategoryID, err)
	}

	category, err := s.repo.Category.FindByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("category not found")
	}

	existing, err := s.repo.Tour.FindBySlug(ctx, req.Slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("tour slug already exists")
	}

	now := time.Now()
	tour := &entity.Tour{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		CategoryID:   categoryID,
		Name:         req.Name,
		Slug:         req.Slug,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		Location:     req.Location,
		Price:        req.Price,
		SalePrice:    req.SalePrice,
		MaxPeople:    req.MaxPeople,
		DurationDays: req.DurationDays,
	}

	if err := s.repo.Tour.Create(ctx, tour); err != nil {
		return nil, err
	}

	s.log.Info("Tour created",
		zap.String("tour_id", tour.ID.String()),
		zap.String("slug", tour.Slug),
	)

	resp := response.TourToResponse(tour, category.Name)
	return &resp, nil
}

func (s *tourService) UpdateTour(ctx context.Context, tourID string, req *request.UpdateTourRequest) (*response.TourResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update tour validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(tourID)
	if err != nil {
		return nil, fmt.Errorf("invalid tour ID format %s: %w", tourID, err)
	}

	tour, err := s.repo.Tour.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tour == nil {
		return nil, fmt.Errorf("tour not found")
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("invalid category ID format %s: %w", req.CategoryID, err)
	}

	category, err := s.repo.Category.FindByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("category not found")
	}

	if req.Slug != tour.Slug {
		existing, err := s.repo.Tour.FindBySlug(ctx, req.Slug)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, fmt.Errorf("tour slug already exists")
		}
	}

	tour.CategoryID = categoryID
	tour.Name = req.Name
	tour.Slug = req.Slug
	tour.Description = req.Description
	tour.ImageURL = req.ImageURL
	tour.Location = req.Location
	tour.Price = req.Price
	tour.SalePrice = req.SalePrice
	tour.MaxPeople = req.MaxPeople
	tour.DurationDays = req.DurationDays
	tour.UpdatedAt = time.Now()

	if err := s.repo.Tour.Update(ctx, tour); err != nil {
		return nil, err
	}

	s.log.Info("Tour updated", zap.String("tour_id", tour.ID.String()))

	resp := response.TourToResponse(tour, category.Name)
	return &resp, nil
}

func (s *tourService) DeleteTour(ctx context.Context, tourID string) error {
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

	if err := s.repo.Tour.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info("Tour deleted", zap.String("tour_id", tourID))
	return nil
}

func (s *tourService) CreateCategory(ctx context.Context, req *request.CreateCategoryRequest) (*response.CategoryResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create category validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.Category.FindBySlug(ctx, req.Slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("category slug already exists")
	}

	now := time.Now()
	category := &entity.Category{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name: req.Name,
		Slug: req.Slug,
	}

	if err := s.repo.Category.Create(ctx, category); err != nil {
		return nil, err
	}

	s.log.Info("Category created", zap.String("slug", category.Slug))

	resp := response.CategoryToResponse(category)
	return &resp, nil
}

func (s *tourService) DeleteCategory(ctx context.Context, categoryID string) error {
	id, err := uuid.Parse(categoryID)
	if err != nil {
		return fmt.Errorf("invalid category ID format %s: %w", categoryID, err)
	}

	category, err := s.repo.Category.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return fmt.Errorf("category not found")
	}

	tours, err := s.repo.Tour.FindByCategory(ctx, id)
	if err != nil {
		return err
	}
	if len(tours) > 0 {
		return fmt.Errorf("cannot delete category with existing tours")
	}

	if err := s.repo.Category.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info("Category deleted", zap.String("category_id", categoryID))
	return nil
}

// categoryName resolves a category display name with a small per-call
// cache so paginated listings do not refetch the same row.
func (s *tourService) categoryName(ctx context.Context, cache map[uuid.UUID]string, id uuid.UUID) string {
	if name, ok := cache[id]; ok {
		return name
	}

	category, err := s.repo.Category.FindByID(ctx, id)
	if err != nil || category == nil {
		return ""
	}

	cache[id] = category.Name
	return category.Name
}
