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

// ContentService manages the homepage banners and the key-value site
// settings edited from the admin panel.
type ContentService interface {
	GetActiveBanners(ctx context.Context) ([]response.BannerResponse, error)
	GetAllBanners(ctx context.Context) ([]response.BannerResponse, error)
	CreateBanner(ctx context.Context, req *request.CreateBannerRequest) (*response.BannerResponse, error)
	UpdateBanner(ctx context.Context, bannerID string, req *request.UpdateBannerRequest) (*response.BannerResponse, error)
	DeleteBanner(ctx context.Context, bannerID string) error

	GetSettings(ctx context.Context) ([]response.SettingResponse, error)
	UpsertSetting(ctx context.Context, req *request.UpsertSettingRequest) (*response.SettingResponse, error)
	DeleteSetting(ctx context.Context, key string) error
}

type contentService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewContentService(repo *repository.Repository, log *zap.Logger) ContentService {
	return &contentService{
		repo: repo,
		log:  log.With(zap.String("service", "content")),
	}
}

func (s *contentService) GetActiveBanners(ctx context.Context) ([]response.BannerResponse, error) {
	banners, err := s.repo.Banner.FindActive(ctx)
	if err != nil {
		return nil, err
	}

	return bannersToResponse(banners), nil
}

func (s *contentService) GetAllBanners(ctx context.Context) ([]response.BannerResponse, error) {
	banners, err := s.repo.Banner.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return bannersToResponse(banners), nil
}

func (s *contentService) CreateBanner(ctx context.Context, req *request.CreateBannerRequest) (*response.BannerResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create banner validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	banner := &entity.Banner{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:    req.Title,
		ImageURL: req.ImageURL,
		LinkURL:  req.LinkURL,
		Position: req.Position,
		IsActive: req.IsActive,
	}

	if err := s.repo.Banner.Create(ctx, banner); err != nil {
		return nil, err
	}

	s.log.Info("Banner created", zap.String("banner_id", banner.ID.String()))

	resp := response.BannerToResponse(banner)
	return &resp, nil
}

func (s *contentService) UpdateBanner(ctx context.Context, bannerID string, req *request.UpdateBannerRequest) (*response.BannerResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update banner validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(bannerID)
	if err != nil {
		return nil, fmt.Errorf("invalid banner ID format %s: %w", bannerID, err)
	}

	banner, err := s.repo.Banner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if banner == nil {
		return nil, fmt.Errorf("banner not found")
	}

	banner.Title = req.Title
	banner.ImageURL = req.ImageURL
	banner.LinkURL = req.LinkURL
	banner.Position = req.Position
	banner.IsActive = req.IsActive
	banner.UpdatedAt = time.Now()

	if err := s.repo.Banner.Update(ctx, banner); err != nil {
		return nil, err
	}

	resp := response.BannerToResponse(banner)
	return &resp, nil
}

func (s *contentService) DeleteBanner(ctx context.Context, bannerID string) error {
	id, err := uuid.Parse(bannerID)
	if err != nil {
		return fmt.Errorf("invalid banner ID format %s: %w", bannerID, err)
	}

	banner, err := s.repo.Banner.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if banner == nil {
		return fmt.Errorf("banner not found")
	}

	return s.repo.Banner.Delete(ctx, id)
}

func (s *contentService) GetSettings(ctx context.Context) ([]response.SettingResponse, error) {
	settings, err := s.repo.Setting.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]response.SettingResponse, 0, len(settings))
	for _, setting := range settings {
		responses = append(responses, response.SettingToResponse(setting))
	}

	return responses, nil
}

func (s *contentService) UpsertSetting(ctx context.Context, req *request.UpsertSettingRequest) (*response.SettingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Upsert setting validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	setting := &entity.Setting{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Key:   req.Key,
		Value: req.Value,
	}

	if err := s.repo.Setting.Upsert(ctx, setting); err != nil {
		return nil, err
	}

	s.log.Info("Setting upserted", zap.String("key", setting.Key))

	resp := response.SettingToResponse(setting)
	return &resp, nil
}

func (s *contentService) DeleteSetting(ctx context.Context, key string) error {
	if key == "" {
		return fmt.Errorf("setting key is required")
	}

	setting, err := s.repo.Setting.FindByKey(ctx, key)
	if err != nil {
		return err
	}
	if setting == nil {
		return fmt.Errorf("setting not found")
	}

	return s.repo.Setting.Delete(ctx, key)
}

func bannersToResponse(banners []*entity.Banner) []response.BannerResponse {
	responses := make([]response.BannerResponse, 0, len(banners))
	for _, banner := range banners {
		responses = append(responses, response.BannerToResponse(banner))
	}
	return responses
}
