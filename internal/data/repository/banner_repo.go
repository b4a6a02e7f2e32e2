package repository

import (
	"context"
	"fmt"

	"tour-booking/internal/data/entity"
	"tour-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BannerRepository interface {
	Create(ctx context.Context, banner *entity.Banner) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Banner, error)
	FindActive(ctx context.Context) ([]*entity.Banner, error)
	FindAll(ctx context.Context) ([]*entity.Banner, error)
	Update(ctx context.Context, banner *entity.Banner) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type bannerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBannerRepository(db database.PgxIface, log *zap.Logger) BannerRepository {
	return &bannerRepository{
		db:  db,
		log: log.With(zap.String("repository", "banner")),
	}
}

const bannerColumns = `id, title, image_url, link_url, position, is_active, created_at, updated_at`

func (r *bannerRepository) Create(ctx context.Context, banner *entity.Banner) error {
	query := `
		INSERT INTO banners (id, title, image_url, link_url, position,
		                     is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		banner.ID,
		banner.Title,
		banner.ImageURL,
		banner.LinkURL,
		banner.Position,
		banner.IsActive,
		banner.CreatedAt,
		banner.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create banner",
			zap.Error(err),
			zap.String("title", banner.Title),
		)
		return fmt.Errorf("failed to create banner: %w", err)
	}

	return nil
}

func (r *bannerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Banner, error) {
	query := `SELECT ` + bannerColumns + ` FROM banners WHERE id = $1 AND deleted_at IS NULL`

	var banner entity.Banner
	err := r.db.QueryRow(ctx, query, id).Scan(
		&banner.ID,
		&banner.Title,
		&banner.ImageURL,
		&banner.LinkURL,
		&banner.Position,
		&banner.IsActive,
		&banner.CreatedAt,
		&banner.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find banner by ID",
			zap.Error(err),
			zap.String("banner_id", id.String()),
		)
		return nil, fmt.Errorf("failed to find banner: %w", err)
	}

	return &banner, nil
}

func (r *bannerRepository) FindActive(ctx context.Context) ([]*entity.Banner, error) {
	query := `
		SELECT ` + bannerColumns + `
		FROM banners
		WHERE is_active = TRUE AND deleted_at IS NULL
		ORDER BY position ASC
	`
	return r.queryBanners(ctx, query)
}

func (r *bannerRepository) FindAll(ctx context.Context) ([]*entity.Banner, error) {
	query := `
		SELECT ` + bannerColumns + `
		FROM banners
		WHERE deleted_at IS NULL
		ORDER BY position ASC
	`
	return r.queryBanners(ctx, query)
}

func (r *bannerRepository) queryBanners(ctx context.Context, query string) ([]*entity.Banner, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find banners", zap.Error(err))
		return nil, fmt.Errorf("failed to find banners: %w", err)
	}
	defer rows.Close()

	var banners []*entity.Banner
	for rows.Next() {
		var banner entity.Banner
		err := rows.Scan(
			&banner.ID,
			&banner.Title,
			&banner.ImageURL,
			&banner.LinkURL,
			&banner.Position,
			&banner.IsActive,
			&banner.CreatedAt,
			&banner.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan banner row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan banner: %w", err)
		}
		banners = append(banners, &banner)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return banners, nil
}

func (r *bannerRepository) Update(ctx context.Context, banner *entity.Banner) error {
	query := `
		UPDATE banners
		SET title = $2, image_url = $3, link_url = $4, position = $5,
		    is_active = $6, updated_at = $7
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		banner.ID,
		banner.Title,
		banner.ImageURL,
		banner.LinkURL,
		banner.Position,
		banner.IsActive,
		banner.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update banner",
			zap.Error(err),
			zap.String("banner_id", banner.ID.String()),
		)
		return fmt.Errorf("failed to update banner: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("banner not found or already deleted")
	}

	return nil
}

func (r *bannerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE banners SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete banner",
			zap.Error(err),
			zap.String("banner_id", id.String()),
		)
		return fmt.Errorf("failed to delete banner: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("banner not found or already deleted")
	}

	return nil
}
