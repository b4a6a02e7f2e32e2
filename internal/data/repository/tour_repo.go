package repository

import (
	"context"
	"fmt"
	"strings"

	"tour-booking/internal/data/entity"
	"tour-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TourRepository interface {
	// CRUD Tour
	Create(ctx context.Context, tour *entity.Tour) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Tour, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Tour, error)
	Update(ctx context.Context, tour *entity.Tour) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindAll(ctx context.Context, offset, limit int, categoryID *uuid.UUID) ([]*entity.Tour, error)
	CountAll(ctx context.Context, categoryID *uuid.UUID) (int64, error)

	// FindByCategory returns every live tour in a category, used as the
	// candidate pool for related-tour selection.
	FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]*entity.Tour, error)

	IncrementViewCount(ctx context.Context, id uuid.UUID) error
	UpdateRating(ctx context.Context, tourID uuid.UUID, newRating float64) error
}

type tourRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTourRepository(db database.PgxIface, log *zap.Logger) TourRepository {
	return &tourRepository{
		db:  db,
		log: log.With(zap.String("repository", "tour")),
	}
}

const tourColumns = `id, category_id, name, slug, description, image_url, location,
	       price, sale_price, rating, view_count, max_people, duration_days,
	       created_at, updated_at`

func (r *tourRepository) Create(ctx context.Context, tour *entity.Tour) error {
	query := `
		INSERT INTO tours (id, category_id, name, slug, description, image_url,
		                   location, price, sale_price, rating, view_count,
		                   max_people, duration_days, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err := r.db.Exec(ctx, query,
		tour.ID,
		tour.CategoryID,
		tour.Name,
		tour.Slug,
		tour.Description,
		tour.ImageURL,
		tour.Location,
		tour.Price,
		tour.SalePrice,
		tour.Rating,
		tour.ViewCount,
		tour.MaxPeople,
		tour.DurationDays,
		tour.CreatedAt,
		tour.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create tour",
			zap.Error(err),
			zap.String("slug", tour.Slug),
		)
		return fmt.Errorf("failed to create tour: %w", err)
	}

	return nil
}

func (r *tourRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tour, error) {
	query := `SELECT ` + tourColumns + ` FROM tours WHERE id = $1 AND deleted_at IS NULL`

	tour, err := r.scanTour(r.db.QueryRow(ctx, query, id))
	if err != nil {
		r.log.Error("Failed to find tour by ID",
			zap.Error(err),
			zap.String("tour_id", id.String()),
		)
		return nil, fmt.Errorf("failed to find tour: %w", err)
	}

	return tour, nil
}

func (r *tourRepository) FindBySlug(ctx context.Context, slug string) (*entity.Tour, error) {
	query := `SELECT ` + tourColumns + ` FROM tours WHERE slug = $1 AND deleted_at IS NULL`

	tour, err := r.scanTour(r.db.QueryRow(ctx, query, slug))
	if err != nil {
		r.log.Error("Failed to find tour by slug",
			zap.Error(err),
			zap.String("slug", slug),
		)
		return nil, fmt.Errorf("failed to find tour: %w", err)
	}

	return tour, nil
}

func (r *tourRepository) FindAll(ctx context.Context, offset, limit int, categoryID *uuid.UUID) ([]*entity.Tour, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + tourColumns + ` FROM tours WHERE deleted_at IS NULL`)

	args := []interface{}{}
	argCount := 1

	if categoryID != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND category_id = $%d", argCount))
		args = append(args, *categoryID)
		argCount++
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argCount, argCount+1))
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find all tours",
			zap.Error(err),
			zap.Int("offset", offset),
			zap.Int("limit", limit),
		)
		return nil, fmt.Errorf("failed to find tours: %w", err)
	}
	defer rows.Close()

	tours, err := r.collectTours(rows)
	if err != nil {
		return nil, err
	}

	r.log.Debug("Tours found",
		zap.Int("count", len(tours)),
		zap.Int("offset", offset),
		zap.Int("limit", limit),
	)

	return tours, nil
}

func (r *tourRepository) CountAll(ctx context.Context, categoryID *uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM tours WHERE deleted_at IS NULL`
	args := []interface{}{}

	if categoryID != nil {
		query += " AND category_id = $1"
		args = append(args, *categoryID)
	}

	var total int64
	err := r.db.QueryRow(ctx, query, args...).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count tours", zap.Error(err))
		return 0, fmt.Errorf("failed to count tours: %w", err)
	}

	return total, nil
}

func (r *tourRepository) FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]*entity.Tour, error) {
	query := `
		SELECT ` + tourColumns + `
		FROM tours
		WHERE category_id = $1 AND deleted_at IS NULL
		ORDER BY rating DESC, view_count DESC
	`

	rows, err := r.db.Query(ctx, query, categoryID)
	if err != nil {
		r.log.Error("Failed to find tours by category",
			zap.Error(err),
			zap.String("category_id", categoryID.String()),
		)
		return nil, fmt.Errorf("failed to find tours by category: %w", err)
	}
	defer rows.Close()

	return r.collectTours(rows)
}

func (r *tourRepository) Update(ctx context.Context, tour *entity.Tour) error {
	query := `
		UPDATE tours
		SET category_id = $2, name = $3, slug = $4, description = $5,
		    image_url = $6, location = $7, price = $8, sale_price = $9,
		    max_people = $10, duration_days = $11, updated_at = $12
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		tour.ID,
		tour.CategoryID,
		tour.Name,
		tour.Slug,
		tour.Description,
		tour.ImageURL,
		tour.Location,
		tour.Price,
		tour.SalePrice,
		tour.MaxPeople,
		tour.DurationDays,
		tour.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update tour",
			zap.Error(err),
			zap.String("tour_id", tour.ID.String()),
		)
		return fmt.Errorf("failed to update tour: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("tour not found or already deleted")
	}

	return nil
}

func (r *tourRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE tours SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete tour",
			zap.Error(err),
			zap.String("tour_id", id.String()),
		)
		return fmt.Errorf("failed to delete tour: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("tour not found or already deleted")
	}

	r.log.Info("Tour soft deleted", zap.String("tour_id", id.String()))
	return nil
}

func (r *tourRepository) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE tours SET view_count = view_count + 1 WHERE id = $1 AND deleted_at IS NULL`

	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to increment view count",
			zap.Error(err),
			zap.String("tour_id", id.String()),
		)
		return fmt.Errorf("failed to increment view count: %w", err)
	}

	return nil
}

func (r *tourRepository) UpdateRating(ctx context.Context, tourID uuid.UUID, newRating float64) error {
	query := `UPDATE tours SET rating = $2, updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, tourID, newRating)
	if err != nil {
		r.log.Error("Failed to update tour rating",
			zap.Error(err),
			zap.String("tour_id", tourID.String()),
			zap.Float64("new_rating", newRating),
		)
		return fmt.Errorf("failed to update rating: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("tour not found")
	}

	return nil
}

// ==================== SCAN HELPERS ====================

func (r *tourRepository) scanTour(row pgx.Row) (*entity.Tour, error) {
	var tour entity.Tour
	err := row.Scan(
		&tour.ID,
		&tour.CategoryID,
		&tour.Name,
		&tour.Slug,
		&tour.Description,
		&tour.ImageURL,
		&tour.Location,
		&tour.Price,
		&tour.SalePrice,
		&tour.Rating,
		&tour.ViewCount,
		&tour.MaxPeople,
		&tour.DurationDays,
		&tour.CreatedAt,
		&tour.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &tour, nil
}

func (r *tourRepository) collectTours(rows pgx.Rows) ([]*entity.Tour, error) {
	var tours []*entity.Tour
	for rows.Next() {
		tour, err := r.scanTour(rows)
		if err != nil {
			r.log.Error("Failed to scan tour row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan tour: %w", err)
		}
		tours = append(tours, tour)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return tours, nil
}
