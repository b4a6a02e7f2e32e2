package repository

import (
	"context"
	"fmt"

	"tour-booking/internal/data/entity"
	"tour-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type WishlistRepository interface {
	Add(ctx context.Context, wishlist *entity.Wishlist) error
	Remove(ctx context.Context, userID, tourID uuid.UUID) error
	Exists(ctx context.Context, userID, tourID uuid.UUID) (bool, error)
	FindTourIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

type wishlistRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewWishlistRepository(db database.PgxIface, log *zap.Logger) WishlistRepository {
	return &wishlistRepository{
		db:  db,
		log: log.With(zap.String("repository", "wishlist")),
	}
}

func (r *wishlistRepository) Add(ctx context.Context, wishlist *entity.Wishlist) error {
	// ON CONFLICT keeps re-adding idempotent
	query := `
		INSERT INTO wishlists (id, user_id, tour_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, tour_id) DO NOTHING
	`

	_, err := r.db.Exec(ctx, query,
		wishlist.ID,
		wishlist.UserID,
		wishlist.TourID,
		wishlist.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to add wishlist entry",
			zap.Error(err),
			zap.String("user_id", wishlist.UserID.String()),
			zap.String("tour_id", wishlist.TourID.String()),
		)
		return fmt.Errorf("failed to add wishlist entry: %w", err)
	}

	return nil
}

func (r *wishlistRepository) Remove(ctx context.Context, userID, tourID uuid.UUID) error {
	query := `DELETE FROM wishlists WHERE user_id = $1 AND tour_id = $2`

	result, err := r.db.Exec(ctx, query, userID, tourID)
	if err != nil {
		r.log.Error("Failed to remove wishlist entry",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("tour_id", tourID.String()),
		)
		return fmt.Errorf("failed to remove wishlist entry: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("wishlist entry not found")
	}

	return nil
}

func (r *wishlistRepository) Exists(ctx context.Context, userID, tourID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM wishlists WHERE user_id = $1 AND tour_id = $2)`

	var exists bool
	err := r.db.QueryRow(ctx, query, userID, tourID).Scan(&exists)
	if err != nil {
		r.log.Error("Failed to check wishlist entry",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("tour_id", tourID.String()),
		)
		return false, fmt.Errorf("failed to check wishlist entry: %w", err)
	}

	return exists, nil
}

func (r *wishlistRepository) FindTourIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	query := `SELECT tour_id FROM wishlists WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find wishlist tours",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("failed to find wishlist tours: %w", err)
	}
	defer rows.Close()

	var tourIDs []uuid.UUID
	for rows.Next() {
		var tourID uuid.UUID
		if err := rows.Scan(&tourID); err != nil {
			r.log.Error("Failed to scan wishlist row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan wishlist row: %w", err)
		}
		tourIDs = append(tourIDs, tourID)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return tourIDs, nil
}
