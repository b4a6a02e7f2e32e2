package repository

import (
	"context"
	"fmt"

	"tour-booking/internal/data/entity"
	"tour-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type SettingRepository interface {
	Upsert(ctx context.Context, setting *entity.Setting) error
	FindByKey(ctx context.Context, key string) (*entity.Setting, error)
	FindAll(ctx context.Context) ([]*entity.Setting, error)
	Delete(ctx context.Context, key string) error
}

type settingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSettingRepository(db database.PgxIface, log *zap.Logger) SettingRepository {
	return &settingRepository{
		db:  db,
		log: log.With(zap.String("repository", "setting")),
	}
}

func (r *settingRepository) Upsert(ctx context.Context, setting *entity.Setting) error {
	query := `
		INSERT INTO settings (id, key, value, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.Exec(ctx, query,
		setting.ID,
		setting.Key,
		setting.Value,
		setting.CreatedAt,
		setting.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to upsert setting",
			zap.Error(err),
			zap.String("key", setting.Key),
		)
		return fmt.Errorf("failed to upsert setting: %w", err)
	}

	return nil
}

func (r *settingRepository) FindByKey(ctx context.Context, key string) (*entity.Setting, error) {
	query := `SELECT id, key, value, created_at, updated_at FROM settings WHERE key = $1`

	var setting entity.Setting
	err := r.db.QueryRow(ctx, query, key).Scan(
		&setting.ID,
		&setting.Key,
		&setting.Value,
		&setting.CreatedAt,
		&setting.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find setting",
			zap.Error(err),
			zap.String("key", key),
		)
		return nil, fmt.Errorf("failed to find setting: %w", err)
	}

	return &setting, nil
}

func (r *settingRepository) FindAll(ctx context.Context) ([]*entity.Setting, error) {
	query := `SELECT id, key, value, created_at, updated_at FROM settings ORDER BY key ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find settings", zap.Error(err))
		return nil, fmt.Errorf("failed to find settings: %w", err)
	}
	defer rows.Close()

	var settings []*entity.Setting
	for rows.Next() {
		var setting entity.Setting
		err := rows.Scan(
			&setting.ID,
			&setting.Key,
			&setting.Value,
			&setting.CreatedAt,
			&setting.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan setting row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}
		settings = append(settings, &setting)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return settings, nil
}

func (r *settingRepository) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM settings WHERE key = $1`

	result, err := r.db.Exec(ctx, query, key)
	if err != nil {
		r.log.Error("Failed to delete setting",
			zap.Error(err),
			zap.String("key", key),
		)
		return fmt.Errorf("failed to delete setting: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("setting not found")
	}

	return nil
}
