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

type ScheduleRepository interface {
	Create(ctx context.Context, schedule *entity.TourSchedule) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.TourSchedule, error)
	FindByTourID(ctx context.Context, tourID uuid.UUID) ([]*entity.TourSchedule, error)
	Update(ctx context.Context, schedule *entity.TourSchedule) error
	Delete(ctx context.Context, id uuid.UUID) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ScheduleStatus) error

	// TakeSeats atomically moves seats from available to booked. It
	// fails without changing anything when fewer than `seats` are left,
	// and marks the schedule FULL when the last seat goes.
	TakeSeats(ctx context.Context, id uuid.UUID, seats int) error

	// ReleaseSeats gives seats back (booking cancelled or expired) and
	// reopens a FULL schedule.
	ReleaseSeats(ctx context.Context, id uuid.UUID, seats int) error
}

type scheduleRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewScheduleRepository(db database.PgxIface, log *zap.Logger) ScheduleRepository {
	return &scheduleRepository{
		db:  db,
		log: log.With(zap.String("repository", "schedule")),
	}
}

const scheduleColumns = `id, tour_id, departure_date, return_date, status,
	       available_seats, booked_seats, adult_price, child_price,
	       infant_price, note, created_at, updated_at`

func (r *scheduleRepository) Create(ctx context.Context, schedule *entity.TourSchedule) error {
	query := `
		INSERT INTO tour_schedules (id, tour_id, departure_date, return_date,
		                            status, available_seats, booked_seats,
		                            adult_price, child_price, infant_price,
		                            note, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.Exec(ctx, query,
		schedule.ID,
		schedule.TourID,
		schedule.DepartureDate,
		schedule.ReturnDate,
		schedule.Status,
		schedule.AvailableSeats,
		schedule.BookedSeats,
		schedule.AdultPrice,
		schedule.ChildPrice,
		schedule.InfantPrice,
		schedule.Note,
		schedule.CreatedAt,
		schedule.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create schedule",
			zap.Error(err),
			zap.String("tour_id", schedule.TourID.String()),
		)
		return fmt.Errorf("failed to create schedule: %w", err)
	}

	return nil
}

func (r *scheduleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.TourSchedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM tour_schedules WHERE id = $1 AND deleted_at IS NULL`

	var schedule entity.TourSchedule
	err := r.db.QueryRow(ctx, query, id).Scan(
		&schedule.ID,
		&schedule.TourID,
		&schedule.DepartureDate,
		&schedule.ReturnDate,
		&schedule.Status,
		&schedule.AvailableSeats,
		&schedule.BookedSeats,
		&schedule.AdultPrice,
		&schedule.ChildPrice,
		&schedule.InfantPrice,
		&schedule.Note,
		&schedule.CreatedAt,
		&schedule.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find schedule by ID",
			zap.Error(err),
			zap.String("schedule_id", id.String()),
		)
		return nil, fmt.Errorf("failed to find schedule: %w", err)
	}

	return &schedule, nil
}

func (r *scheduleRepository) FindByTourID(ctx context.Context, tourID uuid.UUID) ([]*entity.TourSchedule, error) {
	query := `
		SELECT ` + scheduleColumns + `
		FROM tour_schedules
		WHERE tour_id = $1 AND deleted_at IS NULL
		ORDER BY departure_date ASC
	`

	rows, err := r.db.Query(ctx, query, tourID)
	if err != nil {
		r.log.Error("Failed to find schedules by tour",
			zap.Error(err),
			zap.String("tour_id", tourID.String()),
		)
		return nil, fmt.Errorf("failed to find schedules: %w", err)
	}
	defer rows.Close()

	var schedules []*entity.TourSchedule
	for rows.Next() {
		var schedule entity.TourSchedule
		err := rows.Scan(
			&schedule.ID,
			&schedule.TourID,
			&schedule.DepartureDate,
			&schedule.ReturnDate,
			&schedule.Status,
			&schedule.AvailableSeats,
			&schedule.BookedSeats,
			&schedule.AdultPrice,
			&schedule.ChildPrice,
			&schedule.InfantPrice,
			&schedule.Note,
			&schedule.CreatedAt,
			&schedule.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan schedule row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan schedule: %w", err)
		}
		schedules = append(schedules, &schedule)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return schedules, nil
}

func (r *scheduleRepository) Update(ctx context.Context, schedule *entity.TourSchedule) error {
	query := `
		UPDATE tour_schedules
		SET departure_date = $2, return_date = $3, status = $4,
		    available_seats = $5, booked_seats = $6, adult_price = $7,
		    child_price = $8, infant_price = $9, note = $10, updated_at = $11
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		schedule.ID,
		schedule.DepartureDate,
		schedule.ReturnDate,
		schedule.Status,
		schedule.AvailableSeats,
		schedule.BookedSeats,
		schedule.AdultPrice,
		schedule.ChildPrice,
		schedule.InfantPrice,
		schedule.Note,
		schedule.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update schedule",
			zap.Error(err),
			zap.String("schedule_id", schedule.ID.String()),
		)
		return fmt.Errorf("failed to update schedule: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("schedule not found or already deleted")
	}

	return nil
}

func (r *scheduleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE tour_schedules SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete schedule",
			zap.Error(err),
			zap.String("schedule_id", id.String()),
		)
		return fmt.Errorf("failed to delete schedule: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("schedule not found or already deleted")
	}

	return nil
}

func (r *scheduleRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ScheduleStatus) error {
	query := `UPDATE tour_schedules SET status = $2, updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update schedule status",
			zap.Error(err),
			zap.String("schedule_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("failed to update schedule status: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("schedule not found")
	}

	return nil
}

func (r *scheduleRepository) TakeSeats(ctx context.Context, id uuid.UUID, seats int) error {
	query := `
		UPDATE tour_schedules
		SET available_seats = available_seats - $2,
		    booked_seats = booked_seats + $2,
		    status = CASE WHEN available_seats - $2 = 0 THEN 'FULL' ELSE status END,
		    updated_at = NOW()
		WHERE id = $1
		  AND deleted_at IS NULL
		  AND status = 'AVAILABLE'
		  AND available_seats >= $2
	`

	result, err := r.db.Exec(ctx, query, id, seats)
	if err != nil {
		r.log.Error("Failed to take seats",
			zap.Error(err),
			zap.String("schedule_id", id.String()),
			zap.Int("seats", seats),
		)
		return fmt.Errorf("failed to take seats: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("not enough available seats")
	}

	return nil
}

func (r *scheduleRepository) ReleaseSeats(ctx context.Context, id uuid.UUID, seats int) error {
	query := `
		UPDATE tour_schedules
		SET available_seats = available_seats + $2,
		    booked_seats = GREATEST(booked_seats - $2, 0),
		    status = CASE WHEN status = 'FULL' THEN 'AVAILABLE' ELSE status END,
		    updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query, id, seats)
	if err != nil {
		r.log.Error("Failed to release seats",
			zap.Error(err),
			zap.String("schedule_id", id.String()),
			zap.Int("seats", seats),
		)
		return fmt.Errorf("failed to release seats: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("schedule not found")
	}

	return nil
}
