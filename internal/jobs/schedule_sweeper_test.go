package jobs

import (
	"context"
	"fmt"
	"testing"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"
	"tour-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubBookingRepo struct {
	repository.BookingRepository
	bookings map[uuid.UUID]*entity.Booking
}

func (s *stubBookingRepo) FindStalePending(_ context.Context, before time.Time) ([]*entity.Booking, error) {
	var stale []*entity.Booking
	for _, booking := range s.bookings {
		if booking.Status == entity.BookingStatusPending && booking.CreatedAt.Before(before) {
			stale = append(stale, booking)
		}
	}
	return stale, nil
}

func (s *stubBookingRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.BookingStatus) error {
	booking := s.bookings[id]
	if booking == nil {
		return fmt.Errorf("booking not found")
	}
	booking.Status = status
	return nil
}

type stubScheduleRepo struct {
	repository.ScheduleRepository
	released map[uuid.UUID]int
}

func (s *stubScheduleRepo) ReleaseSeats(_ context.Context, id uuid.UUID, seats int) error {
	s.released[id] += seats
	return nil
}

func makeBooking(status entity.BookingStatus, age time.Duration, adults, children int) *entity.Booking {
	return &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now().Add(-age),
		},
		OrderID:     "TOUR-TEST",
		ScheduleID:  uuid.New(),
		NumAdults:   adults,
		NumChildren: children,
		Status:      status,
	}
}

func TestSweepExpiresStalePendingAndReleasesSeats(t *testing.T) {
	stale := makeBooking(entity.BookingStatusPending, 2*time.Hour, 2, 1)
	fresh := makeBooking(entity.BookingStatusPending, 5*time.Minute, 1, 0)
	confirmed := makeBooking(entity.BookingStatusConfirmed, 3*time.Hour, 1, 0)

	bookings := &stubBookingRepo{bookings: map[uuid.UUID]*entity.Booking{
		stale.ID:     stale,
		fresh.ID:     fresh,
		confirmed.ID: confirmed,
	}}
	schedules := &stubScheduleRepo{released: map[uuid.UUID]int{}}

	config := &utils.Config{}
	config.Booking.PendingExpiryMinutes = 30

	sweeper := NewScheduleSweeper(&repository.Repository{
		Booking:  bookings,
		Schedule: schedules,
	}, config, zap.NewNop())

	sweeper.Sweep(context.Background())

	assert.Equal(t, entity.BookingStatusExpired, stale.Status)
	assert.Equal(t, entity.BookingStatusPending, fresh.Status)
	assert.Equal(t, entity.BookingStatusConfirmed, confirmed.Status)

	// Infants do not occupy seats, only 3 come back
	require.Len(t, schedules.released, 1)
	assert.Equal(t, 3, schedules.released[stale.ScheduleID])
}

func TestSweepNoStaleBookingsIsQuiet(t *testing.T) {
	bookings := &stubBookingRepo{bookings: map[uuid.UUID]*entity.Booking{}}
	schedules := &stubScheduleRepo{released: map[uuid.UUID]int{}}

	config := &utils.Config{}
	config.Booking.PendingExpiryMinutes = 30

	sweeper := NewScheduleSweeper(&repository.Repository{
		Booking:  bookings,
		Schedule: schedules,
	}, config, zap.NewNop())

	sweeper.Sweep(context.Background())
	assert.Empty(t, schedules.released)
}
