package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"
	"tour-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// ==================== IN-MEMORY FAKES ====================

type fakeTourRepo struct {
	repository.TourRepository
	tours map[uuid.UUID]*entity.Tour
}

func (f *fakeTourRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Tour, error) {
	return f.tours[id], nil
}

func (f *fakeTourRepo) FindBySlug(_ context.Context, slug string) (*entity.Tour, error) {
	for _, tour := range f.tours {
		if tour.Slug == slug {
			return tour, nil
		}
	}
	return nil, nil
}

type fakeScheduleRepo struct {
	repository.ScheduleRepository
	schedules map[uuid.UUID]*entity.TourSchedule
}

func (f *fakeScheduleRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.TourSchedule, error) {
	return f.schedules[id], nil
}

func (f *fakeScheduleRepo) TakeSeats(_ context.Context, id uuid.UUID, seats int) error {
	schedule := f.schedules[id]
	if schedule == nil || schedule.Status != entity.ScheduleStatusAvailable || schedule.AvailableSeats < seats {
		return fmt.Errorf("not enough available seats")
	}
	schedule.AvailableSeats -= seats
	schedule.BookedSeats += seats
	if schedule.AvailableSeats == 0 {
		schedule.Status = entity.ScheduleStatusFull
	}
	return nil
}

func (f *fakeScheduleRepo) ReleaseSeats(_ context.Context, id uuid.UUID, seats int) error {
	schedule := f.schedules[id]
	if schedule == nil {
		return fmt.Errorf("schedule not found")
	}
	schedule.AvailableSeats += seats
	schedule.BookedSeats -= seats
	if schedule.Status == entity.ScheduleStatusFull {
		schedule.Status = entity.ScheduleStatusAvailable
	}
	return nil
}

type fakeBookingRepo struct {
	repository.BookingRepository
	bookings   map[uuid.UUID]*entity.Booking
	failInsert bool
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *entity.Booking) error {
	if f.failInsert {
		return fmt.Errorf("failed to create booking: storage down")
	}
	f.bookings[booking.ID] = booking
	return nil
}

func (f *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	return f.bookings[id], nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.BookingStatus) error {
	booking := f.bookings[id]
	if booking == nil {
		return fmt.Errorf("booking not found")
	}
	booking.Status = status
	return nil
}

// ==================== FIXTURE ====================

type bookingFixture struct {
	service  BookingService
	tour     *entity.Tour
	schedule *entity.TourSchedule
	bookings *fakeBookingRepo
	userID   uuid.UUID
}

func newBookingFixture(t *testing.T, seats int) *bookingFixture {
	t.Helper()

	tour := makeTour("bali-getaway", 1000, 4.5, 100)
	tour.MaxPeople = 10

	schedule := makeSchedule(time.Now().AddDate(0, 0, 7), entity.ScheduleStatusAvailable, seats)
	schedule.TourID = tour.ID

	bookings := &fakeBookingRepo{bookings: map[uuid.UUID]*entity.Booking{}}
	repo := &repository.Repository{
		Tour:     &fakeTourRepo{tours: map[uuid.UUID]*entity.Tour{tour.ID: tour}},
		Schedule: &fakeScheduleRepo{schedules: map[uuid.UUID]*entity.TourSchedule{schedule.ID: schedule}},
		Booking:  bookings,
	}

	return &bookingFixture{
		service:  NewBookingService(repo, zap.NewNop()),
		tour:     tour,
		schedule: schedule,
		bookings: bookings,
		userID:   uuid.New(),
	}
}

// ==================== TESTS ====================

func TestCreateBookingTakesSeatsAndPrices(t *testing.T) {
	f := newBookingFixture(t, 10)

	booking, err := f.service.CreateBooking(context.Background(), f.userID, &request.CreateBookingRequest{
		ScheduleID:  f.schedule.ID.String(),
		NumAdults:   2,
		NumChildren: 1,
		NumInfants:  1,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusPending, booking.Status)
	assert.Equal(t, 2*500.0+1*300.0, booking.TotalPrice)
	assert.NotEmpty(t, booking.OrderID)

	// Infants take no seat, 3 seats claimed
	assert.Equal(t, 7, f.schedule.AvailableSeats)
	assert.Equal(t, 3, f.schedule.BookedSeats)
}

func TestCreateBookingLastSeatMarksFull(t *testing.T) {
	f := newBookingFixture(t, 2)

	_, err := f.service.CreateBooking(context.Background(), f.userID, &request.CreateBookingRequest{
		ScheduleID: f.schedule.ID.String(),
		NumAdults:  2,
	})

	require.NoError(t, err)
	assert.Equal(t, 0, f.schedule.AvailableSeats)
	assert.Equal(t, entity.ScheduleStatusFull, f.schedule.Status)
}

func TestCreateBookingRejectsOversizedParty(t *testing.T) {
	f := newBookingFixture(t, 50)
	f.tour.MaxPeople = 4

	_, err := f.service.CreateBooking(context.Background(), f.userID, &request.CreateBookingRequest{
		ScheduleID:  f.schedule.ID.String(),
		NumAdults:   3,
		NumChildren: 2,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Equal(t, 50, f.schedule.AvailableSeats)
}

func TestCreateBookingNotEnoughSeats(t *testing.T) {
	f := newBookingFixture(t, 1)

	_, err := f.service.CreateBooking(context.Background(), f.userID, &request.CreateBookingRequest{
		ScheduleID: f.schedule.ID.String(),
		NumAdults:  2,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Equal(t, 1, f.schedule.AvailableSeats)
}

func TestCreateBookingReleasesSeatsWhenInsertFails(t *testing.T) {
	f := newBookingFixture(t, 10)
	f.bookings.failInsert = true

	_, err := f.service.CreateBooking(context.Background(), f.userID, &request.CreateBookingRequest{
		ScheduleID: f.schedule.ID.String(),
		NumAdults:  2,
	})

	require.Error(t, err)
	assert.Equal(t, 10, f.schedule.AvailableSeats)
	assert.Equal(t, 0, f.schedule.BookedSeats)
}

func TestCreateBookingRejectsPastSchedule(t *testing.T) {
	f := newBookingFixture(t, 10)
	f.schedule.DepartureDate = time.Now().AddDate(0, 0, -2)

	_, err := f.service.CreateBooking(context.Background(), f.userID, &request.CreateBookingRequest{
		ScheduleID: f.schedule.ID.String(),
		NumAdults:  1,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no longer available")
}

func TestCancelBookingReleasesSeats(t *testing.T) {
	f := newBookingFixture(t, 10)

	booking, err := f.service.CreateBooking(context.Background(), f.userID, &request.CreateBookingRequest{
		ScheduleID: f.schedule.ID.String(),
		NumAdults:  2,
	})
	require.NoError(t, err)
	require.Equal(t, 8, f.schedule.AvailableSeats)

	err = f.service.CancelBooking(context.Background(), f.userID, "customer", booking.ID)
	require.NoError(t, err)

	assert.Equal(t, 10, f.schedule.AvailableSeats)

	id, _ := uuid.Parse(booking.ID)
	assert.Equal(t, entity.BookingStatusCancelled, f.bookings.bookings[id].Status)
}

func TestCancelBookingForbiddenForOtherUser(t *testing.T) {
	f := newBookingFixture(t, 10)

	booking, err := f.service.CreateBooking(context.Background(), f.userID, &request.CreateBookingRequest{
		ScheduleID: f.schedule.ID.String(),
		NumAdults:  1,
	})
	require.NoError(t, err)

	err = f.service.CancelBooking(context.Background(), uuid.New(), "customer", booking.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "forbidden")
}

func TestConfirmBookingOnlyFromPending(t *testing.T) {
	f := newBookingFixture(t, 10)

	booking, err := f.service.CreateBooking(context.Background(), f.userID, &request.CreateBookingRequest{
		ScheduleID: f.schedule.ID.String(),
		NumAdults:  1,
	})
	require.NoError(t, err)

	require.NoError(t, f.service.ConfirmBooking(context.Background(), booking.ID))

	err = f.service.ConfirmBooking(context.Background(), booking.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot confirm")
}
