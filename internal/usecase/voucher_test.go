package usecase

import (
	"testing"
	"time"

	"tour-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildVoucherPDF(t *testing.T) {
	tour := makeTour("bali-getaway", 1000, 4.5, 100)
	tour.DurationDays = 4

	schedule := makeSchedule(time.Now().AddDate(0, 0, 7), entity.ScheduleStatusAvailable, 10)
	schedule.TourID = tour.ID

	phone := "+6281234567890"
	user := &entity.User{
		Base:     entity.Base{ID: uuid.New()},
		Username: "traveler",
		Email:    "traveler@example.com",
		Phone:    &phone,
	}

	booking := &entity.Booking{
		Base:        entity.Base{ID: uuid.New(), CreatedAt: time.Now()},
		OrderID:     "TOUR-20260831-120000-0001",
		UserID:      user.ID,
		ScheduleID:  schedule.ID,
		NumAdults:   2,
		NumChildren: 1,
		TotalPrice:  1300,
		Status:      entity.BookingStatusConfirmed,
	}

	pdf, err := BuildVoucherPDF(booking, schedule, tour, user)

	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}
