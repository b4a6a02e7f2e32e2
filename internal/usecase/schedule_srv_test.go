package usecase

import (
	"testing"
	"time"

	"tour-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeSchedule(departure time.Time, status entity.ScheduleStatus, seats int) *entity.TourSchedule {
	return &entity.TourSchedule{
		Base:           entity.Base{ID: uuid.New()},
		DepartureDate:  departure,
		ReturnDate:     departure.AddDate(0, 0, 3),
		Status:         status,
		AvailableSeats: seats,
		AdultPrice:     500,
		ChildPrice:     300,
	}
}

func TestFilterBookableDateWindow(t *testing.T) {
	now := time.Date(2026, 8, 31, 15, 30, 0, 0, time.UTC)
	yesterday := makeSchedule(now.AddDate(0, 0, -1), entity.ScheduleStatusAvailable, 10)
	today := makeSchedule(time.Date(2026, 8, 31, 8, 0, 0, 0, time.UTC), entity.ScheduleStatusAvailable, 10)
	tomorrow := makeSchedule(now.AddDate(0, 0, 1), entity.ScheduleStatusAvailable, 10)

	bookable := FilterBookable([]*entity.TourSchedule{yesterday, today, tomorrow}, now)

	require.Len(t, bookable, 2)
	assert.Equal(t, today.ID, bookable[0].ID)
	assert.Equal(t, tomorrow.ID, bookable[1].ID)
}

func TestFilterBookableDepartingLaterTodayCounts(t *testing.T) {
	// Departure at 08:00 with "now" at 23:00 the same day: date-only
	// comparison keeps it bookable.
	now := time.Date(2026, 8, 31, 23, 0, 0, 0, time.UTC)
	today := makeSchedule(time.Date(2026, 8, 31, 8, 0, 0, 0, time.UTC), entity.ScheduleStatusAvailable, 10)

	bookable := FilterBookable([]*entity.TourSchedule{today}, now)
	assert.Len(t, bookable, 1)
}

func TestFilterBookableExcludesNonAvailable(t *testing.T) {
	now := time.Now()
	full := makeSchedule(now.AddDate(0, 0, 7), entity.ScheduleStatusFull, 0)
	cancelled := makeSchedule(now.AddDate(0, 0, 7), entity.ScheduleStatusCancelled, 10)
	open := makeSchedule(now.AddDate(0, 0, 7), entity.ScheduleStatusAvailable, 10)

	bookable := FilterBookable([]*entity.TourSchedule{full, cancelled, open}, now)

	require.Len(t, bookable, 1)
	assert.Equal(t, open.ID, bookable[0].ID)
}

func TestComputeQuoteWithSchedule(t *testing.T) {
	tour := makeTour("bali", 1000, 4.0, 10)
	schedule := makeSchedule(time.Now().AddDate(0, 0, 7), entity.ScheduleStatusAvailable, 10)

	quote := ComputeQuote(tour, schedule, Party{Adults: 2, Children: 3, Infants: 1})

	assert.Equal(t, 500.0, quote.AdultPrice)
	assert.Equal(t, 300.0, quote.ChildPrice)
	assert.Equal(t, 2*500.0+3*300.0, quote.TotalPrice)
	assert.Equal(t, 1, quote.NumInfants)
}

func TestComputeQuoteFallbackWithoutSchedule(t *testing.T) {
	tour := makeTour("bali", 1000, 4.0, 10)

	quote := ComputeQuote(tour, nil, Party{Adults: 1, Children: 1})

	assert.Nil(t, quote.ScheduleID)
	assert.Equal(t, 1000.0, quote.AdultPrice)
	assert.Equal(t, 700.0, quote.ChildPrice)
	assert.Equal(t, 1700.0, quote.TotalPrice)
}

func TestComputeQuoteUsesSalePrice(t *testing.T) {
	tour := makeTour("bali", 1000, 4.0, 10)
	salePrice := 800.0
	tour.SalePrice = &salePrice

	quote := ComputeQuote(tour, nil, Party{Adults: 1})

	assert.Equal(t, 800.0, quote.AdultPrice)
	assert.InDelta(t, 560.0, quote.ChildPrice, 1e-9)
}

func TestComputeQuoteIdempotent(t *testing.T) {
	tour := makeTour("bali", 1000, 4.0, 10)
	schedule := makeSchedule(time.Now().AddDate(0, 0, 7), entity.ScheduleStatusAvailable, 10)
	party := Party{Adults: 2, Children: 1}

	first := ComputeQuote(tour, schedule, party)
	second := ComputeQuote(tour, schedule, party)

	assert.Equal(t, first, second)
}

func TestValidatePartyMaxPeopleOnly(t *testing.T) {
	tour := makeTour("bali", 1000, 4.0, 10)
	tour.MaxPeople = 4
	schedule := makeSchedule(time.Now().AddDate(0, 0, 7), entity.ScheduleStatusAvailable, 10)

	errs := ValidateParty(tour, schedule, Party{Adults: 3, Children: 2})

	require.Len(t, errs, 1)
	assert.Contains(t, errs["max_people"], "4")
}

func TestValidatePartySeatsReferencesAvailability(t *testing.T) {
	tour := makeTour("bali", 1000, 4.0, 10)
	tour.MaxPeople = 20
	schedule := makeSchedule(time.Now().AddDate(0, 0, 7), entity.ScheduleStatusAvailable, 1)

	errs := ValidateParty(tour, schedule, Party{Adults: 2})

	require.Len(t, errs, 1)
	assert.Contains(t, errs["available_seats"], "1")
}

func TestValidatePartyScheduleRequired(t *testing.T) {
	tour := makeTour("bali", 1000, 4.0, 10)
	tour.MaxPeople = 10

	errs := ValidateParty(tour, nil, Party{Adults: 1})

	require.Len(t, errs, 1)
	assert.NotEmpty(t, errs["schedule"])
}

func TestValidatePartyCollectsMultipleErrors(t *testing.T) {
	tour := makeTour("bali", 1000, 4.0, 10)
	tour.MaxPeople = 10

	errs := ValidateParty(tour, nil, Party{})

	assert.NotEmpty(t, errs["schedule"])
	assert.NotEmpty(t, errs["num_adults"])
	assert.NotEmpty(t, errs["party"])
}

func TestValidatePartyOK(t *testing.T) {
	tour := makeTour("bali", 1000, 4.0, 10)
	tour.MaxPeople = 10
	schedule := makeSchedule(time.Now().AddDate(0, 0, 7), entity.ScheduleStatusAvailable, 10)

	errs := ValidateParty(tour, schedule, Party{Adults: 2, Children: 1, Infants: 1})
	assert.Empty(t, errs)
}
