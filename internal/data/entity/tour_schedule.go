package entity

import (
	"time"

	"github.com/google/uuid"
)

type ScheduleStatus string

const (
	ScheduleStatusAvailable ScheduleStatus = "AVAILABLE"
	ScheduleStatusFull      ScheduleStatus = "FULL"
	ScheduleStatusCancelled ScheduleStatus = "CANCELLED"
)

type TourSchedule struct {
	Base
	TourID         uuid.UUID      `db:"tour_id"`
	DepartureDate  time.Time      `db:"departure_date"`
	ReturnDate     time.Time      `db:"return_date"`
	Status         ScheduleStatus `db:"status"`
	AvailableSeats int            `db:"available_seats"`
	BookedSeats    int            `db:"booked_seats"`
	AdultPrice     float64        `db:"adult_price"`
	ChildPrice     float64        `db:"child_price"`
	InfantPrice    *float64       `db:"infant_price"`
	Note           *string        `db:"note"`
}

// Bookable reports whether the schedule can still be selected: it must
// be AVAILABLE and depart no earlier than midnight of the current day.
// Time-of-day on the departure is ignored, so a tour leaving later
// today is still bookable.
func (s *TourSchedule) Bookable(now time.Time) bool {
	if s.Status != ScheduleStatusAvailable {
		return false
	}
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return !s.DepartureDate.Before(startOfToday)
}
