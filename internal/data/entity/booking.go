package entity

import (
	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusExpired   BookingStatus = "expired"
)

type Booking struct {
	Base
	OrderID         string        `db:"order_id"`
	UserID          uuid.UUID     `db:"user_id"`
	ScheduleID      uuid.UUID     `db:"schedule_id"`
	NumAdults       int           `db:"num_adults"`
	NumChildren     int           `db:"num_children"`
	NumInfants      int           `db:"num_infants"`
	TotalPrice      float64       `db:"total_price"`
	SpecialRequests *string       `db:"special_requests"`
	Status          BookingStatus `db:"status"`
}

// Seats returns the number of seats the booking occupies. Infants
// travel on an adult's lap and do not take a seat.
func (b *Booking) Seats() int {
	return b.NumAdults + b.NumChildren
}
