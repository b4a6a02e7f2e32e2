package response

import (
	"time"

	"tour-booking/internal/data/entity"
)

type BookingResponse struct {
	ID              string               `json:"id"`
	OrderID         string               `json:"order_id"`
	UserID          string               `json:"user_id"`
	ScheduleID      string               `json:"schedule_id"`
	TourName        string               `json:"tour_name,omitempty"`
	TourSlug        string               `json:"tour_slug,omitempty"`
	DepartureDate   string               `json:"departure_date,omitempty"`
	ReturnDate      string               `json:"return_date,omitempty"`
	NumAdults       int                  `json:"num_adults"`
	NumChildren     int                  `json:"num_children"`
	NumInfants      int                  `json:"num_infants"`
	TotalPrice      float64              `json:"total_price"`
	SpecialRequests *string              `json:"special_requests,omitempty"`
	Status          entity.BookingStatus `json:"status"`
	CreatedAt       time.Time            `json:"created_at"`
}

// BookingToResponse enriches the booking with its schedule and tour
// when they are available. Either may be nil.
func BookingToResponse(booking *entity.Booking, schedule *entity.TourSchedule, tour *entity.Tour) BookingResponse {
	resp := BookingResponse{
		ID:              booking.ID.String(),
		OrderID:         booking.OrderID,
		UserID:          booking.UserID.String(),
		ScheduleID:      booking.ScheduleID.String(),
		NumAdults:       booking.NumAdults,
		NumChildren:     booking.NumChildren,
		NumInfants:      booking.NumInfants,
		TotalPrice:      booking.TotalPrice,
		SpecialRequests: booking.SpecialRequests,
		Status:          booking.Status,
		CreatedAt:       booking.CreatedAt,
	}

	if schedule != nil {
		resp.DepartureDate = schedule.DepartureDate.Format("2006-01-02")
		resp.ReturnDate = schedule.ReturnDate.Format("2006-01-02")
	}

	if tour != nil {
		resp.TourName = tour.Name
		resp.TourSlug = tour.Slug
	}

	return resp
}

type IntentResponse struct {
	TourID          string `json:"tour_id"`
	TourSlug        string `json:"tour_slug"`
	StartDate       string `json:"start_date"`
	NumAdults       int    `json:"num_adults"`
	NumChildren     int    `json:"num_children"`
	SpecialRequests string `json:"special_requests,omitempty"`
}

func IntentToResponse(intent *entity.BookingIntent) IntentResponse {
	return IntentResponse{
		TourID:          intent.TourID.String(),
		TourSlug:        intent.TourSlug,
		StartDate:       intent.StartDate,
		NumAdults:       intent.NumAdults,
		NumChildren:     intent.NumChildren,
		SpecialRequests: intent.SpecialRequests,
	}
}
