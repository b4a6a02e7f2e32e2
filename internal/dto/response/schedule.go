package response

import (
	"tour-booking/internal/data/entity"
)

type ScheduleResponse struct {
	ID             string   `json:"id"`
	TourID         string   `json:"tour_id"`
	DepartureDate  string   `json:"departure_date"`
	ReturnDate     string   `json:"return_date"`
	Status         string   `json:"status"`
	AvailableSeats int      `json:"available_seats"`
	BookedSeats    int      `json:"booked_seats"`
	AdultPrice     float64  `json:"adult_price"`
	ChildPrice     float64  `json:"child_price"`
	InfantPrice    *float64 `json:"infant_price,omitempty"`
	Note           *string  `json:"note,omitempty"`
}

// QuoteResponse is the live price for a party composition.
type QuoteResponse struct {
	ScheduleID  *string `json:"schedule_id,omitempty"`
	AdultPrice  float64 `json:"adult_price"`
	ChildPrice  float64 `json:"child_price"`
	NumAdults   int     `json:"num_adults"`
	NumChildren int     `json:"num_children"`
	NumInfants  int     `json:"num_infants"`
	TotalPrice  float64 `json:"total_price"`
}

func ScheduleToResponse(schedule *entity.TourSchedule) ScheduleResponse {
	return ScheduleResponse{
		ID:             schedule.ID.String(),
		TourID:         schedule.TourID.String(),
		DepartureDate:  schedule.DepartureDate.Format("2006-01-02"),
		ReturnDate:     schedule.ReturnDate.Format("2006-01-02"),
		Status:         string(schedule.Status),
		AvailableSeats: schedule.AvailableSeats,
		BookedSeats:    schedule.BookedSeats,
		AdultPrice:     schedule.AdultPrice,
		ChildPrice:     schedule.ChildPrice,
		InfantPrice:    schedule.InfantPrice,
		Note:           schedule.Note,
	}
}
