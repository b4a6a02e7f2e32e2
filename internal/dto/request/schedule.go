package request

type CreateScheduleRequest struct {
	TourID         string   `json:"tour_id" validate:"required,uuid4"`
	DepartureDate  string   `json:"departure_date" validate:"required,datetime=2006-01-02"`
	ReturnDate     string   `json:"return_date" validate:"required,datetime=2006-01-02"`
	AvailableSeats int      `json:"available_seats" validate:"required,min=1"`
	AdultPrice     float64  `json:"adult_price" validate:"required,gt=0"`
	ChildPrice     float64  `json:"child_price" validate:"required,gt=0"`
	InfantPrice    *float64 `json:"infant_price,omitempty" validate:"omitempty,gte=0"`
	Note           *string  `json:"note,omitempty"`
}

type UpdateScheduleStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=AVAILABLE FULL CANCELLED"`
}

// QuoteRequest asks for the live price of a party composition against a
// schedule. ScheduleID is optional: without it the tour's base pricing
// applies.
type QuoteRequest struct {
	ScheduleID  *string `json:"schedule_id,omitempty" validate:"omitempty,uuid4"`
	NumAdults   int     `json:"num_adults" validate:"required,min=1"`
	NumChildren int     `json:"num_children" validate:"min=0"`
	NumInfants  int     `json:"num_infants" validate:"min=0"`
}
