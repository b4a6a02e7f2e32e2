package request

type CreateBookingRequest struct {
	ScheduleID      string  `json:"schedule_id" validate:"required,uuid4"`
	NumAdults       int     `json:"num_adults" validate:"required,min=1"`
	NumChildren     int     `json:"num_children" validate:"min=0"`
	NumInfants      int     `json:"num_infants" validate:"min=0"`
	SpecialRequests *string `json:"special_requests,omitempty" validate:"omitempty,max=1000"`
}

// SaveIntentRequest stores a pre-login booking selection keyed by the
// browser session.
type SaveIntentRequest struct {
	TourID          string `json:"tour_id" validate:"required,uuid4"`
	TourSlug        string `json:"tour_slug" validate:"required"`
	StartDate       string `json:"start_date" validate:"required,datetime=2006-01-02"`
	NumAdults       int    `json:"num_adults" validate:"required,min=1"`
	NumChildren     int    `json:"num_children" validate:"min=0"`
	SpecialRequests string `json:"special_requests,omitempty" validate:"omitempty,max=1000"`
}
