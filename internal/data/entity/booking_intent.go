package entity

import (
	"time"

	"github.com/google/uuid"
)

// IntentSchemaVersion is stamped into every stored intent. Records with
// another version are discarded on read instead of trusted.
const IntentSchemaVersion = 1

// BookingIntent captures a booking selection made before login so the
// flow can resume afterwards. It lives only in the intent store, has a
// TTL, and is consumed at most once. Losing it is a degraded
// experience, not an error.
type BookingIntent struct {
	Version         int       `json:"version"`
	TourID          uuid.UUID `json:"tour_id"`
	TourSlug        string    `json:"tour_slug"`
	StartDate       string    `json:"start_date"`
	NumAdults       int       `json:"num_adults"`
	NumChildren     int       `json:"num_children"`
	SpecialRequests string    `json:"special_requests,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
