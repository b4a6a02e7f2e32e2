package entity

import (
	"github.com/google/uuid"
)

type Wishlist struct {
	BaseSimple
	UserID uuid.UUID `db:"user_id"`
	TourID uuid.UUID `db:"tour_id"`
}
