package entity

import (
	"github.com/google/uuid"
)

type Tour struct {
	Base
	CategoryID   uuid.UUID `db:"category_id"`
	Name         string    `db:"name"`
	Slug         string    `db:"slug"`
	Description  *string   `db:"description"`
	ImageURL     *string   `db:"image_url"`
	Location     *string   `db:"location"`
	Price        float64   `db:"price"`
	SalePrice    *float64  `db:"sale_price"`
	Rating       float64   `db:"rating"` // 0-5
	ViewCount    int64     `db:"view_count"`
	MaxPeople    int       `db:"max_people"`
	DurationDays int       `db:"duration_days"`
}

// EffectivePrice returns the sale price when it is an actual discount,
// otherwise the base price. A sale price equal to or above the base
// price does not count.
func (t *Tour) EffectivePrice() float64 {
	if t.SalePrice != nil && *t.SalePrice < t.Price {
		return *t.SalePrice
	}
	return t.Price
}
