package response

import (
	"time"

	"tour-booking/internal/data/entity"
)

type TourResponse struct {
	ID             string    `json:"id"`
	CategoryID     string    `json:"category_id"`
	CategoryName   string    `json:"category_name,omitempty"`
	Name           string    `json:"name"`
	Slug           string    `json:"slug"`
	Description    *string   `json:"description,omitempty"`
	ImageURL       *string   `json:"image_url,omitempty"`
	Location       *string   `json:"location,omitempty"`
	Price          float64   `json:"price"`
	SalePrice      *float64  `json:"sale_price,omitempty"`
	EffectivePrice float64   `json:"effective_price"`
	Rating         float64   `json:"rating"`
	ViewCount      int64     `json:"view_count"`
	MaxPeople      int       `json:"max_people"`
	DurationDays   int       `json:"duration_days"`
	CreatedAt      time.Time `json:"created_at,omitempty"`
}

type TourDetailResponse struct {
	TourResponse
	ReviewCount int        `json:"review_count"`
	Wishlisted  bool       `json:"wishlisted"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Helper converters
func TourToResponse(tour *entity.Tour, categoryName string) TourResponse {
	return TourResponse{
		ID:             tour.ID.String(),
		CategoryID:     tour.CategoryID.String(),
		CategoryName:   categoryName,
		Name:           tour.Name,
		Slug:           tour.Slug,
		Description:    tour.Description,
		ImageURL:       tour.ImageURL,
		Location:       tour.Location,
		Price:          tour.Price,
		SalePrice:      tour.SalePrice,
		EffectivePrice: tour.EffectivePrice(),
		Rating:         tour.Rating,
		ViewCount:      tour.ViewCount,
		MaxPeople:      tour.MaxPeople,
		DurationDays:   tour.DurationDays,
		CreatedAt:      tour.CreatedAt,
	}
}

func CategoryToResponse(category *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:   category.ID.String(),
		Name: category.Name,
		Slug: category.Slug,
	}
}
