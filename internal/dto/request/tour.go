package request

type CreateTourRequest struct {
	CategoryID   string   `json:"category_id" validate:"required,uuid4"`
	Name         string   `json:"name" validate:"required,min=3,max=200"`
	Slug         string   `json:"slug" validate:"required,min=3,max=200"`
	Description  *string  `json:"description,omitempty"`
	ImageURL     *string  `json:"image_url,omitempty"`
	Location     *string  `json:"location,omitempty"`
	Price        float64  `json:"price" validate:"required,gt=0"`
	SalePrice    *float64 `json:"sale_price,omitempty" validate:"omitempty,gt=0"`
	MaxPeople    int      `json:"max_people" validate:"required,min=1"`
	DurationDays int      `json:"duration_days" validate:"required,min=1"`
}

type UpdateTourRequest struct {
	CategoryID   string   `json:"category_id" validate:"required,uuid4"`
	Name         string   `json:"name" validate:"required,min=3,max=200"`
	Slug         string   `json:"slug" validate:"required,min=3,max=200"`
	Description  *string  `json:"description,omitempty"`
	ImageURL     *string  `json:"image_url,omitempty"`
	Location     *string  `json:"location,omitempty"`
	Price        float64  `json:"price" validate:"required,gt=0"`
	SalePrice    *float64 `json:"sale_price,omitempty" validate:"omitempty,gt=0"`
	MaxPeople    int      `json:"max_people" validate:"required,min=1"`
	DurationDays int      `json:"duration_days" validate:"required,min=1"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
	Slug string `json:"slug" validate:"required,min=2,max=100"`
}
