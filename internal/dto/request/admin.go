package request

type CreateBannerRequest struct {
	Title    string  `json:"title" validate:"required,min=2,max=200"`
	ImageURL string  `json:"image_url" validate:"required,url"`
	LinkURL  *string `json:"link_url,omitempty" validate:"omitempty,url"`
	Position int     `json:"position" validate:"min=0"`
	IsActive bool    `json:"is_active"`
}

type UpdateBannerRequest struct {
	Title    string  `json:"title" validate:"required,min=2,max=200"`
	ImageURL string  `json:"image_url" validate:"required,url"`
	LinkURL  *string `json:"link_url,omitempty" validate:"omitempty,url"`
	Position int     `json:"position" validate:"min=0"`
	IsActive bool    `json:"is_active"`
}

type UpsertSettingRequest struct {
	Key   string `json:"key" validate:"required,min=1,max=100"`
	Value string `json:"value" validate:"required"`
}
