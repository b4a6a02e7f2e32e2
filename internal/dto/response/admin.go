package response

import (
	"tour-booking/internal/data/entity"
)

type BannerResponse struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	ImageURL string  `json:"image_url"`
	LinkURL  *string `json:"link_url,omitempty"`
	Position int     `json:"position"`
	IsActive bool    `json:"is_active"`
}

type SettingResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func BannerToResponse(banner *entity.Banner) BannerResponse {
	return BannerResponse{
		ID:       banner.ID.String(),
		Title:    banner.Title,
		ImageURL: banner.ImageURL,
		LinkURL:  banner.LinkURL,
		Position: banner.Position,
		IsActive: banner.IsActive,
	}
}

func SettingToResponse(setting *entity.Setting) SettingResponse {
	return SettingResponse{
		Key:   setting.Key,
		Value: setting.Value,
	}
}
