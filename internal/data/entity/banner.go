package entity

type Banner struct {
	Base
	Title    string  `db:"title"`
	ImageURL string  `db:"image_url"`
	LinkURL  *string `db:"link_url"`
	Position int     `db:"position"`
	IsActive bool    `db:"is_active"`
}
