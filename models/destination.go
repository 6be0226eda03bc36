package models

type Destination struct {
	DestinationID string   `json:"_id,omitempty"`
	Title         string   `json:"title"`
	Country       string   `json:"country"`
	Description   string   `json:"description"`
	Thumbnail     string   `json:"thumbnail,omitempty"`
	Images        []string `json:"images,omitempty"`
	IsActivated   bool     `json:"isActivated,omitempty"`
}
