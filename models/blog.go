package models

type Blog struct {
	BlogID      string `json:"_id,omitempty"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"` // rich-text HTML from the editor widget
	Thumbnail   string `json:"thumbnail,omitempty"`
	IsActivated bool   `json:"isActivated,omitempty"`
}
