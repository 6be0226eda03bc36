package models

// Trek mirrors Tour but with trek-specific grading fields.
type Trek struct {
	TrekID      string         `json:"_id,omitempty"`
	Title       string         `json:"title"`
	Price       float64        `json:"price"`
	Country     string         `json:"country"`
	Location    string         `json:"location"`
	Duration    string         `json:"duration"`
	Difficulty  string         `json:"difficulty,omitempty"`
	MaxAltitude string         `json:"maxAltitude,omitempty"`
	BestSeason  string         `json:"bestSeason,omitempty"`
	Overview    string         `json:"overview"`
	Thumbnail   string         `json:"thumbnail,omitempty"`
	Images      []string       `json:"images,omitempty"`
	Highlights  []Highlight    `json:"highlights"`
	Itineraries []ItineraryDay `json:"itineraries"`
	IsActivated bool           `json:"isActivated,omitempty"`
}
