package models

// Tour is the remote representation of a tour as the upstream API returns it.
type Tour struct {
	TourID      string         `json:"_id,omitempty"`
	Title       string         `json:"title"`
	Slug        string         `json:"slug,omitempty"`
	Price       float64        `json:"price"`
	Country     string         `json:"country"`
	Location    string         `json:"location"`
	Duration    string         `json:"duration"`
	GroupSize   string         `json:"groupSize,omitempty"`
	BestSeason  string         `json:"bestSeason,omitempty"`
	Overview    string         `json:"overview"`
	Thumbnail   string         `json:"thumbnail,omitempty"`
	Images      []string       `json:"images,omitempty"`
	Highlights  []Highlight    `json:"highlights"`
	Itineraries []ItineraryDay `json:"itineraries"`
	Links       []LinkPair     `json:"links,omitempty"`
	IsActivated bool           `json:"isActivated,omitempty"`
	IsFeatured  bool           `json:"isFeatured,omitempty"`
	PublicURL   string         `json:"publicUrl,omitempty"`
}

type Highlight struct {
	HighlightsTitle string `json:"highlightsTitle"`
}

// ItineraryDay is one positional day of a tour or trek itinerary. Day labels
// are assigned at creation time and are not recomputed on removal.
type ItineraryDay struct {
	Day            int                `json:"day"`
	Title          string             `json:"title"`
	Description    string             `json:"description"`
	Accommodations []DayAccommodation `json:"accommodation"`
	Links          []LinkPair         `json:"links"`
}

// DayAccommodation is an accommodation referenced inside an itinerary day,
// with its own photo and link groups.
type DayAccommodation struct {
	Name  string     `json:"accommodationTitle"`
	Pics  []string   `json:"accommodationPics"`
	Links []LinkPair `json:"accommodationLinks"`
}

type LinkPair struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}
