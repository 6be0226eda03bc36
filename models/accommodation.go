package models

// Accommodation is the remote representation of a property.
type Accommodation struct {
	AccommodationID string   `json:"_id,omitempty"`
	Name            string   `json:"accommodationTitle"`
	Country         string   `json:"country"`
	Location        string   `json:"accommodationLocation"`
	Rating          float64  `json:"accommodationRating,omitempty"`
	Description     string   `json:"accommodationDescription"`
	Features        []string `json:"accommodationFeatures,omitempty"`
	Amenities       []string `json:"accommodationAmenities,omitempty"`
	Logo            string   `json:"logo,omitempty"`
	Pics            []string `json:"accommodationPics,omitempty"`
	Rooms           []Room   `json:"rooms"`
	IsActivated     bool     `json:"isActivated,omitempty"`
}

// Room requires title, standard, description, facilities and photos.
type Room struct {
	Title       string   `json:"roomTitle"`
	Standard    string   `json:"roomStandard"`
	Description string   `json:"roomDescription"`
	Facilities  []string `json:"roomFacilities"`
	Photos      []string `json:"roomPhotos"`
}
