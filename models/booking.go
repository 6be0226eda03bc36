package models

// BookingPrice is the per-tour rate card the bookings screens manage.
type BookingPrice struct {
	PriceID             string  `json:"_id,omitempty"`
	TourID              string  `json:"tourId"`
	TourTitle           string  `json:"tourTitle,omitempty"`
	AdventureType       string  `json:"adventureType,omitempty"`
	SoloPrice           float64 `json:"soloPrice"`
	SoloPremiumPrice    float64 `json:"soloPremiumPrice,omitempty"`
	SingleSupplementary float64 `json:"singleSupplementaryPrice,omitempty"`
	TwinSharingPrice    float64 `json:"twinSharingPrice"`
	ThreeStarPrice      float64 `json:"threeStarPrice,omitempty"`
	FourStarPrice       float64 `json:"fourStarPrice,omitempty"`
	FiveStarPrice       float64 `json:"fiveStarPrice,omitempty"`
}
