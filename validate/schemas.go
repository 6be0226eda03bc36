package validate

// Rule sets for every entity form. Fields absent here are never validated
// and never block submission.

var itinerarySchema = &Schema{
	Rules: []Rule{
		{Field: "title", Required: true, Label: "Itinerary Title"},
		{Field: "description", Required: true, Label: "Itinerary Description"},
	},
}

var roomSchema = &Schema{
	Rules: []Rule{
		{Field: "roomTitle", Required: true},
		{Field: "roomStandard", Required: true},
		{Field: "roomDescription", Required: true},
		{Field: "roomFacilities", MinLen: 1},
		{Field: "roomPhotos", MinLen: 1},
	},
}

var TourSchema = &Schema{
	Rules: []Rule{
		{Field: "title", Required: true},
		{Field: "price", Required: true, Min: f(0), Exclusive: true},
		{Field: "country", Required: true},
		{Field: "location", Required: true},
		{Field: "duration", Required: true},
		{Field: "overview", Required: true},
		{Field: "thumbnail", Required: true},
		{Field: "highlights", MinLen: 1},
	},
	Groups: map[string]*Schema{
		"itineraries": itinerarySchema,
	},
}

var TrekSchema = &Schema{
	Rules: []Rule{
		{Field: "title", Required: true},
		{Field: "price", Required: true, Min: f(0), Exclusive: true},
		{Field: "country", Required: true},
		{Field: "location", Required: true},
		{Field: "duration", Required: true},
		{Field: "difficulty", Required: true, In: []string{"easy", "moderate", "challenging", "strenuous"}},
		{Field: "overview", Required: true},
		{Field: "thumbnail", Required: true},
		{Field: "highlights", MinLen: 1},
	},
	Groups: map[string]*Schema{
		"itineraries": itinerarySchema,
	},
}

var AccommodationSchema = &Schema{
	Rules: []Rule{
		{Field: "accommodationTitle", Required: true},
		{Field: "country", Required: true},
		{Field: "accommodationLocation", Required: true},
		{Field: "accommodationRating", Min: f(1), Max: f(5)},
		{Field: "accommodationDescription", Required: true},
		{Field: "accommodationPics", MinLen: 1},
	},
	Groups: map[string]*Schema{
		"rooms": roomSchema,
	},
}

var DestinationSchema = &Schema{
	Rules: []Rule{
		{Field: "title", Required: true},
		{Field: "country", Required: true},
		{Field: "description", Required: true},
		{Field: "thumbnail", Required: true},
	},
}

var BlogSchema = &Schema{
	Rules: []Rule{
		{Field: "title", Required: true},
		{Field: "category", Required: true},
		{Field: "description", Required: true},
		{Field: "thumbnail", Required: true},
	},
}

var BookingPriceSchema = &Schema{
	Rules: []Rule{
		{Field: "tourId", Required: true, Label: "Tour"},
		{Field: "soloPrice", Required: true, Min: f(0), Exclusive: true},
		{Field: "twinSharingPrice", Required: true, Min: f(0), Exclusive: true},
	},
}

// SchemaFor maps the route entity type to its rule set.
func SchemaFor(entity string) *Schema {
	switch entity {
	case "tour":
		return TourSchema
	case "trek":
		return TrekSchema
	case "accommodation":
		return AccommodationSchema
	case "destination":
		return DestinationSchema
	case "blog":
		return BlogSchema
	case "booking":
		return BookingPriceSchema
	}
	return nil
}
