package draft

// Declared layouts for every entity the back office edits. Field names are
// the upstream form/JSON keys.

const (
	GalleryCap   = 10 // tour/trek image galleries
	PropertyCap  = 8  // accommodation and destination galleries
	RoomPhotoCap = 5
	DayPicsCap   = 5 // accommodation pics inside an itinerary day
)

var linkGroup = &GroupSpec{Fields: []FieldSpec{
	{Name: "text", Kind: String},
	{Name: "url", Kind: String},
}}

var highlightGroup = &GroupSpec{Fields: []FieldSpec{
	{Name: "highlightsTitle", Kind: String},
}}

var dayAccommodationGroup = &GroupSpec{Fields: []FieldSpec{
	{Name: "accommodationTitle", Kind: String},
	{Name: "accommodationPics", Kind: SlotGroup, Cap: DayPicsCap},
	{Name: "accommodationLinks", Kind: RecordGroup, Group: linkGroup, Seeded: true},
}}

var itineraryGroup = &GroupSpec{Fields: []FieldSpec{
	{Name: "day", Kind: Number},
	{Name: "title", Kind: String},
	{Name: "description", Kind: String},
	{Name: "accommodation", Kind: RecordGroup, Group: dayAccommodationGroup},
	{Name: "links", Kind: RecordGroup, Group: linkGroup, Seeded: true},
}}

var roomGroup = &GroupSpec{Fields: []FieldSpec{
	{Name: "roomTitle", Kind: String},
	{Name: "roomStandard", Kind: String},
	{Name: "roomDescription", Kind: String},
	{Name: "roomFacilities", Kind: StringList},
	{Name: "roomPhotos", Kind: SlotGroup, Cap: RoomPhotoCap},
}}

var TourShape = &Shape{
	Entity: "tour",
	Fields: []FieldSpec{
		{Name: "title", Kind: String},
		{Name: "price", Kind: Number},
		{Name: "country", Kind: String},
		{Name: "location", Kind: String},
		{Name: "duration", Kind: String},
		{Name: "groupSize", Kind: String},
		{Name: "bestSeason", Kind: String},
		{Name: "overview", Kind: String},
		{Name: "thumbnail", Kind: Slot},
		{Name: "images", Kind: SlotGroup, Cap: GalleryCap},
		{Name: "highlights", Kind: RecordGroup, Group: highlightGroup},
		{Name: "itineraries", Kind: RecordGroup, Group: itineraryGroup},
		{Name: "links", Kind: RecordGroup, Group: linkGroup, Seeded: true},
	},
}

var TrekShape = &Shape{
	Entity: "trek",
	Fields: []FieldSpec{
		{Name: "title", Kind: String},
		{Name: "price", Kind: Number},
		{Name: "country", Kind: String},
		{Name: "location", Kind: String},
		{Name: "duration", Kind: String},
		{Name: "difficulty", Kind: String},
		{Name: "maxAltitude", Kind: String},
		{Name: "bestSeason", Kind: String},
		{Name: "overview", Kind: String},
		{Name: "thumbnail", Kind: Slot},
		{Name: "images", Kind: SlotGroup, Cap: GalleryCap},
		{Name: "highlights", Kind: RecordGroup, Group: highlightGroup},
		{Name: "itineraries", Kind: RecordGroup, Group: itineraryGroup},
	},
}

var AccommodationShape = &Shape{
	Entity: "accommodation",
	Fields: []FieldSpec{
		{Name: "accommodationTitle", Kind: String},
		{Name: "country", Kind: String},
		{Name: "accommodationLocation", Kind: String},
		{Name: "accommodationRating", Kind: Number},
		{Name: "accommodationDescription", Kind: String},
		{Name: "accommodationFeatures", Kind: StringList},
		{Name: "accommodationAmenities", Kind: StringList},
		{Name: "logo", Kind: Slot},
		{Name: "accommodationPics", Kind: SlotGroup, Cap: PropertyCap},
		{Name: "rooms", Kind: RecordGroup, Group: roomGroup},
	},
}

var DestinationShape = &Shape{
	Entity: "destination",
	Fields: []FieldSpec{
		{Name: "title", Kind: String},
		{Name: "country", Kind: String},
		{Name: "description", Kind: String},
		{Name: "thumbnail", Kind: Slot},
		{Name: "images", Kind: SlotGroup, Cap: PropertyCap},
	},
}

var BlogShape = &Shape{
	Entity: "blog",
	Fields: []FieldSpec{
		{Name: "title", Kind: String},
		{Name: "category", Kind: String},
		{Name: "description", Kind: String},
		{Name: "thumbnail", Kind: Slot},
	},
}

var BookingPriceShape = &Shape{
	Entity: "booking",
	Fields: []FieldSpec{
		{Name: "tourId", Kind: String},
		{Name: "adventureType", Kind: String},
		{Name: "soloPrice", Kind: Number},
		{Name: "soloPremiumPrice", Kind: Number},
		{Name: "singleSupplementaryPrice", Kind: Number},
		{Name: "twinSharingPrice", Kind: Number},
		{Name: "threeStarPrice", Kind: Number},
		{Name: "fourStarPrice", Kind: Number},
		{Name: "fiveStarPrice", Kind: Number},
	},
}

// ShapeFor maps the route entity type to its declared shape.
func ShapeFor(entity string) *Shape {
	switch entity {
	case "tour":
		return TourShape
	case "trek":
		return TrekShape
	case "accommodation":
		return AccommodationShape
	case "destination":
		return DestinationShape
	case "blog":
		return BlogShape
	case "booking":
		return BookingPriceShape
	}
	return nil
}
