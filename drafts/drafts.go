package drafts

import (
	"luxadmin/gateway"
	"luxadmin/session"
	"luxadmin/validate"
)

// Store owns every live draft session in the process.
var Store = session.NewStore()

// API is the upstream client; tests point it at a mock server.
var API = gateway.New()

// PreviewDir is where session trackers stage attached files.
var PreviewDir = "static/previews"

// entityMeta maps a route entity type to its upstream endpoints.
type entityMeta struct {
	listPath   string
	itemPath   string // + "/" + id
	createPath string
	editPath   string // + "/" + id, PUT
	schema     *validate.Schema
}

func getEntityMeta(entity string) (entityMeta, bool) {
	switch entity {
	case "tour":
		return entityMeta{"/tours", "/tours", "/tours", "/tours", validate.TourSchema}, true
	case "trek":
		return entityMeta{"/treks", "/treks", "/treks", "/treks", validate.TrekSchema}, true
	case "accommodation":
		return entityMeta{"/accommodations", "/accommodations", "/accommodations", "/accommodations", validate.AccommodationSchema}, true
	case "destination":
		return entityMeta{"/destinations", "/destinations", "/destinations", "/destinations", validate.DestinationSchema}, true
	case "blog":
		return entityMeta{"/blogs", "/blogs", "/blogs", "/blogs", validate.BlogSchema}, true
	case "booking":
		return entityMeta{"/booking-prices", "/booking-prices", "/booking-prices", "/booking-prices", validate.BookingPriceSchema}, true
	}
	return entityMeta{}, false
}
