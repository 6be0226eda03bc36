package routes

import (
	"net/http"

	"luxadmin/activity"
	"luxadmin/auth"
	"luxadmin/bookings"
	"luxadmin/catalog"
	"luxadmin/drafts"
	"luxadmin/middleware"
	"luxadmin/notify"
	"luxadmin/profile"
	"luxadmin/ratelim"
	"luxadmin/tours"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/previews/*filepath", http.Dir("static/previews"))
}

func AddAuthRoutes(router *httprouter.Router) {
	router.POST("/api/auth/login", ratelim.RateLimit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.Logout))
	router.GET("/api/auth/verify", auth.Verify)
	router.POST("/api/auth/forget-password", ratelim.RateLimit(auth.RequestReset))
	router.POST("/api/auth/reset-password", ratelim.RateLimit(auth.ConfirmReset))
}

func AddDraftRoutes(router *httprouter.Router) {
	router.POST("/api/drafts/:entitytype", middleware.Authenticate(drafts.Open))
	router.GET("/api/drafts/:entitytype/:sessionid", middleware.Authenticate(drafts.Get))
	router.DELETE("/api/drafts/:entitytype/:sessionid", middleware.Authenticate(drafts.Close))
	router.POST("/api/drafts/:entitytype/:sessionid/hydrate", middleware.Authenticate(drafts.Rehydrate))
	router.PATCH("/api/drafts/:entitytype/:sessionid/field", middleware.Authenticate(drafts.SetField))
	router.POST("/api/drafts/:entitytype/:sessionid/group", middleware.Authenticate(drafts.GroupOp))
	router.POST("/api/drafts/:entitytype/:sessionid/attach", middleware.Authenticate(drafts.Attach))
	router.POST("/api/drafts/:entitytype/:sessionid/detach", middleware.Authenticate(drafts.Detach))
	router.POST("/api/drafts/:entitytype/:sessionid/validate", middleware.Authenticate(drafts.ValidateDraft))
	router.POST("/api/drafts/:entitytype/:sessionid/submit", ratelim.RateLimit(middleware.Authenticate(drafts.Submit)))
}

func AddTourRoutes(router *httprouter.Router) {
	router.GET("/api/tours", middleware.Authenticate(tours.ListTours))
	router.GET("/api/tours/:id", middleware.Authenticate(tours.GetTour))
	router.DELETE("/api/tours/:id", middleware.Authenticate(tours.DeleteTour))
	router.GET("/api/tours/:id/qr", middleware.Authenticate(tours.ShareQR))
}

func AddBookingRoutes(router *httprouter.Router) {
	router.GET("/api/booking-prices", middleware.Authenticate(bookings.ListBookingPrices))
	router.GET("/api/booking-prices/:id", middleware.Authenticate(bookings.GetBookingPrice))
	router.DELETE("/api/booking-prices/:id", middleware.Authenticate(bookings.DeleteBookingPrice))
	router.GET("/api/rate-card/pdf", middleware.Authenticate(bookings.ExportRateCardPDF))
}

func AddCatalogRoutes(router *httprouter.Router) {
	router.GET("/api/catalog/:entitytype", middleware.Authenticate(catalog.List))
	router.GET("/api/catalog/:entitytype/:id", middleware.Authenticate(catalog.Get))
	router.DELETE("/api/catalog/:entitytype/:id", middleware.Authenticate(catalog.Delete))
}

func AddProfileRoutes(router *httprouter.Router) {
	router.GET("/api/profile", middleware.Authenticate(profile.GetProfile))
	router.PUT("/api/profile", middleware.Authenticate(profile.UpdateProfile))
}

func AddActivityRoutes(router *httprouter.Router) {
	router.GET("/api/activity", middleware.Authenticate(activity.GetActivityFeed))
	router.GET("/api/activity/recent", middleware.Authenticate(activity.GetRecentActivity))
}

func AddNotifyRoutes(router *httprouter.Router, hub *notify.Hub) {
	router.GET("/ws/notifications", middleware.Authenticate(notify.WebSocketHandler(hub)))
}

func RoutesWrapper(router *httprouter.Router, hub *notify.Hub) {
	AddStaticRoutes(router)
	AddAuthRoutes(router)
	AddDraftRoutes(router)
	AddTourRoutes(router)
	AddBookingRoutes(router)
	AddCatalogRoutes(router)
	AddProfileRoutes(router)
	AddActivityRoutes(router)
	AddNotifyRoutes(router, hub)
}
