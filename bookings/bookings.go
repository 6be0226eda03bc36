package bookings

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"luxadmin/activity"
	"luxadmin/gateway"
	"luxadmin/models"
	"luxadmin/mq"
	"luxadmin/utils"

	"github.com/julienschmidt/httprouter"
)

var API = gateway.New()

// ListBookingPrices proxies the upstream rate-card list.
func ListBookingPrices(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	opts := utils.ParseQueryOptions(r)

	var prices []models.BookingPrice
	path := fmt.Sprintf("/booking-prices?page=%d&limit=%d&search=%s", opts.Page, opts.Limit, opts.Search)
	if err := API.GetJSON(r.Context(), path, utils.GetUpstreamToken(r), &prices); err != nil {
		utils.RespondWithError(w, http.StatusBadGateway, "Failed to fetch booking prices")
		return
	}
	if prices == nil {
		prices = []models.BookingPrice{}
	}
	utils.SendResponse(w, http.StatusOK, prices, "", nil)
}

// GetBookingPrice fetches one rate card by id.
func GetBookingPrice(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var price models.BookingPrice
	if err := API.GetJSON(r.Context(), "/booking-prices/"+ps.ByName("id"), utils.GetUpstreamToken(r), &price); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Booking price not found")
		return
	}
	utils.SendResponse(w, http.StatusOK, price, "", nil)
}

// DeleteBookingPrice removes a rate card upstream.
func DeleteBookingPrice(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	userID := utils.GetUserIDFromRequest(r)

	if err := API.Delete(r.Context(), "/booking-prices/"+id, utils.GetUpstreamToken(r)); err != nil {
		activity.Log(userID, "delete", "booking", id, "failed")
		utils.RespondWithError(w, http.StatusBadGateway, "Failed to delete booking price")
		return
	}

	go mq.Emit(context.Background(), "booking-deleted", models.Index{
		EntityType: "booking", EntityId: id, Method: http.MethodDelete,
	})
	activity.Log(userID, "delete", "booking", id, "ok")
	utils.SendResponse(w, http.StatusOK, nil, "Booking price deleted", nil)
}

// ExportRateCardPDF renders the current rate cards as a downloadable PDF.
func ExportRateCardPDF(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var prices []models.BookingPrice
	if err := API.GetJSON(r.Context(), "/booking-prices?limit=500", utils.GetUpstreamToken(r), &prices); err != nil {
		utils.RespondWithError(w, http.StatusBadGateway, "Failed to fetch booking prices")
		return
	}

	pdf, err := buildRateCardPDF(prices, time.Now())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to render PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="rate-card.pdf"`)
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}
