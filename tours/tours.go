package tours

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"luxadmin/activity"
	"luxadmin/gateway"
	"luxadmin/models"
	"luxadmin/mq"
	"luxadmin/rdx"
	"luxadmin/utils"

	"github.com/julienschmidt/httprouter"
	qrcode "github.com/skip2/go-qrcode"
)

var API = gateway.New()

// guard drops stale search responses: only the freshest request for a
// cache key may populate the cache.
var guard = gateway.NewSearchGuard()

const listCacheTTL = 2 * time.Minute

func listCacheKey(opts utils.QueryOptions) string {
	return fmt.Sprintf("list:tour:%d:%d:%s:%s", opts.Page, opts.Limit, opts.Search, opts.Country)
}

// ListTours proxies the upstream tour list with a short Redis cache.
func ListTours(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	opts := utils.ParseQueryOptions(r)
	key := listCacheKey(opts)

	if cached, ok := rdx.CacheGet(key); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(cached))
		return
	}

	gen := guard.Begin(key)

	var tours []models.Tour
	path := fmt.Sprintf("/tours?page=%d&limit=%d&search=%s&country=%s",
		opts.Page, opts.Limit, opts.Search, opts.Country)
	if err := API.GetJSON(r.Context(), path, utils.GetUpstreamToken(r), &tours); err != nil {
		utils.RespondWithError(w, http.StatusBadGateway, "Failed to fetch tours")
		return
	}
	if tours == nil {
		tours = []models.Tour{}
	}

	// One envelope serves both paths, so replaying the cache yields the
	// exact bytes a cold request produces.
	payload, err := json.Marshal(utils.M{"success": true, "message": "", "data": tours})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to encode tour list")
		return
	}

	// A newer request for the same key raced us; serve the result but do
	// not let it overwrite the fresher cache entry.
	if !guard.Stale(key, gen) {
		rdx.CacheSet(key, string(payload), listCacheTTL)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}

// GetTour fetches one tour by id.
func GetTour(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var tour models.Tour
	if err := API.GetJSON(r.Context(), "/tours/"+ps.ByName("id"), utils.GetUpstreamToken(r), &tour); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Tour not found")
		return
	}
	utils.SendResponse(w, http.StatusOK, tour, "", nil)
}

// DeleteTour removes a tour upstream and invalidates cached lists.
func DeleteTour(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	userID := utils.GetUserIDFromRequest(r)

	if err := API.Delete(r.Context(), "/tours/"+id, utils.GetUpstreamToken(r)); err != nil {
		activity.Log(userID, "delete", "tour", id, "failed")
		utils.RespondWithError(w, http.StatusBadGateway, "Failed to delete tour")
		return
	}

	go mq.Emit(context.Background(), "tour-deleted", models.Index{
		EntityType: "tour", EntityId: id, Method: http.MethodDelete,
	})
	activity.Log(userID, "delete", "tour", id, "ok")
	utils.SendResponse(w, http.StatusOK, nil, "Tour deleted", nil)
}

// ShareQR renders a QR code PNG pointing at the public tour page.
func ShareQR(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	base := os.Getenv("PUBLIC_SITE_URL")
	if base == "" {
		base = "https://luxuryescape.example.com"
	}
	png, err := qrcode.Encode(base+"/tours/"+ps.ByName("id"), qrcode.Medium, 256)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to render QR code")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
