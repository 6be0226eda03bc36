package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"luxadmin/activity"
	"luxadmin/gateway"
	"luxadmin/models"
	"luxadmin/mq"
	"luxadmin/rdx"
	"luxadmin/utils"

	"github.com/julienschmidt/httprouter"
)

// Catalog proxies the list/detail/delete surface for the entity types that
// share one upstream shape: treks, accommodations, destinations and blogs.
// Tours and booking prices carry extra behavior and live in their own
// packages.

var API = gateway.New()

var guard = gateway.NewSearchGuard()

const listCacheTTL = 2 * time.Minute

var upstreamPaths = map[string]string{
	"trek":          "/treks",
	"accommodation": "/accommodations",
	"destination":   "/destinations",
	"blog":          "/blogs",
}

func basePath(w http.ResponseWriter, ps httprouter.Params) (string, string, bool) {
	entity := ps.ByName("entitytype")
	base, ok := upstreamPaths[entity]
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Unsupported entity type")
		return "", "", false
	}
	return entity, base, true
}

// List proxies the upstream entity list with a short Redis cache.
func List(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	entity, base, ok := basePath(w, ps)
	if !ok {
		return
	}
	opts := utils.ParseQueryOptions(r)
	key := fmt.Sprintf("list:%s:%d:%d:%s:%s", entity, opts.Page, opts.Limit, opts.Search, opts.Country)

	if cached, ok := rdx.CacheGet(key); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(cached))
		return
	}

	gen := guard.Begin(key)

	var items []map[string]any
	path := fmt.Sprintf("%s?page=%d&limit=%d&search=%s&country=%s",
		base, opts.Page, opts.Limit, opts.Search, opts.Country)
	if err := API.GetJSON(r.Context(), path, utils.GetUpstreamToken(r), &items); err != nil {
		utils.RespondWithError(w, http.StatusBadGateway, "Failed to fetch "+entity+" list")
		return
	}
	if items == nil {
		items = []map[string]any{}
	}

	// One envelope serves both paths, so replaying the cache yields the
	// exact bytes a cold request produces.
	payload, err := json.Marshal(utils.M{"success": true, "message": "", "data": items})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to encode "+entity+" list")
		return
	}

	if !guard.Stale(key, gen) {
		rdx.CacheSet(key, string(payload), listCacheTTL)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}

// Get fetches one entity by id.
func Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	entity, base, ok := basePath(w, ps)
	if !ok {
		return
	}
	var item map[string]any
	if err := API.GetJSON(r.Context(), base+"/"+ps.ByName("id"), utils.GetUpstreamToken(r), &item); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, entity+" not found")
		return
	}
	utils.SendResponse(w, http.StatusOK, item, "", nil)
}

// Delete removes one entity upstream and invalidates cached lists.
func Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	entity, base, ok := basePath(w, ps)
	if !ok {
		return
	}
	id := ps.ByName("id")
	userID := utils.GetUserIDFromRequest(r)

	if err := API.Delete(r.Context(), base+"/"+id, utils.GetUpstreamToken(r)); err != nil {
		activity.Log(userID, "delete", entity, id, "failed")
		utils.RespondWithError(w, http.StatusBadGateway, "Failed to delete "+entity)
		return
	}

	go mq.Emit(context.Background(), entity+"-deleted", models.Index{
		EntityType: entity, EntityId: id, Method: http.MethodDelete,
	})
	activity.Log(userID, "delete", entity, id, "ok")
	utils.SendResponse(w, http.StatusOK, nil, "Deleted", nil)
}
