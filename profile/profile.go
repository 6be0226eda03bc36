package profile

import (
	"encoding/json"
	"net/http"

	"luxadmin/activity"
	"luxadmin/gateway"
	"luxadmin/models"
	"luxadmin/utils"

	"github.com/julienschmidt/httprouter"
)

var API = gateway.New()

// GetProfile returns the signed-in operator's upstream profile.
func GetProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var user models.User
	if err := API.GetJSON(r.Context(), "/profile", utils.GetUpstreamToken(r), &user); err != nil {
		utils.RespondWithError(w, http.StatusBadGateway, "Failed to fetch profile")
		return
	}
	utils.SendResponse(w, http.StatusOK, user, "", nil)
}

// UpdateProfile forwards name/phone edits upstream.
func UpdateProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if input.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name is required")
		return
	}

	var user models.User
	if err := API.PostJSON(r.Context(), "/profile", utils.GetUpstreamToken(r), input, &user); err != nil {
		utils.RespondWithError(w, http.StatusBadGateway, "Failed to update profile")
		return
	}
	activity.Log(utils.GetUserIDFromRequest(r), "update", "profile", user.UserID, "ok")
	utils.SendResponse(w, http.StatusOK, user, "Profile updated", nil)
}
