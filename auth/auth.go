package auth

import (
	"net/http"

	"luxadmin/gateway"

	"github.com/julienschmidt/httprouter"
)

// API is the upstream client used for credential exchange; tests swap it
// for one pointed at a mock server.
var API = gateway.New()

func Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	loginHandler(w, r)
}
func Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	logoutHandler(w, r)
}
func Verify(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	verifyHandler(w, r)
}
func RequestReset(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	requestResetHandler(w, r)
}
func ConfirmReset(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	confirmResetHandler(w, r)
}
