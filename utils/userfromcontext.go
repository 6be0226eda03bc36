package utils

import (
	"net/http"

	"luxadmin/globals"
)

func GetUserIDFromRequest(r *http.Request) string {
	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok {
		return ""
	}
	return userID
}

// GetUpstreamToken returns the operator's upstream API token stashed in the
// request context by the auth middleware.
func GetUpstreamToken(r *http.Request) string {
	token, ok := r.Context().Value(globals.UpstreamTokenKey).(string)
	if !ok {
		return ""
	}
	return token
}
