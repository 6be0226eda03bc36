package middleware

import (
	"net/http"
	"strings"

	"luxadmin/rdx"
)

// Page paths served to the admin browser. Protected prefixes bounce
// unauthenticated requests to the login page; public-only paths bounce
// authenticated operators back home.
var (
	ProtectedPrefixes = []string{"/", "/tours", "/accommodations", "/treks", "/destinations", "/blogs", "/bookings", "/profile"}
	PublicOnlyPaths   = []string{"/login", "/forget-password", "/reset-password"}

	LoginPath = "/login"
	HomePath  = "/"
)

func isPublicOnly(path string) bool {
	for _, p := range PublicOnlyPaths {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

func isProtected(path string) bool {
	for _, p := range ProtectedPrefixes {
		if path == p || (p != "/" && strings.HasPrefix(path, p+"/")) {
			return true
		}
	}
	return false
}

// PageGate applies the cookie-token redirect policy to page requests.
func PageGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authed := false
		if tokenString := tokenFromRequest(r); tokenString != "" {
			if claims, err := parseToken(tokenString); err == nil && rdx.TokenValid(claims.UserID, tokenString) {
				authed = true
			}
		}

		path := r.URL.Path
		if isPublicOnly(path) {
			if authed {
				http.Redirect(w, r, HomePath, http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
			return
		}
		if isProtected(path) && !authed {
			http.Redirect(w, r, LoginPath, http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}
